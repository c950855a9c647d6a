package sqldb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/domain"
)

func TestApplicationRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewApplicationRepository(db)

	employer := createUser(t, db, domain.RoleEmployer, "emp@example.com")
	seeker := createUser(t, db, domain.RoleJobSeeker, "seeker@example.com")
	job := createJob(t, db, employer.ID, "Job")

	t.Run("status is forced to APPLIED", func(t *testing.T) {
		id, err := repo.Create(ctx, job.ID, seeker.ID)
		require.NoError(t, err)

		apps, err := repo.ListForSeeker(ctx, seeker.ID)
		require.NoError(t, err)
		require.Len(t, apps, 1)
		assert.Equal(t, id, apps[0].ID)
		assert.Equal(t, domain.StatusApplied, apps[0].Status)
	})

	t.Run("applying twice produces two distinct rows", func(t *testing.T) {
		_, err := repo.Create(ctx, job.ID, seeker.ID)
		require.NoError(t, err)

		apps, err := repo.ListForSeeker(ctx, seeker.ID)
		require.NoError(t, err)
		require.Len(t, apps, 2, "duplicate applications are permitted")
		assert.NotEqual(t, apps[0].ID, apps[1].ID)
		for _, app := range apps {
			assert.Equal(t, domain.StatusApplied, app.Status)
		}
	})
}

func TestApplicationRepository_ListForEmployer(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewApplicationRepository(db)

	employer := createUser(t, db, domain.RoleEmployer, "emp@example.com")
	rival := createUser(t, db, domain.RoleEmployer, "rival@example.com")
	seeker := createUser(t, db, domain.RoleJobSeeker, "seeker@example.com")

	mine := createJob(t, db, employer.ID, "mine")
	theirs := createJob(t, db, rival.ID, "theirs")

	myAppID, err := repo.Create(ctx, mine.ID, seeker.ID)
	require.NoError(t, err)
	_, err = repo.Create(ctx, theirs.ID, seeker.ID)
	require.NoError(t, err)

	apps, err := repo.ListForEmployer(ctx, employer.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1, "only applications to the employer's own jobs")
	assert.Equal(t, myAppID, apps[0].ID)
	assert.Equal(t, mine.ID, apps[0].JobID)
	assert.Equal(t, seeker.ID, apps[0].SeekerID)

	empty, err := repo.ListForEmployer(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestApplicationRepository_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewApplicationRepository(db)

	employer := createUser(t, db, domain.RoleEmployer, "emp@example.com")
	seeker := createUser(t, db, domain.RoleJobSeeker, "seeker@example.com")
	job := createJob(t, db, employer.ID, "Job")

	id, err := repo.Create(ctx, job.ID, seeker.ID)
	require.NoError(t, err)

	t.Run("known status", func(t *testing.T) {
		require.NoError(t, repo.UpdateStatus(ctx, id, domain.StatusAccepted))

		apps, err := repo.ListForSeeker(ctx, seeker.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAccepted, apps[0].Status)
	})

	t.Run("arbitrary status strings are persisted verbatim", func(t *testing.T) {
		require.NoError(t, repo.UpdateStatus(ctx, id, "WITHDRAWN"))

		apps, err := repo.ListForSeeker(ctx, seeker.ID)
		require.NoError(t, err)
		assert.Equal(t, "WITHDRAWN", apps[0].Status, "no whitelist at the store layer")
	})

	t.Run("status can change again after a terminal value", func(t *testing.T) {
		require.NoError(t, repo.UpdateStatus(ctx, id, domain.StatusRejected))
		require.NoError(t, repo.UpdateStatus(ctx, id, domain.StatusApplied))

		apps, err := repo.ListForSeeker(ctx, seeker.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApplied, apps[0].Status)
	})
}
