package sqldb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"jobboard/internal/domain"
)

// setupTestDB opens a throwaway sqlite database with all three tables created.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, NewUserRepository(db).Init(ctx), "init users")
	require.NoError(t, NewJobRepository(db).Init(ctx), "init jobs")
	require.NoError(t, NewApplicationRepository(db).Init(ctx), "init applications")
	return db
}

func createUser(t *testing.T, db *DB, role domain.Role, email string) *domain.User {
	t.Helper()

	user := &domain.User{
		Name:     "Test " + string(role),
		Email:    email,
		Password: "secret1",
		Role:     role,
	}
	switch role {
	case domain.RoleEmployer:
		user.Company = "Acme"
	case domain.RoleJobSeeker:
		user.Resume = "ten years of everything"
	}

	_, err := NewUserRepository(db).Create(context.Background(), user)
	require.NoError(t, err, "failed to create %s", role)
	return user
}

func createJob(t *testing.T, db *DB, employerID int64, title string) *domain.Job {
	t.Helper()

	job := &domain.Job{
		Title:       title,
		Description: "do things",
		Location:    "Remote",
		Salary:      50000,
		EmployerID:  employerID,
	}
	_, err := NewJobRepository(db).Create(context.Background(), job)
	require.NoError(t, err, "failed to create job")
	return job
}
