package service_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"jobboard/internal/domain"
	"jobboard/internal/repository/sqldb"
	"jobboard/internal/service"
)

type testServices struct {
	accounts     service.AccountService
	jobs         service.JobService
	applications service.ApplicationService
}

func setupServices(t *testing.T) testServices {
	t.Helper()

	db, err := sqldb.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	userRepo := sqldb.NewUserRepository(db)
	jobRepo := sqldb.NewJobRepository(db)
	appRepo := sqldb.NewApplicationRepository(db)
	require.NoError(t, userRepo.Init(ctx))
	require.NoError(t, jobRepo.Init(ctx))
	require.NoError(t, appRepo.Init(ctx))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return testServices{
		accounts:     service.NewAccountService(userRepo, logger),
		jobs:         service.NewJobService(jobRepo, logger),
		applications: service.NewApplicationService(appRepo, jobRepo, logger),
	}
}

func registerEmployer(t *testing.T, svc testServices, email string) *domain.User {
	t.Helper()
	user, err := svc.accounts.RegisterEmployer(context.Background(), "Employer", email, "secret1", "Acme")
	require.NoError(t, err, "failed to register employer")
	return user
}

func registerSeeker(t *testing.T, svc testServices, email string) *domain.User {
	t.Helper()
	user, err := svc.accounts.RegisterJobSeeker(context.Background(), "Seeker", email, "secret1", "resume text")
	require.NoError(t, err, "failed to register seeker")
	return user
}
