package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/domain"
	"jobboard/internal/service"
)

func TestAccountService_Register(t *testing.T) {
	t.Run("employer gets the EMPLOYER role", func(t *testing.T) {
		svc := setupServices(t)

		user, err := svc.accounts.RegisterEmployer(context.Background(), "Jane", "jane@acme.com", "secret1", "Acme")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleEmployer, user.Role)
		assert.Equal(t, "Acme", user.Company)
		assert.Positive(t, user.ID)
	})

	t.Run("seeker gets the JOB_SEEKER role", func(t *testing.T) {
		svc := setupServices(t)

		user, err := svc.accounts.RegisterJobSeeker(context.Background(), "Joe", "joe@mail.com", "secret1", "my resume")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleJobSeeker, user.Role)
		assert.Equal(t, "my resume", user.Resume)
	})

	t.Run("duplicate email is rejected across roles", func(t *testing.T) {
		svc := setupServices(t)

		registerEmployer(t, svc, "taken@mail.com")
		_, err := svc.accounts.RegisterJobSeeker(context.Background(), "Joe", "taken@mail.com", "secret1", "r")
		assert.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("input validation", func(t *testing.T) {
		svc := setupServices(t)
		ctx := context.Background()

		cases := []struct {
			name, userName, email, password string
		}{
			{"empty name", "", "a@b.com", "secret1"},
			{"empty email", "Jane", "", "secret1"},
			{"malformed email", "Jane", "not-an-email", "secret1"},
			{"short password", "Jane", "a@b.com", "abc"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.accounts.RegisterEmployer(ctx, tc.userName, tc.email, tc.password, "Acme")
				assert.ErrorIs(t, err, service.ErrInvalidInput)
			})
		}
	})
}

func TestAccountService_Login(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	registerEmployer(t, svc, "jane@acme.com")

	t.Run("exact email and password match", func(t *testing.T) {
		user, err := svc.accounts.Login(ctx, "jane@acme.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "jane@acme.com", user.Email)
		assert.Equal(t, domain.RoleEmployer, user.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.accounts.Login(ctx, "jane@acme.com", "secret2")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("password comparison is case sensitive", func(t *testing.T) {
		_, err := svc.accounts.Login(ctx, "jane@acme.com", "SECRET1")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.accounts.Login(ctx, "nobody@acme.com", "secret1")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, err := svc.accounts.Login(ctx, "", "")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAccountService_CreateAdminIfNotExists(t *testing.T) {
	t.Run("creates the admin once", func(t *testing.T) {
		svc := setupServices(t)
		ctx := context.Background()

		admin, err := svc.accounts.CreateAdminIfNotExists(ctx, "Root", "root@portal.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, admin.Role)

		again, err := svc.accounts.CreateAdminIfNotExists(ctx, "Root", "root@portal.com", "different1")
		require.NoError(t, err)
		assert.Equal(t, admin.ID, again.ID, "second call returns the existing account")
		assert.Equal(t, "secret1", again.Password, "existing account is untouched")
	})

	t.Run("returns an existing account even if it is not an admin", func(t *testing.T) {
		svc := setupServices(t)

		employer := registerEmployer(t, svc, "jane@acme.com")
		found, err := svc.accounts.CreateAdminIfNotExists(context.Background(), "Root", "jane@acme.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, employer.ID, found.ID)
		assert.Equal(t, domain.RoleEmployer, found.Role, "an existing account is returned regardless of its role")
	})
}

func TestAccountService_UpdateProfile(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	employer := registerEmployer(t, svc, "jane@acme.com")

	employer.Name = "Jane Updated"
	employer.Password = "newpass1"
	employer.Company = "Globex"
	require.NoError(t, svc.accounts.UpdateProfile(ctx, employer))

	user, err := svc.accounts.Login(ctx, "jane@acme.com", "newpass1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Updated", user.Name)
	assert.Equal(t, "Globex", user.Company)
	assert.Equal(t, domain.RoleEmployer, user.Role)

	t.Run("validation still applies", func(t *testing.T) {
		employer.Email = "broken"
		err := svc.accounts.UpdateProfile(ctx, employer)
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})
}

func TestAccountService_DeleteUser(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	employer := registerEmployer(t, svc, "jane@acme.com")
	require.NoError(t, svc.accounts.DeleteUser(ctx, employer.ID))

	users, err := svc.accounts.Users(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}
