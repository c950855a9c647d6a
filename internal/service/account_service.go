package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"jobboard/internal/domain"
	"jobboard/internal/repository"
)

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when registering with an email that already has an account.
	ErrEmailTaken = errors.New("user already exists with this email")
)

// emailPattern matches the permissive address shape accepted at registration.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)

// AccountService describes user lifecycle operations.
type AccountService interface {
	RegisterEmployer(ctx context.Context, name, email, password, company string) (*domain.User, error)
	RegisterJobSeeker(ctx context.Context, name, email, password, resume string) (*domain.User, error)
	// CreateAdminIfNotExists returns the user registered under email if one
	// exists (whatever its role), otherwise creates an admin account.
	CreateAdminIfNotExists(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	// UpdateProfile writes name, email, password, company and resume. The
	// account's role cannot be changed.
	UpdateProfile(ctx context.Context, user *domain.User) error
	UserByID(ctx context.Context, id int64) (*domain.User, error)
	Users(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type accountService struct {
	users  repository.UserRepository
	logger *logrus.Logger
}

func NewAccountService(users repository.UserRepository, logger *logrus.Logger) AccountService {
	return &accountService{users: users, logger: logger}
}

func (s *accountService) RegisterEmployer(ctx context.Context, name, email, password, company string) (*domain.User, error) {
	user := &domain.User{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: password,
		Role:     domain.RoleEmployer,
		Company:  strings.TrimSpace(company),
	}
	return s.register(ctx, user)
}

func (s *accountService) RegisterJobSeeker(ctx context.Context, name, email, password, resume string) (*domain.User, error) {
	user := &domain.User{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: password,
		Role:     domain.RoleJobSeeker,
		Resume:   strings.TrimSpace(resume),
	}
	return s.register(ctx, user)
}

func (s *accountService) CreateAdminIfNotExists(ctx context.Context, name, email, password string) (*domain.User, error) {
	found, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.logger.WithError(err).Warn("admin lookup failed")
		return nil, err
	}

	user := &domain.User{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: password,
		Role:     domain.RoleAdmin,
	}
	return s.register(ctx, user)
}

func (s *accountService) register(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := validateCredentials(user.Name, user.Email, user.Password); err != nil {
		return nil, err
	}

	// Pre-check so callers get a clean error; the unique constraint on the
	// email column remains the backstop against races.
	if _, err := s.users.GetByEmail(ctx, user.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.logger.WithError(err).Warn("email lookup failed")
		return nil, err
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		s.logger.WithError(err).WithField("email", user.Email).Error("register user failed")
		return nil, err
	}
	return user, nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.WithError(err).Warn("login lookup failed")
		return nil, err
	}

	// Passwords are stored and compared as plain text; login succeeds only
	// on an exact string match.
	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, user *domain.User) error {
	if user == nil || user.ID <= 0 {
		return invalidInput("user id is required")
	}
	if err := validateCredentials(user.Name, user.Email, user.Password); err != nil {
		return err
	}
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		s.logger.WithError(err).WithField("user_id", user.ID).Error("update profile failed")
		return err
	}
	return nil
}

func (s *accountService) UserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *accountService) Users(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("list users failed")
		return nil, err
	}
	return users, nil
}

func (s *accountService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		s.logger.WithError(err).WithField("user_id", id).Error("delete user failed")
		return err
	}
	return nil
}

func validateCredentials(name, email, password string) error {
	if name == "" {
		return invalidInput("name is required")
	}
	if email == "" {
		return invalidInput("email is required")
	}
	if !emailPattern.MatchString(email) {
		return invalidInput("invalid email format: %q", email)
	}
	if len(password) < 6 {
		return invalidInput("password must be at least 6 characters")
	}
	return nil
}
