package repository

import (
	"context"

	"jobboard/internal/domain"
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// Update writes name, email, password, company and resume. Role is
	// immutable after creation and is never touched.
	Update(ctx context.Context, user *domain.User) error
	// Delete removes the user; the schema nulls the employer reference on
	// their jobs and removes their applications.
	Delete(ctx context.Context, id int64) error
}
