package repository

import (
	"context"

	"jobboard/internal/domain"
)

// JobRepository defines persistence operations for Job entities.
type JobRepository interface {
	Init(ctx context.Context) error
	// Create inserts the job; an EmployerID of zero is stored as NULL.
	Create(ctx context.Context, job *domain.Job) (int64, error)
	// List returns all jobs newest first, with the employer name joined in.
	// Jobs whose employer was deleted still appear, with an empty name.
	List(ctx context.Context) ([]domain.Job, error)
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	// Delete removes the job; the schema cascades into its applications.
	Delete(ctx context.Context, id int64) error
}
