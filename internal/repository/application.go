package repository

import (
	"context"

	"jobboard/internal/domain"
)

// ApplicationRepository defines persistence operations for Application rows.
type ApplicationRepository interface {
	Init(ctx context.Context) error
	// Create inserts an application with status APPLIED regardless of any
	// status set on the value. Duplicate (job, seeker) pairs are allowed.
	Create(ctx context.Context, jobID, seekerID int64) (int64, error)
	// ListForEmployer returns applications to any job posted by the employer.
	ListForEmployer(ctx context.Context, employerID int64) ([]domain.Application, error)
	ListForSeeker(ctx context.Context, seekerID int64) ([]domain.Application, error)
	// UpdateStatus persists the given status verbatim; no whitelist and no
	// ownership check are applied.
	UpdateStatus(ctx context.Context, id int64, status string) error
}
