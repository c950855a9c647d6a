package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"jobboard/internal/domain"
	"jobboard/internal/repository"
)

// ErrJobNotFound is returned when applying to a job id that does not exist.
var ErrJobNotFound = errors.New("job not found")

// ApplicationService describes the application workflow. Status updates are
// deliberately permissive: any caller holding an application id may set any
// status string.
type ApplicationService interface {
	// Apply records the seeker's interest in the job. Applying twice to the
	// same job creates a second application.
	Apply(ctx context.Context, jobID int64, seeker *domain.User) (int64, error)
	ForEmployer(ctx context.Context, employerID int64) ([]domain.Application, error)
	ForSeeker(ctx context.Context, seekerID int64) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type applicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	logger       *logrus.Logger
}

func NewApplicationService(applications repository.ApplicationRepository, jobs repository.JobRepository, logger *logrus.Logger) ApplicationService {
	return &applicationService{applications: applications, jobs: jobs, logger: logger}
}

func (s *applicationService) Apply(ctx context.Context, jobID int64, seeker *domain.User) (int64, error) {
	if seeker == nil || seeker.ID <= 0 {
		return 0, invalidInput("seeker is required")
	}

	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrJobNotFound
		}
		s.logger.WithError(err).WithField("job_id", jobID).Error("job lookup failed")
		return 0, err
	}

	id, err := s.applications.Create(ctx, jobID, seeker.ID)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"job_id":    jobID,
			"seeker_id": seeker.ID,
		}).Error("apply to job failed")
		return 0, err
	}
	return id, nil
}

func (s *applicationService) ForEmployer(ctx context.Context, employerID int64) ([]domain.Application, error) {
	apps, err := s.applications.ListForEmployer(ctx, employerID)
	if err != nil {
		s.logger.WithError(err).WithField("employer_id", employerID).Error("list employer applications failed")
		return nil, err
	}
	return apps, nil
}

func (s *applicationService) ForSeeker(ctx context.Context, seekerID int64) ([]domain.Application, error) {
	apps, err := s.applications.ListForSeeker(ctx, seekerID)
	if err != nil {
		s.logger.WithError(err).WithField("seeker_id", seekerID).Error("list seeker applications failed")
		return nil, err
	}
	return apps, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, id int64, status string) error {
	if status == "" {
		return invalidInput("status is required")
	}
	if err := s.applications.UpdateStatus(ctx, id, status); err != nil {
		s.logger.WithError(err).WithField("application_id", id).Error("update application status failed")
		return err
	}
	return nil
}
