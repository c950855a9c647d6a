package service

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"jobboard/internal/domain"
	"jobboard/internal/repository"
)

// JobFilter narrows a job listing. Zero values leave the dimension open.
type JobFilter struct {
	// Keyword matches against title and description, case insensitively.
	Keyword string
	// Location matches as a case-insensitive substring.
	Location string
	// MinSalary excludes jobs paying less.
	MinSalary float64
}

// JobService describes posting and browsing operations.
type JobService interface {
	Post(ctx context.Context, title, description, location string, salary float64, employer *domain.User) (*domain.Job, error)
	Jobs(ctx context.Context) ([]domain.Job, error)
	Filter(ctx context.Context, filter JobFilter) ([]domain.Job, error)
	JobByID(ctx context.Context, id int64) (*domain.Job, error)
	DeleteJob(ctx context.Context, id int64) error
}

type jobService struct {
	jobs   repository.JobRepository
	logger *logrus.Logger
}

func NewJobService(jobs repository.JobRepository, logger *logrus.Logger) JobService {
	return &jobService{jobs: jobs, logger: logger}
}

func (s *jobService) Post(ctx context.Context, title, description, location string, salary float64, employer *domain.User) (*domain.Job, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	location = strings.TrimSpace(location)

	if title == "" {
		return nil, invalidInput("job title is required")
	}
	if description == "" {
		return nil, invalidInput("job description is required")
	}
	if location == "" {
		return nil, invalidInput("job location is required")
	}
	if salary < 0 {
		return nil, invalidInput("salary must not be negative")
	}
	if employer == nil || employer.ID <= 0 {
		return nil, invalidInput("employer is required")
	}

	job := &domain.Job{
		Title:       title,
		Description: description,
		Location:    location,
		Salary:      salary,
		EmployerID:  employer.ID,
	}
	if _, err := s.jobs.Create(ctx, job); err != nil {
		s.logger.WithError(err).WithField("employer_id", employer.ID).Error("post job failed")
		return nil, err
	}
	job.EmployerName = employer.Name
	return job, nil
}

func (s *jobService) Jobs(ctx context.Context) ([]domain.Job, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("list jobs failed")
		return nil, err
	}
	return jobs, nil
}

// Filter narrows the full listing in memory; the result keeps the newest-first
// order of Jobs.
func (s *jobService) Filter(ctx context.Context, filter JobFilter) ([]domain.Job, error) {
	jobs, err := s.Jobs(ctx)
	if err != nil {
		return nil, err
	}

	keyword := strings.ToLower(strings.TrimSpace(filter.Keyword))
	location := strings.ToLower(strings.TrimSpace(filter.Location))

	var out []domain.Job
	for _, job := range jobs {
		if keyword != "" &&
			!strings.Contains(strings.ToLower(job.Title), keyword) &&
			!strings.Contains(strings.ToLower(job.Description), keyword) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(job.Location), location) {
			continue
		}
		if job.Salary < filter.MinSalary {
			continue
		}
		out = append(out, job)
	}
	return out, nil
}

func (s *jobService) JobByID(ctx context.Context, id int64) (*domain.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *jobService) DeleteJob(ctx context.Context, id int64) error {
	if err := s.jobs.Delete(ctx, id); err != nil {
		s.logger.WithError(err).WithField("job_id", id).Error("delete job failed")
		return err
	}
	return nil
}
