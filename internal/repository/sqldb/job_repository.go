package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"jobboard/internal/domain"
	"jobboard/internal/repository"
)

const createJobsTableSQLite = `
CREATE TABLE IF NOT EXISTS jobs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT,
	location TEXT,
	salary REAL,
	employer_id INTEGER,
	FOREIGN KEY (employer_id) REFERENCES users(id) ON DELETE SET NULL
);
`

const createJobsTableMySQL = `
CREATE TABLE IF NOT EXISTS jobs (
	id INT AUTO_INCREMENT PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	description TEXT,
	location VARCHAR(255),
	salary DOUBLE,
	employer_id INT,
	FOREIGN KEY (employer_id) REFERENCES users(id) ON DELETE SET NULL
) ENGINE=InnoDB
`

const selectJobColumns = `
SELECT j.id, j.title, j.description, j.location, j.salary, j.employer_id, u.name AS employer_name
FROM jobs j
LEFT JOIN users u ON j.employer_id = u.id`

type JobRepository struct {
	db *DB
}

func NewJobRepository(db *DB) repository.JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Init(ctx context.Context) error {
	ddl := createJobsTableSQLite
	if r.db.dialect == dialectMySQL {
		ddl = createJobsTableMySQL
	}
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create jobs table: %w", err)
	}
	return nil
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (int64, error) {
	var employerID sql.NullInt64
	if job.EmployerID > 0 {
		employerID = sql.NullInt64{Int64: job.EmployerID, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO jobs (title, description, location, salary, employer_id)
VALUES (?, ?, ?, ?, ?)`,
		job.Title,
		job.Description,
		job.Location,
		job.Salary,
		employerID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert job: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("job last insert id: %w", err)
	}
	job.ID = id
	return id, nil
}

func (r *JobRepository) List(ctx context.Context) ([]domain.Job, error) {
	rows, err := r.db.QueryContext(ctx, selectJobColumns+`
ORDER BY j.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}
	return jobs, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	row := r.db.QueryRowContext(ctx, selectJobColumns+`
WHERE j.id = ?`,
		id,
	)
	return scanJob(row)
}

func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

func scanJob(row interface {
	Scan(dest ...any) error
}) (*domain.Job, error) {
	var (
		job          domain.Job
		description  sql.NullString
		location     sql.NullString
		salary       sql.NullFloat64
		employerID   sql.NullInt64
		employerName sql.NullString
	)
	if err := row.Scan(
		&job.ID,
		&job.Title,
		&description,
		&location,
		&salary,
		&employerID,
		&employerName,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan job: %w", err)
	}
	job.Description = description.String
	job.Location = location.String
	job.Salary = salary.Float64
	job.EmployerID = employerID.Int64
	job.EmployerName = employerName.String
	return &job, nil
}
