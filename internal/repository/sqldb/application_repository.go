package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"jobboard/internal/domain"
	"jobboard/internal/repository"
)

const createApplicationsTableSQLite = `
CREATE TABLE IF NOT EXISTS applications (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	job_id INTEGER,
	seeker_id INTEGER,
	status TEXT,
	FOREIGN KEY (job_id) REFERENCES jobs(id) ON DELETE CASCADE,
	FOREIGN KEY (seeker_id) REFERENCES users(id) ON DELETE CASCADE
);
`

const createApplicationsTableMySQL = `
CREATE TABLE IF NOT EXISTS applications (
	id INT AUTO_INCREMENT PRIMARY KEY,
	job_id INT,
	seeker_id INT,
	status VARCHAR(50),
	FOREIGN KEY (job_id) REFERENCES jobs(id) ON DELETE CASCADE,
	FOREIGN KEY (seeker_id) REFERENCES users(id) ON DELETE CASCADE
) ENGINE=InnoDB
`

type ApplicationRepository struct {
	db *DB
}

func NewApplicationRepository(db *DB) repository.ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Init(ctx context.Context) error {
	ddl := createApplicationsTableSQLite
	if r.db.dialect == dialectMySQL {
		ddl = createApplicationsTableMySQL
	}
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create applications table: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) Create(ctx context.Context, jobID, seekerID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO applications (job_id, seeker_id, status)
VALUES (?, ?, ?)`,
		jobID,
		seekerID,
		domain.StatusApplied,
	)
	if err != nil {
		return 0, fmt.Errorf("insert application: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("application last insert id: %w", err)
	}
	return id, nil
}

func (r *ApplicationRepository) ListForEmployer(ctx context.Context, employerID int64) ([]domain.Application, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT a.id, a.job_id, a.seeker_id, a.status
FROM applications a
JOIN jobs j ON a.job_id = j.id
WHERE j.employer_id = ?`,
		employerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list applications for employer: %w", err)
	}
	return collectApplications(rows)
}

func (r *ApplicationRepository) ListForSeeker(ctx context.Context, seekerID int64) ([]domain.Application, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, job_id, seeker_id, status
FROM applications
WHERE seeker_id = ?`,
		seekerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list applications for seeker: %w", err)
	}
	return collectApplications(rows)
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	if _, err := r.db.ExecContext(ctx, `
UPDATE applications SET status = ? WHERE id = ?`,
		status,
		id,
	); err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	return nil
}

func collectApplications(rows *sql.Rows) ([]domain.Application, error) {
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(&app.ID, &app.JobID, &app.SeekerID, &app.Status); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}
	return apps, nil
}
