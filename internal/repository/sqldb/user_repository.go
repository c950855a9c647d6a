package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"jobboard/internal/domain"
	"jobboard/internal/repository"
)

const createUsersTableSQLite = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	role TEXT NOT NULL,
	company TEXT,
	resume TEXT
);
`

const createUsersTableMySQL = `
CREATE TABLE IF NOT EXISTS users (
	id INT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL UNIQUE,
	password VARCHAR(255) NOT NULL,
	role VARCHAR(50) NOT NULL,
	company VARCHAR(255),
	resume TEXT
) ENGINE=InnoDB
`

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Init(ctx context.Context) error {
	ddl := createUsersTableSQLite
	if r.db.dialect == dialectMySQL {
		ddl = createUsersTableMySQL
	}
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO users (name, email, password, role, company, resume)
VALUES (?, ?, ?, ?, ?, ?)`,
		user.Name,
		user.Email,
		user.Password,
		string(user.Role),
		nullString(user.Company),
		nullString(user.Resume),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, repository.ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("user last insert id: %w", err)
	}
	user.ID = id
	return id, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, email, password, role, company, resume
FROM users
WHERE email = ?`,
		email,
	)
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, email, password, role, company, resume
FROM users
WHERE id = ?`,
		id,
	)
	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, email, password, role, company, resume
FROM users`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE users
SET name = ?, email = ?, password = ?, company = ?, resume = ?
WHERE id = ?`,
		user.Name,
		user.Email,
		user.Password,
		nullString(user.Company),
		nullString(user.Resume),
		user.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateEmail
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func scanUser(row interface {
	Scan(dest ...any) error
}) (*domain.User, error) {
	var (
		user    domain.User
		role    string
		company sql.NullString
		resume  sql.NullString
	)
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&role,
		&company,
		&resume,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	user.Role = domain.Role(role)
	user.Company = company.String
	user.Resume = resume.String
	return &user, nil
}

// nullString stores empty strings as NULL, keeping the optional columns
// nullable the way the schema declares them.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
