package sqldb

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

type dialect int

const (
	dialectSQLite dialect = iota
	dialectMySQL
)

// DB is a sql.DB handle tagged with the dialect it was opened with, so
// repositories can pick the matching DDL on Init.
type DB struct {
	*sql.DB
	dialect dialect
}

// OpenSQLite opens (or creates) a sqlite database at the given path and
// ensures directories exist.
func OpenSQLite(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	// foreign_keys is a per-connection pragma; setting it in the DSN makes
	// every pooled connection enforce the SET NULL / CASCADE rules.
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// reasonable defaults for sqlite with concurrent readers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &DB{DB: db, dialect: dialectSQLite}, nil
}

// OpenMySQL opens a connection to the given MySQL server and database.
func OpenMySQL(host string, port int, user, password, name string) (*DB, error) {
	cfg := mysql.NewConfig()
	cfg.User = user
	cfg.Passwd = password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", host, port)
	cfg.DBName = name
	cfg.ParseTime = true

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping mysql db: %w", err)
	}

	return &DB{DB: db, dialect: dialectMySQL}, nil
}

// isUniqueViolation reports whether err came from a unique constraint.
func isUniqueViolation(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique")
}
