package db

import (
	"database/sql"
	"fmt"
	"time"

	"taskflow/internal/config"
	"taskflow/internal/repository/dialect"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// pool settings for the networked drivers
const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxIdleTime = 5 * time.Minute
)

// Open connects to the configured database, applies pragmas/pool settings and
// ensures the schema exists.
func Open(cfg config.DBConfig) (*sql.DB, dialect.Dialect, error) {
	d := dialect.Dialect(cfg.Driver)
	switch d {
	case dialect.SQLite:
		db, err := openSQLite(cfg.SQLiteDSN())
		return db, d, err
	case dialect.Postgres:
		db, err := openPooled(string(d), cfg.DSN, d)
		return db, d, err
	case dialect.MySQL:
		dsn, err := mysqlDSN(cfg.DSN)
		if err != nil {
			return nil, d, err
		}
		db, err := openPooled(string(d), dsn, d)
		return db, d, err
	}
	return nil, d, fmt.Errorf("unsupported driver %q", cfg.Driver)
}

// openSQLite opens/creates a SQLite DB file and ensures tables exist.
func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open(string(dialect.SQLite), path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// SQLite is not great with many writers; a single connection also keeps
	// the per-connection pragmas below in force.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := finishOpen(db, dialect.SQLite); err != nil {
		return nil, err
	}
	return db, nil
}

func openPooled(driver, dsn string, d dialect.Dialect) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	if err := finishOpen(db, d); err != nil {
		return nil, err
	}
	return db, nil
}

// finishOpen pings and applies the schema, closing db on failure.
func finishOpen(db *sql.DB, d dialect.Dialect) error {
	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("ping %s: %w", d, err)
	}
	if err := ensureSchema(db, d); err != nil {
		_ = db.Close()
		return err
	}
	return nil
}

// mysqlDSN forces parseTime so DATETIME columns scan into time.Time.
func mysqlDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}
