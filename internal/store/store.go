package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/mira-care/mira-agent/internal/config"
)

// DB wraps the SQL connection with transcript and crisis-log operations.
// Both backends share one schema; statements use $N placeholders, which
// postgres and sqlite both accept.
type DB struct {
	conn *sql.DB
}

// FromConfig opens the audit store selected by configuration.
// An empty driver returns (nil, nil): storage is an optional
// collaborator and the audit layer no-ops without it.
func FromConfig(cfg config.StorageConfig) (*DB, error) {
	switch cfg.Driver {
	case "":
		return nil, nil
	case "sqlite":
		return OpenSQLite(cfg.Path)
	case "postgres":
		return OpenPostgres(cfg.DSN)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It enables WAL mode, foreign keys, and runs migrations.
func OpenSQLite(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// OpenPostgres connects to a Postgres database and runs migrations.
func OpenPostgres(dsn string) (*DB, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates or updates the database schema
func (db *DB) migrate() error {
	schema := `
-- Chat transcript: one row per message, user and agent alike
CREATE TABLE IF NOT EXISTS chat_history (
    id          TEXT PRIMARY KEY,
    user_id     TEXT NOT NULL,
    sender      TEXT NOT NULL,
    message     TEXT NOT NULL,
    created_at  TIMESTAMP NOT NULL
);

-- Crisis determinations: one row per escalation-eligible turn
CREATE TABLE IF NOT EXISTS crisis_logs (
    id              TEXT PRIMARY KEY,
    user_id         TEXT NOT NULL,
    message         TEXT NOT NULL,
    model_response  TEXT NOT NULL,
    severity        TEXT NOT NULL,
    sms_sent        BOOLEAN NOT NULL,
    call_initiated  BOOLEAN NOT NULL,
    contact_name    TEXT,
    contact_number  TEXT,
    action_taken    TEXT NOT NULL,
    detected_at     TIMESTAMP NOT NULL,
    meta            TEXT
);

-- Pre-registered emergency contacts, managed outside this service
CREATE TABLE IF NOT EXISTS emergency_contacts (
    id              TEXT PRIMARY KEY,
    user_id         TEXT NOT NULL,
    name            TEXT NOT NULL,
    phone_number    TEXT NOT NULL,
    is_primary      BOOLEAN NOT NULL DEFAULT FALSE,
    opted_in        BOOLEAN NOT NULL DEFAULT FALSE,
    allow_auto_call BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_chat_history_user ON chat_history(user_id, created_at);
CREATE INDEX IF NOT EXISTS idx_crisis_logs_user ON crisis_logs(user_id, detected_at);
CREATE INDEX IF NOT EXISTS idx_contacts_user ON emergency_contacts(user_id);
`
	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
