package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var DB *sql.DB

// Connect opens the Postgres pool through the pgx stdlib driver. An empty url
// falls back to DATABASE_URL.
func Connect(dbUrl string) (*sql.DB, error) {
	if dbUrl == "" {
		dbUrl = os.Getenv("DATABASE_URL")
	}
	if dbUrl == "" {
		return nil, fmt.Errorf("database url not configured (database.url or DATABASE_URL)")
	}

	db, err := sql.Open("pgx", dbUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = db
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS assets (
	seq               BIGSERIAL,
	id                TEXT PRIMARY KEY,
	resguardo         TEXT NOT NULL DEFAULT '',
	full_name         TEXT NOT NULL DEFAULT '',
	department        TEXT NOT NULL DEFAULT '',
	position_title    TEXT NOT NULL DEFAULT '',
	email             TEXT NOT NULL DEFAULT '',
	extension         TEXT NOT NULL DEFAULT '',
	location          TEXT NOT NULL DEFAULT '',
	device_type       TEXT NOT NULL DEFAULT '',
	brand             TEXT NOT NULL DEFAULT '',
	model             TEXT NOT NULL DEFAULT '',
	pc_name           TEXT NOT NULL DEFAULT '',
	serial_number     TEXT NOT NULL DEFAULT '',
	ip_address        TEXT NOT NULL DEFAULT '',
	ip_type           TEXT NOT NULL DEFAULT 'DHCP',
	status            TEXT NOT NULL DEFAULT '',
	price             DOUBLE PRECISION NOT NULL DEFAULT 0,
	purchase_date     TEXT NOT NULL DEFAULT '',
	last_mtto         TEXT NOT NULL DEFAULT '',
	next_mtto         TEXT NOT NULL DEFAULT '',
	warranty_end_date TEXT NOT NULL DEFAULT '',
	warranty          TEXT NOT NULL DEFAULT '',
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS assets_serial_number_key ON assets (serial_number) WHERE serial_number <> '';

CREATE TABLE IF NOT EXISTS catalog_entries (
	seq   BIGSERIAL,
	kind  TEXT NOT NULL,
	brand TEXT NOT NULL DEFAULT '',
	value TEXT NOT NULL,
	PRIMARY KEY (kind, brand, value)
);

CREATE TABLE IF NOT EXISTS users (
	id            SERIAL PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'user',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// Migrate creates the tables the Postgres repositories need.
func Migrate(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
