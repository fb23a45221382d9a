package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"powar-data/internal/database"
	"powar-data/internal/database/sqldb"

	_ "github.com/mattn/go-sqlite3"
)

const testSchema = `
CREATE TABLE master_state (
	id         INTEGER PRIMARY KEY,
	state_name TEXT NOT NULL
);
CREATE TABLE master_dist (
	id              INTEGER PRIMARY KEY,
	master_state_id INTEGER NOT NULL REFERENCES master_state(id),
	dist_name       TEXT NOT NULL
);
CREATE TABLE master_tahsil (
	id             INTEGER PRIMARY KEY,
	master_dist_id INTEGER NOT NULL REFERENCES master_dist(id),
	tahsil_name    TEXT NOT NULL
);
CREATE TABLE master_profession (
	id            INTEGER PRIMARY KEY,
	employee_type TEXT NOT NULL
);
CREATE TABLE Users (
	id         INTEGER PRIMARY KEY,
	email_id   TEXT NOT NULL,
	mobile_no  TEXT NOT NULL,
	role       TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE TABLE user_profile (
	id                   INTEGER PRIMARY KEY,
	user_id              INTEGER NOT NULL UNIQUE REFERENCES Users(id),
	first_name           TEXT NOT NULL,
	middle_name          TEXT,
	last_name            TEXT NOT NULL,
	dob                  DATE,
	profile_url          TEXT,
	gender               TEXT NOT NULL,
	state_id             INTEGER REFERENCES master_state(id),
	district_id          INTEGER REFERENCES master_dist(id),
	tahsil_id            INTEGER REFERENCES master_tahsil(id),
	address_line         TEXT,
	about                TEXT,
	profession_id        INTEGER REFERENCES master_profession(id),
	business_description TEXT,
	created_at           DATETIME NOT NULL,
	updated_at           DATETIME NOT NULL
);
`

// Two states (Goa has no districts), Pune has two tahsils, Nashik none.
// Three users: Asha (full profile in Pune), Ravi (profile without
// profession/location), Meera (no profile at all).
const testSeed = `
INSERT INTO master_state (id, state_name) VALUES (1, 'Maharashtra'), (2, 'Goa');
INSERT INTO master_dist (id, master_state_id, dist_name) VALUES (10, 1, 'Pune'), (11, 1, 'Nashik');
INSERT INTO master_tahsil (id, master_dist_id, tahsil_name) VALUES (100, 10, 'Mulshi'), (101, 10, 'Haveli');
INSERT INTO master_profession (id, employee_type) VALUES (1, 'Farmer'), (2, 'Business');

INSERT INTO Users (id, email_id, mobile_no, role, created_at, updated_at) VALUES
	(1, 'asha@example.com', '9000000001', 'user', '2024-01-01 10:00:00', '2024-01-01 10:00:00'),
	(2, 'ravi@example.com', '9000000002', 'admin', '2024-02-01 10:00:00', '2024-02-01 10:00:00'),
	(3, 'meera@example.com', '9000000003', 'user', '2024-03-01 10:00:00', '2024-03-01 10:00:00');

INSERT INTO user_profile (id, user_id, first_name, middle_name, last_name, dob, gender, state_id, district_id, tahsil_id, profession_id, created_at, updated_at) VALUES
	(1, 1, 'Asha', 'R', 'Powar', '1990-05-01', 'female', 1, 10, 101, 1, '2024-01-01 10:00:00', '2024-01-01 10:00:00');
INSERT INTO user_profile (id, user_id, first_name, last_name, gender, created_at, updated_at) VALUES
	(2, 2, 'Ravi', 'Powar', 'male', '2024-02-01 10:00:00', '2024-02-01 10:00:00');
`

func newTestDB(t *testing.T) database.DB {
	t.Helper()
	db, _ := newTestDBWithRaw(t)
	return db
}

// newTestDBWithRaw also returns the underlying *sql.DB. Both share a single
// connection, so a connection that is never released blocks every later call.
func newTestDBWithRaw(t *testing.T) (database.DB, *sql.DB) {
	t.Helper()

	raw, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	raw.SetMaxOpenConns(1)

	ctx := context.Background()
	if _, err := raw.ExecContext(ctx, testSchema); err != nil {
		t.Fatalf("schema: %v", err)
	}
	if _, err := raw.ExecContext(ctx, testSeed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	db := sqldb.New(raw, sqldb.Options{MaxOpenConns: 1})
	t.Cleanup(func() { _ = db.Close() })
	return db, raw
}

type failingDB struct{}

func (failingDB) Ping(context.Context) error { return errors.New("down") }
func (failingDB) Close() error               { return nil }
func (failingDB) Acquire(context.Context) (database.Conn, error) {
	return nil, errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")
}
