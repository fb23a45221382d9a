package sqldb

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"powar-data/internal/config"
	"powar-data/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN(config.DatabaseConfig{
		DBHost:         "db.local",
		DBPort:         "3307",
		DBUser:         "root",
		DBPassword:     "secret",
		DBName:         "powar_db",
		ConnectTimeout: 2 * time.Second,
	})

	for _, want := range []string{"root:secret@tcp(db.local:3307)/powar_db", "parseTime=true", "timeout=2s"} {
		if !strings.Contains(dsn, want) {
			t.Fatalf("dsn %q does not contain %q", dsn, want)
		}
	}
}

func TestOpen_EmptyArgs(t *testing.T) {
	if _, err := Open("", "x", Options{}); err == nil {
		t.Fatalf("expected error for empty driver")
	}
	if _, err := Open("sqlite3", " ", Options{}); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
}

func TestAcquire_ClosedDBIsConnectionFailure(t *testing.T) {
	d, err := Open("sqlite3", ":memory:", Options{MaxOpenConns: 1})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_ = d.Close()

	_, err = d.Acquire(context.Background())
	if !errors.Is(err, database.ErrConnectionFailure) {
		t.Fatalf("expected ErrConnectionFailure, got %v", err)
	}
}

func TestQueryRow_NoRows(t *testing.T) {
	raw, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	d := New(raw, Options{})
	t.Cleanup(func() { _ = d.Close() })

	mock.ExpectQuery(`SELECT COUNT`).WillReturnRows(sqlmock.NewRows([]string{"count"}))

	conn, err := d.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer conn.Release()

	var n int64
	err = conn.QueryRow(context.Background(), `SELECT COUNT(*) FROM master_state`).Scan(&n)
	if !errors.Is(err, database.ErrNoRows) {
		t.Fatalf("expected ErrNoRows, got %v", err)
	}
}

func TestQuery_PassesArgsThrough(t *testing.T) {
	raw, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	d := New(raw, Options{QueryTimeout: time.Second})
	t.Cleanup(func() { _ = d.Close() })

	mock.ExpectQuery(`FROM master_dist`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(70)))

	conn, err := d.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer conn.Release()

	rows, err := conn.Query(context.Background(), `SELECT id FROM master_dist WHERE master_state_id = ?`, int64(7))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			t.Fatalf("scan: %v", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(ids) != 1 || ids[0] != 70 {
		t.Fatalf("unexpected ids: %v", ids)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
