package database

import (
	"context"
)

// DB is a pooled handle to the relational store. Callers acquire one Conn per
// logical operation and must release it on every exit path.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Acquire(ctx context.Context) (Conn, error)
}

// Conn is a single connection checked out of the pool. Queries are written
// with '?' placeholders; adapters rebind them for their dialect.
type Conn interface {
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Release()
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
