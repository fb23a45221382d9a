package repository

import (
	"context"
	"errors"

	"powar-data/internal/database"
)

// withConn runs fn on a freshly acquired connection and releases it on every
// path. Acquire errors surface as ErrConnectionFailure before fn runs; errors
// from fn surface as ErrQueryFailure.
func withConn(ctx context.Context, db database.DB, op string, fn func(conn database.Conn) error) error {
	if db == nil {
		return database.ConnectionFailure(op, errors.New("nil db"))
	}

	conn, err := db.Acquire(ctx)
	if err != nil {
		if errors.Is(err, database.ErrConnectionFailure) {
			return err
		}
		return database.ConnectionFailure(op, err)
	}
	defer conn.Release()

	if err := fn(conn); err != nil {
		return database.QueryFailure(op, err)
	}
	return nil
}
