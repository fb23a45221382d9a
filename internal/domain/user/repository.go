package user

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	ListUsers(ctx context.Context) ([]WithProfile, error)
	GetByID(ctx context.Context, id int64) (WithProfile, error)
	ListByState(ctx context.Context, stateID int64) ([]Summary, error)
}
