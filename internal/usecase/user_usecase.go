package usecase

import (
	"context"
	"errors"

	"powar-data/internal/domain/user"

	"go.uber.org/zap"
)

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]user.WithProfile, error)
	GetUser(ctx context.Context, userID int64) (user.WithProfile, error)
	ListUsersByState(ctx context.Context, stateID int64) ([]user.Summary, error)
}

type User struct {
	repo user.Repository
	log  *zap.Logger
}

func NewUserUsecase(repo user.Repository, logger *zap.Logger) *User {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &User{repo: repo, log: logger}
}

func (u *User) ListUsers(ctx context.Context) ([]user.WithProfile, error) {
	items, err := u.repo.ListUsers(ctx)
	if err != nil {
		u.log.Error("error fetching users", zap.Error(err))
		return nil, err
	}
	u.log.Info("fetched users", zap.Int("count", len(items)))
	return items, nil
}

func (u *User) GetUser(ctx context.Context, userID int64) (user.WithProfile, error) {
	item, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			u.log.Info("user not found", zap.Int64("user_id", userID))
			return user.WithProfile{}, err
		}
		u.log.Error("error fetching user details", zap.Int64("user_id", userID), zap.Error(err))
		return user.WithProfile{}, err
	}
	u.log.Info("fetched user details", zap.Int64("user_id", userID))
	return item, nil
}

func (u *User) ListUsersByState(ctx context.Context, stateID int64) ([]user.Summary, error) {
	items, err := u.repo.ListByState(ctx, stateID)
	if err != nil {
		u.log.Error("error fetching users by state", zap.Int64("state_id", stateID), zap.Error(err))
		return nil, err
	}
	u.log.Info("fetched users by state", zap.Int64("state_id", stateID), zap.Int("count", len(items)))
	return items, nil
}
