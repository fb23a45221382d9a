package usecase

import (
	"context"

	"powar-data/internal/domain/master"

	"go.uber.org/zap"
)

type MasterUsecase interface {
	ListStates(ctx context.Context) ([]master.State, error)
	ListDistricts(ctx context.Context, stateID int64) ([]master.District, error)
	ListTahsils(ctx context.Context, districtID int64) ([]master.Tahsil, error)
	ListProfessions(ctx context.Context) ([]master.Profession, error)
	LocationHierarchy(ctx context.Context) ([]master.StateNode, error)
}

type Master struct {
	repo master.Repository
	log  *zap.Logger
}

func NewMasterUsecase(repo master.Repository, logger *zap.Logger) *Master {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Master{repo: repo, log: logger}
}

func (u *Master) ListStates(ctx context.Context) ([]master.State, error) {
	items, err := u.repo.ListStates(ctx)
	if err != nil {
		u.log.Error("error fetching states", zap.Error(err))
		return nil, err
	}
	u.log.Info("fetched states", zap.Int("count", len(items)))
	return items, nil
}

func (u *Master) ListDistricts(ctx context.Context, stateID int64) ([]master.District, error) {
	items, err := u.repo.ListDistrictsByState(ctx, stateID)
	if err != nil {
		u.log.Error("error fetching districts", zap.Int64("state_id", stateID), zap.Error(err))
		return nil, err
	}
	u.log.Info("fetched districts", zap.Int64("state_id", stateID), zap.Int("count", len(items)))
	return items, nil
}

func (u *Master) ListTahsils(ctx context.Context, districtID int64) ([]master.Tahsil, error) {
	items, err := u.repo.ListTahsilsByDistrict(ctx, districtID)
	if err != nil {
		u.log.Error("error fetching tahsils", zap.Int64("district_id", districtID), zap.Error(err))
		return nil, err
	}
	u.log.Info("fetched tahsils", zap.Int64("district_id", districtID), zap.Int("count", len(items)))
	return items, nil
}

func (u *Master) ListProfessions(ctx context.Context) ([]master.Profession, error) {
	items, err := u.repo.ListProfessions(ctx)
	if err != nil {
		u.log.Error("error fetching professions", zap.Error(err))
		return nil, err
	}
	u.log.Info("fetched professions", zap.Int("count", len(items)))
	return items, nil
}

func (u *Master) LocationHierarchy(ctx context.Context) ([]master.StateNode, error) {
	rows, err := u.repo.ListLocationRows(ctx)
	if err != nil {
		u.log.Error("error fetching location hierarchy", zap.Error(err))
		return nil, err
	}
	tree := master.BuildHierarchy(rows)
	u.log.Info("fetched location hierarchy", zap.Int("rows", len(rows)), zap.Int("states", len(tree)))
	return tree, nil
}
