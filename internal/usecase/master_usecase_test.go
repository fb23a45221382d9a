package usecase

import (
	"context"
	"errors"
	"testing"

	"powar-data/internal/database"
	"powar-data/internal/domain/master"
)

func TestMasterUsecase_ListDistricts_PassesStateID(t *testing.T) {
	repo := &mockMasterRepo{districts: []master.District{{ID: 10, MasterStateID: 4, DistName: "Pune"}}}
	uc := NewMasterUsecase(repo, nil)

	items, err := uc.ListDistricts(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.gotStateID != 4 {
		t.Fatalf("expected state id 4, got %d", repo.gotStateID)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 district, got %d", len(items))
	}
}

func TestMasterUsecase_LocationHierarchy_Folds(t *testing.T) {
	d := int64(10)
	name := "Pune"
	repo := &mockMasterRepo{rows: []master.LocationRow{
		{StateID: 1, StateName: "Maharashtra", DistrictID: &d, DistName: &name},
		{StateID: 2, StateName: "Goa"},
	}}
	uc := NewMasterUsecase(repo, nil)

	tree, err := uc.LocationHierarchy(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(tree) != 2 {
		t.Fatalf("expected 2 states, got %d", len(tree))
	}
	if len(tree[0].Districts) != 1 || len(tree[0].Districts[0].Tahsils) != 0 {
		t.Fatalf("unexpected first state: %+v", tree[0])
	}
}

func TestMasterUsecase_PropagatesStoreErrors(t *testing.T) {
	cause := database.QueryFailure("list states", errors.New("boom"))
	uc := NewMasterUsecase(&mockMasterRepo{err: cause}, nil)

	if _, err := uc.ListStates(context.Background()); !errors.Is(err, database.ErrQueryFailure) {
		t.Fatalf("expected ErrQueryFailure, got %v", err)
	}
	if _, err := uc.LocationHierarchy(context.Background()); !errors.Is(err, database.ErrQueryFailure) {
		t.Fatalf("expected ErrQueryFailure, got %v", err)
	}
}
