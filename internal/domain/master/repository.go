package master

import "context"

type Repository interface {
	ListStates(ctx context.Context) ([]State, error)
	ListDistrictsByState(ctx context.Context, stateID int64) ([]District, error)
	ListTahsilsByDistrict(ctx context.Context, districtID int64) ([]Tahsil, error)
	ListProfessions(ctx context.Context) ([]Profession, error)
	ListLocationRows(ctx context.Context) ([]LocationRow, error)
}
