package usecase

import (
	"context"
	"sync"

	"powar-data/internal/domain/analytics"
	"powar-data/internal/domain/master"
	"powar-data/internal/domain/user"
)

type mockMasterRepo struct {
	states    []master.State
	districts []master.District
	rows      []master.LocationRow
	err       error

	gotStateID int64
}

func (m *mockMasterRepo) ListStates(context.Context) ([]master.State, error) {
	return m.states, m.err
}
func (m *mockMasterRepo) ListDistrictsByState(_ context.Context, stateID int64) ([]master.District, error) {
	m.gotStateID = stateID
	return m.districts, m.err
}
func (m *mockMasterRepo) ListTahsilsByDistrict(context.Context, int64) ([]master.Tahsil, error) {
	return nil, m.err
}
func (m *mockMasterRepo) ListProfessions(context.Context) ([]master.Profession, error) {
	return nil, m.err
}
func (m *mockMasterRepo) ListLocationRows(context.Context) ([]master.LocationRow, error) {
	return m.rows, m.err
}

type mockUserRepo struct {
	byID map[int64]user.WithProfile
	err  error
}

func (m mockUserRepo) ListUsers(context.Context) ([]user.WithProfile, error) { return nil, m.err }
func (m mockUserRepo) ListByState(context.Context, int64) ([]user.Summary, error) {
	return nil, m.err
}
func (m mockUserRepo) GetByID(_ context.Context, id int64) (user.WithProfile, error) {
	if m.err != nil {
		return user.WithProfile{}, m.err
	}
	u, ok := m.byID[id]
	if !ok {
		return user.WithProfile{}, user.ErrNotFound
	}
	return u, nil
}

type mockAnalyticsRepo struct {
	mu     sync.Mutex
	counts map[analytics.Metric]int64
	groups map[analytics.Metric][]analytics.GroupCount
	failOn analytics.Metric
	err    error
	calls  []analytics.Metric
}

func (m *mockAnalyticsRepo) record(metric analytics.Metric) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, metric)
}

func (m *mockAnalyticsRepo) Count(_ context.Context, metric analytics.Metric) (int64, error) {
	m.record(metric)
	if metric == m.failOn {
		return 0, m.err
	}
	return m.counts[metric], nil
}

func (m *mockAnalyticsRepo) GroupCount(_ context.Context, metric analytics.Metric) ([]analytics.GroupCount, error) {
	m.record(metric)
	if metric == m.failOn {
		return nil, m.err
	}
	return m.groups[metric], nil
}
