package repository

import (
	"context"
	"testing"

	"powar-data/internal/domain/analytics"
)

func TestAnalyticsRepo_Counts(t *testing.T) {
	r := NewSQLAnalyticsRepository(newTestDB(t))
	ctx := context.Background()

	want := map[analytics.Metric]int64{
		analytics.TotalUsers:       3,
		analytics.TotalProfiles:    2,
		analytics.TotalStates:      2,
		analytics.TotalDistricts:   2,
		analytics.TotalTahsils:     2,
		analytics.TotalProfessions: 2,
	}
	for m, n := range want {
		got, err := r.Count(ctx, m)
		if err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		if got != n {
			t.Fatalf("%s: expected %d, got %d", m, n, got)
		}
	}
}

func TestAnalyticsRepo_GroupCounts(t *testing.T) {
	r := NewSQLAnalyticsRepository(newTestDB(t))
	ctx := context.Background()

	roles, err := r.GroupCount(ctx, analytics.UsersByRole)
	if err != nil {
		t.Fatalf("users_by_role: %v", err)
	}
	if len(roles) != 2 || *roles[0].Key != "admin" || roles[0].Count != 1 || *roles[1].Key != "user" || roles[1].Count != 2 {
		t.Fatalf("unexpected roles: %+v", roles)
	}

	genders, err := r.GroupCount(ctx, analytics.UsersByGender)
	if err != nil {
		t.Fatalf("users_by_gender: %v", err)
	}
	if len(genders) != 2 || *genders[0].Key != "female" || *genders[1].Key != "male" {
		t.Fatalf("unexpected genders: %+v", genders)
	}

	// Ravi's profile has no profession and is excluded here only.
	profs, err := r.GroupCount(ctx, analytics.UsersByProfession)
	if err != nil {
		t.Fatalf("users_by_profession: %v", err)
	}
	if len(profs) != 1 || *profs[0].Key != "Farmer" || profs[0].Count != 1 {
		t.Fatalf("unexpected professions: %+v", profs)
	}
}

func TestAnalyticsRepo_UnknownMetric(t *testing.T) {
	r := NewSQLAnalyticsRepository(newTestDB(t))

	if _, err := r.Count(context.Background(), analytics.UsersByRole); err == nil {
		t.Fatalf("expected error for grouped metric passed to Count")
	}
	if _, err := r.GroupCount(context.Background(), analytics.TotalUsers); err == nil {
		t.Fatalf("expected error for scalar metric passed to GroupCount")
	}
}
