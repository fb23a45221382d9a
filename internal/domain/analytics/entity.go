package analytics

import "context"

// Metric names the nine aggregates. The string values double as the JSON
// field names of the summary.
type Metric string

const (
	TotalUsers       Metric = "total_users"
	TotalProfiles    Metric = "total_profiles"
	TotalStates      Metric = "total_states"
	TotalDistricts   Metric = "total_districts"
	TotalTahsils     Metric = "total_tahsils"
	TotalProfessions Metric = "total_professions"

	UsersByRole       Metric = "users_by_role"
	UsersByGender     Metric = "users_by_gender"
	UsersByProfession Metric = "users_by_profession"
)

var (
	CountMetrics = []Metric{TotalUsers, TotalProfiles, TotalStates, TotalDistricts, TotalTahsils, TotalProfessions}
	GroupMetrics = []Metric{UsersByRole, UsersByGender, UsersByProfession}
)

// GroupKey is the column the grouped metric is keyed by.
func (m Metric) GroupKey() string {
	switch m {
	case UsersByRole:
		return "role"
	case UsersByGender:
		return "gender"
	case UsersByProfession:
		return "employee_type"
	default:
		return ""
	}
}

type GroupCount struct {
	Key   *string
	Count int64
}

type Summary struct {
	TotalUsers        int64
	TotalProfiles     int64
	TotalStates       int64
	TotalDistricts    int64
	TotalTahsils      int64
	TotalProfessions  int64
	UsersByRole       []GroupCount
	UsersByGender     []GroupCount
	UsersByProfession []GroupCount
}

type Repository interface {
	Count(ctx context.Context, m Metric) (int64, error)
	GroupCount(ctx context.Context, m Metric) ([]GroupCount, error)
}
