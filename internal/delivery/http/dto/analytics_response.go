package dto

import "powar-data/internal/domain/analytics"

// GroupCountResponse renders as {"<group key>": value, "count": n}, e.g.
// {"role": "admin", "count": 2}.
type GroupCountResponse map[string]any

type AnalyticsResponse struct {
	TotalUsers        int64                `json:"total_users"`
	TotalProfiles     int64                `json:"total_profiles"`
	TotalStates       int64                `json:"total_states"`
	TotalDistricts    int64                `json:"total_districts"`
	TotalTahsils      int64                `json:"total_tahsils"`
	TotalProfessions  int64                `json:"total_professions"`
	UsersByRole       []GroupCountResponse `json:"users_by_role"`
	UsersByGender     []GroupCountResponse `json:"users_by_gender"`
	UsersByProfession []GroupCountResponse `json:"users_by_profession"`
}

func NewAnalytics(s analytics.Summary) AnalyticsResponse {
	return AnalyticsResponse{
		TotalUsers:        s.TotalUsers,
		TotalProfiles:     s.TotalProfiles,
		TotalStates:       s.TotalStates,
		TotalDistricts:    s.TotalDistricts,
		TotalTahsils:      s.TotalTahsils,
		TotalProfessions:  s.TotalProfessions,
		UsersByRole:       newGroupCounts(analytics.UsersByRole, s.UsersByRole),
		UsersByGender:     newGroupCounts(analytics.UsersByGender, s.UsersByGender),
		UsersByProfession: newGroupCounts(analytics.UsersByProfession, s.UsersByProfession),
	}
}

func newGroupCounts(m analytics.Metric, items []analytics.GroupCount) []GroupCountResponse {
	key := m.GroupKey()
	out := make([]GroupCountResponse, 0, len(items))
	for _, it := range items {
		out = append(out, GroupCountResponse{key: it.Key, "count": it.Count})
	}
	return out
}
