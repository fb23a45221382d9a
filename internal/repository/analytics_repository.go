package repository

import (
	"context"
	"fmt"

	"powar-data/internal/database"
	"powar-data/internal/domain/analytics"
)

var countQueries = map[analytics.Metric]string{
	analytics.TotalUsers:       `SELECT COUNT(*) AS count FROM Users`,
	analytics.TotalProfiles:    `SELECT COUNT(*) AS count FROM user_profile`,
	analytics.TotalStates:      `SELECT COUNT(*) AS count FROM master_state`,
	analytics.TotalDistricts:   `SELECT COUNT(*) AS count FROM master_dist`,
	analytics.TotalTahsils:     `SELECT COUNT(*) AS count FROM master_tahsil`,
	analytics.TotalProfessions: `SELECT COUNT(*) AS count FROM master_profession`,
}

// Profiles without a profession drop out of users_by_profession because of
// the inner join; the other metrics still count them.
var groupQueries = map[analytics.Metric]string{
	analytics.UsersByRole: `
		SELECT role, COUNT(*) AS count
		FROM Users
		GROUP BY role
		ORDER BY role`,
	analytics.UsersByGender: `
		SELECT up.gender, COUNT(*) AS count
		FROM user_profile up
		GROUP BY up.gender
		ORDER BY up.gender`,
	analytics.UsersByProfession: `
		SELECT p.employee_type, COUNT(*) AS count
		FROM user_profile up
		JOIN master_profession p ON up.profession_id = p.id
		GROUP BY p.employee_type
		ORDER BY p.employee_type`,
}

type SQLAnalyticsRepository struct {
	db database.DB
}

func NewSQLAnalyticsRepository(db database.DB) *SQLAnalyticsRepository {
	return &SQLAnalyticsRepository{db: db}
}

func (r *SQLAnalyticsRepository) Count(ctx context.Context, m analytics.Metric) (int64, error) {
	q, ok := countQueries[m]
	if !ok {
		return 0, fmt.Errorf("unknown count metric %q", m)
	}

	var n int64
	err := withConn(ctx, r.db, string(m), func(conn database.Conn) error {
		return conn.QueryRow(ctx, q).Scan(&n)
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *SQLAnalyticsRepository) GroupCount(ctx context.Context, m analytics.Metric) ([]analytics.GroupCount, error) {
	q, ok := groupQueries[m]
	if !ok {
		return nil, fmt.Errorf("unknown group metric %q", m)
	}

	out := make([]analytics.GroupCount, 0)
	err := withConn(ctx, r.db, string(m), func(conn database.Conn) error {
		rows, err := conn.Query(ctx, q)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var g analytics.GroupCount
			if err := rows.Scan(&g.Key, &g.Count); err != nil {
				return err
			}
			out = append(out, g)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
