package repository

import (
	"context"
	"errors"

	"powar-data/internal/database"
	"powar-data/internal/domain/user"
)

const userWithProfileSelect = `
		SELECT
			u.id,
			u.email_id,
			u.mobile_no,
			u.role,
			u.created_at,
			u.updated_at,
			up.first_name,
			up.middle_name,
			up.last_name,
			up.dob,
			up.profile_url,
			up.gender,
			up.state_id,
			up.district_id,
			up.tahsil_id,
			up.address_line,
			up.about,
			up.profession_id,
			up.business_description,
			s.state_name,
			d.dist_name,
			t.tahsil_name,
			p.employee_type AS profession_type
		FROM Users u
		LEFT JOIN user_profile up ON u.id = up.user_id
		LEFT JOIN master_state s ON up.state_id = s.id
		LEFT JOIN master_dist d ON up.district_id = d.id
		LEFT JOIN master_tahsil t ON up.tahsil_id = t.id
		LEFT JOIN master_profession p ON up.profession_id = p.id`

const (
	qListUsers = userWithProfileSelect + `
		ORDER BY u.created_at DESC`

	qGetUserByID = userWithProfileSelect + `
		WHERE u.id = ?`

	qListUsersByState = `
		SELECT
			u.id,
			u.email_id,
			u.mobile_no,
			u.role,
			u.created_at,
			up.first_name,
			up.middle_name,
			up.last_name,
			up.profile_url,
			up.gender,
			s.state_name,
			d.dist_name,
			t.tahsil_name
		FROM Users u
		LEFT JOIN user_profile up ON u.id = up.user_id
		LEFT JOIN master_state s ON up.state_id = s.id
		LEFT JOIN master_dist d ON up.district_id = d.id
		LEFT JOIN master_tahsil t ON up.tahsil_id = t.id
		WHERE up.state_id = ?
		ORDER BY u.created_at DESC`
)

type SQLUserRepository struct {
	db database.DB
}

func NewSQLUserRepository(db database.DB) *SQLUserRepository {
	return &SQLUserRepository{db: db}
}

func (r *SQLUserRepository) ListUsers(ctx context.Context) ([]user.WithProfile, error) {
	out := make([]user.WithProfile, 0)
	err := withConn(ctx, r.db, "list users", func(conn database.Conn) error {
		rows, err := conn.Query(ctx, qListUsers)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			u, err := scanUserWithProfile(rows)
			if err != nil {
				return err
			}
			out = append(out, u)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLUserRepository) GetByID(ctx context.Context, id int64) (user.WithProfile, error) {
	var (
		out   user.WithProfile
		found bool
	)
	// user_id is unique on user_profile, so the join yields at most one row.
	err := withConn(ctx, r.db, "get user", func(conn database.Conn) error {
		var err error
		out, err = scanUserWithProfile(conn.QueryRow(ctx, qGetUserByID, id))
		if errors.Is(err, database.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return user.WithProfile{}, err
	}
	if !found {
		return user.WithProfile{}, user.ErrNotFound
	}
	return out, nil
}

func (r *SQLUserRepository) ListByState(ctx context.Context, stateID int64) ([]user.Summary, error) {
	out := make([]user.Summary, 0)
	err := withConn(ctx, r.db, "list users by state", func(conn database.Conn) error {
		rows, err := conn.Query(ctx, qListUsersByState, stateID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var s user.Summary
			if err := rows.Scan(
				&s.ID, &s.EmailID, &s.MobileNo, &s.Role, &s.CreatedAt,
				&s.FirstName, &s.MiddleName, &s.LastName, &s.ProfileURL, &s.Gender,
				&s.StateName, &s.DistName, &s.TahsilName,
			); err != nil {
				return err
			}
			out = append(out, s)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func scanUserWithProfile(row database.Row) (user.WithProfile, error) {
	var u user.WithProfile
	err := row.Scan(
		&u.ID, &u.EmailID, &u.MobileNo, &u.Role, &u.CreatedAt, &u.UpdatedAt,
		&u.FirstName, &u.MiddleName, &u.LastName, &u.DOB, &u.ProfileURL, &u.Gender,
		&u.StateID, &u.DistrictID, &u.TahsilID,
		&u.AddressLine, &u.About, &u.ProfessionID, &u.BusinessDescription,
		&u.StateName, &u.DistName, &u.TahsilName, &u.ProfessionType,
	)
	return u, err
}
