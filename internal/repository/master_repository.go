package repository

import (
	"context"

	"powar-data/internal/database"
	"powar-data/internal/domain/master"
)

const (
	qListStates = `SELECT id, state_name FROM master_state ORDER BY state_name`

	qListDistrictsByState = `
		SELECT id, master_state_id, dist_name
		FROM master_dist
		WHERE master_state_id = ?
		ORDER BY dist_name`

	qListTahsilsByDistrict = `
		SELECT id, master_dist_id, tahsil_name
		FROM master_tahsil
		WHERE master_dist_id = ?
		ORDER BY tahsil_name`

	qListProfessions = `SELECT id, employee_type FROM master_profession ORDER BY employee_type`

	qListLocationRows = `
		SELECT
			s.id AS state_id,
			s.state_name,
			d.id AS district_id,
			d.dist_name,
			t.id AS tahsil_id,
			t.tahsil_name
		FROM master_state s
		LEFT JOIN master_dist d ON s.id = d.master_state_id
		LEFT JOIN master_tahsil t ON d.id = t.master_dist_id
		ORDER BY s.state_name, d.dist_name, t.tahsil_name`
)

type SQLMasterRepository struct {
	db database.DB
}

func NewSQLMasterRepository(db database.DB) *SQLMasterRepository {
	return &SQLMasterRepository{db: db}
}

func (r *SQLMasterRepository) ListStates(ctx context.Context) ([]master.State, error) {
	out := make([]master.State, 0)
	err := withConn(ctx, r.db, "list states", func(conn database.Conn) error {
		rows, err := conn.Query(ctx, qListStates)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var s master.State
			if err := rows.Scan(&s.ID, &s.StateName); err != nil {
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

func (r *SQLMasterRepository) ListDistrictsByState(ctx context.Context, stateID int64) ([]master.District, error) {
	out := make([]master.District, 0)
	err := withConn(ctx, r.db, "list districts", func(conn database.Conn) error {
		rows, err := conn.Query(ctx, qListDistrictsByState, stateID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var d master.District
			if err := rows.Scan(&d.ID, &d.MasterStateID, &d.DistName); err != nil {
				return err
			}
			out = append(out, d)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLMasterRepository) ListTahsilsByDistrict(ctx context.Context, districtID int64) ([]master.Tahsil, error) {
	out := make([]master.Tahsil, 0)
	err := withConn(ctx, r.db, "list tahsils", func(conn database.Conn) error {
		rows, err := conn.Query(ctx, qListTahsilsByDistrict, districtID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var t master.Tahsil
			if err := rows.Scan(&t.ID, &t.MasterDistID, &t.TahsilName); err != nil {
				return err
			}
			out = append(out, t)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLMasterRepository) ListProfessions(ctx context.Context) ([]master.Profession, error) {
	out := make([]master.Profession, 0)
	err := withConn(ctx, r.db, "list professions", func(conn database.Conn) error {
		rows, err := conn.Query(ctx, qListProfessions)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var p master.Profession
			if err := rows.Scan(&p.ID, &p.EmployeeType); err != nil {
				return err
			}
			out = append(out, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLMasterRepository) ListLocationRows(ctx context.Context) ([]master.LocationRow, error) {
	out := make([]master.LocationRow, 0)
	err := withConn(ctx, r.db, "list location hierarchy", func(conn database.Conn) error {
		rows, err := conn.Query(ctx, qListLocationRows)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var lr master.LocationRow
			if err := rows.Scan(&lr.StateID, &lr.StateName, &lr.DistrictID, &lr.DistName, &lr.TahsilID, &lr.TahsilName); err != nil {
				return err
			}
			out = append(out, lr)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
