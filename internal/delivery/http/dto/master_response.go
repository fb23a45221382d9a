package dto

import "powar-data/internal/domain/master"

type StateResponse struct {
	ID        int64  `json:"id"`
	StateName string `json:"state_name"`
}

type DistrictResponse struct {
	ID            int64  `json:"id"`
	MasterStateID int64  `json:"master_state_id"`
	DistName      string `json:"dist_name"`
}

type TahsilResponse struct {
	ID           int64  `json:"id"`
	MasterDistID int64  `json:"master_dist_id"`
	TahsilName   string `json:"tahsil_name"`
}

type ProfessionResponse struct {
	ID           int64  `json:"id"`
	EmployeeType string `json:"employee_type"`
}

type StateNodeResponse struct {
	ID        int64                  `json:"id"`
	StateName string                 `json:"state_name"`
	Districts []DistrictNodeResponse `json:"districts"`
}

type DistrictNodeResponse struct {
	ID       int64                `json:"id"`
	DistName string               `json:"dist_name"`
	Tahsils  []TahsilLeafResponse `json:"tahsils"`
}

type TahsilLeafResponse struct {
	ID         int64  `json:"id"`
	TahsilName string `json:"tahsil_name"`
}

func NewStates(items []master.State) []StateResponse {
	out := make([]StateResponse, 0, len(items))
	for _, it := range items {
		out = append(out, StateResponse{ID: it.ID, StateName: it.StateName})
	}
	return out
}

func NewDistricts(items []master.District) []DistrictResponse {
	out := make([]DistrictResponse, 0, len(items))
	for _, it := range items {
		out = append(out, DistrictResponse{ID: it.ID, MasterStateID: it.MasterStateID, DistName: it.DistName})
	}
	return out
}

func NewTahsils(items []master.Tahsil) []TahsilResponse {
	out := make([]TahsilResponse, 0, len(items))
	for _, it := range items {
		out = append(out, TahsilResponse{ID: it.ID, MasterDistID: it.MasterDistID, TahsilName: it.TahsilName})
	}
	return out
}

func NewProfessions(items []master.Profession) []ProfessionResponse {
	out := make([]ProfessionResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ProfessionResponse{ID: it.ID, EmployeeType: it.EmployeeType})
	}
	return out
}

func NewHierarchy(tree []master.StateNode) []StateNodeResponse {
	out := make([]StateNodeResponse, 0, len(tree))
	for _, st := range tree {
		districts := make([]DistrictNodeResponse, 0, len(st.Districts))
		for _, d := range st.Districts {
			tahsils := make([]TahsilLeafResponse, 0, len(d.Tahsils))
			for _, tl := range d.Tahsils {
				tahsils = append(tahsils, TahsilLeafResponse{ID: tl.ID, TahsilName: tl.TahsilName})
			}
			districts = append(districts, DistrictNodeResponse{ID: d.ID, DistName: d.DistName, Tahsils: tahsils})
		}
		out = append(out, StateNodeResponse{ID: st.ID, StateName: st.StateName, Districts: districts})
	}
	return out
}
