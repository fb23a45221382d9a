package master

type State struct {
	ID        int64
	StateName string
}

type District struct {
	ID            int64
	MasterStateID int64
	DistName      string
}

type Tahsil struct {
	ID           int64
	MasterDistID int64
	TahsilName   string
}

type Profession struct {
	ID           int64
	EmployeeType string
}

// LocationRow is one row of master_state LEFT JOIN master_dist LEFT JOIN
// master_tahsil. District and tahsil columns are nil when the join found no
// child row.
type LocationRow struct {
	StateID    int64
	StateName  string
	DistrictID *int64
	DistName   *string
	TahsilID   *int64
	TahsilName *string
}

type StateNode struct {
	ID        int64
	StateName string
	Districts []DistrictNode
}

type DistrictNode struct {
	ID       int64
	DistName string
	Tahsils  []TahsilLeaf
}

type TahsilLeaf struct {
	ID         int64
	TahsilName string
}
