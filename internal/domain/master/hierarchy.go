package master

// BuildHierarchy folds location rows into a state -> district -> tahsil tree.
// States and districts keep the order in which they were first seen, so the
// tree mirrors the ORDER BY of the query that produced the rows. Districts and
// tahsils repeated across join rows are emitted once.
func BuildHierarchy(rows []LocationRow) []StateNode {
	type districtEntry struct {
		node       DistrictNode
		seenTahsil map[int64]struct{}
	}
	type stateEntry struct {
		id        int64
		name      string
		districts []*districtEntry
		byID      map[int64]*districtEntry
	}

	states := make([]*stateEntry, 0)
	byState := make(map[int64]*stateEntry)

	for _, r := range rows {
		st, ok := byState[r.StateID]
		if !ok {
			st = &stateEntry{id: r.StateID, name: r.StateName, byID: make(map[int64]*districtEntry)}
			byState[r.StateID] = st
			states = append(states, st)
		}

		if r.DistrictID == nil {
			continue
		}

		d, ok := st.byID[*r.DistrictID]
		if !ok {
			d = &districtEntry{
				node:       DistrictNode{ID: *r.DistrictID, DistName: deref(r.DistName), Tahsils: make([]TahsilLeaf, 0)},
				seenTahsil: make(map[int64]struct{}),
			}
			st.byID[*r.DistrictID] = d
			st.districts = append(st.districts, d)
		}

		if r.TahsilID == nil {
			continue
		}
		if _, dup := d.seenTahsil[*r.TahsilID]; dup {
			continue
		}
		d.seenTahsil[*r.TahsilID] = struct{}{}
		d.node.Tahsils = append(d.node.Tahsils, TahsilLeaf{ID: *r.TahsilID, TahsilName: deref(r.TahsilName)})
	}

	out := make([]StateNode, 0, len(states))
	for _, st := range states {
		node := StateNode{ID: st.id, StateName: st.name, Districts: make([]DistrictNode, 0, len(st.districts))}
		for _, d := range st.districts {
			node.Districts = append(node.Districts, d.node)
		}
		out = append(out, node)
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
