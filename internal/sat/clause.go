package sat

// ClauseID is a stable handle into the clause store. Reasons and watcher
// entries hold a ClauseID rather than a pointer so that the store is free to
// relocate or compact clause bodies without invalidating trail entries (spec
// design note: "reason as antecedent pointer ... stored as a stable clause
// identifier").
type ClauseID int32

// NoClause is the sentinel reason for a decision literal or a level-0 unit
// fact with no antecedent clause.
const NoClause ClauseID = -1

// Origin distinguishes clauses present in the original formula from clauses
// derived by conflict analysis.
type Origin uint8

const (
	Original Origin = iota
	Learned
)

type clauseRecord struct {
	literals []Literal
	origin   Origin
	activity float64
	deleted  bool
}

// clauseStore owns every clause body for one solver instance and hands out
// stable identifiers on Add. Deletion is soft: a deleted clause's record is
// never removed, so a ClauseID always stays valid for the lifetime of the
// solver even after the clause it names stops being watched.
type clauseStore struct {
	records []clauseRecord
}

// Add appends a clause and, for clauses of length >= 2, returns the id the
// caller must file two watchers under (literals[0] and literals[1]). Callers
// are expected to have already resolved unit clauses and tautologies before
// calling Add; this store does not special-case length-0/1 clauses.
func (cs *clauseStore) Add(literals []Literal, origin Origin) ClauseID {
	id := ClauseID(len(cs.records))
	rec := clauseRecord{
		literals: append([]Literal(nil), literals...),
		origin:   origin,
	}
	cs.records = append(cs.records, rec)
	return id
}

func (cs *clauseStore) Lits(id ClauseID) []Literal {
	return cs.records[id].literals
}

func (cs *clauseStore) SetLits(id ClauseID, lits []Literal) {
	cs.records[id].literals = lits
}

func (cs *clauseStore) Origin(id ClauseID) Origin {
	return cs.records[id].origin
}

func (cs *clauseStore) Deleted(id ClauseID) bool {
	return cs.records[id].deleted
}

func (cs *clauseStore) MarkDeleted(id ClauseID) {
	cs.records[id].deleted = true
}

func (cs *clauseStore) Activity(id ClauseID) float64 {
	return cs.records[id].activity
}

func (cs *clauseStore) SetActivity(id ClauseID, a float64) {
	cs.records[id].activity = a
}

func (cs *clauseStore) BumpActivity(id ClauseID, delta float64) {
	cs.records[id].activity += delta
}

func (cs *clauseStore) RescaleActivities(factor float64) {
	for i := range cs.records {
		cs.records[i].activity *= factor
	}
}

// Len returns the number of clause slots ever allocated, including soft-
// deleted ones; it is an upper bound on valid ClauseIDs, not a live count.
func (cs *clauseStore) Len() int {
	return len(cs.records)
}
