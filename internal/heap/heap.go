// Package heap provides the activity-ordered variable heap used by VSIDS
// branching (spec §4.3): a binary max-heap over variable ids keyed by
// activity, with an auxiliary position array giving O(log N) update and
// membership test. It is a thin domain wrapper over github.com/rhartert/yagh,
// whose IntMap already maintains exactly that position array internally.
package heap

import "github.com/rhartert/yagh"

// VSIDS is a max-heap over variable ids ordered by a caller-supplied
// activity score.
type VSIDS struct {
	// yagh orders by ascending key, so every score is stored negated to
	// turn the min-heap into the max-heap spec §3/§4.3 calls for.
	m *yagh.IntMap[float64]
}

// New returns an empty VSIDS heap sized for n variables.
func New(n int) *VSIDS {
	return &VSIDS{m: yagh.New[float64](n)}
}

// Grow reserves room for one more variable, to be inserted separately.
func (h *VSIDS) Grow() {
	h.m.GrowBy(1)
}

// Insert adds variable v to the heap with the given activity, or updates its
// activity if v is already present.
func (h *VSIDS) Insert(v int, activity float64) {
	h.m.Put(v, -activity)
}

// Update refreshes v's key in the heap; it is a no-op if v is not present
// (the spec's VSIDS heap tolerates updating the activity of a variable that
// is currently assigned and therefore absent from the heap).
func (h *VSIDS) Update(v int, activity float64) {
	if h.m.Contains(v) {
		h.m.Put(v, -activity)
	}
}

// Contains reports whether v is currently a heap member.
func (h *VSIDS) Contains(v int) bool {
	return h.m.Contains(v)
}

// RemoveMax pops and returns the variable with the largest activity. ok is
// false if the heap is empty.
func (h *VSIDS) RemoveMax() (v int, ok bool) {
	elem, popped := h.m.Pop()
	if !popped {
		return 0, false
	}
	return elem.Elem, true
}
