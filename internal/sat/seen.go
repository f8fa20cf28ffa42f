package sat

// seenSet is a per-variable scratch flag, cleared in O(1) via a generation
// counter instead of zeroing a slice. Conflict analysis is the only caller;
// it must start every pass with a clear set and never let state leak across
// calls (spec design note on scratch arrays).
type seenSet struct {
	stamp   []uint32
	current uint32
}

func (s *seenSet) expand() {
	if s.current == 0 { // a zero stamp must never match the current generation
		s.current = 1
	}
	s.stamp = append(s.stamp, 0)
}

func (s *seenSet) Contains(v int) bool {
	return s.stamp[v] == s.current
}

func (s *seenSet) Mark(v int) {
	s.stamp[v] = s.current
}

// Clear resets membership for every variable in constant time.
func (s *seenSet) Clear() {
	s.current++
	if s.current == 0 { // wrapped around; re-zero to keep the invariant valid
		s.current = 1
		for i := range s.stamp {
			s.stamp[i] = 0
		}
	}
}
