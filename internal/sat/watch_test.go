package sat

import "testing"

func TestWatchIndex_WatchAndUnwatch(t *testing.T) {
	var w watchIndex
	w.expand() // variable 0

	l := PositiveLiteral(0)
	w.watch(l, ClauseID(1), NegativeLiteral(0))
	w.watch(l, ClauseID(2), NegativeLiteral(0))

	if !w.watching(l, ClauseID(1)) || !w.watching(l, ClauseID(2)) {
		t.Fatalf("expected both clauses to be watched by %v", l)
	}

	w.unwatch(l, ClauseID(1))

	if w.watching(l, ClauseID(1)) {
		t.Errorf("clause 1 still watched by %v after unwatch", l)
	}
	if !w.watching(l, ClauseID(2)) {
		t.Errorf("unwatch removed the wrong clause")
	}
}

func TestWatchIndex_Expand(t *testing.T) {
	var w watchIndex
	w.expand()
	w.expand()

	if got, want := len(w.lists), 4; got != want {
		t.Errorf("len(lists) = %d, want %d (2 literals per variable)", got, want)
	}
}
