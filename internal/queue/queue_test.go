package queue

import (
	"reflect"
	"testing"
)

func TestQueue_PushPop(t *testing.T) {
	q := New[int](1)
	q.Push(1)
	q.Push(2)
	q.Push(3)

	if got := q.Pop(); got != 1 {
		t.Errorf("Pop() = %d, want 1", got)
	}
	if got := q.Pop(); got != 2 {
		t.Errorf("Pop() = %d, want 2", got)
	}
	if q.Size() != 1 {
		t.Errorf("Size() = %d, want 1", q.Size())
	}
}

func TestQueue_PushWithResizeAndRotation(t *testing.T) {
	q := &Queue[int]{
		ring:  []int{3, 4, 1, 2},
		start: 2,
		end:   2,
		size:  4,
		mask:  0b11,
	}
	want := &Queue[int]{
		ring:  []int{1, 2, 3, 4, 5, 0, 0, 0},
		start: 0,
		end:   5,
		size:  5,
		mask:  0b111,
	}

	q.Push(5)

	if !reflect.DeepEqual(want, q) {
		t.Errorf("mismatch: want %#v, got %#v", want, q)
	}
}

func TestQueue_PopOnEmpty_panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Pop(): want panic on empty queue, got none")
		}
	}()
	New[int](1).Pop()
}

func TestQueue_String(t *testing.T) {
	q := New[int](1)
	if got, want := q.String(), "Queue[]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	q.Push(1)
	q.Push(2)
	if got, want := q.String(), "Queue[1 2]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
