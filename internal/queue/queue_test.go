package queue

import "testing"

func TestFIFOOrder(t *testing.T) {
	var q Queue[int]
	for i := 0; i < 5; i++ {
		q.Push(i)
	}
	if q.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", q.Len())
	}
	for i := 0; i < 5; i++ {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop() #%d: unexpectedly empty", i)
		}
		if got != i {
			t.Errorf("Pop() #%d = %d, want %d", i, got, i)
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len() after draining = %d, want 0", q.Len())
	}
}

func TestPopEmpty(t *testing.T) {
	var q Queue[string]
	if _, ok := q.Pop(); ok {
		t.Error("Pop() on empty queue returned ok=true")
	}
}

func TestDuplicatesPreserved(t *testing.T) {
	var q Queue[string]
	q.Push("left")
	q.Push("left")
	q.Push("left")
	if q.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (no deduplication)", q.Len())
	}
}

func TestInterleavedPushPop(t *testing.T) {
	var q Queue[int]
	q.Push(1)
	q.Push(2)
	if got, _ := q.Pop(); got != 1 {
		t.Errorf("Pop() = %d, want 1", got)
	}
	q.Push(3)
	if got, _ := q.Pop(); got != 2 {
		t.Errorf("Pop() = %d, want 2", got)
	}
	if got, _ := q.Pop(); got != 3 {
		t.Errorf("Pop() = %d, want 3", got)
	}
}
