// Package queue provides the FIFO buffer of pending commands awaiting
// occupant classification.
package queue

// Queue is an unbounded FIFO. Insertion order is execution order; there is
// no deduplication, no coalescing, and no priority. The zero value is ready
// to use.
type Queue[T any] struct {
	items []T
}

// Push appends v to the tail.
func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
}

// Pop removes and returns the head, or ok=false when the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	head := q.items[0]
	q.items = q.items[1:]
	return head, true
}

// Len returns the number of pending items.
func (q *Queue[T]) Len() int {
	return len(q.items)
}
