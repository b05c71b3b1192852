package container

// Queue is a first-in first-out sequence
type Queue[T any] struct {
	elements []T
	head     int
}

// NewQueue creates a queue holding elems in order
func NewQueue[T any](elems ...T) *Queue[T] {
	q := &Queue[T]{elements: make([]T, 0, len(elems))}
	for _, e := range elems {
		q.Enqueue(e)
	}
	return q
}

// Enqueue appends v to the back of the queue
func (q *Queue[T]) Enqueue(v T) {
	q.elements = append(q.elements, v)
}

// Dequeue removes and returns the front element.
// Returns false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.IsEmpty() {
		return zero, false
	}

	v := q.elements[q.head]
	q.elements[q.head] = zero
	q.head++

	// Compact once the dead prefix dominates the backing array
	if q.head > len(q.elements)/2 {
		n := copy(q.elements, q.elements[q.head:])
		clear(q.elements[n:])
		q.elements = q.elements[:n]
		q.head = 0
	}
	return v, true
}

// Peek returns the front element without removing it
func (q *Queue[T]) Peek() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}
	return q.elements[q.head], true
}

// Len returns the number of elements
func (q *Queue[T]) Len() int {
	return len(q.elements) - q.head
}

// IsEmpty reports whether the queue has no elements
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Clear removes all elements
func (q *Queue[T]) Clear() {
	clear(q.elements)
	q.elements = q.elements[:0]
	q.head = 0
}

// Items returns a copy of the elements, front first
func (q *Queue[T]) Items() []T {
	out := make([]T, q.Len())
	copy(out, q.elements[q.head:])
	return out
}
