package container

import "container/heap"

// PriorityQueue serves elements with the lowest priority value first.
// Elements with equal priority are served in the order they were enqueued.
type PriorityQueue[T any] struct {
	items pqItems[T]
	seq   uint64
}

type pqItem[T any] struct {
	value    T
	priority int
	seq      uint64
}

type pqItems[T any] []pqItem[T]

func (p pqItems[T]) Len() int { return len(p) }

func (p pqItems[T]) Less(i, j int) bool {
	if p[i].priority != p[j].priority {
		return p[i].priority < p[j].priority
	}
	return p[i].seq < p[j].seq
}

func (p pqItems[T]) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

func (p *pqItems[T]) Push(x any) { *p = append(*p, x.(pqItem[T])) }

func (p *pqItems[T]) Pop() any {
	old := *p
	n := len(old)
	it := old[n-1]
	old[n-1] = pqItem[T]{}
	*p = old[:n-1]
	return it
}

// NewPriorityQueue creates an empty priority queue
func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return &PriorityQueue[T]{}
}

// Enqueue adds v with the given priority
func (q *PriorityQueue[T]) Enqueue(v T, priority int) {
	heap.Push(&q.items, pqItem[T]{value: v, priority: priority, seq: q.seq})
	q.seq++
}

// Dequeue removes and returns the element with the lowest priority value.
// Returns false if the queue is empty.
func (q *PriorityQueue[T]) Dequeue() (T, int, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, 0, false
	}
	it := heap.Pop(&q.items).(pqItem[T])
	return it.value, it.priority, true
}

// Peek returns the next element to be served without removing it
func (q *PriorityQueue[T]) Peek() (T, int, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, 0, false
	}
	// heap invariant keeps the minimum at index 0
	return q.items[0].value, q.items[0].priority, true
}

// Len returns the number of elements
func (q *PriorityQueue[T]) Len() int {
	return len(q.items)
}

// IsEmpty reports whether the queue has no elements
func (q *PriorityQueue[T]) IsEmpty() bool {
	return len(q.items) == 0
}

// Clear removes all elements
func (q *PriorityQueue[T]) Clear() {
	clear(q.items)
	q.items = q.items[:0]
}

// Items returns a copy of the elements in the order they would be served
func (q *PriorityQueue[T]) Items() []T {
	sorted := make(pqItems[T], len(q.items))
	copy(sorted, q.items)
	out := make([]T, 0, len(sorted))
	for sorted.Len() > 0 {
		out = append(out, heap.Pop(&sorted).(pqItem[T]).value)
	}
	return out
}
