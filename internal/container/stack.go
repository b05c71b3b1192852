// Package container provides the small ordered sequences used by the engine:
// a LIFO stack, a FIFO queue and a stable priority queue.
//
// None of the types are safe for concurrent use. The zero value of each is
// an empty, ready-to-use container.
package container

// Stack is a last-in first-out sequence
type Stack[T any] struct {
	elements []T
}

// NewStack creates a stack holding elems, pushed in order so the last
// argument ends up on top
func NewStack[T any](elems ...T) *Stack[T] {
	s := &Stack[T]{elements: make([]T, 0, len(elems))}
	for _, e := range elems {
		s.Push(e)
	}
	return s
}

// Push puts v on top of the stack
func (s *Stack[T]) Push(v T) {
	s.elements = append(s.elements, v)
}

// Pop removes and returns the top element.
// Returns false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.elements) == 0 {
		return zero, false
	}

	last := len(s.elements) - 1
	v := s.elements[last]
	s.elements[last] = zero // release reference
	s.elements = s.elements[:last]
	return v, true
}

// Peek returns the top element without removing it
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.elements) == 0 {
		var zero T
		return zero, false
	}
	return s.elements[len(s.elements)-1], true
}

// Len returns the number of elements
func (s *Stack[T]) Len() int {
	return len(s.elements)
}

// IsEmpty reports whether the stack has no elements
func (s *Stack[T]) IsEmpty() bool {
	return len(s.elements) == 0
}

// Clear removes all elements
func (s *Stack[T]) Clear() {
	clear(s.elements)
	s.elements = s.elements[:0]
}

// Items returns a copy of the elements, top first
func (s *Stack[T]) Items() []T {
	out := make([]T, len(s.elements))
	for i, e := range s.elements {
		out[len(s.elements)-1-i] = e
	}
	return out
}
