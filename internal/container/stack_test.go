package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStack(t *testing.T) {
	empty := NewStack[int]()
	filled := NewStack(1, 2, 3, 4, 5)

	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 5, filled.Len())
	assert.Equal(t, []int{5, 4, 3, 2, 1}, filled.Items())
}

func TestStack_PushPeek(t *testing.T) {
	var s Stack[int]
	s.Push(1)
	s.Push(2)
	s.Push(3)

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 3, top)
	assert.Equal(t, 3, s.Len(), "Peek must not remove")
}

func TestStack_Pop(t *testing.T) {
	s := NewStack(1, 2, 3, 4, 5)

	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, 4, s.Len())

	top, _ := s.Peek()
	assert.Equal(t, 4, top)
}

func TestStack_Empty(t *testing.T) {
	var s Stack[string]

	assert.True(t, s.IsEmpty())

	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)
}

func TestStack_Clear(t *testing.T) {
	s := NewStack("a", "b")
	s.Clear()

	assert.True(t, s.IsEmpty())
	s.Push("c")
	assert.Equal(t, []string{"c"}, s.Items())
}

func TestStack_ItemsIsCopy(t *testing.T) {
	s := NewStack(1, 2)
	items := s.Items()
	items[0] = 99

	top, _ := s.Peek()
	assert.Equal(t, 2, top)
}
