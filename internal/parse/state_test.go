package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultState_Consume(t *testing.T) {
	args := []string{"a", "b", "c"}
	s := NewState(args)

	assert.False(t, s.Done())
	assert.Equal(t, "a", s.Current())
	assert.Equal(t, "a", s.Consume())
	assert.Equal(t, []string{"b", "c"}, s.Remaining())
	assert.Equal(t, []string{"b", "c"}, s.Drain())
	assert.True(t, s.Done())
	assert.Equal(t, "", s.Current())
	assert.Equal(t, "", s.Consume())
	assert.Equal(t, []string{}, s.Remaining())
}

func TestDefaultState_CopiesAreIndependent(t *testing.T) {
	args := []string{"x", "y"}
	s := NewState(args)

	remaining := s.Remaining()
	remaining[0] = "changed"
	s.Consume()
	drained := s.Drain()
	drained[0] = "changed"

	assert.Equal(t, []string{"x", "y"}, args)
	assert.True(t, s.Done())
}
