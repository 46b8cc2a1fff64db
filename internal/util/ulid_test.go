package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewULID(t *testing.T) {
	first := NewULID()
	second := NewULID()

	assert.Len(t, first, 26)
	assert.True(t, IsULID(first))
	assert.NotEqual(t, first, second)
	assert.Less(t, first, second)
}

func TestIsULID(t *testing.T) {
	assert.False(t, IsULID(""))
	assert.False(t, IsULID("not-a-ulid"))
	assert.False(t, IsULID("01ARZ3NDEKTSV4RRFFQ69G5FA"))
}
