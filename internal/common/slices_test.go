package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendUnique(t *testing.T) {
	s, added := AppendUnique([]string{"a"}, "b")
	assert.True(t, added)
	assert.Equal(t, []string{"a", "b"}, s)

	s, added = AppendUnique(s, "a")
	assert.False(t, added)
	assert.Equal(t, []string{"a", "b"}, s)
}

func TestDedupe(t *testing.T) {
	assert.Nil(t, Dedupe([]string(nil)))
	assert.Equal(t, []string{"x", "y", "z"}, Dedupe([]string{"x", "y", "x", "z", "y"}))
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"b": 1, "c": 2, "a": 3}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
	assert.Empty(t, SortedKeys(map[string]int{}))
}

func TestFirst(t *testing.T) {
	v, ok := First([]int{7, 8})
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = First([]int{})
	assert.False(t, ok)
	assert.True(t, IsEmpty([]int{}))
}
