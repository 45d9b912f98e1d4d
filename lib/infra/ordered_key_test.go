package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedKeyComparator_String(t *testing.T) {
	var cmp OrderedKeyComparator[string] = func(i, j string) int64 {
		if i == j {
			return 0
		} else if i < j {
			return -1
		}
		return 1
	}
	assert.Equal(t, int64(0), cmp("banana", "banana"))
	assert.Equal(t, int64(-1), cmp("apple", "banana"))
	assert.Equal(t, int64(1), cmp("cherry", "banana"))
	// Byte-wise comparison, upper case sorts before lower case.
	assert.Equal(t, int64(-1), cmp("Zebra", "apple"))
}

func TestOrderedKeyComparator_Int(t *testing.T) {
	var cmp OrderedKeyComparator[int64] = func(i, j int64) int64 {
		return i - j
	}
	assert.Equal(t, int64(0), cmp(7, 7))
	assert.Greater(t, cmp(9, 2), int64(0))
	assert.Less(t, cmp(-10, 3), int64(0))
}
