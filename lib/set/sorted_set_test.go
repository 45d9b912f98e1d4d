package set

import (
	randv2 "math/rand"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortedSet_AddAndTraverse(t *testing.T) {
	s := NewSortedSet[string]()
	for _, w := range []string{"banana", "apple", "cherry"} {
		require.True(t, s.Add(w))
	}
	require.Equal(t, []string{"apple", "banana", "cherry"}, s.Keys())
	require.True(t, s.Contains("apple"))
	require.False(t, s.Contains("apricot"))
	require.Equal(t, int64(3), s.Len())
}

func TestSortedSet_DuplicateIsNoop(t *testing.T) {
	s := NewSortedSet[string]()
	require.True(t, s.Add("m"))
	require.False(t, s.Add("m"))
	require.Equal(t, []string{"m"}, s.Keys())
	require.Equal(t, int64(1), s.Len())
}

func TestSortedSet_Empty(t *testing.T) {
	s := NewSortedSet[string]()
	require.Equal(t, int64(0), s.Len())
	require.Empty(t, s.Keys())
	visited := 0
	s.Foreach(func(idx int64, key string) bool {
		visited++
		return true
	})
	require.Equal(t, 0, visited)
	it := s.Iter()
	require.False(t, it.Valid())
}

func TestSortedSet_Desc(t *testing.T) {
	s := NewSortedSet[string](WithSortedSetDesc[string]())
	for _, w := range []string{"banana", "apple", "cherry"} {
		s.Add(w)
	}
	require.Equal(t, []string{"cherry", "banana", "apple"}, s.Keys())
}

func TestSortedSet_Iter(t *testing.T) {
	s := NewSortedSet[uint64]()
	for i := uint64(0); i < 64; i++ {
		s.Add(i)
	}
	it := s.Iter()
	i := uint64(0)
	for ; it.Valid(); it.Next() {
		require.Equal(t, i, it.Key())
		i++
	}
	require.Equal(t, uint64(64), i)
	it.Rewind()
	require.Equal(t, uint64(0), it.Key())
}

func TestSortedSet_RandomWords(t *testing.T) {
	s := NewSortedSet[string]()
	distinct := make(map[string]struct{}, 128)
	for i := 0; i < 1000; i++ {
		w := "w" + strconv.Itoa(int(randv2.Uint32()%128))
		inserted := s.Add(w)
		_, seen := distinct[w]
		require.Equal(t, !seen, inserted)
		distinct[w] = struct{}{}
	}
	require.Equal(t, int64(len(distinct)), s.Len())

	want := make([]string, 0, len(distinct))
	for w := range distinct {
		want = append(want, w)
	}
	sort.Strings(want)
	require.Equal(t, want, s.Keys())
}

func TestSortedSet_Release(t *testing.T) {
	s := NewSortedSet[uint64]()
	for i := uint64(0); i < 100; i++ {
		s.Add(i)
	}
	s.Release()
	require.Equal(t, int64(0), s.Len())
	require.True(t, s.Add(1))
}
