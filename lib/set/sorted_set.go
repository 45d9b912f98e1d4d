// Package set provides an ordered, duplicate-free collection backed by
// the red-black tree in lib/tree. Insertion and membership tests cost
// O(log n) worst case and a sorted enumeration is always available.
package set

import (
	"github.com/brownthomasp/xord/lib/infra"
	"github.com/brownthomasp/xord/lib/tree"
)

// SortedSet keeps unique keys in comparator order. Keys are stored by
// value: the set owns its copy and never aliases caller memory.
// It is not safe for concurrent use; a single logical owner drives it.
type SortedSet[K infra.OrderedKey] struct {
	tree   tree.RBTree[K, struct{}]
	isDesc bool
}

type SortedSetOpt[K infra.OrderedKey] func(*SortedSet[K])

// WithSortedSetDesc flips the enumeration to descending key order.
func WithSortedSetDesc[K infra.OrderedKey]() SortedSetOpt[K] {
	return func(s *SortedSet[K]) {
		s.isDesc = true
	}
}

func NewSortedSet[K infra.OrderedKey](opts ...SortedSetOpt[K]) *SortedSet[K] {
	s := &SortedSet[K]{}
	for _, o := range opts {
		o(s)
	}
	if s.isDesc {
		s.tree = tree.NewRBTree[K, struct{}](tree.WithRBTreeDesc[K, struct{}]())
	} else {
		s.tree = tree.NewRBTree[K, struct{}]()
	}
	return s
}

// Add inserts key and reports whether it was absent before the call.
// Adding a key twice is a no-op for the second call.
func (s *SortedSet[K]) Add(key K) bool {
	return s.tree.Insert(key, struct{}{})
}

func (s *SortedSet[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

func (s *SortedSet[K]) Len() int64 {
	return s.tree.Len()
}

// Keys snapshots the whole set in comparator order.
func (s *SortedSet[K]) Keys() []K {
	keys := make([]K, 0, s.tree.Len())
	s.tree.Foreach(func(idx int64, color tree.RBColor, key K, val struct{}) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Foreach visits keys in comparator order and stops early when action
// returns false.
func (s *SortedSet[K]) Foreach(action func(idx int64, key K) bool) {
	s.tree.Foreach(func(idx int64, color tree.RBColor, key K, val struct{}) bool {
		return action(idx, key)
	})
}

// Iter returns a lazy, restartable iterator over the keys.
func (s *SortedSet[K]) Iter() tree.RBTreeIterator[K, struct{}] {
	return s.tree.Iter()
}

// Release tears the backing tree down iteratively and leaves the set
// empty but reusable.
func (s *SortedSet[K]) Release() {
	s.tree.Release()
}
