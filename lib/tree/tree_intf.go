package tree

import "github.com/brownthomasp/xord/lib/infra"

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

//go:generate stringer -type=RBDirection
type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

type RBNode[K infra.OrderedKey, V any] interface {
	Key() K
	Val() V
	Color() RBColor
	Left() RBNode[K, V]
	Right() RBNode[K, V]
	Parent() RBNode[K, V]
}

// RBTree is an insert-only red-black tree. Keys are unique;
// inserting a key that is already present leaves the tree untouched.
// Node removal is not part of this surface.
type RBTree[K infra.OrderedKey, V any] interface {
	Len() int64
	Root() RBNode[K, V]
	// Insert attaches a new node and rebalances. It reports whether
	// the key was actually added (false for a duplicate no-op).
	Insert(key K, val V) bool
	Contains(key K) bool
	Get(key K) (V, bool)
	Search(x RBNode[K, V], fn func(RBNode[K, V]) int64) RBNode[K, V]
	Minimum() RBNode[K, V]
	Maximum() RBNode[K, V]
	// Foreach walks the tree in comparator order (ascending unless the
	// tree was built with WithRBTreeDesc) and stops early when action
	// returns false.
	Foreach(action func(idx int64, color RBColor, key K, val V) bool)
	// Iter returns a restartable iterator positioned at the first key
	// in comparator order.
	Iter() RBTreeIterator[K, V]
	Release()
}

// RBTreeIterator yields keys lazily in comparator order. Rewind
// repositions it at the first key, so one iterator can be reused
// for multiple passes.
type RBTreeIterator[K infra.OrderedKey, V any] interface {
	Valid() bool
	Next() bool
	Key() K
	Val() V
	Rewind()
}
