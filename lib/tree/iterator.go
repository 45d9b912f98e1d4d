package tree

import "github.com/brownthomasp/xord/lib/infra"

var _ RBTreeIterator[string, struct{}] = (*rbTreeIterator[string, struct{}])(nil)

// Lazy in-order cursor over the tree. It navigates through the parent
// back-pointers instead of an explicit stack, so creating one is O(log n)
// and a full pass costs O(n) overall.
// The iterator observes live nodes; inserting while iterating is the
// caller's bug.
type rbTreeIterator[K infra.OrderedKey, V any] struct {
	tree *rbTree[K, V]
	cur  *rbNode[K, V]
}

func newRBTreeIterator[K infra.OrderedKey, V any](tree *rbTree[K, V]) *rbTreeIterator[K, V] {
	it := &rbTreeIterator[K, V]{tree: tree}
	it.Rewind()
	return it
}

func (it *rbTreeIterator[K, V]) Valid() bool {
	return it.cur != nil
}

func (it *rbTreeIterator[K, V]) Next() bool {
	if it.cur == nil {
		return false
	}
	it.cur = it.cur.succ()
	return it.cur != nil
}

func (it *rbTreeIterator[K, V]) Key() K {
	if it.cur == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] iterator key access out of range")
	}
	return it.cur.key
}

func (it *rbTreeIterator[K, V]) Val() V {
	if it.cur == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] iterator val access out of range")
	}
	return it.cur.val
}

// Rewind repositions the iterator at the minimum node in comparator
// order, which makes the sequence restartable.
func (it *rbTreeIterator[K, V]) Rewind() {
	it.cur = it.tree.root.minimum()
}
