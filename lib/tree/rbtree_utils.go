package tree

import (
	"errors"

	"go.uber.org/multierr"

	"github.com/brownthomasp/xord/lib/infra"
)

var (
	ErrRBTreeRedViolation   = errors.New("rbtree red violation")
	ErrRBTreeBlackViolation = errors.New("rbtree black violation")
	ErrRBTreeOrderViolation = errors.New("rbtree inorder key order violation")
)

// The RBNode accessors normalize absent children to untyped nil,
// so an interface nil check is enough here.
func isNilLeaf[K infra.OrderedKey, V any](node RBNode[K, V]) bool {
	return node == nil
}

func isBlack[K infra.OrderedKey, V any](node RBNode[K, V]) bool {
	return isNilLeaf[K, V](node) || node.Color() == Black
}

func isRed[K infra.OrderedKey, V any](node RBNode[K, V]) bool {
	return !isNilLeaf[K, V](node) && node.Color() == Red
}

func isRoot[K infra.OrderedKey, V any](node RBNode[K, V]) bool {
	return node != nil && node.Parent() == nil
}

func blackDepthTo[K infra.OrderedKey, V any](target, to RBNode[K, V]) int {
	depth := 0
	for aux := target; aux != to; aux = aux.Parent() {
		if isBlack[K, V](aux) {
			depth++
		}
	}
	return depth
}

// rbtree rule validation utilities.

// Inorder traversal to validate the rbtree red rules
// (black root, no red node with a red child).
func RedViolationValidate[K infra.OrderedKey, V any](tree RBTree[K, V]) error {
	size := tree.Len()
	var aux RBNode[K, V] = tree.Root()
	if size < 0 || aux == nil {
		return nil
	}

	if isRed[K, V](tree.Root()) {
		return ErrRBTreeRedViolation
	}

	stack := make([]RBNode[K, V], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !isNilLeaf[K, V](aux); aux = aux.Left() {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; isRed[K, V](aux) {
			if isRed[K, V](aux.Parent()) ||
				(isRed[K, V](aux.Left()) || isRed[K, V](aux.Right())) {
				return ErrRBTreeRedViolation
			}
		}

		stack = stack[:size-1]
		if aux.Right() != nil {
			for aux = aux.Right(); aux != nil; aux = aux.Left() {
				stack = append(stack, aux)
			}
		}
	}
	return nil
}

// BFS traversal to load all leaves.
func bfsLeaves[K infra.OrderedKey, V any](tree RBTree[K, V]) []RBNode[K, V] {
	size := tree.Len()
	var aux RBNode[K, V] = tree.Root()
	if size < 0 || isNilLeaf[K, V](aux) {
		return nil
	}

	leaves := make([]RBNode[K, V], 0, size>>1+1)
	stack := make([]RBNode[K, V], 0, size>>1)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, aux)

	for len(stack) > 0 {
		aux = stack[0]
		l, r := aux.Left(), aux.Right()
		if /* nil leaves, keep one */ isNilLeaf[K, V](l) || isNilLeaf[K, V](r) {
			leaves = append(leaves, aux)
		}
		if !isNilLeaf[K, V](l) {
			stack = append(stack, l)
		}
		if !isNilLeaf[K, V](r) {
			stack = append(stack, r)
		}
		stack = stack[1:]
	}
	return leaves
}

// BlackViolationValidate checks that every path from the root down to an
// absent child passes through the same number of black nodes, i.e. the
// black height of the tree is well defined.
func BlackViolationValidate[K infra.OrderedKey, V any](tree RBTree[K, V]) error {
	leaves := bfsLeaves[K, V](tree)
	if leaves == nil {
		return nil
	}

	blackDepth := blackDepthTo[K, V](leaves[0], tree.Root())
	for i := 1; i < len(leaves); i++ {
		if blackDepthTo[K, V](leaves[i], tree.Root()) != blackDepth {
			return ErrRBTreeBlackViolation
		}
	}
	return nil
}

// OrderViolationValidate checks the binary-search-tree rule through an
// inorder pass: each visited key must compare strictly after the previous
// one under cmp, which also rules out duplicates.
func OrderViolationValidate[K infra.OrderedKey, V any](tree RBTree[K, V], cmp infra.OrderedKeyComparator[K]) error {
	var (
		prev    K
		visited bool
		err     error
	)
	tree.Foreach(func(idx int64, color RBColor, key K, val V) bool {
		if visited && cmp(key, prev) <= 0 {
			err = ErrRBTreeOrderViolation
			return false
		}
		prev, visited = key, true
		return true
	})
	return err
}

// Validate runs every structural check and combines the failures
// into one report.
func Validate[K infra.OrderedKey, V any](tree RBTree[K, V], cmp infra.OrderedKeyComparator[K]) error {
	return multierr.Combine(
		RedViolationValidate[K, V](tree),
		BlackViolationValidate[K, V](tree),
		OrderViolationValidate[K, V](tree, cmp),
	)
}

// Height reports the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0. For n keys the red-black rules bound it
// by 2*log2(n+1).
func Height[K infra.OrderedKey, V any](tree RBTree[K, V]) int64 {
	return nodeDepth[K, V](tree.Root())
}

func nodeDepth[K infra.OrderedKey, V any](node RBNode[K, V]) int64 {
	if isNilLeaf[K, V](node) {
		return 0
	}
	l, r := nodeDepth[K, V](node.Left()), nodeDepth[K, V](node.Right())
	if l > r {
		return l + 1
	}
	return r + 1
}
