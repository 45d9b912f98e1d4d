package tree

import (
	"sync/atomic"

	"github.com/brownthomasp/xord/lib/infra"
)

type rbNode[K infra.OrderedKey, V any] struct {
	parent *rbNode[K, V]
	left   *rbNode[K, V]
	right  *rbNode[K, V]
	key    K
	val    V
	color  RBColor
}

func (node *rbNode[K, V]) Color() RBColor {
	return node.color
}

func (node *rbNode[K, V]) Key() K {
	return node.key
}

func (node *rbNode[K, V]) Val() V {
	return node.val
}

func (node *rbNode[K, V]) Left() RBNode[K, V] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *rbNode[K, V]) Parent() RBNode[K, V] {
	if node == nil || node.parent == nil {
		return nil
	}
	return node.parent
}

func (node *rbNode[K, V]) Right() RBNode[K, V] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

// An absent child is a nil leaf and counts as black.
func (node *rbNode[K, V]) isNilLeaf() bool {
	return node == nil
}

func (node *rbNode[K, V]) isRed() bool {
	return node != nil && node.color == Red
}

func (node *rbNode[K, V]) isBlack() bool {
	return node == nil || node.color == Black
}

func (node *rbNode[K, V]) isRoot() bool {
	return node != nil && node.parent == nil
}

func (node *rbNode[K, V]) Direction() RBDirection {
	if node.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] nil leaf node without direction")
	}

	if node.isRoot() {
		return Root
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

func (node *rbNode[K, V]) sibling() *rbNode[K, V] {
	switch node.Direction() {
	case Left:
		return node.parent.right
	case Right:
		return node.parent.left
	default:

	}
	return nil
}

func (node *rbNode[K, V]) hasSibling() bool {
	return !node.isRoot() && node.sibling() != nil
}

func (node *rbNode[K, V]) uncle() *rbNode[K, V] {
	return node.parent.sibling()
}

func (node *rbNode[K, V]) hasUncle() bool {
	return !node.isRoot() && node.parent.hasSibling()
}

func (node *rbNode[K, V]) grandpa() *rbNode[K, V] {
	return node.parent.parent
}

// Parent back-pointers are navigation only. Rotations swap child
// links first, then this repairs the children's parent references.
func (node *rbNode[K, V]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

func (node *rbNode[K, V]) minimum() *rbNode[K, V] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *rbNode[K, V]) maximum() *rbNode[K, V] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The succ node of the current node is its next node in comparator order.
func (node *rbNode[K, V]) succ() *rbNode[K, V] {
	x := node
	if x == nil {
		return nil
	}

	if x.right != nil {
		return x.right.minimum()
	}

	aux := x.parent
	// Backtrack to the ancestor that is the x's succ.
	for aux != nil && x == aux.right {
		x = aux
		aux = aux.parent
	}
	return aux
}

type rbTree[K infra.OrderedKey, V any] struct {
	root   *rbNode[K, V]
	count  int64
	isDesc bool
}

func (tree *rbTree[K, V]) keyCompare(k1, k2 K) int64 {
	if k1 == k2 {
		return 0
	} else if k1 < k2 {
		if !tree.isDesc {
			return -1
		}
		return 1
	} else {
		if !tree.isDesc {
			return 1
		}
		return -1
	}
}

func (tree *rbTree[K, V]) Len() int64 {
	return atomic.LoadInt64(&tree.count)
}

func (tree *rbTree[K, V]) Root() RBNode[K, V] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.
// The shortest root-to-NIL path is all black nodes, the longest
// alternates red and black, so the height is at most 2*log2(n+1).

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tree *rbTree[K, V]) leftRotate(x *rbNode[K, V]) {
	if x == nil || x.right.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] left rotate node x is nil or x.right is nil")
	}

	p, y := x.parent, x.right
	dir := x.Direction()
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to left-rotate")
	}
	y.parent = p
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tree *rbTree[K, V]) rightRotate(x *rbNode[K, V]) {
	if x == nil || x.left.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] right rotate node x is nil or x.left is nil")
	}

	p, y := x.parent, x.left
	dir := x.Direction()
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to right-rotate")
	}
	y.parent = p
}

// i1: Empty rbtree, insert directly, root node is painted to black (p5).
// i2: Duplicate key, the tree is left untouched.
func (tree *rbTree[K, V]) Insert(key K, val V) bool {
	if /* i1 */ tree.root.isNilLeaf() {
		tree.root = &rbNode[K, V]{
			key:   key,
			val:   val,
			color: Black,
		}
		atomic.AddInt64(&tree.count, 1)
		return true
	}

	var x, y *rbNode[K, V] = tree.root, nil
	for !x.isNilLeaf() {
		y = x
		res := tree.keyCompare(key, x.key)
		if /* i2 */ res == 0 {
			return false
		} else /* less */ if res < 0 {
			x = x.left
		} else /* greater */ {
			x = x.right
		}
	}

	z := &rbNode[K, V]{
		key:    key,
		val:    val,
		color:  Red,
		parent: y,
	}
	if tree.keyCompare(key, y.key) < 0 {
		y.left = z
	} else {
		y.right = z
	}

	atomic.AddInt64(&tree.count, 1)
	tree.insertRebalance(z)
	return true
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

im1: Current node X's parent P is black and P is root, so hold p3 and p4.

im2: Current node X's parent P is red and P is root, repaint P into black.

im3: If both the parent P and the uncle U are red, grandpa G is black.
(red-violation)
After repainted G into red may be still red-violation.
Recursive to fix grandpa.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im4: The parent P is red but the uncle U is black. (red-violation)
X is opposite direction to P. Rotate P to opposite direction.
After rotation may be still red-violation. Here must enter im5 to fix.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im5: Handle im4 scenario, current node is the same direction as parent.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]
*/
func (tree *rbTree[K, V]) insertRebalance(x *rbNode[K, V]) {
	for !x.isNilLeaf() {
		if x.isRoot() {
			if x.isRed() {
				x.color = Black
			}
			return
		}

		if x.parent.isBlack() {
			return
		}

		if x.parent.isRoot() {
			if /* im1 */ x.parent.isBlack() {
				return
			} else /* im2 */ {
				x.parent.color = Black
			}
		}

		if /* im3 */ x.hasUncle() && x.uncle().isRed() {
			x.parent.color = Black
			x.uncle().color = Black
			gp := x.grandpa()
			gp.color = Red
			x = gp
			continue
		} else {
			if !x.hasUncle() || x.uncle().isBlack() {
				dir := x.Direction()
				if /* im4 */ dir != x.parent.Direction() {
					p := x.parent
					switch dir {
					case Left:
						tree.rightRotate(p)
					case Right:
						tree.leftRotate(p)
					default:
						// impossible run to here
						panic( /* debug assertion */ "[rbtree] insert violate (im4)")
					}
					x = p // enter im5 to fix
				}

				switch /* im5 */ dir = x.parent.Direction(); dir {
				case Left:
					tree.rightRotate(x.grandpa())
				case Right:
					tree.leftRotate(x.grandpa())
				default:
					// impossible run to here
					panic( /* debug assertion */ "[rbtree] insert violate (im5)")
				}

				x.parent.color = Black
				x.sibling().color = Red
				return
			}
		}
	}
}

func (tree *rbTree[K, V]) Search(x RBNode[K, V], fn func(RBNode[K, V]) int64) RBNode[K, V] {
	if x == nil {
		return nil
	}

	for aux := x; aux != nil; {
		res := fn(aux)
		if res == 0 {
			return aux
		} else if res > 0 {
			aux = aux.Right()
		} else {
			aux = aux.Left()
		}
	}
	return nil
}

func (tree *rbTree[K, V]) findNode(key K) *rbNode[K, V] {
	for aux := tree.root; aux != nil; {
		res := tree.keyCompare(key, aux.key)
		if res == 0 {
			return aux
		} else if res < 0 {
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return nil
}

func (tree *rbTree[K, V]) Contains(key K) bool {
	return tree.findNode(key) != nil
}

func (tree *rbTree[K, V]) Get(key K) (V, bool) {
	node := tree.findNode(key)
	if node == nil {
		var zero V
		return zero, false
	}
	return node.val, true
}

func (tree *rbTree[K, V]) Minimum() RBNode[K, V] {
	_min := tree.root.minimum()
	if _min.isNilLeaf() {
		return nil
	}
	return _min
}

func (tree *rbTree[K, V]) Maximum() RBNode[K, V] {
	_max := tree.root.maximum()
	if _max.isNilLeaf() {
		return nil
	}
	return _max
}

// Inorder traversal to implement the DFS.
func (tree *rbTree[K, V]) Foreach(action func(idx int64, color RBColor, key K, val V) bool) {
	size := atomic.LoadInt64(&tree.count)
	aux := tree.root
	if size < 0 || aux == nil {
		return
	}

	stack := make([]*rbNode[K, V], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !aux.isNilLeaf(); aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; !action(idx, aux.color, aux.key, aux.val) {
			return
		}
		idx++
		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

func (tree *rbTree[K, V]) Iter() RBTreeIterator[K, V] {
	return newRBTreeIterator[K, V](tree)
}

// Iterative teardown, children unlinked before their parents.
// No recursion, so a degenerate-depth tree can't blow the stack.
func (tree *rbTree[K, V]) Release() {
	size := atomic.LoadInt64(&tree.count)
	aux := tree.root
	tree.root = nil
	if size < 0 || aux == nil {
		return
	}

	stack := make([]*rbNode[K, V], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !aux.isNilLeaf(); aux = aux.left {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		aux = stack[size-1]
		r := aux.right
		aux.left, aux.right, aux.parent = nil, nil, nil
		atomic.AddInt64(&tree.count, -1)
		stack = stack[:size-1]
		if r != nil {
			for aux = r; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

type RBTreeOpt[K infra.OrderedKey, V any] func(*rbTree[K, V])

func WithRBTreeDesc[K infra.OrderedKey, V any]() RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		tree.isDesc = true
	}
}

func NewRBTree[K infra.OrderedKey, V any](opts ...RBTreeOpt[K, V]) RBTree[K, V] {
	tree := &rbTree[K, V]{
		count:  0,
		isDesc: false,
	}

	for _, o := range opts {
		o(tree)
	}
	return tree
}
