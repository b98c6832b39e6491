package Trees

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/ordtree/Queues"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// BST is a binary search tree with no repeated values. It never rebalances,
// so its shape is decided by the order of insertions and removals, and D,
// the height of the tree, is n in the worst case.
// For every node, the values in its left subtree are less than its value and
// the values in its right subtree are greater.
// BST shouldn't be created directly using struct literal; use New or From.
// It isn't safe for concurrent use.
type BST[T constraints.Ordered] struct {
	root *node[T]
	sz   uint
	cfg  config
}

var _ Tree[int] = (*BST[int])(nil)

// New returns an empty BST.
func New[T constraints.Ordered](opts ...Option) *BST[T] {
	u := &BST[T]{cfg: defaultConfig()}
	for _, o := range opts {
		o(&u.cfg)
	}
	return u
}

// From returns a BST holding vs, inserted in the given order. Repeated
// values are skipped.
// Time: O(n*D)
func From[T constraints.Ordered](vs []T, opts ...Option) *BST[T] {
	u := New[T](opts...)
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// Empty [Tree.Empty]
func (u *BST[T]) Empty() bool {
	return u.root == nil
}

// Size [Tree.Size]
// Time: O(1)
func (u *BST[T]) Size() uint {
	return u.sz
}

// Has [Tree.Has]. Recursive.
// Time: O(D)
func (u *BST[T]) Has(v T) bool {
	return u.root != nil && u.root.find(v)
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *BST[T]) Insert(v T) bool {
	if u.root == nil {
		u.root = &node[T]{v: v}
	} else if u.root.find(v) {
		return false
	} else {
		u.root.add(v)
	}
	u.sz++
	return true
}

// Remove [Tree.Remove]. The removed node is replaced by its successor, see
// detachSuccessor.
// Time: O(D)
func (u *BST[T]) Remove(v T) bool {
	slot := &u.root
	for cur := *slot; cur != nil; cur = *slot {
		if v < cur.v {
			slot = &cur.l
		} else if v > cur.v {
			slot = &cur.r
		} else if v == cur.v {
			s, kind := cur.detachSuccessor()
			*slot = s
			u.sz--
			u.cfg.log.Debug().Interface("value", v).Str("successor", kind).Msg("remove")
			return true
		} else {
			break
		}
	}
	return false
}

// Clear [Tree.Clear]. Recursive.
// Time: O(n)
func (u *BST[T]) Clear() {
	if u.root == nil {
		return
	}
	u.cfg.log.Debug().Uint("size", u.sz).Msg("clear")
	u.root.removeChilds()
	u.root, u.sz = nil, 0
}

// Walk [Tree.Walk]. Recursive.
func (u *BST[T]) Walk(o Order, f func(T) bool) {
	if u.root != nil {
		u.root.walk(o, f)
	}
}

// render the values given by visit as "[v1 v2 ]".
func render[T any](visit func(func(T))) string {
	var b strings.Builder
	b.WriteByte('[')
	visit(func(v T) {
		fmt.Fprint(&b, v)
		b.WriteByte(' ')
	})
	b.WriteByte(']')
	return b.String()
}

func (u *BST[T]) ordered(o Order) string {
	return render(func(f func(T)) {
		u.Walk(o, func(v T) bool {
			f(v)
			return true
		})
	})
}

// InOrder renders the values in ascending order, e.g. "[1 3 4 ]".
// An empty tree gives "[]".
func (u *BST[T]) InOrder() string {
	return u.ordered(InOrder)
}

// PreOrder renders each node before its left then right subtree.
func (u *BST[T]) PreOrder() string {
	return u.ordered(PreOrder)
}

// PostOrder renders each node after its left then right subtree.
func (u *BST[T]) PostOrder() string {
	return u.ordered(PostOrder)
}

// ByLevel renders the values level by level from the root, left to right
// within a level. Each level is a separate walk from the root bounded by
// the root's depth.
// Time: O(n*depth)
func (u *BST[T]) ByLevel() string {
	return render(func(f func(T)) {
		if u.root == nil {
			return
		}
		for lv, d := uint(0), u.root.depth(); lv < d; lv++ {
			u.root.walkLevel(lv, f)
		}
	})
}

// Levels groups the values by level, breadth first.
// Time: O(n); Space: O(n)
func (u *BST[T]) Levels() [][]T {
	var lvs [][]T
	if u.root == nil {
		return lvs
	}
	q := Queues.MakeArrayQueue[*node[T]](u.cfg.queueCap)
	q.Push(u.root)
	for !q.Empty() {
		lv := make([]T, 0, q.Size())
		for i := q.Size(); i > 0; i-- {
			n, _ := q.Pop()
			lv = append(lv, n.v)
			if n.l != nil {
				q.Push(n.l)
			}
			if n.r != nil {
				q.Push(n.r)
			}
		}
		lvs = append(lvs, lv)
	}
	return lvs
}

// Leaves [Tree.Leaves]. Recursive.
// Time: O(n)
func (u *BST[T]) Leaves() uint {
	if u.root == nil {
		return 0
	}
	return u.root.leaves()
}

// IsFull [Tree.IsFull]. A node is full if it's a leaf, or if it has two
// full children of the same depth. Recursive.
func (u *BST[T]) IsFull() bool {
	return u.root != nil && u.root.isFull()
}

// Ancestor [Tree.Ancestor]. The returned error wraps ErrNoSuchElement when
// v isn't in the tree or v is at the root.
// Time: O(D)
func (u *BST[T]) Ancestor(v T) (T, error) {
	if u.root == nil {
		return u.miss(v, "empty tree")
	} else if u.root.v == v {
		return u.miss(v, "root has no ancestor")
	} else if !u.root.find(v) {
		return u.miss(v, "not found")
	}
	if p, ok := u.root.ancestor(v); ok {
		return p, nil
	}
	return u.miss(v, "search path lost")
}

func (u *BST[T]) miss(v T, why string) (T, error) {
	u.cfg.log.Debug().Interface("value", v).Str("reason", why).Msg("ancestor")
	return *new(T), errors.Wrapf(ErrNoSuchElement, "ancestor of %v: %s", v, why)
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *BST[T]) Corrupt() bool {
	var z T
	return u.root != nil && u.root.corrupt(z, z, false, false)
}

// String renders the tree in order.
func (u *BST[T]) String() string {
	return u.InOrder()
}
