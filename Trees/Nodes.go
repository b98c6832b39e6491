package Trees

import "golang.org/x/exp/constraints"

// A node in the BST. Each node exclusively owns its children; nothing else
// points into a subtree.
type node[T constraints.Ordered] struct {
	v    T
	l, r *node[T]
}

func (n *node[T]) leaf() bool {
	return n.l == nil && n.r == nil
}

// successor cases, reported in logs.
const (
	succNone      = "none"
	succRight     = "right"
	succLeft      = "left"
	succRightmost = "rightmost-of-left"
)

// detachSuccessor unlinks the node that takes n's place when n is removed,
// and returns it already linked to n's remaining subtrees. n's own links are
// cleared, so n can be dropped right away. Returns nil if n is a leaf.
// The promoted node is the rightmost node of n's left subtree if there is
// one, otherwise n's right child, which keeps its own subtrees.
// Time: O(D); Space: O(1)
func (n *node[T]) detachSuccessor() (s *node[T], kind string) {
	switch {
	case n.leaf():
		return nil, succNone
	case n.l == nil:
		s, n.r = n.r, nil
		return s, succRight
	case n.l.r == nil:
		s = n.l
		n.l, s.l = s.l, nil
		kind = succLeft
	default:
		p := n.l
		for p.r.r != nil {
			p = p.r
		}
		s = p.r
		p.r, s.l = s.l, nil
		kind = succRightmost
	}
	s.l, s.r = n.l, n.r
	n.l, n.r = nil, nil
	return s, kind
}

// find v in the subtree rooting at n. Recursive.
func (n *node[T]) find(v T) bool {
	if v == n.v {
		return true
	} else if v < n.v {
		return n.l != nil && n.l.find(v)
	}
	return n.r != nil && n.r.find(v)
}

// add v under n. Ties go to the right. Recursive.
func (n *node[T]) add(v T) {
	if v < n.v {
		if n.l != nil {
			n.l.add(v)
		} else {
			n.l = &node[T]{v: v}
		}
	} else {
		if n.r != nil {
			n.r.add(v)
		} else {
			n.r = &node[T]{v: v}
		}
	}
}

// removeChilds unlinks every node below n. Recursive.
func (n *node[T]) removeChilds() {
	if n.l != nil {
		n.l.removeChilds()
		n.l = nil
	}
	if n.r != nil {
		n.r.removeChilds()
		n.r = nil
	}
}

// walk the subtree in order o. Returns false once f asked to stop. Recursive.
func (n *node[T]) walk(o Order, f func(T) bool) bool {
	if o == PreOrder && !f(n.v) {
		return false
	}
	if n.l != nil && !n.l.walk(o, f) {
		return false
	}
	if o == InOrder && !f(n.v) {
		return false
	}
	if n.r != nil && !n.r.walk(o, f) {
		return false
	}
	return o != PostOrder || f(n.v)
}

// walkLevel visits the nodes exactly lv edges below n, left to right. Recursive.
func (n *node[T]) walkLevel(lv uint, f func(T)) {
	if lv == 0 {
		f(n.v)
		return
	}
	if n.l != nil {
		n.l.walkLevel(lv-1, f)
	}
	if n.r != nil {
		n.r.walkLevel(lv-1, f)
	}
}

// leaves below n, n included. Recursive.
func (n *node[T]) leaves() uint {
	if n.leaf() {
		return 1
	}
	var c uint
	if n.r != nil {
		c += n.r.leaves()
	}
	if n.l != nil {
		c += n.l.leaves()
	}
	return c
}

// depth of n: 1 for a leaf, otherwise the depths of the present children
// added together plus 1. This is not the height; it adds up both sides.
// Recursive.
func (n *node[T]) depth() uint {
	if n.leaf() {
		return 1
	}
	var d uint
	if n.r != nil {
		d += n.r.depth()
	}
	if n.l != nil {
		d += n.l.depth()
	}
	return d + 1
}

// isFull: n is a leaf, or has both children of equal depth that are full
// themselves. Recursive.
func (n *node[T]) isFull() bool {
	if n.leaf() {
		return true
	}
	if n.l == nil || n.r == nil {
		return false
	}
	return n.l.depth() == n.r.depth() && n.l.isFull() && n.r.isFull()
}

// ancestor of v below n, following comparisons. v mustn't be n.v.
// Returns false when the search runs off the tree.
// Time: O(D); Space: O(1)
func (n *node[T]) ancestor(v T) (T, bool) {
	for cur := n; cur != nil; {
		if (cur.l != nil && cur.l.v == v) || (cur.r != nil && cur.r.v == v) {
			return cur.v, true
		} else if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return *new(T), false
}

// corrupt reports whether some value below n is outside (lo, hi). hasLo and
// hasHi tell whether the bounds apply. Recursive.
func (n *node[T]) corrupt(lo, hi T, hasLo, hasHi bool) bool {
	if (hasLo && n.v < lo) || (hasHi && !(n.v < hi)) {
		return true
	}
	return (n.l != nil && n.l.corrupt(lo, n.v, hasLo, true)) ||
		(n.r != nil && n.r.corrupt(n.v, hi, true, hasHi))
}
