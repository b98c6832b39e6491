package Trees

import (
	"math/rand"
	"slices"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 4000
	tAddValRange = 8000
)

// parents maps every non-root value to the value of its parent.
func (u *BST[T]) parents() map[T]T {
	m := make(map[T]T)
	var rec func(*node[T])
	rec = func(n *node[T]) {
		for _, c := range [2]*node[T]{n.l, n.r} {
			if c != nil {
				m[c.v] = n.v
				rec(c)
			}
		}
	}
	if u.root != nil {
		rec(u.root)
	}
	return m
}

func (u *BST[T]) inOrderSlice() []T {
	var s []T
	u.Walk(InOrder, func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

func TestTree_Add(t *testing.T) {
	tree := New[int]()
	content := make(map[int]struct{})
	for range tAddN {
		b := rg.Intn(tAddValRange)
		_, in := content[b]
		if c := tree.Insert(b); c == in {
			t.Errorf("insert of key %v returned %v, key present: %v", b, c, in)
		}
		content[b] = struct{}{}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	for range tAddN {
		if b := rg.Intn(tAddValRange) + tAddValRange; tree.Has(b) {
			t.Errorf("tree has non existent key %v", b)
		}
	}
	s := tree.inOrderSlice()
	if !slices.IsSorted(s) {
		t.Errorf("in-order traversal is not sorted")
	}
	if len(s) != len(content) {
		t.Errorf("in-order traversal has %d keys, want %d", len(s), len(content))
	}
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
}

func TestTree_AddDel(t *testing.T) {
	tree := New[int]()
	content := make(map[int]struct{})
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
		tree.Insert(a[i])
		content[a[i]] = struct{}{}
	}
	for i := range rg.Intn(len(a)) {
		_, in := content[a[i]]
		if b := tree.Remove(a[i]); b != in {
			t.Errorf("failed to delete key %v", a[i])
		}
		if tree.Remove(a[i]) {
			t.Errorf("can delete a second time key %v", a[i])
		}
		delete(content, a[i])
		if i%97 == 0 && tree.Corrupt() {
			t.Fatalf("tree is corrupt after deleting %v", a[i])
		}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	if got := tree.inOrderSlice(); len(got) != len(content) || !slices.IsSorted(got) {
		t.Errorf("in-order traversal has %d keys, want %d sorted", len(got), len(content))
	}
}

// Removing a single value keeps every other value reachable.
func TestTree_RemoveOne(t *testing.T) {
	for range 200 {
		vs := rg.Perm(64)[:1+rg.Intn(63)]
		tree := From(vs)
		x := vs[rg.Intn(len(vs))]
		tree.Remove(x)
		if tree.Has(x) {
			t.Fatalf("removed key %v still found in %v", x, vs)
		}
		for _, v := range vs {
			if v != x && !tree.Has(v) {
				t.Fatalf("key %v lost after removing %v from %v", v, x, vs)
			}
		}
	}
}

// Ancestor follows comparisons, so it has to agree with the real parent
// links after any mix of insertions and removals.
func TestTree_Ancestor(t *testing.T) {
	tree := New[int]()
	for round := range 20 {
		for range 300 {
			tree.Insert(rg.Intn(1000))
		}
		for range 150 {
			tree.Remove(rg.Intn(1000))
		}
		ps := tree.parents()
		for v, want := range ps {
			if got, err := tree.Ancestor(v); err != nil || got != want {
				t.Fatalf("round %d: ancestor of %v is (%v, %v), want %v", round, v, got, err, want)
			}
		}
		if !tree.Empty() {
			if _, err := tree.Ancestor(tree.root.v); err == nil {
				t.Fatalf("round %d: root %v has an ancestor", round, tree.root.v)
			}
		}
	}
}

func TestTree_Levels(t *testing.T) {
	tree := New[int](WithQueueCap(2))
	for range 500 {
		tree.Insert(rg.Intn(2000))
	}
	lvs := tree.Levels()
	var n int
	for _, lv := range lvs {
		n += len(lv)
		if !slices.IsSorted(lv) {
			t.Errorf("level %v is not ordered left to right", lv)
		}
	}
	if n != int(tree.Size()) {
		t.Errorf("levels hold %d keys, want %d", n, tree.Size())
	}
	if uint(len(lvs)) > tree.root.depth() {
		t.Errorf("depth %d is below height %d", tree.root.depth(), len(lvs))
	}
}
