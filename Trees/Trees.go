// Package Trees provides an unbalanced binary search tree, BST, holding
// ordered values without duplicates.
package Trees

// Tree represents a tree like structure implemented using nodes.
// Receivers that return an error as a second value fail only when the
// queried value is not in the tree; in that case the first return value
// is the zero value of T and shouldn't be used.
// Methods implemented recursively should be noted, otherwise functions
// are implemented iteratively.
type Tree[T any] interface {
	//Empty reports whether the tree holds no value.
	Empty() bool
	//Has element v.
	Has(v T) bool
	//Insert v to the Tree. Returning true if successful, false if v is
	//already in the Tree.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if successful, false if v
	//wasn't in the Tree.
	Remove(v T) bool
	//Clear removes every element.
	Clear()
	//Size of the tree.
	Size() uint
	//Leaves is the number of nodes without children.
	Leaves() uint
	//IsFull reports whether the root is full. An empty tree isn't full.
	IsFull() bool
	//Ancestor returns the value stored in the parent of the node holding v.
	Ancestor(v T) (T, error)
	//Walk visits the elements in the given order until f returns false.
	//The tree must not be modified during the walk.
	Walk(o Order, f func(T) bool)
	//Corrupt returns whether some node violates the ordering of the tree.
	Corrupt() bool
}

// Order selects the traversal used by Walk.
type Order uint8

const (
	InOrder Order = iota
	PreOrder
	PostOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	}
	return "unknown"
}
