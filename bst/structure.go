package bst

import (
	"github.com/goose-lang/std"
	"golang.org/x/exp/constraints"
)

// height is -1 for the empty subtree.
func (n *node[T]) height() int {
	if n == nil {
		return -1
	}
	return 1 + max(n.left.height(), n.right.height())
}

func (n *node[T]) count() uint64 {
	if n == nil {
		return 0
	}
	sub := std.SumAssumeNoOverflow(n.left.count(), n.right.count())
	return std.SumAssumeNoOverflow(sub, 1)
}

// NodeCount walks the whole tree, so it is O(n).
func (t *Tree[T]) NodeCount() int {
	return int(t.root.count())
}

// IsFull reports whether every level of the tree is completely populated,
// i.e. the tree is perfect. The empty tree is full.
func (t *Tree[T]) IsFull() bool {
	h := t.root.height()
	// a perfect tree this tall could not be held in memory
	if h >= 62 {
		return false
	}
	return t.NodeCount() == 1<<(h+1)-1
}

// CompareStructure reports whether t and other have the same shape,
// ignoring the elements.
func (t *Tree[T]) CompareStructure(other *Tree[T]) bool {
	return sameShape(t.root, other.root)
}

func sameShape[T constraints.Ordered](a, b *node[T]) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return sameShape(a.left, b.left) && sameShape(a.right, b.right)
}

// Equals reports whether t and other hold the same elements in the same
// shape.
func (t *Tree[T]) Equals(other *Tree[T]) bool {
	return equalNodes(t.root, other.root)
}

func equalNodes[T constraints.Ordered](a, b *node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.elem != b.elem {
		return false
	}
	return equalNodes(a.left, b.left) && equalNodes(a.right, b.right)
}

// IsMirror reports whether other is the mirror image of t: same elements,
// with left and right exchanged at every level.
func (t *Tree[T]) IsMirror(other *Tree[T]) bool {
	return mirrorNodes(t.root, other.root)
}

func mirrorNodes[T constraints.Ordered](a, b *node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.elem != b.elem {
		return false
	}
	return mirrorNodes(a.left, b.right) && mirrorNodes(a.right, b.left)
}

// Copy returns a deep copy of t. The two trees share no nodes.
func (t *Tree[T]) Copy() *Tree[T] {
	return &Tree[T]{root: t.root.clone()}
}

func (n *node[T]) clone() *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{elem: n.elem, left: n.left.clone(), right: n.right.clone()}
}

// Mirror returns a new tree with left and right swapped at every level. t is
// not modified. The result is ordered in reverse, so Insert, Remove and
// Contains on it do not find elements where they expect them.
func (t *Tree[T]) Mirror() *Tree[T] {
	return &Tree[T]{root: t.root.mirror()}
}

func (n *node[T]) mirror() *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{elem: n.elem, left: n.right.mirror(), right: n.left.mirror()}
}
