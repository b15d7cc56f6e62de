// Package bst implements an unbalanced, duplicate-free binary search tree
// with structural operations (copy, mirror, shape comparison) and
// user-invoked single rotations.
//
// A Tree is not safe for concurrent use. Callers sharing one across
// goroutines must serialize every operation, rotations included, behind a
// single lock.
package bst

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	// ErrEmptyTree is returned by FindMin and FindMax on a tree with no
	// elements.
	ErrEmptyTree = errors.New("bst: tree is empty")
	// ErrRotation is wrapped by the errors from RotateLeft and RotateRight
	// when the node to rotate or the child to promote is missing.
	ErrRotation = errors.New("bst: rotation precondition not met")
)

type node[T constraints.Ordered] struct {
	elem  T
	left  *node[T]
	right *node[T]
}

func singleton[T constraints.Ordered](x T) *node[T] {
	return &node[T]{elem: x}
}

// Tree is a binary search tree over an ordered element type. The zero value
// is an empty tree ready to use.
type Tree[T constraints.Ordered] struct {
	root *node[T]
}

func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Insert adds x to the tree. Inserting an element that is already present
// does nothing.
func (t *Tree[T]) Insert(x T) {
	t.root = t.root.insert(x)
}

// Remove deletes x from the tree. Removing an absent element does nothing.
func (t *Tree[T]) Remove(x T) {
	t.root = t.root.remove(x)
}

func (t *Tree[T]) Contains(x T) bool {
	return t.root.contains(x)
}

// FindMin returns the smallest element, or ErrEmptyTree.
func (t *Tree[T]) FindMin() (T, error) {
	if t.IsEmpty() {
		var zero T
		return zero, ErrEmptyTree
	}
	return t.root.findMin().elem, nil
}

// FindMax returns the largest element, or ErrEmptyTree.
func (t *Tree[T]) FindMax() (T, error) {
	if t.IsEmpty() {
		var zero T
		return zero, ErrEmptyTree
	}
	return t.root.findMax().elem, nil
}

func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// MakeEmpty drops every element.
func (t *Tree[T]) MakeEmpty() {
	t.root = nil
}

// insert returns the new root of the subtree n; the tree is modified in
// place except when n is nil.
func (n *node[T]) insert(x T) *node[T] {
	if n == nil {
		return singleton(x)
	}
	if x < n.elem {
		n.left = n.left.insert(x)
	} else if n.elem < x {
		n.right = n.right.insert(x)
	}
	// if n.elem == x then x is already present
	return n
}

// remove returns the new root of the subtree n with x removed.
//
// A node with two children takes over the minimum of its right subtree, and
// that minimum (which has no left child) is removed instead.
func (n *node[T]) remove(x T) *node[T] {
	if n == nil {
		return n
	}
	if x < n.elem {
		n.left = n.left.remove(x)
	} else if n.elem < x {
		n.right = n.right.remove(x)
	} else if n.left != nil && n.right != nil {
		n.elem = n.right.findMin().elem
		n.right = n.right.remove(n.elem)
	} else if n.left != nil {
		return n.left
	} else {
		return n.right
	}
	return n
}

func (n *node[T]) contains(x T) bool {
	if n == nil {
		return false
	}
	if x == n.elem {
		return true
	}
	if x < n.elem {
		return n.left.contains(x)
	}
	return n.right.contains(x)
}

func (n *node[T]) findMin() *node[T] {
	if n == nil || n.left == nil {
		return n
	}
	return n.left.findMin()
}

func (n *node[T]) findMax() *node[T] {
	if n != nil {
		for n.right != nil {
			n = n.right
		}
	}
	return n
}
