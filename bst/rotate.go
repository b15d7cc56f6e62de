package bst

import (
	"fmt"

	"github.com/goose-lang/primitive"
)

// find returns the node holding x in the subtree n, or nil.
func (n *node[T]) find(x T) *node[T] {
	if n == nil {
		return nil
	}
	if x < n.elem {
		return n.left.find(x)
	}
	if n.elem < x {
		return n.right.find(x)
	}
	return n
}

// findParent returns the node whose left or right child holds x. It returns
// nil if x is absent or sits at n itself.
func (n *node[T]) findParent(x T) *node[T] {
	if n == nil {
		return nil
	}
	if (n.left != nil && n.left.elem == x) || (n.right != nil && n.right.elem == x) {
		return n
	}
	if x < n.elem {
		return n.left.findParent(x)
	}
	if n.elem < x {
		return n.right.findParent(x)
	}
	return nil
}

// linkTo returns the link that points at s: the root, or the matching child
// slot of s's parent. s must be in the tree.
func (t *Tree[T]) linkTo(s *node[T]) **node[T] {
	if s == t.root {
		return &t.root
	}
	p := t.root.findParent(s.elem)
	primitive.Assert(p != nil)
	if p.left == s {
		return &p.left
	}
	primitive.Assert(p.right == s)
	return &p.right
}

// RotateRight promotes the left child of the node holding x into that node's
// place:
//
//	    x          l
//	   / \        / \
//	  l   c  ->  a   x
//	 / \            / \
//	a   b          b   c
//
// It fails without modifying the tree if x is absent or has no left child.
func (t *Tree[T]) RotateRight(x T) error {
	s := t.root.find(x)
	if s == nil || s.left == nil {
		return fmt.Errorf("rotate right at %v: cannot rotate right without a left child: %w", x, ErrRotation)
	}
	link := t.linkTo(s)
	l := s.left
	s.left = l.right
	l.right = s
	*link = l
	return nil
}

// RotateLeft is the mirror image of RotateRight: the right child of the node
// holding x is promoted. It fails without modifying the tree if x is absent
// or has no right child.
func (t *Tree[T]) RotateLeft(x T) error {
	s := t.root.find(x)
	if s == nil || s.right == nil {
		return fmt.Errorf("rotate left at %v: cannot rotate left without a right child: %w", x, ErrRotation)
	}
	link := t.linkTo(s)
	r := s.right
	s.right = r.left
	r.left = s
	*link = r
	return nil
}
