package bst

import (
	"fmt"
	"io"

	"github.com/Zelanias/Algo/queue"
)

// WalkSorted calls f on every element in increasing order until f returns
// false. The tree must not be modified during the walk.
func (t *Tree[T]) WalkSorted(f func(T) bool) {
	t.root.inOrder(f)
}

// inOrder reports whether the walk should continue.
func (n *node[T]) inOrder(f func(T) bool) bool {
	if n == nil {
		return true
	}
	return n.left.inOrder(f) && f(n.elem) && n.right.inOrder(f)
}

// WalkLevels calls f on every element in level order (root first, then each
// level left to right) until f returns false. The tree must not be modified
// during the walk.
func (t *Tree[T]) WalkLevels(f func(T) bool) {
	if t.root == nil {
		return
	}
	q := queue.NewQueue[*node[T]]()
	q.Push(t.root)
	for {
		n, ok := q.Pop()
		if !ok {
			break
		}
		if n.left != nil {
			q.Push(n.left)
		}
		if n.right != nil {
			q.Push(n.right)
		}
		if !f(n.elem) {
			return
		}
	}
}

func (t *Tree[T]) Sorted() []T {
	out := make([]T, 0)
	t.WalkSorted(func(x T) bool {
		out = append(out, x)
		return true
	})
	return out
}

func (t *Tree[T]) Levels() []T {
	out := make([]T, 0)
	t.WalkLevels(func(x T) bool {
		out = append(out, x)
		return true
	})
	return out
}

// PrintSorted writes one element per line in increasing order, or "Empty
// tree" if there are none.
func (t *Tree[T]) PrintSorted(w io.Writer) error {
	if t.IsEmpty() {
		_, err := fmt.Fprintln(w, "Empty tree")
		return err
	}
	var err error
	t.WalkSorted(func(x T) bool {
		_, err = fmt.Fprintln(w, x)
		return err == nil
	})
	return err
}

// PrintLevels writes the elements in level order on a single line, each
// followed by a space. Nothing is written for an empty tree.
func (t *Tree[T]) PrintLevels(w io.Writer) error {
	if t.IsEmpty() {
		return nil
	}
	var err error
	t.WalkLevels(func(x T) bool {
		_, err = fmt.Fprintf(w, "%v ", x)
		return err == nil
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}
