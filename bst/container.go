package bst

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
)

var _ containers.Container = (*Tree[int])(nil)

// Empty is IsEmpty under the gods container name.
func (t *Tree[T]) Empty() bool {
	return t.IsEmpty()
}

// Size is NodeCount under the gods container name.
func (t *Tree[T]) Size() int {
	return t.NodeCount()
}

// Clear is MakeEmpty under the gods container name.
func (t *Tree[T]) Clear() {
	t.MakeEmpty()
}

// Values returns the elements in increasing order.
func (t *Tree[T]) Values() []interface{} {
	values := make([]interface{}, 0)
	t.WalkSorted(func(x T) bool {
		values = append(values, x)
		return true
	})
	return values
}

// String returns the elements in level order, which unlike Values shows the
// shape of the tree.
func (t *Tree[T]) String() string {
	str := "BinarySearchTree\n"
	levels := []string{}
	t.WalkLevels(func(x T) bool {
		levels = append(levels, fmt.Sprintf("%v", x))
		return true
	})
	str += strings.Join(levels, ", ")
	return str
}
