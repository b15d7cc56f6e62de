package bst_test

import (
	"slices"
	"testing"

	"github.com/Zelanias/Algo/bst"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// small values so that inserts and removes collide often
func valuesGen() *rapid.Generator[[]int] {
	return rapid.SliceOfN(rapid.IntRange(-30, 30), 0, 60)
}

type op struct {
	insert bool
	x      int
}

func opsGen() *rapid.Generator[[]op] {
	return rapid.SliceOf(rapid.Custom(func(t *rapid.T) op {
		return op{
			insert: rapid.Float64Range(0, 1).Draw(t, "p") < 0.7,
			x:      rapid.IntRange(-30, 30).Draw(t, "x"),
		}
	}))
}

func TestOrderingProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		tree := bst.New[int]()
		set := treeset.NewWithIntComparator()

		for _, o := range opsGen().Draw(t, "ops") {
			if o.insert {
				tree.Insert(o.x)
				set.Add(o.x)
			} else {
				tree.Remove(o.x)
				set.Remove(o.x)
			}
			assert.Equal(o.insert, tree.Contains(o.x))
		}

		sorted := tree.Sorted()
		assert.True(slices.IsSorted(sorted), "in-order walk is not sorted")
		assert.Len(slices.Compact(slices.Clone(sorted)), len(sorted), "duplicates in tree")
		assert.Equal(set.Values(), tree.Values())
		assert.Equal(set.Size(), tree.NodeCount())
		assert.ElementsMatch(sorted, tree.Levels())
	})
}

func TestNoDuplicateProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		values := valuesGen().Filter(func(v []int) bool { return len(v) > 0 }).Draw(t, "values")
		tree := fromValues(values...)
		levels, count := tree.Levels(), tree.NodeCount()

		again := rapid.SampledFrom(values).Draw(t, "again")
		tree.Insert(again)
		assert.Equal(count, tree.NodeCount())
		assert.Equal(levels, tree.Levels())
	})
}

func TestCopyProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		tree := fromValues(valuesGen().Draw(t, "values")...)
		sorted := tree.Sorted()

		cp := tree.Copy()
		assert.True(cp.Equals(tree))
		assert.True(cp.CompareStructure(tree))
		assert.Equal(sorted, cp.Sorted())

		x := rapid.IntRange(-40, 40).Draw(t, "x")
		tree.Insert(x)
		tree.Remove(rapid.IntRange(-30, 30).Draw(t, "y"))
		assert.Equal(sorted, cp.Sorted(), "copy followed the source")

		after := tree.Sorted()
		cp.MakeEmpty()
		assert.Equal(after, tree.Sorted(), "source followed the copy")
	})
}

func TestMirrorProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		tree := fromValues(valuesGen().Draw(t, "values")...)

		m := tree.Mirror()
		assert.True(tree.IsMirror(m))
		assert.True(m.IsMirror(tree))
		assert.Equal(tree.NodeCount(), m.NodeCount())
		assert.Equal(tree.IsFull(), m.IsFull())

		reversed := tree.Sorted()
		slices.Reverse(reversed)
		assert.Equal(reversed, m.Sorted())

		mm := m.Mirror()
		assert.Equal(tree.Sorted(), mm.Sorted())
		assert.True(mm.Equals(tree))
	})
}

func TestStructureProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		values := valuesGen().Filter(func(v []int) bool { return len(v) > 0 }).Draw(t, "values")
		shift := rapid.IntRange(100, 1000).Draw(t, "shift")

		a := bst.New[int]()
		b := bst.New[int]()
		for _, v := range values {
			a.Insert(v)
			b.Insert(v + shift)
		}
		// shifting every value keeps the order, so the shape is the same
		assert.True(a.CompareStructure(b))
		assert.False(a.Equals(b))
	})
}

func TestIsFullProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := rapid.IntRange(0, 6).Draw(t, "height")
		n := 1<<(h+1) - 1

		// insert midpoints first to build a perfect tree over 1..n
		tree := bst.New[int]()
		var build func(lo, hi int)
		build = func(lo, hi int) {
			if lo > hi {
				return
			}
			mid := (lo + hi) / 2
			tree.Insert(mid)
			build(lo, mid-1)
			build(mid+1, hi)
		}
		build(1, n)
		assert.True(t, tree.IsFull())

		tree.Remove(rapid.IntRange(1, n).Draw(t, "removed"))
		assert.Equal(t, h == 0, tree.IsFull())
	})
}
