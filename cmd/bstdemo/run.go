package main

import (
	"fmt"
	"io"

	"github.com/Zelanias/Algo/bst"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func run(cfg config, out io.Writer, logger log.Logger) error {
	tree := bst.New[int]()
	for _, x := range cfg.values {
		tree.Insert(x)
	}
	for _, x := range cfg.remove {
		tree.Remove(x)
	}
	level.Debug(logger).Log("msg", "built tree", "inserted", len(cfg.values), "removed", len(cfg.remove), "size", tree.NodeCount())

	for _, r := range cfg.rotations {
		var err error
		if r.right {
			err = tree.RotateRight(r.elem)
		} else {
			err = tree.RotateLeft(r.elem)
		}
		if err != nil {
			level.Warn(logger).Log("msg", "rotation skipped", "rotation", r, "err", err)
			continue
		}
		level.Debug(logger).Log("msg", "rotated", "rotation", r)
	}

	if cfg.order == orderSorted || cfg.order == orderBoth {
		fmt.Fprintln(out, "Sorted")
		if err := tree.PrintSorted(out); err != nil {
			return err
		}
	}
	if cfg.order == orderLevels || cfg.order == orderBoth {
		fmt.Fprintln(out, "Levels")
		if err := tree.PrintLevels(out); err != nil {
			return err
		}
	}

	if lo, err := tree.FindMin(); err == nil {
		hi, _ := tree.FindMax()
		fmt.Fprintf(out, "Min: %d Max: %d\n", lo, hi)
	} else {
		level.Info(logger).Log("msg", "tree is empty")
	}

	cp := tree.Copy()
	m := tree.Mirror()
	fmt.Fprintf(out, "Node count: %d\n", tree.NodeCount())
	fmt.Fprintf(out, "Fullness = %t\n", tree.IsFull())
	fmt.Fprintf(out, "Structure state = %t\n", tree.CompareStructure(cp))
	fmt.Fprintf(out, "Equal? %t\n", tree.Equals(cp))
	fmt.Fprintf(out, "Is mirror? %t\n", tree.IsMirror(m))
	_, err := fmt.Fprintf(out, "Mirrored levels: %v\n", m.Levels())
	return err
}
