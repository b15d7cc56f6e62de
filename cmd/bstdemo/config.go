package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const (
	cfgConfigFile = "config"
	cfgValues     = "values"
	cfgRemove     = "remove"
	cfgRotate     = "rotate"
	cfgOrder      = "order"
	cfgLogLevel   = "log-level"

	orderSorted = "sorted"
	orderLevels = "levels"
	orderBoth   = "both"
)

type rotation struct {
	right bool
	elem  int
}

func (r rotation) String() string {
	if r.right {
		return fmt.Sprintf("right:%d", r.elem)
	}
	return fmt.Sprintf("left:%d", r.elem)
}

type config struct {
	values    []int
	remove    []int
	rotations []rotation
	order     string
	logLevel  string
}

// loadConfig reads the settings from v, which has the command flags bound.
func loadConfig(v *viper.Viper) (config, error) {
	var cfg config
	var err error

	if cfg.values, err = parseInts(v.GetStringSlice(cfgValues)); err != nil {
		return cfg, fmt.Errorf("%s: %w", cfgValues, err)
	}
	if cfg.remove, err = parseInts(v.GetStringSlice(cfgRemove)); err != nil {
		return cfg, fmt.Errorf("%s: %w", cfgRemove, err)
	}
	for _, s := range splitList(v.GetStringSlice(cfgRotate)) {
		r, err := parseRotation(s)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", cfgRotate, err)
		}
		cfg.rotations = append(cfg.rotations, r)
	}

	cfg.order = v.GetString(cfgOrder)
	switch cfg.order {
	case orderSorted, orderLevels, orderBoth:
	default:
		return cfg, fmt.Errorf("%s: unknown order %q", cfgOrder, cfg.order)
	}
	cfg.logLevel = v.GetString(cfgLogLevel)
	return cfg, nil
}

// splitList flattens entries that still hold commas, as a list read from an
// environment variable does.
func splitList(ss []string) []string {
	var out []string
	for _, s := range ss {
		for _, f := range strings.Split(s, ",") {
			if f = strings.TrimSpace(f); f != "" {
				out = append(out, f)
			}
		}
	}
	return out
}

func parseInts(ss []string) ([]int, error) {
	var out []int
	for _, s := range splitList(ss) {
		x, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}

// parseRotation parses "right:X" or "left:X".
func parseRotation(s string) (rotation, error) {
	dir, elem, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return rotation{}, fmt.Errorf("malformed rotation %q, want right:X or left:X", s)
	}
	x, err := strconv.Atoi(elem)
	if err != nil {
		return rotation{}, fmt.Errorf("rotation %q: %w", s, err)
	}
	switch dir {
	case "right":
		return rotation{right: true, elem: x}, nil
	case "left":
		return rotation{right: false, elem: x}, nil
	}
	return rotation{}, fmt.Errorf("rotation %q: unknown direction %q", s, dir)
}
