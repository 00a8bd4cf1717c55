// SPDX-License-Identifier: MIT
// Package: bipenum/builder
//
// parse.go - textual constructor specs for the command line.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse maps "kind:arg,arg,..." onto a Constructor. Kinds (case-insensitive):
//
//	path:n  cycle:n  star:n  wheel:n  complete:n
//	bipartite:n1,n2  grid:rows,cols
//	platonic:name[,center]      e.g. platonic:cube,center
//	random:n,p  regular:n,deg   (need WithSeed / WithRand)
//
// Errors: ErrUnknownKind, or ErrOptionViolation for malformed arguments.
func Parse(expr string) (Constructor, error) {
	kind, rest, _ := strings.Cut(strings.TrimSpace(expr), ":")
	var args []string
	if rest != "" {
		args = strings.Split(rest, ",")
	}

	ints := func(want int) ([]int, error) {
		if len(args) != want {
			return nil, fmt.Errorf("%q: want %d arguments, got %d: %w", expr, want, len(args), ErrOptionViolation)
		}
		out := make([]int, want)
		for i, a := range args {
			v, err := strconv.Atoi(strings.TrimSpace(a))
			if err != nil {
				return nil, fmt.Errorf("%q: argument %d: %w: %w", expr, i+1, ErrOptionViolation, err)
			}
			out[i] = v
		}
		return out, nil
	}
	unary := map[string]func(int) Constructor{
		"path":     Path,
		"cycle":    Cycle,
		"star":     Star,
		"wheel":    Wheel,
		"complete": Complete,
	}
	binary := map[string]func(int, int) Constructor{
		"bipartite": CompleteBipartite,
		"grid":      Grid,
		"regular":   RandomRegular,
	}

	kind = strings.ToLower(kind)
	if fn, ok := unary[kind]; ok {
		v, err := ints(1)
		if err != nil {
			return nil, err
		}
		return fn(v[0]), nil
	}
	if fn, ok := binary[kind]; ok {
		v, err := ints(2)
		if err != nil {
			return nil, err
		}
		return fn(v[0], v[1]), nil
	}

	switch kind {
	case "random":
		if len(args) != 2 {
			return nil, fmt.Errorf("%q: want n,p: %w", expr, ErrOptionViolation)
		}
		n, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil {
			return nil, fmt.Errorf("%q: n: %w: %w", expr, ErrOptionViolation, err)
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: p: %w: %w", expr, ErrOptionViolation, err)
		}
		return RandomSparse(n, p), nil

	case "platonic":
		if len(args) < 1 || len(args) > 2 {
			return nil, fmt.Errorf("%q: want name[,center]: %w", expr, ErrOptionViolation)
		}
		name, ok := platonicByName(strings.TrimSpace(args[0]))
		if !ok {
			return nil, fmt.Errorf("%q: unknown solid: %w", expr, ErrOptionViolation)
		}
		center := false
		if len(args) == 2 {
			if strings.TrimSpace(args[1]) != "center" {
				return nil, fmt.Errorf("%q: second argument must be \"center\": %w", expr, ErrOptionViolation)
			}
			center = true
		}
		return PlatonicSolid(name, center), nil
	}

	return nil, fmt.Errorf("%q: %w", expr, ErrUnknownKind)
}
