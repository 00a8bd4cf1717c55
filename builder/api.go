// SPDX-License-Identifier: MIT
// Package: bipenum/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.
//
// Same inputs, options, seed and constructor order give identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bipenum/core"
)

// Constructor writes a topology into d using the resolved builderConfig.
// Constructors validate parameters before touching d and never panic.
type Constructor func(d *Draft, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order to a fresh Draft and freezes it with gopts.
//
// Errors:
//   - constructor errors, wrapped as "BuildGraph: %w"
//   - ErrConstructFailed for a nil constructor or a draft core rejects
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	d := NewDraft()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := d.Graph(gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}

// edgeWriter forwards edges to d and stops at the first failure, tagging
// it with the constructor name.
type edgeWriter struct {
	d      *Draft
	method string
	err    error
}

func (w *edgeWriter) add(u, v int) {
	if w.err != nil {
		return
	}
	if _, err := w.d.AddEdge(u, v); err != nil {
		w.err = fmt.Errorf("%s: %w", w.method, err)
	}
}
