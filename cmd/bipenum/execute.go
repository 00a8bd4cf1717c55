package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/bipenum/builder"
	"github.com/katalvlaran/bipenum/core"
	"github.com/katalvlaran/bipenum/graphio"
	"github.com/katalvlaran/bipenum/index"
	"github.com/katalvlaran/bipenum/mcbs"
	"github.com/katalvlaran/bipenum/revsearch"
	"github.com/katalvlaran/bipenum/vset"
	"github.com/plan-systems/klog"
)

// execute loads the graph, runs the enumeration and prints the results.
func execute(cfg *config, stdin io.Reader, out io.Writer) error {
	g, err := loadGraph(cfg, stdin)
	if err != nil {
		return err
	}
	klog.V(1).Infof("graph: %d vertices, %d edges, %d loops", g.Order(), g.Size(), g.Loops())

	if cfg.dump {
		var opts []graphio.Option
		if cfg.oneBased {
			opts = append(opts, graphio.WithOneBased())
		}
		return graphio.Write(out, g, opts...)
	}

	search := []revsearch.Option{
		revsearch.WithEmitOrder(cfg.emit),
		revsearch.WithMaxSolutions(cfg.max),
		revsearch.WithOnDiscover(func(idx, depth int, key string) error {
			klog.V(2).Infof("discover #%d depth=%d %s", idx, depth, vset.Identity(key))
			return nil
		}),
	}
	if cfg.db != "" {
		x, err := openIndex(cfg.db)
		if err != nil {
			return err
		}
		defer x.Close()
		search = append(search, revsearch.WithIndex(x))
	}

	label := labeler(cfg.oneBased)
	res, err := mcbs.Enumerate(g,
		mcbs.WithSearchOptions(search...),
		mcbs.WithOnSolution(func(_ int, s vset.Set) error {
			_, err := fmt.Fprintf(out, "maximal: %s\n", label(s))
			return err
		}),
		mcbs.WithOnDuplicate(func(parent, child int, s vset.Set) error {
			_, err := fmt.Fprintf(out, "duplicated: %s\n", label(s))
			return err
		}),
		mcbs.WithOnClosure(func(seed, closed vset.Set) {
			klog.V(3).Infof("closure %s -> %s", label(seed), label(closed))
		}),
		mcbs.WithOnBipartition(func(s, side0, side1 vset.Set) {
			klog.V(3).Infof("bipartition %s: b_0=%s b_1=%s", label(s), label(side0), label(side1))
		}),
	)
	if err != nil {
		return fmt.Errorf("enumerate: %w", err)
	}
	klog.V(1).Infof("done: %d solutions, %d expansions, %d edges, truncated=%v",
		res.Count, res.Expansions, len(res.Edges), res.Truncated)

	if cfg.edges {
		for _, e := range res.Edges {
			if _, err := fmt.Fprintf(out, "edge: %d -> %d %s\n", e.Parent, e.Child, e.Kind); err != nil {
				return err
			}
		}
	}
	if cfg.verify {
		for i, s := range res.Solutions {
			if err := mcbs.Verify(g, s); err != nil {
				return fmt.Errorf("verify #%d: %w", i, err)
			}
		}
		klog.V(1).Infof("verified %d solutions", len(res.Solutions))
	}

	return nil
}

func loadGraph(cfg *config, stdin io.Reader) (*core.Graph, error) {
	var gopts []core.GraphOption
	if cfg.loops {
		gopts = append(gopts, core.WithLoops())
	}

	if cfg.gen != "" {
		ctor, err := builder.Parse(cfg.gen)
		if err != nil {
			return nil, fmt.Errorf("-gen: %w", err)
		}
		return builder.BuildGraph(gopts, []builder.BuilderOption{builder.WithSeed(cfg.seed)}, ctor)
	}

	opts := []graphio.Option{graphio.WithGraphOptions(gopts...)}
	if cfg.oneBased {
		opts = append(opts, graphio.WithOneBased())
	}
	if cfg.input == "" || cfg.input == "-" {
		return graphio.Read("stdin", stdin, opts...)
	}

	return graphio.ReadFile(cfg.input, opts...)
}

func openIndex(db string) (index.Index, error) {
	if db == memoryDB {
		return index.OpenBadger(index.BadgerOptions{InMemory: true})
	}
	klog.V(1).Infof("discovery index at %s", db)

	return index.OpenBadger(index.BadgerOptions{Dir: db})
}

// labeler renders sets as "[a b c]", shifted by one for -one-based.
func labeler(oneBased bool) func(vset.Set) string {
	if !oneBased {
		return vset.Set.String
	}
	return func(s vset.Set) string {
		return s.Format(1)
	}
}
