package main

import (
	"flag"
	"fmt"

	"github.com/katalvlaran/bipenum/revsearch"
)

// memoryDB selects an in-memory badger index for -db.
const memoryDB = ":memory:"

type config struct {
	gen      string
	seed     int64
	oneBased bool
	loops    bool
	order    string
	db       string
	max      int
	verify   bool
	edges    bool
	dump     bool
	input    string

	emit revsearch.EmitOrder
}

func defaultConfig() *config {
	return &config{order: "discovery", seed: 1}
}

func (c *config) register(fset *flag.FlagSet) {
	fset.StringVar(&c.gen, "gen", c.gen, "generate the graph instead of reading it, e.g. cycle:7, grid:3,4, random:12,0.3")
	fset.Int64Var(&c.seed, "seed", c.seed, "RNG seed for random:/regular: generators")
	fset.BoolVar(&c.oneBased, "one-based", c.oneBased, "read and print vertex labels starting at 1")
	fset.BoolVar(&c.loops, "loops", c.loops, "accept self-loops in the input (looped vertices are never part of a solution)")
	fset.StringVar(&c.order, "order", c.order, "emission order: discovery or alternating")
	fset.StringVar(&c.db, "db", c.db, "keep the discovery index in badger at this directory ("+memoryDB+" for in-memory)")
	fset.IntVar(&c.max, "max", c.max, "stop after this many solutions (0 = all)")
	fset.BoolVar(&c.verify, "verify", c.verify, "check every solution is maximal, connected and bipartite")
	fset.BoolVar(&c.edges, "edges", c.edges, "print the discovery edges after the solutions")
	fset.BoolVar(&c.dump, "dump", c.dump, "print the graph in edge-list form and exit")
}

// finish validates flag combinations and picks up the positional file.
func (c *config) finish(args []string) error {
	switch c.order {
	case "discovery":
		c.emit = revsearch.DiscoveryOrder
	case "alternating":
		c.emit = revsearch.AlternatingOrder
	default:
		return fmt.Errorf("-order %q: want discovery or alternating", c.order)
	}
	if c.max < 0 {
		return fmt.Errorf("-max %d: must not be negative", c.max)
	}
	switch {
	case len(args) > 1:
		return fmt.Errorf("at most one input file, got %d", len(args))
	case len(args) == 1 && c.gen != "":
		return fmt.Errorf("-gen and an input file are exclusive")
	case len(args) == 1:
		c.input = args[0]
	}

	return nil
}
