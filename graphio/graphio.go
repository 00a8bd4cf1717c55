package graphio

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/bipenum/core"
	"github.com/pkg/errors"
)

var (
	// ErrSyntax reports input that does not match the edge-list grammar.
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrBadLabel reports a vertex label outside the declared or allowed range.
	ErrBadLabel = errors.New("graphio: bad vertex label")
)

// Option configures Read and Write.
type Option func(*options)

type options struct {
	oneBased bool
	gopts    []core.GraphOption
}

// WithOneBased shifts labels so that the file's 1 is vertex 0.
func WithOneBased() Option {
	return func(o *options) { o.oneBased = true }
}

// WithGraphOptions forwards options to core.NewGraph, e.g. core.WithLoops.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *options) { o.gopts = append(o.gopts, opts...) }
}

// ReadString parses src.
func ReadString(src string, opts ...Option) (*core.Graph, error) {
	return read("", func(name string) (*fileExpr, error) {
		return parseEdgeList.ParseString(name, src)
	}, opts)
}

// Read parses everything from r; name is used in error positions.
func Read(name string, r io.Reader, opts ...Option) (*core.Graph, error) {
	return read(name, func(name string) (*fileExpr, error) {
		return parseEdgeList.Parse(name, r)
	}, opts)
}

// ReadFile parses the file at path.
func ReadFile(path string, opts ...Option) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: read %s", path)
	}

	return read(path, func(name string) (*fileExpr, error) {
		return parseEdgeList.ParseBytes(name, data)
	}, opts)
}

func read(name string, parse func(string) (*fileExpr, error), opts []Option) (*core.Graph, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	expr, err := parse(name)
	if err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}

	return o.build(expr)
}

func (o *options) label(raw int) (int, bool) {
	if !o.oneBased {
		return raw, true
	}
	return raw - 1, raw >= 1
}

// build converts the parse tree into a graph.
func (o *options) build(expr *fileExpr) (*core.Graph, error) {
	order, declared := 0, false
	if expr.Header != nil {
		order, declared = expr.Header.Order, true
	}

	var edges []core.Edge
	maxLabel := -1
	for _, run := range expr.Runs {
		labels := append([]int{run.Start}, run.Next...)
		prev := -1
		for i, raw := range labels {
			v, ok := o.label(raw)
			if !ok || (declared && v >= order) {
				return nil, errors.Wrapf(ErrBadLabel, "%s: label %d", run.Pos, raw)
			}
			if v > maxLabel {
				maxLabel = v
			}
			if i > 0 {
				edges = append(edges, core.Edge{U: prev, V: v})
			}
			prev = v
		}
	}
	if !declared {
		order = maxLabel + 1
	}

	g, err := core.NewGraph(order, edges, o.gopts...)
	if err != nil {
		return nil, errors.WithMessage(err, "graphio")
	}

	return g, nil
}

// Write prints g in the format Read accepts: the header, then one edge per
// line in canonical order, then any isolated vertices.
func Write(w io.Writer, g *core.Graph, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	shift := 0
	if o.oneBased {
		shift = 1
	}

	if _, err := fmt.Fprintf(w, "vertices %d\n", g.Order()); err != nil {
		return errors.Wrap(err, "graphio: write")
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "%d-%d\n", e.U+shift, e.V+shift); err != nil {
			return errors.Wrap(err, "graphio: write")
		}
	}
	for v := 0; v < g.Order(); v++ {
		if g.Degree(v) > 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%d\n", v+shift); err != nil {
			return errors.Wrap(err, "graphio: write")
		}
	}

	return nil
}
