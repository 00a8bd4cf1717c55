package builder_test

import (
	"testing"

	"github.com/katalvlaran/bipenum/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		expr  string
		wantV int
		wantE int
	}{
		{"path:3", 3, 2},
		{"CYCLE:5", 5, 5},
		{"star:4", 4, 3},
		{"wheel:5", 5, 8},
		{"complete:4", 4, 6},
		{"bipartite:2,3", 5, 6},
		{"grid:2, 2", 4, 4},
		{"platonic:cube", 8, 12},
		{"platonic:Tetrahedron,center", 5, 10},
		{"random:5,1", 5, 10},
		{"regular:6,2", 6, 6},
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			ctor, err := builder.Parse(tc.expr)
			require.NoError(t, err)
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.Order())
			assert.Equal(t, tc.wantE, g.Size())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		expr string
		want error
	}{
		{"hypercube:3", builder.ErrUnknownKind},
		{"", builder.ErrUnknownKind},
		{"cycle", builder.ErrOptionViolation},
		{"cycle:x", builder.ErrOptionViolation},
		{"grid:3", builder.ErrOptionViolation},
		{"random:5", builder.ErrOptionViolation},
		{"random:5,half", builder.ErrOptionViolation},
		{"platonic:sphere", builder.ErrOptionViolation},
		{"platonic:cube,hub", builder.ErrOptionViolation},
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			_, err := builder.Parse(tc.expr)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
