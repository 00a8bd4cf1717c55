package mcbs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bipenum/mcbs"
	"github.com/katalvlaran/bipenum/revsearch"
)

func BenchmarkEnumerate_Fixture(b *testing.B) {
	g := fixture()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := mcbs.Enumerate(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEnumerate_Random16(b *testing.B) {
	g := randomGraph(rand.New(rand.NewSource(1)), 16, 0.3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mcbs.Enumerate(g, mcbs.WithSearchOptions(revsearch.WithDiscardSolutions())); err != nil {
			b.Fatal(err)
		}
	}
}
