// Package truss_test provides benchmarks for truss decomposition.
package truss_test

import (
	"testing"

	"github.com/katalvlaran/lvtruss/builder"
	"github.com/katalvlaran/lvtruss/truss"
)

// BenchmarkTrussness_Sparse measures the full pipeline on G(2000, 0.01).
func BenchmarkTrussness_Sparse(b *testing.B) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(2000, 0.01))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = truss.Trussness(g)
	}
}

// BenchmarkTrussness_Clique measures the dense worst case on K_80.
func BenchmarkTrussness_Clique(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(80))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = truss.Trussness(g)
	}
}
