// Package triangle_test provides benchmarks for triangle enumeration.
package triangle_test

import (
	"testing"

	"github.com/katalvlaran/lvtruss/builder"
	"github.com/katalvlaran/lvtruss/triangle"
)

// BenchmarkCount_Sparse measures counting on G(2000, 0.01).
func BenchmarkCount_Sparse(b *testing.B) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(2000, 0.01))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = triangle.Count(g)
	}
}

// BenchmarkList_Complete measures listing all triangles of K_60.
func BenchmarkList_Complete(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(60))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = triangle.List(g)
	}
}
