package triangle_test

import (
	"fmt"

	"github.com/katalvlaran/lvtruss/builder"
	"github.com/katalvlaran/lvtruss/triangle"
)

// ExampleList lists the four triangles of K4.
func ExampleList() {
	g, _ := builder.BuildGraph(nil, nil, builder.Complete(4))

	tris, _ := triangle.List(g)
	for _, t := range tris {
		fmt.Println(t.A, t.B, t.C)
	}
	// Output:
	// 0 1 2
	// 0 1 3
	// 0 2 3
	// 1 2 3
}

// ExampleUnpack shows the pair order consumed by support counting.
func ExampleUnpack() {
	fmt.Println(triangle.Unpack([]triangle.Triangle{{A: 3, B: 6, C: 11}}))
	// Output: [[3 6] [6 11] [3 11]]
}
