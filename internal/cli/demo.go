package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtruss/builder"
	"github.com/katalvlaran/lvtruss/core"
)

// demoEdges is a 5-clique on 0..4 attached through 3, 4 and 6 to a second
// community on 5..9 that contains the 4-clique {5,7,8,9}; 10 and 11 hang off
// both sides.
var demoEdges = [][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4},
	{3, 6}, {3, 11}, {4, 5}, {4, 6}, {5, 6}, {5, 7}, {5, 8}, {5, 9}, {6, 7},
	{6, 10}, {6, 11}, {7, 8}, {7, 9}, {8, 9}, {8, 10},
}

// demoGraph builds the 12-vertex demo graph.
func demoGraph() (*core.Graph, error) {
	return builder.BuildGraph(nil, nil, builder.Vertices(12), builder.Edges(demoEdges...))
}

// newDemoCmd creates the demo command, which decomposes the built-in graph.
func newDemoCmd() *cobra.Command {
	opts := decomposeOpts{maxEdges: -1, maxTris: -1}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Decompose the built-in 12-vertex demo graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := demoGraph()
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("Demo graph", describe(g)...)
			opts.seeded = cmd.Flags().Changed("seed")
			return decomposeAndWrite(cmd.Context(), g, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	addDecomposeFlags(cmd, &opts)
	return cmd
}

// addDecomposeFlags registers the flags shared by demo and run.
func addDecomposeFlags(cmd *cobra.Command, opts *decomposeOpts) {
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "print a per-level table to stderr")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "pop edges in random order seeded with this value")
	cmd.Flags().IntVar(&opts.maxEdges, "max-edges", -1, "refuse graphs with more edges (0 = unlimited, default from config)")
	cmd.Flags().IntVar(&opts.maxTris, "max-triangles", -1, "refuse graphs with more triangle instances (0 = unlimited, default from config)")
}
