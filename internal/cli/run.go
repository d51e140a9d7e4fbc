package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtruss/core"
)

// newRunCmd creates the run command, which decomposes an edge list.
// The argument "-" reads the list from stdin.
func newRunCmd() *cobra.Command {
	opts := decomposeOpts{maxEdges: -1, maxTris: -1}

	cmd := &cobra.Command{
		Use:   "run <edge-list|->",
		Short: "Decompose an edge list and print fromNode,toNode,truss rows",
		Long: `run reads one "u v" pair per line (whitespace or comma separated,
'#' comments allowed). Vertex IDs are non-negative integers; repeated pairs
are kept as parallel edges.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadEdgeList(cmd.Context(), args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			opts.seeded = cmd.Flags().Changed("seed")
			return decomposeAndWrite(cmd.Context(), g, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	addDecomposeFlags(cmd, &opts)
	return cmd
}

// loadEdgeList reads path, or stdin when path is "-".
func loadEdgeList(ctx context.Context, path string, stdin io.Reader) (*core.Graph, error) {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	prog := newProgress(logger)
	g, err := readEdgeList(r, cfg.Limits.MaxVertices)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	prog.done("Loaded edge list", append([]any{"path", path}, describe(g)...)...)

	return g, nil
}
