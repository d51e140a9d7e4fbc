package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/katalvlaran/lvtruss/core"
	"github.com/katalvlaran/lvtruss/truss"
)

// decomposeOpts holds the flags shared by demo and run.
type decomposeOpts struct {
	summary  bool  // render the level table on stderr
	seed     int64 // random pop order seed
	seeded   bool  // seed was given explicitly
	maxEdges int   // overrides limits.max_edges when ≥ 0
	maxTris  int   // overrides limits.max_triangles when ≥ 0
}

// decomposeAndWrite runs truss.Trussness on g and writes the CSV to out.
func decomposeAndWrite(ctx context.Context, g *core.Graph, out, errOut io.Writer, opts decomposeOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	maxEdges := cfg.Limits.MaxEdges
	if opts.maxEdges >= 0 {
		maxEdges = opts.maxEdges
	}
	maxTris := cfg.Limits.MaxTriangles
	if opts.maxTris >= 0 {
		maxTris = opts.maxTris
	}
	topts := []truss.Option{
		truss.WithLogger(logger),
		truss.WithMaxEdges(maxEdges),
		truss.WithMaxTriangles(maxTris),
	}
	if opts.seeded {
		topts = append(topts, truss.WithRand(rand.New(rand.NewSource(opts.seed))))
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	prog := newProgress(logger)
	values, err := truss.Trussness(g, topts...)
	if err != nil {
		return fmt.Errorf("decompose: %w", err)
	}
	prog.done("Decomposed graph",
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"maxTruss", truss.MaxTruss(values),
	)

	if err := writeCSV(out, g, values, cfg.Output); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	if (opts.summary || cfg.Output.Summary) && len(values) > 0 {
		comps, err := levelComponents(ctx, g, values)
		if err != nil {
			return fmt.Errorf("summary: %w", err)
		}
		fmt.Fprintln(errOut, renderLevels(values, comps))
	}

	return nil
}
