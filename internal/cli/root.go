package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// The main package calls it with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the trusscsv CLI with args and returns the first command error.
//
// Logging:
//   - Default: level from the config file (info unless set)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context, args []string) error {
	root := newRootCmd()
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Output streams default to the
// process streams and can be redirected with SetOut/SetErr/SetIn.
func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "trusscsv",
		Short:         "trusscsv computes edge trussness of undirected graphs",
		Long:          `trusscsv reads an undirected edge list, peels it into k-trusses and prints the trussness of every edge as fromNode,toNode,truss CSV rows.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := Default()
			if configPath != "" {
				loaded, err := Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			level := cfg.level()
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			if configPath != "" {
				logger.Debug("config loaded", "path", configPath)
			}

			ctx := withConfig(cmd.Context(), cfg)
			cmd.SetContext(withLogger(ctx, logger))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("trusscsv %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file")

	root.AddCommand(newDemoCmd())
	root.AddCommand(newRunCmd())

	return root
}
