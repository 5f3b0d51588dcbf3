package root

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazesolver/cmd/entail"
	"github.com/katalvlaran/mazesolver/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mazesolver",
		Short: "Solves text mazes with depth-first and breadth-first search",
		Long: `Solves mazes given as text files ('A' start, 'B' goal, ' ' open, anything
else a wall) with depth-first and breadth-first search, reporting how many
states each algorithm explored and how long the path is.

Settings come from MAZESOLVER_* environment variables (optionally via a .env
file), then an optional YAML run file, then flags.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (default from MAZESOLVER_LOG_LEVEL or info)")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json (default from MAZESOLVER_LOG_FORMAT or text)")

	// add sub-commands
	rootCmd.AddCommand(solve.NewSolveCommand())
	rootCmd.AddCommand(entail.NewEntailCommand())

	return rootCmd
}
