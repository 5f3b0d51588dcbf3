package solve

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazesolver/config"
	"github.com/katalvlaran/mazesolver/internal/logging"
	"github.com/katalvlaran/mazesolver/internal/runner"
	"github.com/katalvlaran/mazesolver/metrics"
	"github.com/katalvlaran/mazesolver/report"
)

func NewSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [maze files...]",
		Short: "Solves maze files with the selected algorithms",
		Long: `Solves each maze file with every selected algorithm and prints, per
maze and algorithm, the number of states explored and the path length.

Without positional files the "mazes" list of the run file (--config) or
MAZESOLVER_MAZES is used. A maze that cannot be parsed is skipped and makes
the command fail after the others have been reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	cmd.Flags().StringSlice("algorithms", nil, "algorithms to run, in order: dfs, bfs (default dfs,bfs)")
	cmd.Flags().String("format", "", "output format: table, json, yaml or summary (default summary)")
	cmd.Flags().String("out-dir", "", "write a PNG per maze and algorithm into this directory")
	cmd.Flags().Bool("show-explored", false, "paint explored cells in the PNGs")
	cmd.Flags().Bool("print", false, "print each solved maze as text")
	cmd.Flags().Bool("embed", false, "log each rendering as an <img> tag with a data URI")
	cmd.Flags().String("metrics-file", "", "write Prometheus metrics in text format to this file")
	cmd.Flags().Int("parallel", 0, fmt.Sprintf("mazes solved concurrently, 1-%d (default 4)", config.MaxParallel))
	cmd.Flags().String("config", "", "YAML run file")

	return cmd
}

// loadConfig layers environment, run file, flags and arguments, in that
// order, and validates the result.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if path, _ := flags.GetString("config"); path != "" {
		if err := cfg.ApplyRunFile(path); err != nil {
			return nil, err
		}
	}

	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("algorithms") {
		cfg.Algorithms, _ = flags.GetStringSlice("algorithms")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("out-dir") {
		cfg.OutDir, _ = flags.GetString("out-dir")
	}
	if flags.Changed("show-explored") {
		cfg.ShowExplored, _ = flags.GetBool("show-explored")
	}
	if flags.Changed("print") {
		cfg.Print, _ = flags.GetBool("print")
	}
	if flags.Changed("embed") {
		cfg.Embed, _ = flags.GetBool("embed")
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile, _ = flags.GetString("metrics-file")
	}
	if flags.Changed("parallel") {
		cfg.Parallel, _ = flags.GetInt("parallel")
	}
	if len(args) > 0 {
		cfg.Mazes = args
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(cfg.Mazes) == 0 {
		return nil, runner.ErrNoMazes
	}
	return cfg, nil
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	opts, err := runner.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}

	rec := metrics.New()
	rep, runErr := runner.New(log, rec, cmd.OutOrStdout()).Run(cmd.Context(), opts)
	if rep != nil {
		if err := rep.Write(cmd.OutOrStdout(), format); err != nil {
			return err
		}
	}

	if cfg.MetricsFile != "" {
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		log.WithField("path", cfg.MetricsFile).Debug("metrics written")
	}

	if runErr != nil {
		return fmt.Errorf("solve %s: %w", strings.Join(cfg.Mazes, " "), runErr)
	}
	return nil
}
