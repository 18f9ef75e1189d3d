package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-geode/internal/config"
	"github.com/napolitain/solver-geode/internal/loader"
	"github.com/napolitain/solver-geode/internal/metrics"
	"github.com/napolitain/solver-geode/internal/models"
	"github.com/napolitain/solver-geode/internal/solver"
	"github.com/napolitain/solver-geode/internal/solver/search"
)

var _ solver.Observer = (*metrics.SearchCollector)(nil)

// flags shared by every subcommand
type options struct {
	inputFile     string
	configFile    string
	quiet         bool
	workers       int
	noPruning     bool
	maxExpansions int
	minutes       int
	format        string
}

// run carries everything a subcommand needs once flags and config are resolved
type run struct {
	id         string
	cfg        *config.Config
	blueprints []models.Blueprint
	evaluator  *solver.Evaluator
	registry   *prometheus.Registry
	logger     *slog.Logger
	out        io.Writer
	quiet      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "geodes",
		Short: "Geode Production Optimizer",
		Long: `A best-first branch and bound search that finds the most geodes each
blueprint can crack open before the clock runs out.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.inputFile, "input", "i", "data/example.txt", "Blueprint file (.txt, .json, .yaml)")
	pf.StringVarP(&opts.configFile, "config", "c", "", "Path to YAML config file")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "Print only the answer")
	pf.IntVarP(&opts.workers, "workers", "w", 0, "Concurrent searches (overrides config)")
	pf.BoolVar(&opts.noPruning, "no-pruning", false, "Disable the leftover-yield and saturation rules")
	pf.IntVar(&opts.maxExpansions, "max-expansions", 0, "Expansion cap per search (overrides config)")

	rootCmd.AddCommand(
		newQualityCmd(opts),
		newProductCmd(opts),
		newSolveCmd(opts),
		newConvertCmd(opts),
	)
	return rootCmd
}

func newQualityCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "quality",
		Short: "Sum of blueprint id × geodes over every blueprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			horizon := r.cfg.Horizons.Quality
			r.banner(fmt.Sprintf("Quality levels at %d minutes", horizon))

			total, results, err := r.evaluator.QualityLevel(cmd.Context(), r.blueprints, horizon)
			if err != nil {
				return err
			}
			return r.finish(results, "quality level sum", total)
		},
	}
}

func newProductCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "product",
		Short: "Product of the geodes of the first blueprints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			horizon, n := r.cfg.Horizons.Product, r.cfg.Product.Count
			r.banner(fmt.Sprintf("Product of the first %d blueprints at %d minutes", n, horizon))

			product, results, err := r.evaluator.TopProduct(cmd.Context(), r.blueprints, horizon, n)
			if err != nil {
				return err
			}
			return r.finish(results, "geode product", product)
		},
	}
}

func newSolveCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Best geode count per blueprint with search statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			horizon := opts.minutes
			if horizon == 0 {
				horizon = r.cfg.Horizons.Quality
			}
			r.banner(fmt.Sprintf("Solving %d blueprints at %d minutes", len(r.blueprints), horizon))

			results, err := r.evaluator.Evaluate(cmd.Context(), r.blueprints, horizon)
			if err != nil {
				return err
			}
			return r.finish(results, "quality level sum", solver.SumQuality(results))
		},
	}
	cmd.Flags().IntVarP(&opts.minutes, "minutes", "m", 0, "Horizon in minutes (default: quality horizon)")
	return cmd
}

func newConvertCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Rewrite the blueprint file as text, json or yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			blueprints, err := loader.LoadBlueprints(opts.inputFile)
			if err != nil {
				return err
			}
			return writeBlueprints(cmd.OutOrStdout(), blueprints, opts.format)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "yaml", "Output format: text, json or yaml")
	return cmd
}

// setup resolves config, flags, logging, metrics and input for one command
func setup(cmd *cobra.Command, opts *options) (*run, error) {
	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		return nil, err
	}
	if opts.workers > 0 {
		cfg.Search.Workers = opts.workers
	}
	if opts.noPruning {
		cfg.Search.ProducerPruning = false
	}
	if opts.maxExpansions > 0 {
		cfg.Search.MaxExpansions = opts.maxExpansions
	}

	runID := uuid.NewString()
	logger := config.NewLogger(cfg.Logging, cmd.ErrOrStderr()).With("run", runID)

	blueprints, err := loader.LoadBlueprints(opts.inputFile)
	if err != nil {
		return nil, err
	}
	logger.Info("blueprints loaded", "file", opts.inputFile, "count", len(blueprints))

	evaluator := solver.NewEvaluator(cfg.Search.Workers, logger)
	evaluator.Options = search.Options{
		DisableProducerPruning: !cfg.Search.ProducerPruning,
		MaxExpansions:          cfg.Search.MaxExpansions,
	}

	r := &run{
		id:         runID,
		cfg:        cfg,
		blueprints: blueprints,
		evaluator:  evaluator,
		logger:     logger,
		out:        cmd.OutOrStdout(),
		quiet:      opts.quiet,
	}

	if cfg.Metrics.File != "" {
		r.registry = prometheus.NewRegistry()
		collector := metrics.NewSearchCollector()
		if err := collector.Register(r.registry); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		evaluator.Observer = collector
	}

	return r, nil
}

// finish prints results and flushes metrics
func (r *run) finish(results []search.Result, label string, answer int) error {
	if r.quiet {
		fmt.Fprintln(r.out, answer)
	} else {
		printResults(r.out, results)
		printAnswer(r.out, label, answer, results)
	}

	r.logger.Info("run complete", "blueprints", len(results), "reduction", label, "answer", answer)

	if r.registry != nil {
		if err := metrics.WriteTextfile(r.cfg.Metrics.File, r.registry); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		r.logger.Info("metrics written", "file", r.cfg.Metrics.File)
	}
	return nil
}
