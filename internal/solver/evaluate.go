// Package solver evaluates many blueprints at once and reduces their scores.
package solver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/napolitain/solver-geode/internal/models"
	"github.com/napolitain/solver-geode/internal/solver/search"
)

// Observer is notified once per finished search
type Observer interface {
	ObserveSearch(result search.Result, elapsed time.Duration)
}

// Evaluator runs one independent search per blueprint on a bounded pool of workers
type Evaluator struct {
	Workers  int // 0 means runtime.NumCPU()
	Options  search.Options
	Observer Observer     // optional
	Logger   *slog.Logger // optional
}

// NewEvaluator creates an evaluator with default options
func NewEvaluator(workers int, logger *slog.Logger) *Evaluator {
	return &Evaluator{
		Workers: workers,
		Logger:  logger,
	}
}

func (e *Evaluator) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e.Logger
}

func (e *Evaluator) workers() int {
	if e.Workers <= 0 {
		return runtime.NumCPU()
	}
	return e.Workers
}

// Evaluate searches every blueprint at the given horizon.
// Results come back in input order. Cancellation is honoured between searches;
// a search that has started always runs to completion.
func (e *Evaluator) Evaluate(ctx context.Context, blueprints []models.Blueprint, horizon int) ([]search.Result, error) {
	results := make([]search.Result, len(blueprints))
	if len(blueprints) == 0 {
		return results, nil
	}

	log := e.logger()
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers())

	for i, bp := range blueprints {
		i, bp := i, bp
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return fmt.Errorf("blueprint %d: %w", bp.ID, err)
			}

			start := time.Now()
			result := search.Search(bp, horizon, e.Options)
			elapsed := time.Since(start)

			results[i] = result
			if e.Observer != nil {
				e.Observer.ObserveSearch(result, elapsed)
			}
			log.Debug("blueprint searched",
				"blueprint", bp.ID,
				"horizon", horizon,
				"geodes", result.Geodes,
				"expanded", result.Stats.Expanded,
				"exhausted", result.Exhausted,
				"elapsed", elapsed,
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// QualityLevel searches every blueprint and sums id × geodes
func (e *Evaluator) QualityLevel(ctx context.Context, blueprints []models.Blueprint, horizon int) (int, []search.Result, error) {
	results, err := e.Evaluate(ctx, blueprints, horizon)
	if err != nil {
		return 0, nil, err
	}
	return SumQuality(results), results, nil
}

// TopProduct searches the first n blueprints and multiplies their geode counts.
// Each blueprint is maximized on its own.
func (e *Evaluator) TopProduct(ctx context.Context, blueprints []models.Blueprint, horizon, n int) (int, []search.Result, error) {
	if n < len(blueprints) {
		blueprints = blueprints[:max(n, 0)]
	}
	results, err := e.Evaluate(ctx, blueprints, horizon)
	if err != nil {
		return 0, nil, err
	}
	return MultiplyGeodes(results), results, nil
}

// SumQuality returns the sum of id × geodes
func SumQuality(results []search.Result) int {
	total := 0
	for _, r := range results {
		total += r.Quality()
	}
	return total
}

// MultiplyGeodes returns the product of geode counts (1 for no results)
func MultiplyGeodes(results []search.Result) int {
	product := 1
	for _, r := range results {
		product *= r.Geodes
	}
	return product
}
