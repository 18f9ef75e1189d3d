package search

import (
	"fmt"

	"github.com/napolitain/solver-geode/internal/models"
)

// PlanState is a point-in-time snapshot of a build plan.
// It is a comparable value: transitions return new states and never touch the receiver,
// which keeps the seen set and the frontier ordering sound.
type PlanState struct {
	Resources models.Vector // held resources
	Producers models.Vector // producers owned, one counter per resource kind
	Minutes   int           // minutes remaining before the horizon
}

// InitialState is the start of every search: nothing held, one ore producer
func InitialState(horizon int) PlanState {
	return PlanState{
		Producers: models.NewVector(1, 0, 0, 0),
		Minutes:   horizon,
	}
}

// Geodes returns the target resource currently held
func (s PlanState) Geodes() int {
	return s.Resources[models.Geode]
}

// Terminal reports whether the horizon has been reached
func (s PlanState) Terminal() bool {
	return s.Minutes == 0
}

// Advance lets every producer work for n minutes
func (s PlanState) Advance(n int) PlanState {
	return PlanState{
		Resources: s.Resources.Add(s.Producers.Scale(n)),
		Producers: s.Producers,
		Minutes:   s.Minutes - n,
	}
}

// Build pays for and commits one producer of kind k
func (s PlanState) Build(k models.Resource, bp models.Blueprint) PlanState {
	return PlanState{
		Resources: s.Resources.Sub(bp.Cost(k)),
		Producers: s.Producers.Inc(k),
		Minutes:   s.Minutes,
	}
}

// MinutesUntilAffordable returns, per producer kind, how long current production needs
// before every resource of its cost is held at once. Unreachable when some missing
// resource has no producer yet.
func (s PlanState) MinutesUntilAffordable(bp models.Blueprint) models.Vector {
	var waits models.Vector
	for _, k := range models.AllResources() {
		waits[k] = bp.Cost(k).Sub(s.Resources).CeilDiv(s.Producers).Max()
	}
	return waits
}

// Successors returns the states reachable by one decision: wait for and build one
// producer, or idle until the horizon. The idle successor is always last.
func (s PlanState) Successors(bp models.Blueprint, opts Options) []PlanState {
	if s.Terminal() {
		return nil
	}

	worth := WorthBuilding(s, bp)
	if opts.DisableProducerPruning {
		worth = models.Mask{true, true, true, true}
	}
	waits := s.MinutesUntilAffordable(bp)

	next := make([]PlanState, 0, models.NumResources+1)
	for _, k := range models.AllResources() {
		if !worth[k] {
			continue
		}
		// A producer committed in the final minute never yields anything.
		if waits[k] >= s.Minutes-1 {
			continue
		}
		next = append(next, s.Advance(waits[k]+1).Build(k, bp))
	}
	return append(next, s.Advance(s.Minutes))
}

// String formats the state for logs and test failures
func (s PlanState) String() string {
	return fmt.Sprintf("{res %v prod %v min %d}", s.Resources, s.Producers, s.Minutes)
}
