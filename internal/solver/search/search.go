// Package search finds the most geodes a blueprint can yield within a horizon.
//
// The driver is a best-first branch and bound over PlanState values. States nearest the
// horizon are expanded first, so good terminal scores appear early and feed two bounds:
// a per-depth dominance table and an optimistic geode count. Producer kinds that can no
// longer help are never tried (see WorthBuilding).
package search

import "github.com/napolitain/solver-geode/internal/models"

// Options tunes a single search
type Options struct {
	// DisableProducerPruning turns off the leftover-yield and saturation rules.
	// Results are identical either way; only the amount of work changes.
	DisableProducerPruning bool

	// MaxExpansions stops the search after this many expanded states (0 = no limit).
	// A truncated search reports the best score reached so far.
	MaxExpansions int
}

// Stats counts what the driver did with the states it popped
type Stats struct {
	Expanded    int // states whose successors were generated
	Duplicates  int // states popped more than once
	Dominated   int // discarded by the per-depth dominance table
	Bounded     int // discarded because even the optimistic count could not win
	Terminal    int // states that reached the horizon
	MaxFrontier int // largest frontier size observed
}

// Result is the outcome of searching one blueprint
type Result struct {
	BlueprintID int
	Horizon     int
	Geodes      int
	// Exhausted is false only when MaxExpansions cut the search short
	Exhausted bool
	Stats     Stats
}

// Quality is the blueprint id multiplied by its best geode count
func (r Result) Quality() int {
	return r.BlueprintID * r.Geodes
}

// BestScore returns the most geodes bp can hold after horizon minutes
func BestScore(bp models.Blueprint, horizon int) int {
	return Search(bp, horizon, Options{}).Geodes
}

// Search runs the branch and bound for one blueprint.
// Each call owns its frontier, seen set and depth table, so concurrent calls are independent.
func Search(bp models.Blueprint, horizon int, opts Options) Result {
	if horizon < 0 {
		horizon = 0
	}

	result := Result{BlueprintID: bp.ID, Horizon: horizon, Exhausted: true}
	frontier := NewFrontier()
	depth := NewDepthTable(horizon)
	seen := make(map[PlanState]struct{})

	frontier.Push(InitialState(horizon))
	best := 0

	for {
		s, ok := frontier.Pop()
		if !ok {
			break
		}
		// no cycles exist, but branches converge often
		if _, dup := seen[s]; dup {
			result.Stats.Duplicates++
			continue
		}
		seen[s] = struct{}{}
		depth.Record(s)

		if s.Terminal() {
			result.Stats.Terminal++
			best = max(best, s.Geodes())
			continue
		}
		if Dominated(s, depth) {
			result.Stats.Dominated++
			continue
		}
		if OptimisticGeodes(s) <= best {
			result.Stats.Bounded++
			continue
		}
		if opts.MaxExpansions > 0 && result.Stats.Expanded >= opts.MaxExpansions {
			result.Exhausted = false
			break
		}

		result.Stats.Expanded++
		for _, next := range s.Successors(bp, opts) {
			if _, dup := seen[next]; !dup {
				frontier.Push(next)
			}
		}
		result.Stats.MaxFrontier = max(result.Stats.MaxFrontier, frontier.Len())
	}

	// Any recorded count is reachable by idling to the horizon.
	result.Geodes = max(best, depth.Max())
	return result
}
