package search

import "github.com/napolitain/solver-geode/internal/models"

// LeftoverYield marks resources whose projected holdings at the horizon already exceed
// everything the remaining minutes could spend. Geode is never marked.
func LeftoverYield(s PlanState, bp models.Blueprint) models.Mask {
	gains := s.Resources.Add(s.Producers.Scale(s.Minutes))
	usable := bp.MaxUsefulRate().Scale(s.Minutes)
	return gains.Greater(usable).With(models.Geode, false)
}

// Saturated marks resources whose producers already match peak per-minute demand.
// Geode is never marked.
func Saturated(s PlanState, bp models.Blueprint) models.Mask {
	return s.Producers.AtLeast(bp.MaxUsefulRate()).With(models.Geode, false)
}

// WorthBuilding marks the producer kinds that may still improve the outcome
func WorthBuilding(s PlanState, bp models.Blueprint) models.Mask {
	return LeftoverYield(s, bp).Or(Saturated(s, bp)).Not().With(models.Geode, true)
}

// OptimisticGeodes bounds the geodes reachable from s from above, assuming a new
// geode producer is committed every remaining minute.
func OptimisticGeodes(s PlanState) int {
	m := s.Minutes
	return s.Geodes() + s.Producers[models.Geode]*m + m*(m-1)/2
}

// Dominated reports whether s trails the best geode count seen at its depth by more
// than the one-minute lag between committing a geode producer and its first yield.
func Dominated(s PlanState, depth *DepthTable) bool {
	return s.Geodes()+2 < depth.Best(s.Minutes)
}
