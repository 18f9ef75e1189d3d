package models

import (
	"errors"
	"fmt"
)

// ErrInvalidBlueprint is returned for cost tables the search cannot use
var ErrInvalidBlueprint = errors.New("invalid blueprint")

// Blueprint is a cost table: Costs[k] is what the producer of resource k costs to build.
type Blueprint struct {
	ID    int
	Costs [NumResources]Vector
}

// NewBlueprint builds the canonical four-producer cost table.
func NewBlueprint(id, oreOre, clayOre, obsidianOre, obsidianClay, geodeOre, geodeObsidian int) Blueprint {
	return Blueprint{
		ID: id,
		Costs: [NumResources]Vector{
			Ore:      NewVector(oreOre, 0, 0, 0),
			Clay:     NewVector(clayOre, 0, 0, 0),
			Obsidian: NewVector(obsidianOre, obsidianClay, 0, 0),
			Geode:    NewVector(geodeOre, 0, geodeObsidian, 0),
		},
	}
}

// Cost returns the build cost of the producer of r
func (b Blueprint) Cost(r Resource) Vector {
	return b.Costs[r]
}

// MaxUsefulRate returns, per resource, the largest amount any single producer costs.
// Spending happens at most once per minute, so producing more than this per minute is waste.
// Geode production is never capped.
func (b Blueprint) MaxUsefulRate() Vector {
	var rate Vector
	for _, cost := range b.Costs {
		for r, amount := range cost {
			if amount > rate[r] {
				rate[r] = amount
			}
		}
	}
	rate[Geode] = Unbounded
	return rate
}

// Validate checks the id and that no cost coefficient is negative
func (b Blueprint) Validate() error {
	if b.ID <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidBlueprint, b.ID)
	}
	for _, producer := range AllResources() {
		for _, r := range AllResources() {
			if b.Costs[producer][r] < 0 {
				return fmt.Errorf("%w: blueprint %d: %s robot costs %d %s",
					ErrInvalidBlueprint, b.ID, producer, b.Costs[producer][r], r)
			}
		}
	}
	return nil
}

// String renders the blueprint in the canonical sentence format
func (b Blueprint) String() string {
	return fmt.Sprintf(
		"Blueprint %d: Each ore robot costs %d ore. Each clay robot costs %d ore. "+
			"Each obsidian robot costs %d ore and %d clay. Each geode robot costs %d ore and %d obsidian.",
		b.ID,
		b.Costs[Ore][Ore],
		b.Costs[Clay][Ore],
		b.Costs[Obsidian][Ore], b.Costs[Obsidian][Clay],
		b.Costs[Geode][Ore], b.Costs[Geode][Obsidian],
	)
}
