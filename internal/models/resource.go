package models

import "math"

// Resource identifies one of the four resource kinds of the economy.
// Every producer yields exactly one kind, so Resource also names producer kinds.
type Resource int

const (
	Ore Resource = iota
	Clay
	Obsidian
	Geode
)

// NumResources is the fixed width of every Vector
const NumResources = 4

const (
	// Unreachable is the wait, in minutes, for a cost that no current producer can ever cover.
	Unreachable = math.MaxInt32
	// Unbounded marks a resource whose production is never capped.
	Unbounded = math.MaxInt32
)

// AllResources returns all resource kinds in deterministic order
func AllResources() []Resource {
	return []Resource{Ore, Clay, Obsidian, Geode}
}

// String returns the lowercase name used in blueprint text
func (r Resource) String() string {
	switch r {
	case Ore:
		return "ore"
	case Clay:
		return "clay"
	case Obsidian:
		return "obsidian"
	case Geode:
		return "geode"
	default:
		return "unknown"
	}
}

// ParseResource converts a lowercase resource name back to a Resource
func ParseResource(s string) (Resource, bool) {
	for _, r := range AllResources() {
		if r.String() == s {
			return r, true
		}
	}
	return 0, false
}
