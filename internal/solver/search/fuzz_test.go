package search

import (
	"testing"

	"github.com/napolitain/solver-geode/internal/models"
)

// FuzzSuccessors fuzzes transitions over arbitrary cost tables and holdings
func FuzzSuccessors(f *testing.F) {
	// Seed corpus
	f.Add(uint8(4), uint8(2), uint8(3), uint8(14), uint8(2), uint8(7), uint8(3), uint8(1), uint8(24))
	f.Add(uint8(1), uint8(1), uint8(1), uint8(1), uint8(1), uint8(1), uint8(0), uint8(0), uint8(1))
	f.Add(uint8(0), uint8(0), uint8(0), uint8(0), uint8(0), uint8(0), uint8(255), uint8(255), uint8(32))
	f.Add(uint8(255), uint8(255), uint8(255), uint8(255), uint8(255), uint8(255), uint8(9), uint8(3), uint8(0))

	f.Fuzz(func(t *testing.T, oreOre, clayOre, obsOre, obsClay, geoOre, geoObs, held, extra, minutes uint8) {
		bp := models.NewBlueprint(1, int(oreOre), int(clayOre), int(obsOre), int(obsClay), int(geoOre), int(geoObs))
		s := PlanState{
			Resources: models.NewVector(int(held), int(held)/2, int(held)/3, int(extra)%5),
			Producers: models.NewVector(1+int(extra)%4, int(extra)%3, int(extra)%2, 0),
			Minutes:   int(minutes) % 40,
		}

		for _, opts := range []Options{{}, {DisableProducerPruning: true}} {
			next := s.Successors(bp, opts)

			if s.Terminal() {
				if len(next) != 0 {
					t.Fatalf("terminal state produced successors: %v", next)
				}
				continue
			}

			// Property: the idle successor is always present and lands on the horizon
			idle := next[len(next)-1]
			if idle.Minutes != 0 || idle.Producers != s.Producers {
				t.Fatalf("last successor should idle to the horizon, got %v", idle)
			}

			for _, n := range next {
				// Property: time strictly decreases
				if n.Minutes >= s.Minutes || n.Minutes < 0 {
					t.Fatalf("bad minutes: %v -> %v", s, n)
				}
				// Property: nothing goes negative
				for r := range n.Resources {
					if n.Resources[r] < 0 {
						t.Fatalf("negative resource: %v -> %v", s, n)
					}
				}
			}
		}
	})
}

// FuzzSearchDeterminism fuzzes small searches and checks repeatability and bounds
func FuzzSearchDeterminism(f *testing.F) {
	f.Add(uint8(4), uint8(2), uint8(3), uint8(14), uint8(2), uint8(7), uint8(16))
	f.Add(uint8(1), uint8(1), uint8(1), uint8(1), uint8(1), uint8(1), uint8(12))

	f.Fuzz(func(t *testing.T, oreOre, clayOre, obsOre, obsClay, geoOre, geoObs, horizon uint8) {
		bp := models.NewBlueprint(1,
			1+int(oreOre)%6, 1+int(clayOre)%6, 1+int(obsOre)%6,
			1+int(obsClay)%15, 1+int(geoOre)%6, 1+int(geoObs)%15)
		h := int(horizon) % 16

		first := Search(bp, h, Options{})
		second := Search(bp, h, Options{})
		if first != second {
			t.Fatalf("non-deterministic search: %+v vs %+v", first, second)
		}

		// Property: never better than one new geode producer per remaining minute
		if ceiling := OptimisticGeodes(InitialState(h)); first.Geodes > ceiling {
			t.Fatalf("score %d exceeds optimistic ceiling %d", first.Geodes, ceiling)
		}
	})
}
