package search

import (
	"cmp"
	"container/heap"
)

// ComparePriority orders plan states for expansion. Negative means a is expanded first.
//
// States closer to the horizon come first so terminal scores show up early, then states
// holding more geodes. Producers and resources (both descending, ore first) break the
// remaining ties, which makes the order total over distinct states.
func ComparePriority(a, b PlanState) int {
	if c := cmp.Compare(a.Minutes, b.Minutes); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Geodes(), a.Geodes()); c != 0 {
		return c
	}
	for i := range a.Producers {
		if c := cmp.Compare(b.Producers[i], a.Producers[i]); c != 0 {
			return c
		}
	}
	for i := range a.Resources {
		if c := cmp.Compare(b.Resources[i], a.Resources[i]); c != 0 {
			return c
		}
	}
	return 0
}

// stateHeap implements heap.Interface ordered by ComparePriority
type stateHeap []PlanState

func (h stateHeap) Len() int { return len(h) }

func (h stateHeap) Less(i, j int) bool { return ComparePriority(h[i], h[j]) < 0 }

func (h stateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *stateHeap) Push(x any) {
	*h = append(*h, x.(PlanState))
}

func (h *stateHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// Frontier is the priority queue of plan states waiting to be expanded
type Frontier struct {
	h stateHeap
}

// NewFrontier creates an empty frontier
func NewFrontier() *Frontier {
	f := &Frontier{
		h: make(stateHeap, 0, 64),
	}
	heap.Init(&f.h)
	return f
}

// Push queues a state
func (f *Frontier) Push(s PlanState) {
	heap.Push(&f.h, s)
}

// Pop removes and returns the highest-priority state.
// ok is false when the frontier is empty.
func (f *Frontier) Pop() (s PlanState, ok bool) {
	if len(f.h) == 0 {
		return PlanState{}, false
	}
	return heap.Pop(&f.h).(PlanState), true
}

// Peek returns the highest-priority state without removing it
func (f *Frontier) Peek() (PlanState, bool) {
	if len(f.h) == 0 {
		return PlanState{}, false
	}
	return f.h[0], true
}

// Empty returns true if no state is queued
func (f *Frontier) Empty() bool {
	return len(f.h) == 0
}

// Len returns the number of queued states
func (f *Frontier) Len() int {
	return len(f.h)
}

// DepthTable records the best geode count seen at each number of remaining minutes.
// It belongs to a single search; pass a fresh one to every search.
type DepthTable struct {
	best []int
}

// NewDepthTable creates a table covering minutes 0 through horizon
func NewDepthTable(horizon int) *DepthTable {
	return &DepthTable{best: make([]int, horizon+1)}
}

// Record raises the best count for the state's depth if the state beats it
func (d *DepthTable) Record(s PlanState) {
	if s.Geodes() > d.best[s.Minutes] {
		d.best[s.Minutes] = s.Geodes()
	}
}

// Best returns the best geode count seen at the given depth
func (d *DepthTable) Best(minutes int) int {
	if minutes < 0 || minutes >= len(d.best) {
		return 0
	}
	return d.best[minutes]
}

// Max returns the best geode count seen at any depth
func (d *DepthTable) Max() int {
	m := 0
	for _, v := range d.best {
		if v > m {
			m = v
		}
	}
	return m
}
