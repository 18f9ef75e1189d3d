package models

import "fmt"

// Vector holds one non-negative count per resource kind, indexed by Resource.
// All operations return a new Vector; none of them can fail.
type Vector [NumResources]int

// Mask is a per-resource boolean, produced by Vector comparisons
type Mask [NumResources]bool

// NewVector builds a Vector in Ore, Clay, Obsidian, Geode order
func NewVector(ore, clay, obsidian, geode int) Vector {
	return Vector{ore, clay, obsidian, geode}
}

// Inc returns v with one more unit of r
func (v Vector) Inc(r Resource) Vector {
	v[r]++
	return v
}

// Add returns the elementwise sum
func (v Vector) Add(o Vector) Vector {
	for i := range v {
		v[i] += o[i]
	}
	return v
}

// Sub returns the elementwise difference, floored at zero
func (v Vector) Sub(o Vector) Vector {
	for i := range v {
		if v[i] > o[i] {
			v[i] -= o[i]
		} else {
			v[i] = 0
		}
	}
	return v
}

// Scale multiplies every component by n.
// Unbounded components stay Unbounded and larger products saturate to it.
func (v Vector) Scale(n int) Vector {
	for i := range v {
		switch {
		case v[i] == Unbounded:
		case n != 0 && v[i] > Unbounded/n:
			v[i] = Unbounded
		default:
			v[i] *= n
		}
	}
	return v
}

// CeilDiv divides elementwise, rounding up.
// A zero divisor yields 0 for a zero dividend and Unreachable otherwise.
func (v Vector) CeilDiv(o Vector) Vector {
	for i := range v {
		switch {
		case o[i] != 0:
			v[i] = (v[i] + o[i] - 1) / o[i]
		case v[i] != 0:
			v[i] = Unreachable
		}
	}
	return v
}

// Max returns the largest component
func (v Vector) Max() int {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// Greater reports v[i] > o[i] for every component
func (v Vector) Greater(o Vector) Mask {
	var m Mask
	for i := range v {
		m[i] = v[i] > o[i]
	}
	return m
}

// AtLeast reports v[i] >= o[i] for every component
func (v Vector) AtLeast(o Vector) Mask {
	var m Mask
	for i := range v {
		m[i] = v[i] >= o[i]
	}
	return m
}

// Covers reports whether every component of v is at least the matching one in o
func (v Vector) Covers(o Vector) bool {
	for i := range v {
		if v[i] < o[i] {
			return false
		}
	}
	return true
}

// String formats the vector as ore/clay/obsidian/geode
func (v Vector) String() string {
	return fmt.Sprintf("%d/%d/%d/%d", v[Ore], v[Clay], v[Obsidian], v[Geode])
}

// And combines two masks elementwise
func (m Mask) And(o Mask) Mask {
	for i := range m {
		m[i] = m[i] && o[i]
	}
	return m
}

// Or combines two masks elementwise
func (m Mask) Or(o Mask) Mask {
	for i := range m {
		m[i] = m[i] || o[i]
	}
	return m
}

// Not negates every component
func (m Mask) Not() Mask {
	for i := range m {
		m[i] = !m[i]
	}
	return m
}

// With returns m with the component for r set to value
func (m Mask) With(r Resource, value bool) Mask {
	m[r] = value
	return m
}
