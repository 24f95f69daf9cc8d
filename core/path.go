// File: path.go
// Role: Propagated paths and their clock-network decomposition.
// Ownership:
//   - A Path is exclusively owned; Copy deep-copies everything the Path
//     owns so the duplicate survives mutation or release of the original.
//   - Clock edges are shared references into constraint-store clocks and
//     are intentionally not deep-copied.

package core

import "fmt"

// ClkHop is one clock-network stage crossed by a clock path, with the
// min/max delay contribution of that stage. The hop sequence is what the
// pessimism walk compares between launch and capture clock paths.
type ClkHop struct {
	// Pin is the clock-network pin at the end of this hop.
	Pin string

	// MinDelay and MaxDelay bound the stage's delay contribution.
	MinDelay float64
	MaxDelay float64
}

// Pessimism returns the spread between the hop's late and early delay.
func (h ClkHop) Pessimism() float64 {
	return h.MaxDelay - h.MinDelay
}

// ClkInfo decomposes a clock path's delay at a pin into source insertion
// delay (clock source to clock root) and network latency (root to pin),
// and records the root-to-pin hop sequence for pessimism removal.
type ClkInfo struct {
	// Insertion is the clock source insertion delay.
	Insertion float64

	// Latency is the network latency from the clock root to the pin.
	Latency float64

	// Propagated is false for ideal clocks, whose network latency is a
	// constraint rather than a propagated value.
	Propagated bool

	// MacroDelay is a black-box/macro clock-tree delay annotation, zero
	// when the endpoint is not inside an annotated macro.
	MacroDelay float64

	// Hops is the clock-network hop sequence from the clock root to the
	// pin, in traversal order.
	Hops []ClkHop
}

// Delay returns the clock path's total delay: insertion plus latency.
func (ci *ClkInfo) Delay() float64 {
	if ci == nil {
		return 0
	}

	return ci.Insertion + ci.Latency
}

// Copy returns an independently-owned duplicate of the clock info.
func (ci *ClkInfo) Copy() *ClkInfo {
	if ci == nil {
		return nil
	}
	dup := *ci
	dup.Hops = make([]ClkHop, len(ci.Hops))
	copy(dup.Hops, ci.Hops)

	return &dup
}

// Path is a propagated arrival at a vertex: the endpoint, the transition
// and analysis side it was propagated for, the analysis-point index, the
// arrival time, and the launching clock edge with its network info.
//
// Arrival is absolute: it includes the launching edge's nominal time plus
// clock insertion, latency, and the data-network delay.
type Path struct {
	// Vertex is the pin this arrival was propagated to.
	Vertex *Vertex

	// RF is the transition at the vertex.
	RF RiseFall

	// MM is the analysis side the path was propagated for.
	MM MinMax

	// APIndex is the path analysis point (corner/side pairing) index.
	APIndex int

	// Arrival is the propagated arrival time at the vertex.
	Arrival float64

	// ClkEdge is the launching clock edge; nil for unclocked paths.
	ClkEdge *ClockEdge

	// Clk is the launching clock's network info; nil for unclocked paths.
	Clk *ClkInfo
}

// NewPath builds a path and validates its endpoint.
//
// Preconditions:
//  1. vertex must be non-nil (ErrNilVertex).
func NewPath(vertex *Vertex, rf RiseFall, mm MinMax, arrival float64) (*Path, error) {
	if vertex == nil {
		return nil, ErrNilVertex
	}

	return &Path{Vertex: vertex, RF: rf, MM: mm, Arrival: arrival}, nil
}

// Copy returns a deep, independently-owned duplicate of the path. The
// clock edge reference is shared (constraint-store ownership); the clock
// network info is deep-copied.
func (p *Path) Copy() *Path {
	if p == nil {
		return nil
	}
	dup := *p
	dup.Clk = p.Clk.Copy()

	return &dup
}

// ClkDelay returns the launching clock path's total delay at this pin.
func (p *Path) ClkDelay() float64 { return p.Clk.Delay() }

// InsertionDelay returns the launching clock's source insertion delay.
func (p *Path) InsertionDelay() float64 {
	if p.Clk == nil {
		return 0
	}

	return p.Clk.Insertion
}

// Latency returns the launching clock's network latency at this pin.
func (p *Path) Latency() float64 {
	if p.Clk == nil {
		return 0
	}

	return p.Clk.Latency
}

// String renders the path as "pin rise@1.25 (max)" for diagnostics.
func (p *Path) String() string {
	return fmt.Sprintf("%s %s@%g (%s)", p.Vertex.Pin, p.RF, p.Arrival, p.MM)
}
