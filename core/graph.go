// File: graph.go
// Role: The timing-graph slice visible to a path end: endpoint vertices,
// check edges, and library timing arcs.

package core

// Vertex is a pin of the timing graph. Vertices are owned by the external
// graph and shared by reference; a path end never mutates them.
type Vertex struct {
	// Pin is the hierarchical pin name, unique within the design.
	Pin string

	// IsClk marks vertices on the clock network.
	IsClk bool
}

// TimingArc is one library-described check between two pins: its role
// (setup, hold, ...), the transitions it connects, and the setup/hold
// margin table looked up by the data transition.
type TimingArc struct {
	role    Role
	fromRF  RiseFall
	toRF    RiseFall
	margins map[RiseFall]float64
}

// NewTimingArc builds a check arc. margins maps the constrained data
// transition to the arc's intrinsic margin for the current operating
// condition; a missing entry reads as zero.
func NewTimingArc(role Role, fromRF, toRF RiseFall, margins map[RiseFall]float64) *TimingArc {
	m := make(map[RiseFall]float64, len(margins))
	for rf, v := range margins {
		m[rf] = v
	}

	return &TimingArc{role: role, fromRF: fromRF, toRF: toRF, margins: m}
}

// Role returns the arc's declared check role.
func (a *TimingArc) Role() Role { return a.role }

// FromRF returns the clock-pin transition the check is relative to.
func (a *TimingArc) FromRF() RiseFall { return a.fromRF }

// ToRF returns the data-pin transition the check constrains.
func (a *TimingArc) ToRF() RiseFall { return a.toRF }

// MarginAt returns the arc's margin for the given data transition.
// An unpopulated transition reads as zero margin.
func (a *TimingArc) MarginAt(rf RiseFall) float64 {
	return a.margins[rf]
}

// Edge is a timing-graph edge carrying one or more check arcs between a
// clock pin and a data pin. Owned by the external graph.
type Edge struct {
	// From is the clock-pin vertex of the check.
	From *Vertex

	// To is the constrained data-pin vertex.
	To *Vertex

	// Arcs are the check arcs carried by this edge.
	Arcs []*TimingArc
}
