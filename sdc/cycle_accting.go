// File: cycle_accting.go
// Role: Source/target clock-edge alignment across cycles.
//
// Algorithm outline:
//  1. Expand the source clock over the common hyperperiod of the two
//     clocks (the smallest n with n·srcPeriod = m·tgtPeriod, n capped at
//     MaxCycleSearch).
//  2. For each launch edge in the expansion, the setup capture is the
//     first target edge strictly after the launch; keep the pair with the
//     smallest capture−launch separation. That pair defines the default
//     single-cycle setup relationship.
//  3. The hold capture is the setup capture pulled back one target period.
//
// Complexity: O(MaxCycleSearch) worst case per edge pair; Sdc caches the
// result so each pair is searched once.

package sdc

import (
	"math"

	"github.com/Logikable/OpenSTA/core"
)

// MaxCycleSearch caps the hyperperiod expansion. Incommensurate periods
// that do not close within the cap degrade to the single-cycle default
// relationship (launch at the source edge's nominal time).
const MaxCycleSearch = 1024

// timeTol is the tolerance for "strictly after" edge comparisons and for
// hyperperiod closure.
const timeTol = 1e-9

// CycleAccting aligns one source clock edge with one target clock edge:
// which source cycle launches, and which target edges capture, for setup
// and hold checks. Immutable after construction.
type CycleAccting struct {
	src *core.ClockEdge
	tgt *core.ClockEdge

	setupLaunch  float64
	setupCapture float64
	holdCapture  float64
}

// NewCycleAccting searches the launch/capture relationship for an edge pair.
//
// Preconditions:
//  1. both edges must be non-nil (ErrNilClockEdge).
func NewCycleAccting(src, tgt *core.ClockEdge) (*CycleAccting, error) {
	if src == nil || tgt == nil {
		return nil, ErrNilClockEdge
	}
	ca := &CycleAccting{src: src, tgt: tgt}
	ca.search()

	return ca, nil
}

// search finds the tightest launch/capture pairing over the hyperperiod.
func (ca *CycleAccting) search() {
	srcP, tgtP := ca.src.Period(), ca.tgt.Period()
	cycles := hyperCycles(srcP, tgtP)

	bestSep := math.Inf(1)
	bestLaunch := ca.src.Time()
	for i := 0; i < cycles; i++ {
		launch := ca.src.Time() + float64(i)*srcP
		sep := captureSeparation(launch, ca.tgt.Time(), tgtP)
		if sep < bestSep-timeTol {
			bestSep = sep
			bestLaunch = launch
		}
	}
	ca.setupLaunch = bestLaunch
	ca.setupCapture = bestLaunch + bestSep
	ca.holdCapture = ca.setupCapture - tgtP
}

// captureSeparation returns the distance from launch to the first target
// edge strictly after it.
func captureSeparation(launch, tgtTime, tgtP float64) float64 {
	delta := math.Mod(launch-tgtTime, tgtP)
	if delta < 0 {
		delta += tgtP
	}
	sep := tgtP - delta
	if sep < timeTol {
		sep = tgtP
	}

	return sep
}

// hyperCycles returns the number of source cycles in the two clocks'
// common hyperperiod, or 1 when the periods do not close within
// MaxCycleSearch cycles.
func hyperCycles(srcP, tgtP float64) int {
	for n := 1; n <= MaxCycleSearch; n++ {
		m := float64(n) * srcP / tgtP
		if math.Abs(m-math.Round(m)) < timeTol*(math.Round(m)+1) {
			return n
		}
	}

	return 1
}

// SourceTimeOffset returns the launch shift relative to the source edge's
// nominal time: zero when the first source cycle launches, whole source
// periods when a later cycle gives the tightest relationship.
func (ca *CycleAccting) SourceTimeOffset(role core.Role) float64 {
	if role.Generic() == core.RoleNone {
		return 0
	}

	return ca.setupLaunch - ca.src.Time()
}

// RequiredTime returns the nominal capture-edge time for the role: the
// setup capture edge for setup-like roles, one target period earlier for
// hold-like roles.
func (ca *CycleAccting) RequiredTime(role core.Role) float64 {
	if role.Generic() == core.RoleHold {
		return ca.holdCapture
	}

	return ca.setupCapture
}

// TargetTimeOffset returns the capture shift relative to the target edge's
// nominal time.
func (ca *CycleAccting) TargetTimeOffset(role core.Role) float64 {
	return ca.RequiredTime(role) - ca.tgt.Time()
}
