// File: latch.go
// Role: Level-sensitive latch setup check with time borrowing.

package pathend

import (
	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/sdc"
	"github.com/Logikable/OpenSTA/sta"
)

// LatchCheck is a setup check at a transparent latch. Data arriving after
// the open (enable) edge is not an immediate violation: it borrows into
// the transparency window, up to the window width less the margin, or up
// to an explicit borrow limit. Only arrival beyond the borrow cap turns
// into negative slack.
type LatchCheck struct {
	Check
	disablePath   *core.Path
	pathDelay     *sdc.PathDelay
	srcClkArrival float64
}

// BorrowInfo breaks the borrow computation down for reporting.
type BorrowInfo struct {
	// NomPulseWidth is the enable clock's nominal transparency window.
	NomPulseWidth float64
	// OpenLatency and LatencyDiff (close minus open) shift the window by
	// the clock network; OpenUncertainty and the pessimism terms tighten
	// or relax it.
	OpenLatency     float64
	LatencyDiff     float64
	OpenUncertainty float64
	OpenCrpr        float64
	CrprDiff        float64
	// MaxBorrow is the resulting cap; BorrowLimitExists reports that an
	// explicit per-pin limit replaced the computed window.
	MaxBorrow         float64
	BorrowLimitExists bool
}

// NewLatchCheck builds a latch borrow check end.
//
// Preconditions:
//  1. path must be non-nil (ErrNilPath).
//  2. arc must be non-nil (ErrNilArc).
//  3. enablePath must be non-nil (ErrNilClkPath); its edge opens the
//     latch.
//
// disablePath carries the closing edge's clock network and may be nil
// (ideal close tracking the open edge). pd is a min/max-delay exception
// constraining the path, or nil.
func NewLatchCheck(path *core.Path, arc *core.TimingArc, edge *core.Edge, enablePath, disablePath *core.Path, mcp *sdc.MultiCyclePath, pd *sdc.PathDelay, s *sta.Sta) (*LatchCheck, error) {
	check, err := NewCheck(path, arc, edge, enablePath, mcp, s)
	if err != nil {
		return nil, err
	}
	lc := &LatchCheck{
		Check:       *check,
		disablePath: disablePath,
		pathDelay:   pd,
	}
	if ignoreClkLatency(pd) {
		lc.srcClkArrival = findSrcClkArrival(path)
	}

	return lc, nil
}

func (l *LatchCheck) Type() Type         { return TypeLatchCheck }
func (l *LatchCheck) TypeName() string   { return TypeLatchCheck.String() }
func (l *LatchCheck) IsCheck() bool      { return false }
func (l *LatchCheck) IsLatchCheck() bool { return true }

func (l *LatchCheck) Copy() PathEnd {
	cp := *l
	cp.path = l.path.Copy()
	cp.clkPath = l.clkPath.Copy()
	if l.disablePath != nil {
		cp.disablePath = l.disablePath.Copy()
	}

	return &cp
}

func (l *LatchCheck) PathDelay() *sdc.PathDelay { return l.pathDelay }

func (l *LatchCheck) IgnoreClkLatency(*sta.Sta) bool {
	return ignoreClkLatency(l.pathDelay)
}

func (l *LatchCheck) SourceClkOffset(s *sta.Sta) float64 {
	if l.pathDelay != nil {
		return pathDelaySrcClkOffset(l.path, l.pathDelay, l.srcClkArrival)
	}

	return l.Check.SourceClkOffset(s)
}

// LatchBorrowInfo computes the borrow window. An explicit set_max_time_borrow
// on the endpoint pin replaces the computed window outright.
func (l *LatchCheck) LatchBorrowInfo(s *sta.Sta) BorrowInfo {
	info := BorrowInfo{
		OpenLatency:     CheckTgtClkDelay(l.clkPath, l.tgtEdge, l.role, s),
		OpenUncertainty: l.TargetClkUncertainty(s),
		OpenCrpr:        l.Crpr(s),
	}
	if l.tgtEdge != nil {
		info.NomPulseWidth = l.tgtEdge.PulseWidth()
	}
	if l.disablePath != nil {
		closeLatency := CheckTgtClkDelay(l.disablePath, l.disablePath.ClkEdge, l.role, s)
		info.LatencyDiff = closeLatency - info.OpenLatency
		closeCrpr := s.CommonClkPessimism(l.path, l.disablePath)
		info.CrprDiff = closeCrpr - info.OpenCrpr
	}

	if limit, ok := s.Sdc().MaxBorrow(l.path.Vertex.Pin); ok {
		info.MaxBorrow = limit
		info.BorrowLimitExists = true

		return info
	}

	info.MaxBorrow = info.NomPulseWidth + info.LatencyDiff -
		info.OpenUncertainty + info.CrprDiff - l.Margin(s)
	if info.MaxBorrow < 0 {
		info.MaxBorrow = 0
	}

	return info
}

// LatchRequired extends the open-edge required time by the borrow: data
// landing inside the window moves the requirement with it, capped at the
// borrow limit. adjustedArrival is the departure the downstream stage
// sees (borrowed arrivals cannot depart after the capped requirement);
// timeGiven is the window time consumed, credited to the next stage so
// chained latches do not double-count it.
func (l *LatchCheck) LatchRequired(s *sta.Sta) (required, borrow, adjustedArrival, timeGiven float64) {
	nomRequired := clkRequiredTime(l, s, true)
	arrival := l.DataArrivalTimeOffset(s)
	borrow = arrival - nomRequired
	if borrow < 0 {
		borrow = 0
	}
	if limit := l.LatchBorrowInfo(s).MaxBorrow; borrow > limit {
		borrow = limit
	}
	required = nomRequired + borrow
	adjustedArrival = arrival
	if adjustedArrival > required {
		adjustedArrival = required
	}

	return required, borrow, adjustedArrival, borrow
}

func (l *LatchCheck) RequiredTime(s *sta.Sta) float64 {
	required, _, _, _ := l.LatchRequired(s)

	return required
}

// Borrow is the time handed to the downstream stage: the data departs the
// latch this much after the open edge.
func (l *LatchCheck) Borrow(s *sta.Sta) float64 {
	_, borrow, _, _ := l.LatchRequired(s)

	return borrow
}

func (l *LatchCheck) DataArrivalTimeOffset(s *sta.Sta) float64 { return dataArrivalTimeOffset(l, s) }
func (l *LatchCheck) TargetClkTime(s *sta.Sta) float64         { return targetClkTime(l, s) }
func (l *LatchCheck) TargetClkOffset(s *sta.Sta) float64       { return targetClkOffset(l, s) }
func (l *LatchCheck) TargetClkArrival(s *sta.Sta) float64      { return targetClkArrival(l, s) }
func (l *LatchCheck) RequiredTimeOffset(s *sta.Sta) float64    { return requiredTimeOffset(l, s) }
func (l *LatchCheck) Slack(s *sta.Sta) float64                 { return clkSlack(l, s) }

// SlackNoCrpr recomputes the borrow with pessimism removal off as well.
func (l *LatchCheck) SlackNoCrpr(s *sta.Sta) float64 {
	nomRequired := clkRequiredTime(l, s, false)
	arrival := l.DataArrivalTimeOffset(s)
	borrow := arrival - nomRequired
	if borrow < 0 {
		borrow = 0
	}
	if limit := l.LatchBorrowInfo(s).MaxBorrow; borrow > limit {
		borrow = limit
	}

	return orientSlack(nomRequired+borrow, arrival, l.role.Generic())
}

func (l *LatchCheck) ReportShort(r Reporter, s *sta.Sta) { r.ReportShort(summarize(l, s)) }
func (l *LatchCheck) ReportFull(r Reporter, s *sta.Sta)  { r.ReportFull(summarize(l, s)) }
