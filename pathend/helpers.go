// File: helpers.go
// Role: Clock-delay, uncertainty, and multicycle helpers shared by the
// clock-constrained variants and exported for external collaborators.

package pathend

import (
	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/sdc"
	"github.com/Logikable/OpenSTA/sta"
)

// CheckTgtClkDelay returns the captured clock path's total delay at the
// endpoint: insertion delay plus network latency. Nil paths read as zero.
func CheckTgtClkDelay(tgtClkPath *core.Path, tgtClkEdge *core.ClockEdge, role core.Role, s *sta.Sta) float64 {
	insertion, latency := CheckTgtClkDelays(tgtClkPath, tgtClkEdge, role, s)

	return insertion + latency
}

// CheckTgtClkDelays splits the captured clock path's delay into insertion
// delay (clock source to clock root) and latency (root to endpoint). The
// split matters because uncertainty and pessimism removal apply only to
// the latency portion in some variants and to the whole delay in others.
// Ideal (non-propagated) clocks contribute insertion delay only.
func CheckTgtClkDelays(tgtClkPath *core.Path, _ *core.ClockEdge, _ core.Role, _ *sta.Sta) (insertion, latency float64) {
	if tgtClkPath == nil || tgtClkPath.Clk == nil {
		return 0, 0
	}
	ci := tgtClkPath.Clk
	if !ci.Propagated {
		return ci.Insertion, 0
	}

	return ci.Insertion, ci.Latency
}

// CheckClkUncertainty resolves the uncertainty to apply for a check:
//
//  1. An explicit pairwise set_clock_uncertainty -from/-to record for the
//     source/target clock pair replaces the target clock's own value.
//  2. Otherwise the target clock's own uncertainty applies.
//  3. With no target relationship at all (unconstrained), exists is false.
func CheckClkUncertainty(srcClkEdge, tgtClkEdge *core.ClockEdge, tgtClkPath *core.Path, role core.Role, s *sta.Sta) (uncertainty float64, exists bool) {
	if tgtClkEdge == nil {
		return 0, false
	}

	if srcClkEdge != nil {
		if u, ok := s.Sdc().InterClockUncertainty(srcClkEdge.Clock(), tgtClkEdge.Clock(), role.PathMinMax()); ok {
			return u, true
		}
	}

	return CheckTgtClkUncertainty(tgtClkPath, tgtClkEdge, role, s), true
}

// CheckTgtClkUncertainty returns the target clock's own (non-inter-clock)
// uncertainty for the check role.
func CheckTgtClkUncertainty(_ *core.Path, tgtClkEdge *core.ClockEdge, role core.Role, _ *sta.Sta) float64 {
	if tgtClkEdge == nil {
		return 0
	}
	u, _ := tgtClkEdge.Clock().Uncertainty(role.PathMinMax())

	return u
}

// checkInterClkUncertainty returns the pairwise inter-clock record for a
// source/target clock pair, and whether one was set. It only applies when
// the two clocks differ.
func checkInterClkUncertainty(srcClkEdge, tgtClkEdge *core.ClockEdge, role core.Role, s *sta.Sta) (float64, bool) {
	if srcClkEdge == nil || tgtClkEdge == nil || srcClkEdge.Clock() == tgtClkEdge.Clock() {
		return 0, false
	}

	return s.Sdc().InterClockUncertainty(srcClkEdge.Clock(), tgtClkEdge.Clock(), role.PathMinMax())
}

// CheckSetupMcpAdjustment returns the capture-edge shift a setup-side
// multicycle record produces: (multiplier − defaultCycles) target periods.
// Records that do not apply to setup, and absent records, yield zero.
func CheckSetupMcpAdjustment(_ *core.ClockEdge, tgtClkEdge *core.ClockEdge, mcp *sdc.MultiCyclePath, defaultCycles int, _ *sdc.Sdc) float64 {
	if mcp == nil || tgtClkEdge == nil || !mcp.AppliesTo(core.RoleSetup) {
		return 0
	}

	return float64(mcp.Multiplier()-defaultCycles) * tgtClkEdge.Period()
}

// checkHoldMcpAdjustment returns the capture-edge shift a hold-side
// multicycle record produces: a hold multiplier of H relaxes the check by
// H target periods (the capture edge moves H cycles earlier).
func checkHoldMcpAdjustment(tgtClkEdge *core.ClockEdge, mcp *sdc.MultiCyclePath) float64 {
	if mcp == nil || tgtClkEdge == nil || !mcp.AppliesTo(core.RoleHold) {
		return 0
	}

	return -float64(mcp.Multiplier()) * tgtClkEdge.Period()
}

// outputDelayMargin converts a set_output_delay value into a check margin:
// the value itself on the setup side, its negation on the hold side (a
// negative -min value tightens the hold requirement).
func outputDelayMargin(od *sdc.OutputDelay, role core.Role) float64 {
	if od == nil {
		return 0
	}
	mm := role.PathMinMax()
	v, ok := od.Delay(mm)
	if !ok {
		return 0
	}
	if mm == core.Min {
		return -v
	}

	return v
}

// pathDelaySrcClkOffset re-bases a path-delay (or latency-ignoring latch)
// arrival onto the exception's measurement origin: the frozen source clock
// arrival under -ignore_clk_latency, else the launch edge's nominal time.
func pathDelaySrcClkOffset(path *core.Path, pd *sdc.PathDelay, srcClkArrival float64) float64 {
	if pd != nil && pd.IgnoreClkLatency() {
		return -srcClkArrival
	}
	if path.ClkEdge != nil {
		return -path.ClkEdge.Time()
	}

	return 0
}

// findSrcClkArrival captures the launching clock's arrival at the path
// start: edge time plus clock network delay. Used once at construction for
// -ignore_clk_latency exceptions, then frozen.
func findSrcClkArrival(path *core.Path) float64 {
	if path == nil || path.ClkEdge == nil {
		return 0
	}

	return path.ClkEdge.Time() + path.ClkDelay()
}

// ignoreClkLatency reports whether a path-delay record freezes the source
// clock arrival.
func ignoreClkLatency(pd *sdc.PathDelay) bool {
	return pd != nil && pd.IgnoreClkLatency()
}
