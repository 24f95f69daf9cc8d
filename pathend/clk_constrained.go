// File: clk_constrained.go
// Role: State and math shared by every clock-constrained variant: the
// captured clock path, the resolved capture edge and role, the memoized
// CRPR value, and the required-time/slack free functions.
// Concurrency:
//   - The CRPR memo is written lazily on first read. A single writer per
//     instance is assumed; concurrent first reads must be serialized by
//     the caller (see EvalSlacks).

package pathend

import (
	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/sta"
)

// clkConstrained is the shared state of every clock-constrained variant.
// The capture edge and check role are resolved once at construction, so
// the accessors here need no per-variant dispatch.
type clkConstrained struct {
	pathEnd
	clkPath *core.Path
	tgtEdge *core.ClockEdge
	role    core.Role

	crpr      float64
	crprValid bool
}

func newClkConstrained(path, clkPath *core.Path, tgtEdge *core.ClockEdge, role core.Role) clkConstrained {
	return clkConstrained{
		pathEnd: pathEnd{path: path},
		clkPath: clkPath,
		tgtEdge: tgtEdge,
		role:    role,
	}
}

func (c *clkConstrained) TargetClkPath() *core.Path { return c.clkPath }

func (c *clkConstrained) TargetClk(*sta.Sta) *core.Clock {
	if c.tgtEdge == nil {
		return nil
	}

	return c.tgtEdge.Clock()
}

func (c *clkConstrained) TargetClkEdge(*sta.Sta) *core.ClockEdge { return c.tgtEdge }

func (c *clkConstrained) TargetClkEndTrans(*sta.Sta) core.RiseFall {
	if c.tgtEdge == nil {
		return core.Rise
	}

	return c.tgtEdge.RF()
}

func (c *clkConstrained) ClkEarlyLate(*sta.Sta) core.MinMax {
	return c.role.TgtClkMinMax()
}

func (c *clkConstrained) CheckRole(*sta.Sta) core.Role        { return c.role }
func (c *clkConstrained) CheckGenericRole(*sta.Sta) core.Role { return c.role.Generic() }

// SourceClkOffset aligns the launch edge with cycle zero of the capture
// relationship via the constraint store's cycle accounting.
func (c *clkConstrained) SourceClkOffset(s *sta.Sta) float64 {
	return sourceClkOffsetEdges(c.path.ClkEdge, c.tgtEdge, c.role, s)
}

func (c *clkConstrained) TargetClkDelay(s *sta.Sta) float64 {
	return CheckTgtClkDelay(c.clkPath, c.tgtEdge, c.role, s)
}

func (c *clkConstrained) TargetClkInsertionDelay(s *sta.Sta) float64 {
	insertion, _ := CheckTgtClkDelays(c.clkPath, c.tgtEdge, c.role, s)

	return insertion
}

func (c *clkConstrained) TargetNonInterClkUncertainty(s *sta.Sta) float64 {
	return CheckTgtClkUncertainty(c.clkPath, c.tgtEdge, c.role, s)
}

func (c *clkConstrained) InterClkUncertainty(s *sta.Sta) float64 {
	u, _ := checkInterClkUncertainty(c.path.ClkEdge, c.tgtEdge, c.role, s)

	return u
}

func (c *clkConstrained) TargetClkUncertainty(s *sta.Sta) float64 {
	u, _ := CheckClkUncertainty(c.path.ClkEdge, c.tgtEdge, c.clkPath, c.role, s)

	return u
}

// Crpr memoizes the shared clock-tree pessimism between the launch clock
// of the data path and the captured clock path. Computed at most once per
// instance; the memo write is the single non-pure operation in this
// package.
func (c *clkConstrained) Crpr(s *sta.Sta) float64 {
	if !c.crprValid {
		c.crpr = s.CommonClkPessimism(c.path, c.clkPath)
		c.crprValid = true
	}

	return c.crpr
}

// CheckCrpr signs the pessimism per the check role: positive for
// setup-like, negative for hold-like, so removal always relaxes the check.
func (c *clkConstrained) CheckCrpr(s *sta.Sta) float64 {
	return signCrpr(c.Crpr(s), c.role)
}

// ClkSkew is the difference between target and source clock network delay.
func (c *clkConstrained) ClkSkew(s *sta.Sta) float64 {
	return CheckTgtClkDelay(c.clkPath, c.tgtEdge, c.role, s) - c.path.ClkDelay()
}

func signCrpr(crpr float64, role core.Role) float64 {
	if role.Generic() == core.RoleHold {
		return -crpr
	}

	return crpr
}

// sourceClkOffsetEdges is the cycle-accounting launch alignment shared by
// the clock-constrained variants.
func sourceClkOffsetEdges(srcEdge, tgtEdge *core.ClockEdge, role core.Role, s *sta.Sta) float64 {
	if srcEdge == nil || tgtEdge == nil {
		return 0
	}
	ca, err := s.Sdc().CycleAccting(srcEdge, tgtEdge)
	if err != nil {
		return 0
	}

	return ca.SourceTimeOffset(role)
}

// targetClkTime is the capture edge time with cycle accounting and the
// variant's multicycle adjustment folded in.
func targetClkTime(e PathEnd, s *sta.Sta) float64 {
	srcEdge, tgtEdge := e.SourceClkEdge(s), e.TargetClkEdge(s)
	if tgtEdge == nil {
		return 0
	}
	var nominal float64
	if srcEdge != nil {
		ca, err := s.Sdc().CycleAccting(srcEdge, tgtEdge)
		if err == nil {
			nominal = ca.RequiredTime(e.CheckGenericRole(s))
		}
	} else {
		nominal = tgtEdge.Time()
	}

	return nominal + e.TargetClkMcpAdjustment(s)
}

// targetClkOffset is the capture shift from the edge's nominal time.
func targetClkOffset(e PathEnd, s *sta.Sta) float64 {
	tgtEdge := e.TargetClkEdge(s)
	if tgtEdge == nil {
		return 0
	}

	return e.TargetClkTime(s) - tgtEdge.Time()
}

// targetClkArrival adds the clock network delay and the signed pessimism
// correction to the capture time.
func targetClkArrival(e PathEnd, s *sta.Sta) float64 {
	return targetClkArrivalNoCrpr(e, s) + e.CheckCrpr(s)
}

func targetClkArrivalNoCrpr(e PathEnd, s *sta.Sta) float64 {
	return e.TargetClkTime(s) + e.TargetClkDelay(s)
}

// clkRequiredTime is the required-time rule shared by the check-like
// variants: capture arrival relaxed or tightened by uncertainty and
// margin per the check orientation.
//
//	setup: required = arrival − uncertainty − margin
//	hold:  required = arrival + uncertainty + margin
//
// The signed pessimism correction rides on the arrival term.
func clkRequiredTime(e PathEnd, s *sta.Sta, withCrpr bool) float64 {
	arrival := targetClkArrivalNoCrpr(e, s)
	if withCrpr {
		arrival += e.CheckCrpr(s)
	}
	u := e.TargetClkUncertainty(s)
	m := e.Margin(s)
	if e.CheckGenericRole(s) == core.RoleHold {
		return arrival + u + m
	}

	return arrival - u - m
}

// clkSlack orients required minus arrival per the check role so negative
// slack always means a violation.
func clkSlack(e PathEnd, s *sta.Sta) float64 {
	return orientSlack(e.RequiredTime(s), e.DataArrivalTimeOffset(s), e.CheckGenericRole(s))
}

// clkSlackNoCrpr recomputes the slack with pessimism removal forced off.
func clkSlackNoCrpr(e PathEnd, s *sta.Sta) float64 {
	return orientSlack(clkRequiredTime(e, s, false), e.DataArrivalTimeOffset(s), e.CheckGenericRole(s))
}

func orientSlack(required, arrival float64, generic core.Role) float64 {
	if generic == core.RoleHold {
		return arrival - required
	}

	return required - arrival
}
