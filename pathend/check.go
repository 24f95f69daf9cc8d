// File: check.go
// Role: The ordinary register setup/hold (and recovery/removal) check.

package pathend

import (
	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/sdc"
	"github.com/Logikable/OpenSTA/sta"
)

// Check is the workhorse variant: a data path captured at a register by a
// clock path through a library check arc. The arc fixes the check role and
// the per-transition margin; the clock path fixes the capture edge.
type Check struct {
	clkConstrainedMcp
	arc  *core.TimingArc
	edge *core.Edge
}

// NewCheck builds a register check end.
//
// Preconditions:
//  1. path must be non-nil (ErrNilPath).
//  2. arc must be non-nil (ErrNilArc); its role fixes the check.
//  3. clkPath must be non-nil (ErrNilClkPath); its edge is the capture
//     edge.
//
// mcp may be nil; edge identifies the graph edge the arc belongs to and
// may be nil for tests.
func NewCheck(path *core.Path, arc *core.TimingArc, edge *core.Edge, clkPath *core.Path, mcp *sdc.MultiCyclePath, _ *sta.Sta) (*Check, error) {
	if path == nil {
		return nil, ErrNilPath
	}
	if arc == nil {
		return nil, ErrNilArc
	}
	if clkPath == nil {
		return nil, ErrNilClkPath
	}

	return &Check{
		clkConstrainedMcp: newClkConstrainedMcp(path, clkPath, clkPath.ClkEdge, arc.Role(), mcp, 1),
		arc:               arc,
		edge:              edge,
	}, nil
}

func (c *Check) Type() Type       { return TypeCheck }
func (c *Check) TypeName() string { return TypeCheck.String() }
func (c *Check) IsCheck() bool    { return true }

func (c *Check) Copy() PathEnd {
	cp := *c
	cp.path = c.path.Copy()
	cp.clkPath = c.clkPath.Copy()

	return &cp
}

func (c *Check) CheckArc() *core.TimingArc { return c.arc }

// Margin is the check arc's limit at the endpoint data transition.
func (c *Check) Margin(*sta.Sta) float64 {
	return c.arc.MarginAt(c.path.RF)
}

// MacroClkTreeDelay is the captured clock path's macro annotation.
func (c *Check) MacroClkTreeDelay(*sta.Sta) float64 {
	if c.clkPath.Clk == nil {
		return 0
	}

	return c.clkPath.Clk.MacroDelay
}

func (c *Check) DataArrivalTimeOffset(s *sta.Sta) float64 { return dataArrivalTimeOffset(c, s) }
func (c *Check) TargetClkTime(s *sta.Sta) float64         { return targetClkTime(c, s) }
func (c *Check) TargetClkOffset(s *sta.Sta) float64       { return targetClkOffset(c, s) }
func (c *Check) TargetClkArrival(s *sta.Sta) float64      { return targetClkArrival(c, s) }
func (c *Check) RequiredTime(s *sta.Sta) float64          { return clkRequiredTime(c, s, true) }
func (c *Check) RequiredTimeOffset(s *sta.Sta) float64    { return requiredTimeOffset(c, s) }
func (c *Check) Slack(s *sta.Sta) float64                 { return clkSlack(c, s) }
func (c *Check) SlackNoCrpr(s *sta.Sta) float64           { return clkSlackNoCrpr(c, s) }

func (c *Check) ReportShort(r Reporter, s *sta.Sta) { r.ReportShort(summarize(c, s)) }
func (c *Check) ReportFull(r Reporter, s *sta.Sta)  { r.ReportFull(summarize(c, s)) }
