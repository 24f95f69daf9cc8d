// File: gated_clock.go
// Role: Clock-gating enable check against the gated clock edge.

package pathend

import (
	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/sdc"
	"github.com/Logikable/OpenSTA/sta"
)

// GatedClock checks a gating enable signal against the clock it gates:
// on the max side the enable must settle before the active edge opens the
// gate, on the min side it must hold past it. The margin is the gating
// setup/hold requirement and is supplied directly rather than read from a
// library arc.
type GatedClock struct {
	clkConstrainedMcp
	margin float64
}

// NewGatedClock builds a gated-clock check end. clkPath is the gated
// clock's path to the gating point.
func NewGatedClock(path, clkPath *core.Path, margin float64, mcp *sdc.MultiCyclePath, _ *sta.Sta) (*GatedClock, error) {
	if path == nil {
		return nil, ErrNilPath
	}
	if clkPath == nil {
		return nil, ErrNilClkPath
	}
	role := core.RoleGatedClkSetup
	if path.MM == core.Min {
		role = core.RoleGatedClkHold
	}

	return &GatedClock{
		clkConstrainedMcp: newClkConstrainedMcp(path, clkPath, clkPath.ClkEdge, role, mcp, 1),
		margin:            margin,
	}, nil
}

func (g *GatedClock) Type() Type         { return TypeGatedClock }
func (g *GatedClock) TypeName() string   { return TypeGatedClock.String() }
func (g *GatedClock) IsGatedClock() bool { return true }

func (g *GatedClock) Copy() PathEnd {
	cp := *g
	cp.path = g.path.Copy()
	cp.clkPath = g.clkPath.Copy()

	return &cp
}

func (g *GatedClock) Margin(*sta.Sta) float64 { return g.margin }

func (g *GatedClock) DataArrivalTimeOffset(s *sta.Sta) float64 { return dataArrivalTimeOffset(g, s) }
func (g *GatedClock) TargetClkTime(s *sta.Sta) float64         { return targetClkTime(g, s) }
func (g *GatedClock) TargetClkOffset(s *sta.Sta) float64       { return targetClkOffset(g, s) }
func (g *GatedClock) TargetClkArrival(s *sta.Sta) float64      { return targetClkArrival(g, s) }
func (g *GatedClock) RequiredTime(s *sta.Sta) float64          { return clkRequiredTime(g, s, true) }
func (g *GatedClock) RequiredTimeOffset(s *sta.Sta) float64    { return requiredTimeOffset(g, s) }
func (g *GatedClock) Slack(s *sta.Sta) float64                 { return clkSlack(g, s) }
func (g *GatedClock) SlackNoCrpr(s *sta.Sta) float64           { return clkSlackNoCrpr(g, s) }

func (g *GatedClock) ReportShort(r Reporter, s *sta.Sta) { r.ReportShort(summarize(g, s)) }
func (g *GatedClock) ReportFull(r Reporter, s *sta.Sta)  { r.ReportFull(summarize(g, s)) }
