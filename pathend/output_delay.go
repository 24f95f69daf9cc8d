// File: output_delay.go
// Role: Port endpoint constrained by set_output_delay.

package pathend

import (
	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/sdc"
	"github.com/Logikable/OpenSTA/sta"
)

// OutputDelay is a primary-output endpoint constrained relative to an
// external clock. The delay value models board or downstream logic delay
// and enters the check as margin. When the constraint names a reference
// pin, the capture edge comes from an actual clock path to that pin and
// pessimism removal applies; otherwise the edge is the constraint's ideal
// clock edge and there is nothing shared to remove.
type OutputDelay struct {
	clkConstrainedMcp
	od *sdc.OutputDelay
}

// NewOutputDelay builds an output-delay end. refClkPath is the clock path
// to the constraint's reference pin, nil when the constraint is relative
// to an ideal clock edge.
func NewOutputDelay(path *core.Path, od *sdc.OutputDelay, refClkPath *core.Path, mcp *sdc.MultiCyclePath, _ *sta.Sta) (*OutputDelay, error) {
	if path == nil {
		return nil, ErrNilPath
	}
	if od == nil {
		return nil, ErrNilException
	}
	role := core.RoleSetup
	if path.MM == core.Min {
		role = core.RoleHold
	}
	tgtEdge := od.ClkEdge()
	if od.HasRefPin() && refClkPath != nil {
		tgtEdge = refClkPath.ClkEdge
	}

	return &OutputDelay{
		clkConstrainedMcp: newClkConstrainedMcp(path, refClkPath, tgtEdge, role, mcp, 1),
		od:                od,
	}, nil
}

func (o *OutputDelay) Type() Type          { return TypeOutputDelay }
func (o *OutputDelay) TypeName() string    { return TypeOutputDelay.String() }
func (o *OutputDelay) IsOutputDelay() bool { return true }

func (o *OutputDelay) Copy() PathEnd {
	cp := *o
	cp.path = o.path.Copy()
	if o.clkPath != nil {
		cp.clkPath = o.clkPath.Copy()
	}

	return &cp
}

// Margin is the constraint's delay value, negated on the hold side so a
// positive -min value tightens the check.
func (o *OutputDelay) Margin(*sta.Sta) float64 {
	return outputDelayMargin(o.od, o.role)
}

// Crpr is zero without a reference clock path: an ideal external edge
// shares no clock tree with the launch.
func (o *OutputDelay) Crpr(s *sta.Sta) float64 {
	if o.clkPath == nil {
		return 0
	}

	return o.clkConstrained.Crpr(s)
}

func (o *OutputDelay) CheckCrpr(s *sta.Sta) float64 {
	return signCrpr(o.Crpr(s), o.role)
}

func (o *OutputDelay) DataArrivalTimeOffset(s *sta.Sta) float64 { return dataArrivalTimeOffset(o, s) }
func (o *OutputDelay) TargetClkTime(s *sta.Sta) float64         { return targetClkTime(o, s) }
func (o *OutputDelay) TargetClkOffset(s *sta.Sta) float64       { return targetClkOffset(o, s) }
func (o *OutputDelay) TargetClkArrival(s *sta.Sta) float64      { return targetClkArrival(o, s) }
func (o *OutputDelay) RequiredTime(s *sta.Sta) float64          { return clkRequiredTime(o, s, true) }
func (o *OutputDelay) RequiredTimeOffset(s *sta.Sta) float64    { return requiredTimeOffset(o, s) }
func (o *OutputDelay) Slack(s *sta.Sta) float64                 { return clkSlack(o, s) }
func (o *OutputDelay) SlackNoCrpr(s *sta.Sta) float64           { return clkSlackNoCrpr(o, s) }

func (o *OutputDelay) ReportShort(r Reporter, s *sta.Sta) { r.ReportShort(summarize(o, s)) }
func (o *OutputDelay) ReportFull(r Reporter, s *sta.Sta)  { r.ReportFull(summarize(o, s)) }
