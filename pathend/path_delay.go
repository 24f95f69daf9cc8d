// File: path_delay.go
// Role: Endpoint constrained by a set_max_delay/set_min_delay exception.

package pathend

import (
	"cmp"

	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/sdc"
	"github.com/Logikable/OpenSTA/sta"
)

// PathDelayEnd is an endpoint whose requirement is a flat delay bound
// from a min/max-delay exception, replacing the clock-derived required
// time. The exception never stacks with a multicycle adjustment, so this
// variant carries the plain clock-constrained state.
//
// The bound may terminate three ways: at a bare endpoint, at a register
// check arc (the arc's margin and the capture clock network still apply),
// or at an output-delay port (the external delay applies as margin).
type PathDelayEnd struct {
	clkConstrained
	pd  *sdc.PathDelay
	arc *core.TimingArc
	// edge is the graph edge of the terminating check arc, nil otherwise.
	edge *core.Edge
	od   *sdc.OutputDelay
	// srcClkArrival freezes the launch clock arrival at construction for
	// -ignore_clk_latency exceptions.
	srcClkArrival float64
}

// PathDelayEndOption selects how the bounded path terminates.
type PathDelayEndOption func(*PathDelayEnd)

// PathDelayToArc terminates the bound at a register check arc; the arc's
// margin and clkPath's clock network stay in the requirement.
func PathDelayToArc(arc *core.TimingArc, edge *core.Edge, clkPath *core.Path) PathDelayEndOption {
	return func(p *PathDelayEnd) {
		p.arc = arc
		p.edge = edge
		p.clkPath = clkPath
	}
}

// PathDelayToOutputDelay terminates the bound at an output port carrying
// a set_output_delay; the external delay applies as margin. refClkPath is
// the clock path to the constraint's reference pin, nil for ideal edges.
func PathDelayToOutputDelay(od *sdc.OutputDelay, refClkPath *core.Path) PathDelayEndOption {
	return func(p *PathDelayEnd) {
		p.od = od
		p.clkPath = refClkPath
	}
}

// NewPathDelayEnd builds a min/max-delay-bounded end.
//
// Preconditions:
//  1. path must be non-nil (ErrNilPath).
//  2. pd must be non-nil (ErrNilException).
//  3. At most one termination option may be given
//     (ErrConflictingTermination).
func NewPathDelayEnd(path *core.Path, pd *sdc.PathDelay, _ *sta.Sta, opts ...PathDelayEndOption) (*PathDelayEnd, error) {
	if path == nil {
		return nil, ErrNilPath
	}
	if pd == nil {
		return nil, ErrNilException
	}
	role := core.RoleSetup
	if pd.MinMax() == core.Min {
		role = core.RoleHold
	}
	p := &PathDelayEnd{
		clkConstrained: newClkConstrained(path, nil, nil, role),
		pd:             pd,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.arc != nil && p.od != nil {
		return nil, ErrConflictingTermination
	}
	if p.arc != nil {
		p.role = p.arc.Role()
	}
	if p.clkPath != nil {
		p.tgtEdge = p.clkPath.ClkEdge
	} else if p.od != nil {
		p.tgtEdge = p.od.ClkEdge()
	}
	if pd.IgnoreClkLatency() {
		p.srcClkArrival = findSrcClkArrival(path)
	}

	return p, nil
}

func (p *PathDelayEnd) Type() Type        { return TypePathDelay }
func (p *PathDelayEnd) TypeName() string  { return TypePathDelay.String() }
func (p *PathDelayEnd) IsPathDelay() bool { return true }

func (p *PathDelayEnd) Copy() PathEnd {
	cp := *p
	cp.path = p.path.Copy()
	if p.clkPath != nil {
		cp.clkPath = p.clkPath.Copy()
	}

	return &cp
}

func (p *PathDelayEnd) PathDelay() *sdc.PathDelay { return p.pd }
func (p *PathDelayEnd) CheckArc() *core.TimingArc { return p.arc }

// PathDelayMarginIsExternal reports that no library arc contributes to
// the margin; whatever margin exists comes from the exception's endpoint
// constraint.
func (p *PathDelayEnd) PathDelayMarginIsExternal() bool { return p.arc == nil }

func (p *PathDelayEnd) IgnoreClkLatency(*sta.Sta) bool {
	return p.pd.IgnoreClkLatency()
}

// SourceClkOffset re-bases the arrival onto the exception's measurement
// origin rather than the capture cycle accounting.
func (p *PathDelayEnd) SourceClkOffset(*sta.Sta) float64 {
	return pathDelaySrcClkOffset(p.path, p.pd, p.srcClkArrival)
}

func (p *PathDelayEnd) Margin(*sta.Sta) float64 {
	switch {
	case p.arc != nil:
		return p.arc.MarginAt(p.path.RF)
	case p.od != nil:
		return outputDelayMargin(p.od, p.role)
	default:
		return 0
	}
}

func (p *PathDelayEnd) Crpr(s *sta.Sta) float64 {
	if p.clkPath == nil {
		return 0
	}

	return p.clkConstrained.Crpr(s)
}

func (p *PathDelayEnd) CheckCrpr(s *sta.Sta) float64 {
	return signCrpr(p.Crpr(s), p.role)
}

// requiredTime is the exception's delay bound, tightened by the margin
// per orientation. An arc-terminated bound still rides the capture clock
// network and its pessimism correction.
func (p *PathDelayEnd) requiredTime(s *sta.Sta, withCrpr bool) float64 {
	required := p.pd.Delay()
	if p.arc != nil {
		required += p.TargetClkDelay(s)
		if withCrpr {
			required += p.CheckCrpr(s)
		}
	}
	if p.role.Generic() == core.RoleHold {
		return required + p.Margin(s)
	}

	return required - p.Margin(s)
}

func (p *PathDelayEnd) RequiredTime(s *sta.Sta) float64 {
	return p.requiredTime(s, true)
}

func (p *PathDelayEnd) RequiredTimeOffset(s *sta.Sta) float64 { return requiredTimeOffset(p, s) }

func (p *PathDelayEnd) DataArrivalTimeOffset(s *sta.Sta) float64 { return dataArrivalTimeOffset(p, s) }

func (p *PathDelayEnd) Slack(s *sta.Sta) float64 {
	return orientSlack(p.RequiredTime(s), p.DataArrivalTimeOffset(s), p.role.Generic())
}

func (p *PathDelayEnd) SlackNoCrpr(s *sta.Sta) float64 {
	return orientSlack(p.requiredTime(s, false), p.DataArrivalTimeOffset(s), p.role.Generic())
}

// ExceptPathCmp orders by the exception's delay bound so ends that differ
// only in their exception sort deterministically.
func (p *PathDelayEnd) ExceptPathCmp(other PathEnd, _ *sta.Sta) int {
	opd := other.PathDelay()
	if opd == nil {
		return 1
	}

	return cmp.Compare(p.pd.Delay(), opd.Delay())
}

func (p *PathDelayEnd) ReportShort(r Reporter, s *sta.Sta) { r.ReportShort(summarize(p, s)) }
func (p *PathDelayEnd) ReportFull(r Reporter, s *sta.Sta)  { r.ReportFull(summarize(p, s)) }
