// File: unconstrained.go
// Role: Endpoint with no timing requirement at all.

package pathend

import (
	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/sta"
)

// Unconstrained is an endpoint no constraint reaches: no capture clock,
// no exception, no check. Its slack is infinite so it never outranks a
// constrained end, and comparators fall back to arrival order among its
// peers.
type Unconstrained struct {
	pathEnd
}

// NewUnconstrained wraps a data path that terminates without any
// requirement.
func NewUnconstrained(path *core.Path) (*Unconstrained, error) {
	if path == nil {
		return nil, ErrNilPath
	}

	return &Unconstrained{pathEnd{path: path}}, nil
}

func (u *Unconstrained) Type() Type            { return TypeUnconstrained }
func (u *Unconstrained) TypeName() string      { return TypeUnconstrained.String() }
func (u *Unconstrained) IsUnconstrained() bool { return true }

func (u *Unconstrained) Copy() PathEnd {
	return &Unconstrained{pathEnd{path: u.path.Copy()}}
}

func (u *Unconstrained) SourceClkOffset(*sta.Sta) float64 { return 0 }
func (u *Unconstrained) Margin(*sta.Sta) float64          { return 0 }

func (u *Unconstrained) DataArrivalTimeOffset(s *sta.Sta) float64 {
	return dataArrivalTimeOffset(u, s)
}

// RequiredTime is unbounded: never-too-late on the max side, never-too-
// early on the min side.
func (u *Unconstrained) RequiredTime(*sta.Sta) float64 {
	if u.path.MM == core.Min {
		return -core.Inf
	}

	return core.Inf
}

func (u *Unconstrained) RequiredTimeOffset(s *sta.Sta) float64 {
	return u.RequiredTime(s)
}

func (u *Unconstrained) Slack(*sta.Sta) float64       { return core.Inf }
func (u *Unconstrained) SlackNoCrpr(*sta.Sta) float64 { return core.Inf }

func (u *Unconstrained) ReportShort(r Reporter, s *sta.Sta) { r.ReportShort(summarize(u, s)) }
func (u *Unconstrained) ReportFull(r Reporter, s *sta.Sta)  { r.ReportFull(summarize(u, s)) }
