// File: pathend.go
// Role: The PathEnd contract and the state shared by every variant.

package pathend

import (
	"github.com/Logikable/OpenSTA/core"
	"github.com/Logikable/OpenSTA/sdc"
	"github.com/Logikable/OpenSTA/sta"
)

// PathEnd is the read-only contract every endpoint variant satisfies.
// Consumers (ranking, filtering, reporting) use only this contract plus the
// comparators; they never name a concrete variant except through Type() and
// the Is* predicates.
//
// All accessors are pure; the only hidden state transition is the one-time
// CRPR memoization described in the package comment.
type PathEnd interface {
	// Type discriminates the concrete variant; exactly one Is* predicate
	// is true and matches it.
	Type() Type
	// TypeName returns the variant's report name.
	TypeName() string
	// Path returns the owned data path.
	Path() *core.Path
	// Copy returns an independent duplicate with deep-copied owned paths.
	Copy() PathEnd

	IsUnconstrained() bool
	IsCheck() bool
	IsDataCheck() bool
	IsLatchCheck() bool
	IsOutputDelay() bool
	IsGatedClock() bool
	IsPathDelay() bool

	// Vertex is the endpoint pin of the data path.
	Vertex(s *sta.Sta) *core.Vertex
	// MinMax is the data path's analysis side; PathEarlyLate is a synonym.
	MinMax(s *sta.Sta) core.MinMax
	PathEarlyLate(s *sta.Sta) core.MinMax
	// ClkEarlyLate is the analysis side used for the captured clock.
	ClkEarlyLate(s *sta.Sta) core.MinMax
	// Transition is the data transition at the endpoint.
	Transition(s *sta.Sta) core.RiseFall
	// PathAnalysisPt is the data path's analysis-point index.
	PathAnalysisPt(s *sta.Sta) int

	// SourceClkEdge is the clock edge that launched the data path.
	SourceClkEdge(s *sta.Sta) *core.ClockEdge
	// SourceClkOffset shifts the launch so it lines up with cycle zero of
	// the capture relationship.
	SourceClkOffset(s *sta.Sta) float64
	SourceClkLatency(s *sta.Sta) float64
	SourceClkInsertionDelay(s *sta.Sta) float64

	// DataArrivalTime is the data path's propagated arrival;
	// DataArrivalTimeOffset re-bases it with the source-clock offset so all
	// variants report arrival against the same cycle origin.
	DataArrivalTime(s *sta.Sta) float64
	DataArrivalTimeOffset(s *sta.Sta) float64
	// RequiredTime is the latest (setup) or earliest (hold) permissible
	// arrival; RequiredTimeOffset applies the source-clock offset.
	RequiredTime(s *sta.Sta) float64
	RequiredTimeOffset(s *sta.Sta) float64
	// Margin is the check's intrinsic setup/hold limit.
	Margin(s *sta.Sta) float64
	// MacroClkTreeDelay is the annotated macro clock-tree delay, else zero.
	MacroClkTreeDelay(s *sta.Sta) float64
	Slack(s *sta.Sta) float64
	SlackNoCrpr(s *sta.Sta) float64
	// Borrow is the latch time borrow, zero for non-latch variants.
	Borrow(s *sta.Sta) float64
	// Crpr is the raw shared clock-tree pessimism; CheckCrpr signs it per
	// the check role (positive setup, negative hold).
	Crpr(s *sta.Sta) float64
	CheckCrpr(s *sta.Sta) float64
	// ClkSkew is target minus source clock network delay (diagnostic).
	ClkSkew(s *sta.Sta) float64

	// TargetClkPath is the captured clock path, nil when none exists.
	TargetClkPath() *core.Path
	TargetClk(s *sta.Sta) *core.Clock
	TargetClkEdge(s *sta.Sta) *core.ClockEdge
	TargetClkEndTrans(s *sta.Sta) core.RiseFall
	// TargetClkTime is the capture edge time with cycle accounting and
	// multicycle adjustment folded in; TargetClkOffset is its shift from
	// the edge's nominal time; TargetClkArrival adds the clock network
	// delay and pessimism correction.
	TargetClkTime(s *sta.Sta) float64
	TargetClkOffset(s *sta.Sta) float64
	TargetClkArrival(s *sta.Sta) float64
	TargetClkDelay(s *sta.Sta) float64
	TargetClkInsertionDelay(s *sta.Sta) float64
	// Uncertainty split: the target clock's own value, the inter-clock
	// contribution, and their resolved sum.
	TargetNonInterClkUncertainty(s *sta.Sta) float64
	InterClkUncertainty(s *sta.Sta) float64
	TargetClkUncertainty(s *sta.Sta) float64
	TargetClkMcpAdjustment(s *sta.Sta) float64

	CheckRole(s *sta.Sta) core.Role
	CheckGenericRole(s *sta.Sta) core.Role
	// CheckArc is the timing arc of check-like variants, else nil.
	CheckArc() *core.TimingArc
	// MultiCyclePath is the applied multicycle exception, else nil.
	MultiCyclePath() *sdc.MultiCyclePath
	// PathDelay is the applied min/max-delay exception, else nil.
	PathDelay() *sdc.PathDelay
	// PathDelayMarginIsExternal reports that the margin comes wholly from
	// the exception rather than library timing arcs.
	PathDelayMarginIsExternal() bool
	// DataClkPath is the data check's reference path, nil elsewhere.
	DataClkPath() *core.Path
	// SetupDefaultCycles is the default capture-cycle count for setup-like
	// checks (1 for ordinary checks, 0 for data checks).
	SetupDefaultCycles() int
	IgnoreClkLatency(s *sta.Sta) bool
	// ExceptPathCmp refines ordering between ends whose slacks tie, by
	// comparing the exceptions they evaluate.
	ExceptPathCmp(other PathEnd, s *sta.Sta) int

	// ReportShort and ReportFull hand the computed values to an external
	// report writer; no text is formatted at this layer.
	ReportShort(r Reporter, s *sta.Sta)
	ReportFull(r Reporter, s *sta.Sta)
}

// pathEnd is the state and inert defaults shared by every variant: the
// owned data path plus zero-value answers for everything only some
// variants override.
type pathEnd struct {
	path *core.Path
}

func (p *pathEnd) Path() *core.Path { return p.path }

func (p *pathEnd) IsUnconstrained() bool { return false }
func (p *pathEnd) IsCheck() bool         { return false }
func (p *pathEnd) IsDataCheck() bool     { return false }
func (p *pathEnd) IsLatchCheck() bool    { return false }
func (p *pathEnd) IsOutputDelay() bool   { return false }
func (p *pathEnd) IsGatedClock() bool    { return false }
func (p *pathEnd) IsPathDelay() bool     { return false }

func (p *pathEnd) Vertex(*sta.Sta) *core.Vertex       { return p.path.Vertex }
func (p *pathEnd) MinMax(*sta.Sta) core.MinMax        { return p.path.MM }
func (p *pathEnd) PathEarlyLate(*sta.Sta) core.MinMax { return p.path.MM }
func (p *pathEnd) ClkEarlyLate(*sta.Sta) core.MinMax  { return p.path.MM.Opposite() }
func (p *pathEnd) Transition(*sta.Sta) core.RiseFall  { return p.path.RF }
func (p *pathEnd) PathAnalysisPt(*sta.Sta) int        { return p.path.APIndex }

func (p *pathEnd) SourceClkEdge(*sta.Sta) *core.ClockEdge { return p.path.ClkEdge }
func (p *pathEnd) SourceClkLatency(*sta.Sta) float64      { return p.path.Latency() }
func (p *pathEnd) SourceClkInsertionDelay(*sta.Sta) float64 {
	return p.path.InsertionDelay()
}

func (p *pathEnd) DataArrivalTime(*sta.Sta) float64   { return p.path.Arrival }
func (p *pathEnd) MacroClkTreeDelay(*sta.Sta) float64 { return 0 }
func (p *pathEnd) Borrow(*sta.Sta) float64            { return 0 }
func (p *pathEnd) Crpr(*sta.Sta) float64              { return 0 }
func (p *pathEnd) CheckCrpr(*sta.Sta) float64         { return 0 }
func (p *pathEnd) ClkSkew(*sta.Sta) float64           { return 0 }

func (p *pathEnd) TargetClkPath() *core.Path                   { return nil }
func (p *pathEnd) TargetClk(*sta.Sta) *core.Clock              { return nil }
func (p *pathEnd) TargetClkEdge(*sta.Sta) *core.ClockEdge      { return nil }
func (p *pathEnd) TargetClkEndTrans(*sta.Sta) core.RiseFall    { return core.Rise }
func (p *pathEnd) TargetClkTime(*sta.Sta) float64              { return 0 }
func (p *pathEnd) TargetClkOffset(*sta.Sta) float64            { return 0 }
func (p *pathEnd) TargetClkArrival(*sta.Sta) float64           { return 0 }
func (p *pathEnd) TargetClkDelay(*sta.Sta) float64             { return 0 }
func (p *pathEnd) TargetClkInsertionDelay(*sta.Sta) float64    { return 0 }
func (p *pathEnd) TargetNonInterClkUncertainty(*sta.Sta) float64 { return 0 }
func (p *pathEnd) InterClkUncertainty(*sta.Sta) float64        { return 0 }
func (p *pathEnd) TargetClkUncertainty(*sta.Sta) float64       { return 0 }
func (p *pathEnd) TargetClkMcpAdjustment(*sta.Sta) float64     { return 0 }

func (p *pathEnd) CheckRole(*sta.Sta) core.Role        { return core.RoleNone }
func (p *pathEnd) CheckGenericRole(*sta.Sta) core.Role { return core.RoleNone }
func (p *pathEnd) CheckArc() *core.TimingArc           { return nil }
func (p *pathEnd) MultiCyclePath() *sdc.MultiCyclePath { return nil }
func (p *pathEnd) PathDelay() *sdc.PathDelay           { return nil }
func (p *pathEnd) PathDelayMarginIsExternal() bool     { return false }
func (p *pathEnd) DataClkPath() *core.Path             { return nil }
func (p *pathEnd) SetupDefaultCycles() int             { return 1 }
func (p *pathEnd) IgnoreClkLatency(*sta.Sta) bool      { return false }

func (p *pathEnd) ExceptPathCmp(PathEnd, *sta.Sta) int { return 0 }

// dataArrivalTimeOffset re-bases a variant's arrival using its own source
// offset; variants delegate here so the offset dispatches correctly.
func dataArrivalTimeOffset(e PathEnd, s *sta.Sta) float64 {
	return e.DataArrivalTime(s) + e.SourceClkOffset(s)
}

// requiredTimeOffset re-bases a variant's required time the same way.
func requiredTimeOffset(e PathEnd, s *sta.Sta) float64 {
	return e.RequiredTime(s) + e.SourceClkOffset(s)
}
