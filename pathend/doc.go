// Package pathend computes the timing result produced when a propagated
// path reaches a constrained endpoint: the required time, margin, and slack
// of a setup/hold check, latch enable, output-delay constraint, clock-gating
// check, data-to-data check, or min/max-delay exception.
//
// A path end is one of a closed set of variants, all satisfying the PathEnd
// contract:
//
//	Unconstrained — endpoint with no timing requirement
//	Check         — standard setup/hold check through a timing arc
//	LatchCheck    — level-sensitive latch check with time borrowing
//	OutputDelay   — primary-output constraint, optionally pin-referenced
//	GatedClock    — clock-gating enable/disable check
//	DataCheck     — setup/hold-style check between two non-clock pins
//	PathDelayEnd  — set_min/max_delay exception overriding the required time
//
// Exactly one Is* predicate is true for any instance, and it matches Type().
//
// The cycle math shared by the clock-constrained variants — source/target
// cycle alignment, insertion/latency decomposition, uncertainty resolution,
// multicycle adjustment, and clock-reconvergence pessimism removal (CRPR) —
// lives in free functions (CheckTgtClkDelay, CheckClkUncertainty,
// CheckSetupMcpAdjustment) rather than in shared mutable state.
//
// Sign conventions (slack ascending = most critical first):
//
//   - Setup-like roles: Slack = RequiredTime − DataArrivalTimeOffset.
//   - Hold-like roles:  Slack = DataArrivalTimeOffset − RequiredTime.
//     Negative slack always means a violation.
//   - Crpr is the raw (non-negative) shared clock-tree pessimism; CheckCrpr
//     signs it per role (positive setup, negative hold) so that removal only
//     ever relaxes a check: Slack = SlackNoCrpr + CheckCrpr for setup and
//     Slack = SlackNoCrpr − CheckCrpr for hold.
//
// Concurrency: path ends share no mutable state with each other. The CRPR
// value is memoized per instance on first read under a single-writer
// discipline — concurrent first reads of the same instance must be
// externally serialized. EvalSlacks evaluates disjoint instances in
// parallel while honoring that discipline.
//
// Ownership: a path end exclusively owns its data path (and, for latch and
// data checks, its second path); Copy deep-copies owned paths. Exception
// records, arcs, and edges are weak references into collaborator-owned data
// that must outlive the path end.
package pathend
