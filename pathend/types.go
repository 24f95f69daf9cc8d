// File: types.go
// Role: Variant discriminants and construction sentinels.

package pathend

import "errors"

// Sentinel errors for path-end construction.
var (
	// ErrNilPath indicates a path end built without a data path.
	ErrNilPath = errors.New("pathend: data path is nil")

	// ErrNilClkPath indicates a clock-constrained path end built without a
	// captured clock path.
	ErrNilClkPath = errors.New("pathend: target clock path is nil")

	// ErrNilArc indicates a check built without a timing arc.
	ErrNilArc = errors.New("pathend: check arc is nil")

	// ErrNilException indicates a variant built without its exception record.
	ErrNilException = errors.New("pathend: exception record is nil")

	// ErrConflictingTermination indicates a path-delay end given both a
	// terminating check arc and an output delay.
	ErrConflictingTermination = errors.New("pathend: path delay cannot terminate at both a check and an output delay")
)

// Type discriminates the concrete path-end variant.
type Type int

const (
	// TypeUnconstrained is an endpoint with no timing requirement.
	TypeUnconstrained Type = iota
	// TypeCheck is a standard sequential setup/hold check.
	TypeCheck
	// TypeDataCheck is a data-to-data check.
	TypeDataCheck
	// TypeLatchCheck is a latch check with time borrowing.
	TypeLatchCheck
	// TypeOutputDelay is a primary-output delay constraint.
	TypeOutputDelay
	// TypeGatedClock is a clock-gating check.
	TypeGatedClock
	// TypePathDelay is a min/max-delay exception.
	TypePathDelay
)

// String returns the variant's report name.
func (t Type) String() string {
	switch t {
	case TypeUnconstrained:
		return "unconstrained"
	case TypeCheck:
		return "check"
	case TypeDataCheck:
		return "data_check"
	case TypeLatchCheck:
		return "latch_check"
	case TypeOutputDelay:
		return "output_delay"
	case TypeGatedClock:
		return "gated_clk"
	case TypePathDelay:
		return "path_delay"
	default:
		panic("pathend: unknown path end type")
	}
}
