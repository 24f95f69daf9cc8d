// File: types.go
// Role: Transitions, analysis sides, timing roles, and shared sentinels.

package core

import "errors"

// Sentinel errors for core timing-model construction.
var (
	// ErrEmptyClockName indicates a clock was created with an empty name.
	ErrEmptyClockName = errors.New("core: clock name is empty")

	// ErrBadPeriod indicates a clock period that is zero or negative.
	ErrBadPeriod = errors.New("core: clock period must be positive")

	// ErrBadWaveform indicates a waveform edge outside [0, period).
	ErrBadWaveform = errors.New("core: waveform edge outside clock period")

	// ErrNilVertex indicates a Path was created without an endpoint vertex.
	ErrNilVertex = errors.New("core: path vertex is nil")
)

// Inf is the "no requirement" sentinel on the required-time scale.
// An unconstrained endpoint reports this as its required time and slack;
// it is never used to gate pass/fail.
const Inf = 1e+30

// RiseFall identifies a signal transition direction.
type RiseFall int

const (
	// Rise is a low-to-high transition.
	Rise RiseFall = iota
	// Fall is a high-to-low transition.
	Fall
)

// Opposite returns the other transition direction.
func (rf RiseFall) Opposite() RiseFall {
	if rf == Rise {
		return Fall
	}

	return Rise
}

// String returns "rise" or "fall".
func (rf RiseFall) String() string {
	if rf == Rise {
		return "rise"
	}

	return "fall"
}

// MinMax identifies the analysis side of a propagated value:
// Min is the early (hold) side, Max the late (setup) side.
type MinMax int

const (
	// Min is the early analysis side.
	Min MinMax = iota
	// Max is the late analysis side.
	Max
)

// Opposite returns the other analysis side.
func (mm MinMax) Opposite() MinMax {
	if mm == Min {
		return Max
	}

	return Min
}

// String returns "min" or "max".
func (mm MinMax) String() string {
	if mm == Min {
		return "min"
	}

	return "max"
}

// Role classifies a timing check. The zero value RoleNone marks the absence
// of a check (unconstrained endpoints).
type Role int

const (
	// RoleNone marks an endpoint with no timing check.
	RoleNone Role = iota
	// RoleSetup is a standard setup check.
	RoleSetup
	// RoleHold is a standard hold check.
	RoleHold
	// RoleRecovery is an asynchronous-control recovery check (setup-like).
	RoleRecovery
	// RoleRemoval is an asynchronous-control removal check (hold-like).
	RoleRemoval
	// RoleGatedClkSetup is a clock-gating enable setup check.
	RoleGatedClkSetup
	// RoleGatedClkHold is a clock-gating enable hold check.
	RoleGatedClkHold
	// RoleDataSetup is a data-to-data setup-style check.
	RoleDataSetup
	// RoleDataHold is a data-to-data hold-style check.
	RoleDataHold
)

// Generic maps a role onto its setup/hold orientation. RoleNone maps to
// itself; every other role maps to RoleSetup or RoleHold.
func (r Role) Generic() Role {
	switch r {
	case RoleNone:
		return RoleNone
	case RoleHold, RoleRemoval, RoleGatedClkHold, RoleDataHold:
		return RoleHold
	default:
		return RoleSetup
	}
}

// PathMinMax returns the analysis side of the data path constrained by this
// role: setup-like checks constrain late (Max) paths, hold-like checks
// constrain early (Min) paths.
func (r Role) PathMinMax() MinMax {
	if r.Generic() == RoleHold {
		return Min
	}

	return Max
}

// TgtClkMinMax returns the analysis side used for the capturing clock of
// this role, which is the opposite of the data side.
func (r Role) TgtClkMinMax() MinMax {
	return r.PathMinMax().Opposite()
}

// String returns the SDC-style name of the role.
func (r Role) String() string {
	switch r {
	case RoleSetup:
		return "setup"
	case RoleHold:
		return "hold"
	case RoleRecovery:
		return "recovery"
	case RoleRemoval:
		return "removal"
	case RoleGatedClkSetup:
		return "clock gating setup"
	case RoleGatedClkHold:
		return "clock gating hold"
	case RoleDataSetup:
		return "data setup"
	case RoleDataHold:
		return "data hold"
	default:
		return "none"
	}
}
