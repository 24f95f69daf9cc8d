// Package sdc is the constraint store consumed by the path-end calculator:
// clock definitions, timing-exception records, clock-uncertainty settings,
// latch borrow limits, and source/target cycle accounting.
//
// Exception records (MultiCyclePath, PathDelay, OutputDelay, DataCheck) are
// immutable after construction and owned by the store's caller; path ends
// reference them weakly and never mutate them. Exception-scope resolution
// (which record applies to which path) happens upstream — this package only
// stores the records and answers numeric lookups.
//
// CycleAccting aligns a launching clock edge with its capturing edge across
// differing periods and waveforms. Relationships are searched over the two
// clocks' common hyperperiod, capped at MaxCycleSearch cycles per clock;
// incommensurate periods beyond the cap degrade to the single-cycle default
// relationship. Accounting objects are cached per edge pair inside Sdc.
//
// Errors (sentinel):
//
//	– ErrBadMultiplier if a multicycle multiplier is negative.
//	– ErrEmptyPin      if an output-delay or data-check pin name is empty.
//	– ErrNilClockEdge  if cycle accounting is requested for a nil edge.
package sdc
