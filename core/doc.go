// Package core defines the timing-model primitives shared by every other
// package in this module: rise/fall transitions, early/late analysis sides,
// timing roles, clocks and clock edges, timing-graph vertices, edges and
// check arcs, and the propagated Path value that a search engine hands to
// the path-end calculator.
//
// The types here are deliberately small and value-oriented:
//
//   - Clock / ClockEdge describe a periodic waveform and one of its edges.
//   - Vertex / Edge / TimingArc describe the slice of the timing graph a
//     path end needs: the endpoint pin and the library check constraining it.
//   - Path is the propagated arrival of a signal at a vertex, together with
//     the clock-network information (insertion delay, latency, per-hop
//     bounds) needed for uncertainty and pessimism-removal math.
//   - ClkTreeWalker is the seam used to locate the clock-tree delay shared
//     by a launch and a capture clock path; PrefixWalker is the default
//     longest-common-prefix implementation.
//
// Ownership: a Path is exclusively owned by whoever holds it. Copy returns
// a deep, independently-owned duplicate of everything the Path owns; clock
// edges are shared references into externally-owned clock definitions and
// are never deep-copied.
//
// Errors (sentinel):
//
//	– ErrEmptyClockName if a clock is created with an empty name.
//	– ErrBadPeriod      if a clock period is zero or negative.
//	– ErrBadWaveform    if a waveform edge falls outside [0, period).
//	– ErrNilVertex      if a Path is created without a vertex.
package core
