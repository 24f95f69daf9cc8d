// Package opensta is an in-memory static timing toolkit: it models clock
// domains, timing paths, and path endpoints, and computes the slacks that
// decide whether a design meets timing.
//
// 🚀 What is in the box?
//
//	A thread-aware, small-surface library that brings together:
//		• Core primitives: clocks, waveforms, paths & clock-tree hops
//		• Constraints: multicycle, min/max-delay, output-delay, data checks
//		• Cycle accounting: launch/capture edge pairing across clock domains
//		• Path ends: setup/hold, latch borrowing, gated clocks, port checks
//		• Pessimism removal: common clock-tree credit with per-end memoization
//		• Ranking: deterministic criticality ordering & top-N selection
//
// ✨ Why this layout?
//
//   - Small API per package - each concern gets one home
//   - Explicit ownership - path ends own their paths, copies are deep
//   - Pure accessors - the single memo write is documented where it lives
//
// Everything is organized under four subpackages:
//
//	core/    — clocks, edges, paths, timing arcs & the pessimism walker
//	sdc/     — constraint records & cross-domain cycle accounting
//	sta/     — the session tying a constraint store to analysis knobs
//	pathend/ — endpoint variants, slack math, ranking & reporting
//
// Quick ASCII example:
//
//	clk ──▶ FF1 ──▶ logic ──▶ FF2 ◀── clk
//	        launch            capture
//
//	data must land at FF2 inside the window the capture edge allows;
//	the leftover is the slack.
//
//	go get github.com/Logikable/OpenSTA
package opensta
