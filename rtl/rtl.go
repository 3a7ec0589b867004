// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package rtl provides register-transfer building blocks for peripheral
// models: clock domain synchronizers, edge detectors and bit helpers.
//
// All types are small values. Their Next methods return the state after the
// next rising clock edge and never modify the receiver, so a model can compute
// every next-state field from the same snapshot before committing.
//
package rtl

// Sync2 is a two flop synchronizer for an asynchronous input.
//
// Each clock edge the raw pin is shifted into a 2-deep history. Only the older
// sample is the synchronized value; the newer one is provisional and may be
// metastable in hardware.
//
type Sync2 struct {
	s0 bool // newest sample
	s1 bool // synchronized sample
}

// Next returns the synchronizer state after sampling raw on a clock edge.
//
func (s Sync2) Next(raw bool) Sync2 {
	return Sync2{s0: raw, s1: s.s0}
}

// Out returns the synchronized value.
//
func (s Sync2) Out() bool { return s.s1 }

// Provisional returns the newest, not yet synchronized, sample.
//
func (s Sync2) Provisional() bool { return s.s0 }

// Edge detects transitions of a synchronous signal by comparing it against
// a copy delayed by one clock cycle.
//
type Edge struct {
	prev bool
}

// NewEdge returns an edge detector whose delayed copy is prev.
//
func NewEdge(prev bool) Edge { return Edge{prev} }

// Rose returns true if cur is high and the delayed copy is low.
//
func (e Edge) Rose(cur bool) bool { return cur && !e.prev }

// Fell returns true if cur is low and the delayed copy is high.
//
func (e Edge) Fell(cur bool) bool { return !cur && e.prev }

// Next returns the detector state after a clock edge with cur as input.
//
func (e Edge) Next(cur bool) Edge { return Edge{cur} }

// Prev returns the delayed copy.
//
func (e Edge) Prev() bool { return e.prev }

// Mask returns a mask of the width lower bits.
//
func Mask(width int) uint32 {
	if width >= 32 {
		return ^uint32(0)
	}
	if width <= 0 {
		return 0
	}
	return 1<<uint(width) - 1
}

// Bit returns bit n of v.
//
func Bit(v uint32, n int) bool {
	return v&(1<<uint(n)) != 0
}

// B2U returns 1 if b is true, 0 otherwise.
//
func B2U(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
