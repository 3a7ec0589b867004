// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package edgecounter models a TinyQV simple peripheral counting edges on
// ui_in[0] and showing the count on a seven segment display wired to uo_out.
//
//	addr  access  contents
//	0x0   W       reset count to 0
//	0x1   W       increment count
//	0x2   R       count
//	0x3   R/W     edge mode (bits 1..0)
//
// The input is synchronized with two flops before edge detection.
//
package edgecounter

import (
	"github.com/db47h/tqvsim"
	"github.com/db47h/tqvsim/bus"
	"github.com/db47h/tqvsim/rtl"
)

// Register addresses.
//
const (
	RegReset  = 0x0
	RegInc    = 0x1
	RegValue  = 0x2
	RegConfig = 0x3
)

const addrMask = 0xf

// Mode selects the counted edges.
//
type Mode uint8

// Edge modes.
//
const (
	None    Mode = 0
	Rising  Mode = 1
	Falling Mode = 2
	Both    Mode = Rising | Falling
)

func (m Mode) String() string {
	switch m & Both {
	case Rising:
		return "rising"
	case Falling:
		return "falling"
	case Both:
		return "both"
	}
	return "none"
}

// Counter is the peripheral state. The zero value is the reset state.
//
type Counter struct {
	in    rtl.Sync2
	edge  rtl.Edge
	mode  Mode
	count uint8
}

// New returns a Counter in its reset state.
//
func New() Counter { return Counter{} }

// Tick returns the counter state after the next rising clock edge together
// with the outputs driven during the cycle.
//
// A write to RegReset wins over a counted edge or increment in the same cycle;
// an increment and a counted edge in the same cycle add two.
//
func (p Counter) Tick(in bus.Inputs) (Counter, bus.Outputs) {
	out := p.Outputs(in)
	if !in.RstN {
		return Counter{}, out
	}

	v := p.in.Out()
	n := p
	n.in = p.in.Next(in.UiIn&1 != 0)
	n.edge = p.edge.Next(v)

	if p.mode&Rising != 0 && p.edge.Rose(v) || p.mode&Falling != 0 && p.edge.Fell(v) {
		n.count++
	}
	if in.Write.Active() {
		switch in.Address & addrMask {
		case RegReset:
			n.count = 0
		case RegInc:
			n.count++
		case RegConfig:
			n.mode = Mode(in.DataIn) & Both
		}
	}
	return n, out
}

// Outputs returns the outputs driven during a cycle with inputs in.
//
func (p Counter) Outputs(in bus.Inputs) bus.Outputs {
	return bus.Outputs{
		UoOut:     SevenSegment(p.count),
		DataOut:   p.Read(in.Address),
		DataReady: true,
	}
}

// Read returns the value of the register at address addr. Write only and
// unmapped registers read as zero.
//
func (p Counter) Read(addr uint32) uint32 {
	switch addr & addrMask {
	case RegValue:
		return uint32(p.count)
	case RegConfig:
		return uint32(p.mode)
	}
	return 0
}

// Count returns the edge count.
func (p Counter) Count() uint8 { return p.count }

// Mode returns the edge mode.
func (p Counter) Mode() Mode { return p.mode }

// Part returns a circuit part for the peripheral with the TinyQV simple
// peripheral pinout (see bus.SimplePart).
//
func Part() tqvsim.NewPartFn {
	return bus.SimplePart("EdgeCounter", New())
}
