// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gamepad

import (
	"strconv"

	"github.com/db47h/tqvsim/rtl"
)

// DefaultWidth is the word width of a two controller frame.
//
const DefaultWidth = 24

// DriverInputs are the raw pins seen by the Driver during one cycle.
//
type DriverInputs struct {
	RstN  bool
	Data  bool
	Clk   bool
	Latch bool
}

// Driver deserializes the Pmod serial stream into a parallel word.
//
// The three pins are asynchronous to the local clock and go through a two flop
// synchronizer each. Rising edges are detected on the synchronized clock and
// latch against copies delayed by one cycle, so a raw pin transition affects
// the registers three cycles later. Bits are shifted in MSB first: after Width
// clock edges the first bit sent is the MSB of the word.
//
// The zero Driver is not usable; use NewDriver.
//
type Driver struct {
	width int

	data, clk, latch   rtl.Sync2
	clkEdge, latchEdge rtl.Edge

	shift uint32
	word  uint32
}

// NewDriver returns a Driver in its reset state for the given word width.
// It panics if width is not in the range [1, 32].
//
func NewDriver(width int) Driver {
	if width < 1 || width > 32 {
		panic("gamepad: invalid driver width " + strconv.Itoa(width))
	}
	return Driver{width: width}.Reset()
}

// Reset returns the driver's reset state: shift and data registers are all
// ones, synchronizers and edge detectors are cleared.
//
func (d Driver) Reset() Driver {
	m := rtl.Mask(d.width)
	return Driver{width: d.width, shift: m, word: m}
}

// Tick returns the driver state after the next rising clock edge.
//
func (d Driver) Tick(in DriverInputs) Driver {
	if !in.RstN {
		return d.Reset()
	}

	bit, clk, latch := d.data.Out(), d.clk.Out(), d.latch.Out()

	n := d
	n.data = d.data.Next(in.Data)
	n.clk = d.clk.Next(in.Clk)
	n.latch = d.latch.Next(in.Latch)
	n.clkEdge = d.clkEdge.Next(clk)
	n.latchEdge = d.latchEdge.Next(latch)

	if d.latchEdge.Rose(latch) {
		n.word = d.shift
	}
	if d.clkEdge.Rose(clk) {
		n.shift = (d.shift<<1 | rtl.B2U(bit)) & rtl.Mask(d.width)
	}
	return n
}

// Width returns the word width.
func (d Driver) Width() int { return d.width }

// Data returns the data register: the shift register contents at the last
// latch edge.
func (d Driver) Data() uint32 { return d.word }

// Shift returns the shift register.
func (d Driver) Shift() uint32 { return d.shift }
