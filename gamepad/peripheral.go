// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gamepad

import (
	"github.com/db47h/tqvsim/bus"
	"github.com/db47h/tqvsim/rtl"
)

// Register addresses.
//
const (
	RegEnable      = 0x00 // R/W bit 0: forward latch edges to the driver
	RegController1 = 0x04 // R: data[11:0]
	RegController2 = 0x08 // R: data[23:12]
	RegInterrupt   = 0x10 // R: select interrupt, W: 1 to clear
)

// addrMask selects the 6 address bits decoded by the peripheral.
const addrMask = 0x3f

// SelectBit is the data register bit of controller 1's Select button.
//
const SelectBit = 9

// Pins assigns the Pmod signals to ui_in bits.
//
type Pins struct {
	Latch uint
	Clk   uint
	Data  uint
}

// DefaultPins is the gamepad Pmod pinout on ui_in.
//
var DefaultPins = Pins{Latch: 4, Clk: 5, Data: 6}

func (p Pins) inputs(uiIn uint8, rstN, enable bool) DriverInputs {
	v := uint32(uiIn)
	return DriverInputs{
		RstN:  rstN,
		Data:  rtl.Bit(v, int(p.Data)),
		Clk:   rtl.Bit(v, int(p.Clk)),
		Latch: rtl.Bit(v, int(p.Latch)) && enable,
	}
}

// Peripheral is the TinyQV full peripheral wrapping a 24 bits Driver.
//
// While disabled, latch edges are masked before they reach the driver: the
// shift register keeps shifting on clock edges but the data register keeps
// its last value.
//
// A rising edge of data register bit 9 sets a sticky interrupt flag. Writing 1
// to RegInterrupt clears it unless a new edge is detected in the same cycle.
//
type Peripheral struct {
	pins   Pins
	drv    Driver
	enable bool
	sel    rtl.Edge
	intr   bool
}

// New returns a peripheral in its reset state.
//
func New(pins Pins) Peripheral {
	return Peripheral{pins: pins}.Reset()
}

// Reset returns the peripheral's reset state.
//
func (p Peripheral) Reset() Peripheral {
	drv := NewDriver(DefaultWidth)
	return Peripheral{
		pins: p.pins,
		drv:  drv,
		// the data register resets to all ones: no edge until bit 9 drops.
		sel: rtl.NewEdge(rtl.Bit(drv.Data(), SelectBit)),
	}
}

// Tick returns the peripheral state after the next rising clock edge together
// with the outputs driven during the cycle.
//
func (p Peripheral) Tick(in bus.Inputs) (Peripheral, bus.Outputs) {
	out := p.Outputs(in)
	if !in.RstN {
		return p.Reset(), out
	}

	n := p
	n.drv = p.drv.Tick(p.pins.inputs(in.UiIn, true, p.enable))

	if in.Write.Active() {
		switch in.Address & addrMask {
		case RegEnable:
			n.enable = in.DataIn&1 != 0
		case RegInterrupt:
			if in.DataIn&1 != 0 {
				n.intr = false
			}
		}
	}

	sel := rtl.Bit(p.drv.Data(), SelectBit)
	if p.sel.Rose(sel) {
		n.intr = true
	}
	n.sel = p.sel.Next(sel)

	return n, out
}

// Outputs returns the outputs driven during a cycle with inputs in.
//
func (p Peripheral) Outputs(in bus.Inputs) bus.Outputs {
	return bus.Outputs{
		DataOut:   p.Read(in.Address),
		DataReady: true,
		Interrupt: p.intr,
	}
}

// Read returns the value of the register at address addr. Unmapped registers
// read as zero.
//
func (p Peripheral) Read(addr uint32) uint32 {
	switch addr & addrMask {
	case RegEnable:
		return rtl.B2U(p.enable)
	case RegController1:
		return p.drv.Data() & 0xfff
	case RegController2:
		return p.drv.Data() >> 12 & 0xfff
	case RegInterrupt:
		return rtl.B2U(p.intr)
	}
	return 0
}

// Enabled returns the enable flag.
func (p Peripheral) Enabled() bool { return p.enable }

// Interrupt returns the select interrupt flag.
func (p Peripheral) Interrupt() bool { return p.intr }

// Driver returns the serial driver state.
func (p Peripheral) Driver() Driver { return p.drv }

// Pins returns the pin assignment.
func (p Peripheral) Pins() Pins { return p.pins }
