// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bus

import "strconv"

// Width is the 2-bit access width qualifier of TinyQV data_write_n and
// data_read_n signals.
//
type Width uint8

// Width qualifiers. None (0b11) means no access this cycle.
//
const (
	Byte Width = iota
	Half
	Word
	None
)

func (w Width) String() string {
	switch w {
	case Byte:
		return "byte"
	case Half:
		return "half"
	case Word:
		return "word"
	case None:
		return "none"
	}
	return "Width(" + strconv.Itoa(int(w)) + ")"
}

// Active returns true if w qualifies an access.
//
func (w Width) Active() bool { return w&3 != None }

// Inputs are the signals a peripheral samples during one clock cycle.
//
// Simple peripherals only look at the low 4 address bits and the low 8 data
// bits, and treat any active Write as their single write strobe.
//
type Inputs struct {
	RstN    bool   // active low synchronous reset
	UiIn    uint8  // input port
	Address uint32 // peripheral local register address
	DataIn  uint32
	Write   Width
	Read    Width
}

// Idle returns the inputs of a cycle with no bus access.
//
func Idle(uiIn uint8) Inputs {
	return Inputs{RstN: true, UiIn: uiIn, Write: None, Read: None}
}

// Outputs are the signals a peripheral drives during one clock cycle.
//
// DataOut is combinational: it is derived from the register state committed by
// the previous clock edge and the Address of the current cycle.
//
type Outputs struct {
	UoOut     uint8
	DataOut   uint32
	DataReady bool
	Interrupt bool
}
