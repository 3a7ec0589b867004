// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pwm models the TinyQV simple PWM peripheral.
//
// A free running counter counts from 0 to 254 and wraps, giving a period of
// 255 cycles. The output is high while the counter is below the level
// register, so level 0 is always off and level 255 always on. The comparison is
// registered: the output reflects the counter and level of the previous cycle.
// The output bit drives all eight uo_out pins.
//
//	addr  access  contents
//	0x0   R/W     level
//	0x1   R       counter
//
package pwm

import (
	"github.com/db47h/tqvsim"
	"github.com/db47h/tqvsim/bus"
)

// Register addresses.
//
const (
	RegLevel = 0x0
	RegCount = 0x1
)

// Period is the counter period in cycles.
//
const Period = 255

const addrMask = 0xf

// PWM is the peripheral state. The zero value is the reset state, with the
// output register low.
//
type PWM struct {
	level   uint8
	counter uint8
	out     bool
}

// New returns a PWM in its reset state.
//
func New() PWM { return PWM{} }

// Tick returns the PWM state after the next rising clock edge together with
// the outputs driven during the cycle.
//
func (p PWM) Tick(in bus.Inputs) (PWM, bus.Outputs) {
	out := p.Outputs(in)
	if !in.RstN {
		return PWM{}, out
	}
	n := p
	n.out = p.counter < p.level
	if p.counter == Period-1 {
		n.counter = 0
	} else {
		n.counter = p.counter + 1
	}
	if in.Write.Active() && in.Address&addrMask == RegLevel {
		n.level = uint8(in.DataIn)
	}
	return n, out
}

// Outputs returns the outputs driven during a cycle with inputs in.
//
func (p PWM) Outputs(in bus.Inputs) bus.Outputs {
	var uo uint8
	if p.out {
		uo = 0xff
	}
	return bus.Outputs{
		UoOut:     uo,
		DataOut:   p.Read(in.Address),
		DataReady: true,
	}
}

// Read returns the value of the register at address addr. Unmapped registers
// read as zero.
//
func (p PWM) Read(addr uint32) uint32 {
	switch addr & addrMask {
	case RegLevel:
		return uint32(p.level)
	case RegCount:
		return uint32(p.counter)
	}
	return 0
}

// Level returns the level register.
func (p PWM) Level() uint8 { return p.level }

// Counter returns the counter.
func (p PWM) Counter() uint8 { return p.counter }

// Out returns the output register.
func (p PWM) Out() bool { return p.out }

// Duty returns the duty cycle produced by level.
//
func Duty(level uint8) float64 {
	return float64(level) / Period
}

// Part returns a circuit part for the peripheral with the TinyQV simple
// peripheral pinout (see bus.SimplePart).
//
func Part() tqvsim.NewPartFn {
	return bus.SimplePart("PWM", New())
}
