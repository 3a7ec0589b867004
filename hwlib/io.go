// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/tqvsim"
)

// Uint64 returns the pins as an uint64. Pin 0 is lsb.
//
func Uint64(c *tqvsim.Circuit, pins []int) uint64 {
	var out uint64
	for bit := range pins {
		if c.Get(pins[bit]) {
			out |= 1 << uint(bit)
		}
	}
	return out
}

// SetUint64 sets the pins to the given uint64 value.
//
func SetUint64(c *tqvsim.Circuit, pins []int, v uint64) {
	for bit := range pins {
		c.Set(pins[bit], v&(1<<uint(bit)) != 0)
	}
}

// Input creates a function based input.
//
//	Outputs: out
//	Function: out = f()
//
func Input(f func() bool) tqvsim.NewPartFn {
	p := &tqvsim.PartSpec{
		Name:    "Input",
		Inputs:  nil,
		Outputs: []string{pOut},
		Mount: func(s *tqvsim.Socket) []tqvsim.Component {
			pin := s.Pin(pOut)
			return []tqvsim.Component{
				func(c *tqvsim.Circuit) {
					c.Set(pin, f())
				},
			}
		},
	}
	return p.NewPart
}

// Output creates an output or probe. The fn function is
// called with the named pin state on every circuit update.
//
//	Inputs: in
//	Function: f(in)
//
func Output(f func(bool)) tqvsim.NewPartFn {
	p := &tqvsim.PartSpec{
		Name:    "Output",
		Inputs:  []string{pIn},
		Outputs: nil,
		Mount: func(s *tqvsim.Socket) []tqvsim.Component {
			in := s.Pin(pIn)
			return []tqvsim.Component{
				func(c *tqvsim.Circuit) { f(c.Get(in)) },
			}
		},
	}
	return p.NewPart
}

// InputN creates an input bus of the given bits size.
//
//	Outputs: out[bits]
//	Function: out = f()
//
func InputN(bits int, f func() uint64) tqvsim.NewPartFn {
	return (&tqvsim.PartSpec{
		Name:    "Input" + strconv.Itoa(bits),
		Inputs:  nil,
		Outputs: bus(bits, pOut),
		Mount: func(s *tqvsim.Socket) []tqvsim.Component {
			pins := s.Bus(pOut, bits)
			return []tqvsim.Component{func(c *tqvsim.Circuit) {
				SetUint64(c, pins, f())
			}}
		}}).NewPart
}

// OutputN creates an output bus of the given bits size.
//
//	Inputs: in[bits]
//	Function: f(in)
//
func OutputN(bits int, f func(uint64)) tqvsim.NewPartFn {
	return (&tqvsim.PartSpec{
		Name:    "Output" + strconv.Itoa(bits),
		Inputs:  bus(bits, pIn),
		Outputs: nil,
		Mount: func(s *tqvsim.Socket) []tqvsim.Component {
			pins := s.Bus(pIn, bits)
			return []tqvsim.Component{func(c *tqvsim.Circuit) {
				f(Uint64(c, pins))
			}}
		}}).NewPart
}
