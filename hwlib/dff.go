// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/tqvsim"
	"github.com/db47h/tqvsim/rtl"
)

var dff = &tqvsim.PartSpec{
	Name:    "DFF",
	Inputs:  []string{pIn},
	Outputs: []string{pOut},
	Mount: func(s *tqvsim.Socket) []tqvsim.Component {
		in, out := s.Pin(pIn), s.Pin(pOut)
		var curOut bool
		return []tqvsim.Component{
			func(c *tqvsim.Circuit) {
				// raising edge?
				if c.AtTick() {
					curOut = c.Get(in)
				}
				c.Set(out, curOut)
			}}
	}}

// DFF returns a clocked data flip flop.
//
//	Inputs: in
//	Outputs: out
//	Function: out(t) = in(t-1) // where t is the current clock cycle.
//
func DFF(w string) tqvsim.Part { return dff.NewPart(w) }

// DFFN returns a N-bits wide clocked register.
//
//	Inputs: in[bits]
//	Outputs: out[bits]
//	Function: out(t) = in(t-1)
//
func DFFN(bits int) tqvsim.NewPartFn {
	return (&tqvsim.PartSpec{
		Name:    "DFF" + strconv.Itoa(bits),
		Inputs:  bus(bits, pIn),
		Outputs: bus(bits, pOut),
		Mount: func(s *tqvsim.Socket) []tqvsim.Component {
			in, out := s.Bus(pIn, bits), s.Bus(pOut, bits)
			var cur uint64
			return []tqvsim.Component{
				func(c *tqvsim.Circuit) {
					if c.AtTick() {
						cur = Uint64(c, in)
					}
					SetUint64(c, out, cur)
				}}
		}}).NewPart
}

var sync2 = &tqvsim.PartSpec{
	Name:    "Sync2",
	Inputs:  []string{pIn},
	Outputs: []string{pOut},
	Mount: func(s *tqvsim.Socket) []tqvsim.Component {
		in, out := s.Pin(pIn), s.Pin(pOut)
		var st rtl.Sync2
		return []tqvsim.Component{
			func(c *tqvsim.Circuit) {
				if c.AtTick() {
					st = st.Next(c.Get(in))
				}
				c.Set(out, st.Out())
			}}
	}}

// Sync2 returns a two flop synchronizer.
//
//	Inputs: in
//	Outputs: out
//	Function: out(t) = in(t-2)
//
func Sync2(w string) tqvsim.Part { return sync2.NewPart(w) }

var risingEdge = &tqvsim.PartSpec{
	Name:    "RisingEdge",
	Inputs:  []string{pIn},
	Outputs: []string{pOut},
	Mount: func(s *tqvsim.Socket) []tqvsim.Component {
		in, out := s.Pin(pIn), s.Pin(pOut)
		var e rtl.Edge
		return []tqvsim.Component{
			func(c *tqvsim.Circuit) {
				v := c.Get(in)
				if c.AtTick() {
					e = e.Next(v)
				}
				c.Set(out, e.Rose(v))
			}}
	}}

// RisingEdge returns a rising edge detector.
//
//	Inputs: in
//	Outputs: out
//	Function: out = in && !in(t-1)
//
func RisingEdge(w string) tqvsim.Part { return risingEdge.NewPart(w) }
