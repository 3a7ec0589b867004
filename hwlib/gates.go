// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable parts for tqvsim circuits.
//
package hwlib

import (
	"strconv"

	"github.com/db47h/tqvsim"
)

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pOut = "out"
)

// make a bus name
func bus(bits int, names ...string) []string {
	b := make([]string, len(names)*bits)
	for i, n := range names {
		for j := 0; j < bits; j++ {
			b[i*bits+j] = n + "[" + strconv.Itoa(j) + "]"
		}
	}
	return b
}

var notGate = &tqvsim.PartSpec{
	Name:    "NOT",
	Inputs:  []string{pIn},
	Outputs: []string{pOut},
	Mount: func(s *tqvsim.Socket) []tqvsim.Component {
		in, out := s.Pin(pIn), s.Pin(pOut)
		return []tqvsim.Component{
			func(c *tqvsim.Circuit) { c.Set(out, !c.Get(in)) },
		}
	}}

// Not returns a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
//
func Not(w string) tqvsim.Part { return notGate.NewPart(w) }

type gate func(a, b bool) bool

func (g gate) mount(s *tqvsim.Socket) []tqvsim.Component {
	a, b, out := s.Pin(pA), s.Pin(pB), s.Pin(pOut)
	return []tqvsim.Component{
		func(c *tqvsim.Circuit) { c.Set(out, g(c.Get(a), c.Get(b))) },
	}
}

func newGate(name string, fn func(a, b bool) bool) *tqvsim.PartSpec {
	return &tqvsim.PartSpec{
		Name:    name,
		Inputs:  []string{pA, pB},
		Outputs: []string{pOut},
		Mount:   gate(fn).mount,
	}
}

var (
	and = newGate("AND", func(a, b bool) bool { return a && b })
	or  = newGate("OR", func(a, b bool) bool { return a || b })
	xor = newGate("XOR", func(a, b bool) bool { return a != b })
)

// And returns a AND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
//
func And(w string) tqvsim.Part { return and.NewPart(w) }

// Or returns a OR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
//
func Or(w string) tqvsim.Part { return or.NewPart(w) }

// Xor returns a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a != b
//
func Xor(w string) tqvsim.Part { return xor.NewPart(w) }
