// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tqvsim

import "github.com/pkg/errors"

type chip struct {
	PartSpec
	parts Parts
	pins  map[string]bool // chip I/O pin names
}

func (c *chip) mount(s *Socket) []Component {
	var cs []Component
	// internal wires are private to each mounted instance of the chip.
	internal := newSocket(s.c)
	wire := func(name string) int {
		if c.pins[name] || isConstant(name) {
			return s.Pin(name)
		}
		return internal.PinOrNew(name)
	}
	for _, p := range c.parts {
		cs = append(cs, p.Mount(p.socket(s.c, wire))...)
	}
	return cs
}

// Chip composes existing parts into a new part packaged into a chip.
// The pin names specified as inputs and outputs will be the inputs
// and outputs of the chip. All other wires used by the parts are internal
// to the chip.
//
// An Xor gate could be created like this:
//
//	xor, err := Chip("XOR", "a, b", "out", Parts{
//		Not("in=a, out=nota"),
//		Not("in=b, out=notb"),
//		And("a=a, b=notb, out=w0"),
//		And("a=nota, b=b, out=w1"),
//		Or("a=w0, b=w1, out=out"),
//	})
//
// The returned NewPartFn can be used in a circuit or to compose other chips:
//
//	c, err := NewCircuit(0, 8, Parts{
//		xor("a=x, b=y, out=z"),
//		...
//	})
//
func Chip(name string, inputs, outputs string, parts Parts) (NewPartFn, error) {
	ins, err := ParseIO(inputs)
	if err != nil {
		return nil, errors.Wrap(err, name+" inputs")
	}
	outs, err := ParseIO(outputs)
	if err != nil {
		return nil, errors.Wrap(err, name+" outputs")
	}
	if len(parts) == 0 {
		return nil, errors.New(name + ": empty part list")
	}

	pins := make(map[string]bool, len(ins)+len(outs))
	// seen from the inside, chip inputs are driven by the chip pins and
	// outputs read by them.
	self := &PartSpec{Name: name, Inputs: outs, Outputs: ins}
	var conns []Connection
	for _, n := range append(ins[:len(ins):len(ins)], outs...) {
		if pins[n] {
			return nil, errors.Errorf("%s: pin %s declared twice", name, n)
		}
		if isConstant(n) {
			return nil, errors.Errorf("%s: invalid pin name %s", name, n)
		}
		pins[n] = true
		conns = append(conns, Connection{n, n})
	}
	if err = checkWiring(append(Parts{{self, conns}}, parts...)); err != nil {
		return nil, errors.Wrap(err, name)
	}

	c := &chip{
		PartSpec: PartSpec{Name: name, Inputs: ins, Outputs: outs},
		parts:    parts,
		pins:     pins,
	}
	c.PartSpec.Mount = c.mount
	return c.PartSpec.NewPart, nil
}
