// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/tqvsim"
	"github.com/db47h/tqvsim/hwlib"
)

// A Builder returns the parts for one side of a comparison. Parts must read
// the circuit inputs from wires named after the compared input pins and drive
// each compared output pin on the wire returned by out(pin).
//
type Builder func(out func(pin string) string) tqvsim.Parts

func randBool() bool {
	return rand.Int63()&(1<<62) != 0
}

// Compare builds two circuits side by side in the same simulation, feeds them
// the same random inputs every clock cycle and compares their outputs at the
// end of each cycle.
//
// cycles is the number of random cycles to run after the all-false and
// all-true rounds.
//
func Compare(t *testing.T, tpc uint, cycles int, inputs, outputs []string, b1, b2 Builder) {
	t.Helper()

	rand.Seed(time.Now().UnixNano())

	ins := make([]bool, len(inputs))
	outs := make([][2]bool, len(outputs))

	var parts tqvsim.Parts
	for i, n := range inputs {
		k := i
		parts = append(parts, hwlib.Input(func() bool { return ins[k] })("out="+n))
	}
	for side, b := range []Builder{b1, b2} {
		prefix := fmt.Sprintf("__cmp%d_", side)
		parts = append(parts, b(func(pin string) string { return prefix + pin })...)
		for i, o := range outputs {
			n, s := i, side
			parts = append(parts, hwlib.Output(func(v bool) { outs[n][s] = v })("in="+prefix+o))
		}
	}

	c, err := tqvsim.NewCircuit(0, tpc, parts)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	errString := func(cycle int, oname string, ex, got bool) string {
		var b strings.Builder
		for i, n := range inputs {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", n, ins[i])
		}
		return fmt.Sprintf("\ncycle %d: %s\nExpected %s=%v, got %v", cycle, b.String(), oname, ex, got)
	}

	check := func(cycle int) {
		c.TickTock()
		for o, out := range outs {
			if out[0] != out[1] {
				t.Fatal(errString(cycle, outputs[o], out[0], out[1]))
			}
		}
	}

	start := time.Now()

	// try all 0, then all 1, twice each so that clocked parts see both.
	check(0)
	check(1)
	for in := range ins {
		ins[in] = true
	}
	check(2)
	check(3)

	for i := 0; i < cycles; i++ {
		for in := range ins {
			ins[in] = randBool()
		}
		check(4 + i)
	}

	elapsed := time.Since(start)
	ticks := c.Cycles()
	t.Logf("%d components. %d steps in %v. %d clock ticks => %.2f Hz", c.Size(), c.Steps(), elapsed, ticks, float64(ticks)/(float64(elapsed)/float64(time.Second)))
}
