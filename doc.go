// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package tqvsim provides a clocked circuit simulator and cycle-accurate models
of TinyQV bus peripherals: a gamepad Pmod decoder, a PWM generator and an edge
counter.

The peripheral models live in their own packages (gamepad, pwm, edgecounter)
as plain state values advanced by a pure Tick method: every next-state field is
computed from the previous state before anything is committed, which is how
the registers of a synchronous design behave on a clock edge. Package bus
drives those models with TinyQV host transactions.

This package mounts the same models as parts in a pin-level Circuit so they
can be wired to other parts (synchronizers, probes, glue logic) and simulated
step by step. Wire states are double buffered: components read the previous
frame and write the next one, frames are swapped after each step.

*/
package tqvsim
