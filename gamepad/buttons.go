// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gamepad

import "strings"

// Buttons is the 12 bits state of one controller. A set bit is a pressed
// button.
//
type Buttons uint16

// Controller buttons in word order, bit 0 first.
//
const (
	R Buttons = 1 << iota
	L
	X
	A
	Right
	Left
	Down
	Up
	Start
	Select
	Y
	B
)

// Absent is the state read for a controller slot with no controller attached.
// A real controller cannot report it since it would need Up and Down (and
// Left and Right) pressed at the same time.
//
const Absent Buttons = 0xfff

var names = [...]string{"R", "L", "X", "A", "Right", "Left", "Down", "Up", "Start", "Select", "Y", "B"}

// Decode splits a 24 bits data register value into the states of controller
// 1 (bits 11..0) and controller 2 (bits 23..12).
//
func Decode(word uint32) (c1, c2 Buttons) {
	return Buttons(word & 0xfff), Buttons(word >> 12 & 0xfff)
}

// Encode is the inverse of Decode.
//
func Encode(c1, c2 Buttons) uint32 {
	return uint32(c1&Absent) | uint32(c2&Absent)<<12
}

// Present returns false if b is the Absent sentinel.
//
func (b Buttons) Present() bool { return b&Absent != Absent }

// Pressed returns true if all buttons in m are pressed.
//
func (b Buttons) Pressed(m Buttons) bool { return b&m == m }

func (b Buttons) String() string {
	if !b.Present() {
		return "absent"
	}
	var s []string
	for i := len(names) - 1; i >= 0; i-- {
		if b&(1<<uint(i)) != 0 {
			s = append(s, names[i])
		}
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, "+")
}
