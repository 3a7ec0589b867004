// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gamepad

import (
	"github.com/db47h/tqvsim"
	"github.com/db47h/tqvsim/bus"
)

// Part returns a circuit part for the peripheral with the TinyQV full
// peripheral pinout (see bus.FullPart).
//
func Part(pins Pins) tqvsim.NewPartFn {
	return bus.FullPart("GamepadPmod", New(pins))
}
