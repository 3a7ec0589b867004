// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package gamepad models the gamepad Pmod peripheral: a serial decoder for up to
two SNES style controllers and its TinyQV register wrapper.

	addr  access  contents
	0x00  R/W     bit 0: enable
	0x04  R       controller 1, data[11:0]
	0x08  R       controller 2, data[23:12]
	0x10  R/W1C   bit 0: select interrupt

Other addresses read as zero. Reads complete in the cycle they are issued.

After reset the data register holds all ones, which decodes as Absent for
both controllers until a frame is latched.
*/
package gamepad
