// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package edgecounter

// segments for hex digits, bit 0 is segment a, bit 6 segment g.
var segments = [16]uint8{
	0x3f, 0x06, 0x5b, 0x4f, 0x66, 0x6d, 0x7d, 0x07,
	0x7f, 0x6f, 0x77, 0x7c, 0x39, 0x5e, 0x79, 0x71,
}

// SevenSegment returns the segments lit to display the low nibble of v as a
// hex digit. The decimal point (bit 7) is always off.
//
func SevenSegment(v uint8) uint8 {
	return segments[v&0xf]
}
