// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gamepad

// Pod models the external controller Pmod: it turns queued words into the
// data, clock and latch waveforms seen on ui_in, one cycle at a time.
//
// Each bit is sent MSB first by setting data, waiting Half cycles, raising
// clock for Half cycles, then lowering it. After the last bit, the pod waits
// Half cycles and pulses latch high for Half cycles.
//
type Pod struct {
	Pins Pins
	// Half is the number of local clock cycles per half period of the serial
	// clock. The synchronizers need at least 3.
	Half int
	// Width is the number of bits per frame. 24 for two controllers, 12 when
	// a single controller is attached.
	Width int

	queue []uint32
	pos   int
	data  bool
}

// DefaultHalf is the default half period of the serial clock, in cycles.
//
const DefaultHalf = 8

// NewPod returns a pod sending 24 bits frames on the given pins.
//
func NewPod(pins Pins) *Pod {
	return &Pod{Pins: pins, Half: DefaultHalf, Width: DefaultWidth}
}

// Send queues a frame.
//
func (p *Pod) Send(word uint32) {
	p.queue = append(p.queue, word)
}

// Busy returns true while frames are being sent.
//
func (p *Pod) Busy() bool { return len(p.queue) > 0 }

// FrameCycles returns the length of a frame in cycles.
//
func (p *Pod) FrameCycles() int {
	return (2*p.width() + 2) * p.half()
}

func (p *Pod) half() int {
	if p.Half < 1 {
		return 1
	}
	return p.Half
}

func (p *Pod) width() int {
	if p.Width < 1 || p.Width > 32 {
		return DefaultWidth
	}
	return p.Width
}

// Next returns the ui_in bits driven by the pod for the current cycle and
// advances to the next cycle. Only the pod's pins can be set in the result.
// When idle, clock and latch are low and data holds its last value.
//
func (p *Pod) Next() uint8 {
	var clk, latch bool
	if len(p.queue) > 0 {
		h, w := p.half(), p.width()
		word := p.queue[0]
		if i := p.pos; i < 2*w*h {
			bit := w - 1 - i/(2*h)
			p.data = word&(1<<uint(bit)) != 0
			clk = i%(2*h) >= h
		} else {
			latch = i-2*w*h >= h
		}
		p.pos++
		if p.pos == p.FrameCycles() {
			p.pos = 0
			p.queue = p.queue[1:]
		}
	}
	var v uint8
	if p.data {
		v |= 1 << p.Pins.Data
	}
	if clk {
		v |= 1 << p.Pins.Clk
	}
	if latch {
		v |= 1 << p.Pins.Latch
	}
	return v
}
