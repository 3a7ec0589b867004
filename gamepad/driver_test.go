package gamepad_test

import (
	"math/rand"
	"testing"

	"github.com/db47h/tqvsim/gamepad"
)

func run(d gamepad.Driver, in gamepad.DriverInputs, n int) gamepad.Driver {
	in.RstN = true
	for i := 0; i < n; i++ {
		d = d.Tick(in)
	}
	return d
}

// send clocks width bits of word MSB first, then pulses latch.
func send(d gamepad.Driver, word uint32, width, half int) gamepad.Driver {
	var in gamepad.DriverInputs
	for bit := width - 1; bit >= 0; bit-- {
		in.Data = word&(1<<uint(bit)) != 0
		in.Clk = false
		d = run(d, in, half)
		in.Clk = true
		d = run(d, in, half)
	}
	in.Clk = false
	d = run(d, in, half)
	in.Latch = true
	d = run(d, in, half)
	in.Latch = false
	return run(d, in, half)
}

func TestDriver_reset(t *testing.T) {
	d := gamepad.NewDriver(gamepad.DefaultWidth)
	if d.Data() != 0xffffff || d.Shift() != 0xffffff {
		t.Fatalf("reset state: data=%#x shift=%#x", d.Data(), d.Shift())
	}
	d = send(d, 0x123456, 24, 4)
	d = d.Tick(gamepad.DriverInputs{RstN: false})
	if d.Data() != 0xffffff || d.Shift() != 0xffffff {
		t.Fatalf("after reset: data=%#x shift=%#x", d.Data(), d.Shift())
	}
	if d.Width() != 24 {
		t.Fatalf("width %d", d.Width())
	}
}

func TestDriver_frame(t *testing.T) {
	d := gamepad.NewDriver(gamepad.DefaultWidth)
	for i := 0; i < 50; i++ {
		w := uint32(rand.Int31n(1 << 24))
		d = send(d, w, 24, 3)
		if d.Data() != w {
			t.Fatalf("frame %d: sent %#06x, got %#06x", i, w, d.Data())
		}
		if d.Shift() != w {
			t.Fatalf("frame %d: shift register %#06x != %#06x", i, d.Shift(), w)
		}
	}
}

func TestDriver_msbFirst(t *testing.T) {
	d := gamepad.NewDriver(gamepad.DefaultWidth)
	// a single 1 followed by 23 zeros ends up in bit 23.
	d = send(d, 1<<23, 24, 3)
	if d.Data() != 1<<23 {
		t.Fatalf("expected %#x, got %#x", 1<<23, d.Data())
	}
}

func TestDriver_latency(t *testing.T) {
	d := gamepad.NewDriver(gamepad.DefaultWidth)
	in := gamepad.DriverInputs{Clk: true}
	// raw clock high: two synchronizer cycles, then the edge is seen.
	d = run(d, in, 2)
	if d.Shift() != 0xffffff {
		t.Fatalf("shifted too early: %#x", d.Shift())
	}
	d = run(d, in, 1)
	if d.Shift() != 0xfffffe {
		t.Fatalf("expected one bit shifted in, got %#x", d.Shift())
	}
	// clock held high: no more edges.
	d = run(d, in, 10)
	if d.Shift() != 0xfffffe {
		t.Fatalf("shifted on a level: %#x", d.Shift())
	}
	// latch also needs three cycles.
	in.Latch = true
	d = run(d, in, 2)
	if d.Data() != 0xffffff {
		t.Fatalf("latched too early: %#x", d.Data())
	}
	d = run(d, in, 1)
	if d.Data() != 0xfffffe {
		t.Fatalf("expected latch, got %#x", d.Data())
	}
}

func TestDriver_width(t *testing.T) {
	d := gamepad.NewDriver(12)
	if d.Data() != 0xfff {
		t.Fatalf("reset: %#x", d.Data())
	}
	d = send(d, 0xa5c, 12, 3)
	if d.Data() != 0xa5c {
		t.Fatalf("expected %#x, got %#x", 0xa5c, d.Data())
	}
	// extra bits push the oldest ones out.
	d = send(d, 0x1234, 16, 3)
	if d.Data() != 0x234 {
		t.Fatalf("expected %#x, got %#x", 0x234, d.Data())
	}

	for _, w := range []int{0, 33} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewDriver(%d) did not panic", w)
				}
			}()
			gamepad.NewDriver(w)
		}()
	}
	if gamepad.NewDriver(32).Data() != 0xffffffff {
		t.Error("32 bits driver reset value")
	}
}
