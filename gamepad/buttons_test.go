package gamepad_test

import (
	"testing"

	"github.com/db47h/tqvsim/gamepad"
)

func TestButtons(t *testing.T) {
	if gamepad.Select != 1<<gamepad.SelectBit {
		t.Fatal("Select is not bit 9")
	}
	c1, c2 := gamepad.Decode(0xffffff)
	if c1.Present() || c2.Present() {
		t.Fatal("reset value should decode as absent")
	}
	if c1.String() != "absent" {
		t.Fatalf("got %q", c1.String())
	}

	w := gamepad.Encode(gamepad.B|gamepad.Select, gamepad.Up|gamepad.A)
	if w != 0x800|0x200|(0x080|0x008)<<12 {
		t.Fatalf("encode: %#06x", w)
	}
	c1, c2 = gamepad.Decode(w)
	if !c1.Pressed(gamepad.Select) || c1.Pressed(gamepad.Start) || !c2.Pressed(gamepad.Up|gamepad.A) {
		t.Fatalf("decode: %v, %v", c1, c2)
	}
	if s := c1.String(); s != "B+Select" {
		t.Fatalf("c1 = %q", s)
	}
	if s := gamepad.Buttons(0).String(); s != "none" {
		t.Fatalf("no buttons = %q", s)
	}
}
