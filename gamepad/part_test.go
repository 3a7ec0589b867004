package gamepad_test

import (
	"testing"

	"github.com/db47h/tqvsim"
	"github.com/db47h/tqvsim/gamepad"
	hl "github.com/db47h/tqvsim/hwlib"
)

func TestPart(t *testing.T) {
	var (
		ui, addr, din, wr uint64
		dout              uint64
		ready, intr       bool
	)
	wr = 3
	c, err := tqvsim.NewCircuit(0, 8, tqvsim.Parts{
		hl.InputN(8, func() uint64 { return ui })("out[0..7]=ui[0..7]"),
		hl.InputN(6, func() uint64 { return addr })("out[0..5]=addr[0..5]"),
		hl.InputN(32, func() uint64 { return din })("out[0..31]=din[0..31]"),
		hl.InputN(2, func() uint64 { return wr })("out[0..1]=wr[0..1]"),
		gamepad.Part(gamepad.DefaultPins)("rst_n=true, ui_in[0..7]=ui[0..7], address[0..5]=addr[0..5], " +
			"data_in[0..31]=din[0..31], data_write_n[0..1]=wr[0..1], data_read_n[0..1]=true, " +
			"data_out[0..31]=dout[0..31], data_ready=ready, user_interrupt=intr"),
		hl.OutputN(32, func(v uint64) { dout = v })("in[0..31]=dout[0..31]"),
		hl.Output(func(v bool) { ready = v })("in=ready"),
		hl.Output(func(v bool) { intr = v })("in=intr"),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	// enable
	addr, din, wr = gamepad.RegEnable, 1, 2
	c.TickTock()
	c.TickTock()
	wr = 3
	c.TickTock()
	if dout != 1 || !ready {
		t.Fatalf("enable register = %d, ready = %v", dout, ready)
	}

	const word = 0xabc123
	pod := gamepad.NewPod(gamepad.DefaultPins)
	pod.Half = 3
	pod.Send(word)
	for pod.Busy() {
		ui = uint64(pod.Next())
		c.TickTock()
	}
	for i := 0; i < 6; i++ {
		c.TickTock()
	}
	addr = gamepad.RegController1
	c.TickTock()
	c.TickTock()
	if dout != word&0xfff {
		t.Fatalf("controller 1 = %#x", dout)
	}
	addr = gamepad.RegController2
	c.TickTock()
	c.TickTock()
	if dout != word>>12 {
		t.Fatalf("controller 2 = %#x", dout)
	}
	if intr {
		t.Fatal("unexpected interrupt")
	}
}
