// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/db47h/tqvsim/audio"
	"github.com/db47h/tqvsim/bus"
	ec "github.com/db47h/tqvsim/edgecounter"
	"github.com/db47h/tqvsim/gamepad"
	"github.com/db47h/tqvsim/pwm"
	"github.com/db47h/tqvsim/trace"
	"github.com/pkg/errors"
)

// default slots, matching the TinyQV test harness.
const (
	gamepadSlot = 4
	edgeSlot    = 16
	pwmSlot     = 17
)

// simulated TinyQV clock, used for the VCD timescale.
const clockPeriod = "15625ps"

type output struct {
	vcd  string
	show int
}

func (o *output) flags(fs *flag.FlagSet, show int) {
	fs.StringVar(&o.vcd, "vcd", "", "write a value change dump to `file`")
	fs.IntVar(&o.show, "show", show, "number of cycles to render on the terminal (0 for none)")
}

func (o *output) write(r *trace.Recorder, from int) error {
	if o.show > 0 {
		if err := r.Render(os.Stdout, from, o.show); err != nil {
			return err
		}
	}
	if o.vcd != "" {
		return create(o.vcd, func(f *os.File) error { return r.WriteVCD(f, clockPeriod) })
	}
	return nil
}

func newHost(slot int, p bus.Peripheral) (*bus.Host, *trace.Recorder, error) {
	h := bus.NewHost(bus.Config{Trace: true})
	if err := h.Attach(slot, p); err != nil {
		return nil, nil, err
	}
	if err := h.SelectAllOutputs(slot); err != nil {
		return nil, nil, err
	}
	r := trace.NewRecorder()
	if err := r.Add("ui_in", 8, func() uint64 { return uint64(h.UiIn()) }); err != nil {
		return nil, nil, err
	}
	if err := r.Add("uo_out", 8, func() uint64 { return uint64(h.UoOut()) }); err != nil {
		return nil, nil, err
	}
	if err := r.AddBool("user_interrupt", func() bool { return h.Interrupts()&(1<<uint(slot)) != 0 }); err != nil {
		return nil, nil, err
	}
	return h, r, nil
}

func runPWM(args []string) error {
	var (
		o output
		wav string
	)
	fs := newFlagSet("pwm")
	level := fs.Uint("level", 128, "PWM level (0-255)")
	cycles := fs.Int("cycles", 4*pwm.Period, "cycles to run after setting the level")
	rate := fs.Int("rate", 8000, "WAV sample rate")
	fs.StringVar(&wav, "wav", "", "write the filtered output as a WAV `file`, one sample per period")
	o.flags(fs, 80)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *level > 255 {
		return errors.Errorf("invalid level %d", *level)
	}

	p := bus.NewSlot(pwm.New())
	h, r, err := newHost(pwmSlot, p)
	if err != nil {
		return err
	}
	if err = r.Add("counter", 8, func() uint64 { return uint64(p.State.Counter()) }); err != nil {
		return err
	}
	var bits []bool
	h.Observe(func(*bus.Host) {
		r.Sample()
		bits = append(bits, p.State.Out())
	})

	h.Reset()
	base := bus.SlotAddress(pwmSlot)
	h.Store(base+pwm.RegLevel, uint32(*level), bus.Byte)
	start := int(h.Cycle())
	h.Idle(*cycles)
	bits = bits[start:]
	lvl := h.Load(base+pwm.RegLevel, bus.Byte)

	high := 0
	for _, b := range bits {
		if b {
			high++
		}
	}
	fmt.Printf("level %d: %d/%d cycles high (%.1f%%, expected %.1f%%)\n",
		lvl, high, len(bits),
		100*float64(high)/float64(len(bits)), 100*pwm.Duty(uint8(*level)))

	if err = o.write(r, start); err != nil {
		return err
	}
	if wav != "" {
		return create(wav, func(f *os.File) error { return audio.WritePWM(f, bits, pwm.Period, *rate) })
	}
	return nil
}

func runGamepad(args []string) error {
	var o output
	fs := newFlagSet("gamepad")
	word := fs.String("word", "0xffffff", "24 bits controller word, controller 2 in the upper 12 bits")
	enable := fs.Bool("enable", true, "set the enable register before sending")
	half := fs.Int("half", gamepad.DefaultHalf, "pod serial clock half period in cycles")
	o.flags(fs, 0)
	if err := fs.Parse(args); err != nil {
		return err
	}
	w, err := strconv.ParseUint(*word, 0, 24)
	if err != nil {
		return errors.Wrap(err, "invalid word")
	}

	p := bus.NewSlot(gamepad.New(gamepad.DefaultPins))
	pod := gamepad.NewPod(gamepad.DefaultPins)
	pod.Half = *half
	h, r, err := newHost(gamepadSlot, p)
	if err != nil {
		return err
	}
	h.Drive(pod.Next)
	h.Observe(func(*bus.Host) { r.Sample() })

	h.Reset()
	base := bus.SlotAddress(gamepadSlot)
	if *enable {
		h.Store(base+gamepad.RegEnable, 1, bus.Word)
	}
	start := int(h.Cycle())
	pod.Send(uint32(w))
	if !h.Until(func() bool { return !pod.Busy() }, 2*pod.FrameCycles()) {
		return errors.New("pod did not finish sending")
	}
	h.Idle(4)

	c1 := gamepad.Buttons(h.Load(base+gamepad.RegController1, bus.Word))
	c2 := gamepad.Buttons(h.Load(base+gamepad.RegController2, bus.Word))
	fmt.Printf("controller 1: %#03x %v\ncontroller 2: %#03x %v\ninterrupt: %d\n",
		uint16(c1), c1, uint16(c2), c2, h.Load(base+gamepad.RegInterrupt, bus.Word))
	return o.write(r, start)
}

func runEdge(args []string) error {
	var o output
	fs := newFlagSet("edge")
	mode := fs.String("mode", "rising", "edges to count: none, rising, falling or both")
	pulses := fs.Int("pulses", 3, "number of pulses on ui_in[0]")
	width := fs.Int("width", 4, "pulse width in cycles")
	o.flags(fs, 0)
	if err := fs.Parse(args); err != nil {
		return err
	}
	m := ec.None
	for _, v := range []ec.Mode{ec.None, ec.Rising, ec.Falling, ec.Both} {
		if v.String() == *mode {
			m = v
			break
		}
		if v == ec.Both {
			return errors.Errorf("invalid mode %q", *mode)
		}
	}

	p := bus.NewSlot(ec.New())
	h, r, err := newHost(edgeSlot, p)
	if err != nil {
		return err
	}
	h.Observe(func(*bus.Host) { r.Sample() })

	h.Reset()
	base := bus.SlotAddress(edgeSlot)
	h.Store(base+ec.RegConfig, uint32(m), bus.Byte)
	h.Store(base+ec.RegReset, 0, bus.Byte)
	start := int(h.Cycle())
	for i := 0; i < *pulses; i++ {
		h.SetInputs(1)
		h.Idle(*width)
		h.SetInputs(0)
		h.Idle(*width)
	}
	h.Idle(3)
	n := h.Load(base+ec.RegValue, bus.Byte)
	fmt.Printf("mode %v: count %d, display %#08b\n", m, n, ec.SevenSegment(uint8(n)))
	return o.write(r, start)
}
