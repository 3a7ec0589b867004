// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bus

import (
	"github.com/db47h/tqvsim/logger"
	"github.com/pkg/errors"
)

// TinyQV peripheral address map, relative to the peripheral region base.
//
// Full peripherals occupy slots 0 to 15, 0x40 bytes each, with 6 bits local
// addresses and 32 bits data. Simple peripherals occupy slots 16 to 31 from
// SimpleBase, 0x10 bytes each, with 4 bits local addresses and 8 bits data.
//
const (
	FullSlots  = 16
	SlotCount  = 32
	FullSize   = 0x40
	SimpleBase = 0x400
	SimpleSize = 0x10
)

// maximum number of cycles Load waits for data_ready.
const maxReadWait = 64

const logTag = "bus"

// A Peripheral is attached to a Host slot. Step runs one clock cycle.
//
type Peripheral interface {
	Step(in Inputs) Outputs
}

// Slot holds the state of a Model and implements Peripheral.
//
type Slot[M Model[M]] struct {
	State M
}

// NewSlot returns a Slot with the given initial state.
//
func NewSlot[M Model[M]](m M) *Slot[M] {
	return &Slot[M]{State: m}
}

// Step implements Peripheral.
//
func (s *Slot[M]) Step(in Inputs) Outputs {
	var out Outputs
	s.State, out = s.State.Tick(in)
	return out
}

// Decode returns the slot number and local address for a peripheral region
// offset. ok is false if the offset is outside of the peripheral map.
//
func Decode(offset uint32) (slot int, local uint32, ok bool) {
	switch {
	case offset < FullSlots*FullSize:
		return int(offset / FullSize), offset % FullSize, true
	case offset >= SimpleBase && offset < SimpleBase+(SlotCount-FullSlots)*SimpleSize:
		o := offset - SimpleBase
		return FullSlots + int(o/SimpleSize), o % SimpleSize, true
	}
	return -1, 0, false
}

// SlotAddress returns the base offset of a slot.
//
func SlotAddress(slot int) uint32 {
	if slot < FullSlots {
		return uint32(slot) * FullSize
	}
	return SimpleBase + uint32(slot-FullSlots)*SimpleSize
}

// Config configures a Host. The zero value is usable.
//
type Config struct {
	// ResetCycles is the number of cycles rst_n is held low by Reset.
	// Defaults to 2.
	ResetCycles int
	// Trace logs every bus transaction to the central logger.
	Trace bool
}

// Host drives attached peripherals the way the TinyQV core does: one clock
// domain, at most one register access per cycle, reads returned in the cycle
// data_ready is asserted.
//
type Host struct {
	cfg       Config
	slots     [SlotCount]Peripheral
	last      [SlotCount]Outputs
	outSel    [8]int
	uiIn      uint8
	lastUi    uint8
	drive     func() uint8
	observers []func(h *Host)
	cycle     uint64
	rstN      bool
}

// NewHost returns a Host with no peripherals attached and reset released.
//
func NewHost(cfg Config) *Host {
	if cfg.ResetCycles < 1 {
		cfg.ResetCycles = 2
	}
	h := &Host{cfg: cfg, rstN: true}
	for i := range h.outSel {
		h.outSel[i] = -1
	}
	return h
}

// Attach attaches p to the given slot.
//
func (h *Host) Attach(slot int, p Peripheral) error {
	if slot < 0 || slot >= SlotCount {
		return errors.Errorf("slot %d out of range", slot)
	}
	if h.slots[slot] != nil {
		return errors.Errorf("slot %d already in use", slot)
	}
	h.slots[slot] = p
	return nil
}

// SetInputs sets the static ui_in value.
//
func (h *Host) SetInputs(v uint8) { h.uiIn = v }

// Drive registers a function called once per cycle whose result is ORed with
// the static ui_in value. Use it to connect a gamepad.Pod.
//
func (h *Host) Drive(f func() uint8) { h.drive = f }

// Observe registers a function called at the end of every cycle.
//
func (h *Host) Observe(f func(h *Host)) {
	h.observers = append(h.observers, f)
}

// SelectOutput routes uo_out pin to the given slot's uo_out. A negative slot
// disconnects the pin.
//
func (h *Host) SelectOutput(pin, slot int) error {
	if pin < 0 || pin >= len(h.outSel) {
		return errors.Errorf("output pin %d out of range", pin)
	}
	if slot >= SlotCount {
		return errors.Errorf("slot %d out of range", slot)
	}
	if slot < 0 {
		slot = -1
	}
	h.outSel[pin] = slot
	return nil
}

// SelectAllOutputs routes all uo_out pins to the given slot.
//
func (h *Host) SelectAllOutputs(slot int) error {
	for pin := range h.outSel {
		if err := h.SelectOutput(pin, slot); err != nil {
			return err
		}
	}
	return nil
}

// Reset holds rst_n low for the configured number of cycles.
//
func (h *Host) Reset() {
	h.rstN = false
	h.Idle(h.cfg.ResetCycles)
	h.rstN = true
	if h.cfg.Trace {
		logger.Logf(logTag, "reset released at cycle %d", h.cycle)
	}
}

// Idle runs n cycles without bus access.
//
func (h *Host) Idle(n int) {
	for i := 0; i < n; i++ {
		h.step(-1, 0, 0, None, None)
	}
}

// Until runs idle cycles until cond returns true or max cycles have run.
// It returns the value of cond.
//
func (h *Host) Until(cond func() bool, max int) bool {
	for i := 0; i < max; i++ {
		if cond() {
			return true
		}
		h.Idle(1)
	}
	return cond()
}

// Store writes v to the register at the given offset. It takes one cycle.
// Stores to unmapped offsets or empty slots are ignored.
//
func (h *Host) Store(offset uint32, v uint32, w Width) {
	slot, local, ok := Decode(offset)
	if !ok || h.slots[slot] == nil {
		if h.cfg.Trace {
			logger.Logf(logTag, "store %#x: no peripheral", offset)
		}
		h.Idle(1)
		return
	}
	if h.cfg.Trace {
		logger.Logf(logTag, "store %#x (slot %d, reg %#x) <- %#x (%s)", offset, slot, local, v, w)
	}
	h.step(slot, local, v, w, None)
}

// Load reads the register at the given offset. It takes one cycle plus one
// cycle per cycle with data_ready low on a full peripheral. Unmapped offsets
// and empty slots read as zero.
//
func (h *Host) Load(offset uint32, w Width) uint32 {
	slot, local, ok := Decode(offset)
	if !ok || h.slots[slot] == nil {
		h.Idle(1)
		return 0
	}
	var out Outputs
	for i := 0; i < maxReadWait; i++ {
		out = h.step(slot, local, 0, None, w)
		if slot >= FullSlots || out.DataReady {
			break
		}
	}
	v := out.DataOut
	if slot >= FullSlots {
		v &= 0xff
	}
	if h.cfg.Trace {
		logger.Logf(logTag, "load %#x (slot %d, reg %#x) -> %#x (%s)", offset, slot, local, v, w)
	}
	return v
}

func (h *Host) step(slot int, local, data uint32, wr, rd Width) Outputs {
	ui := h.uiIn
	if h.drive != nil {
		ui |= h.drive()
	}
	h.lastUi = ui

	var sel Outputs
	for i, p := range h.slots {
		if p == nil {
			continue
		}
		in := Inputs{RstN: h.rstN, UiIn: ui, Write: None, Read: None}
		if i == slot {
			in.Address, in.DataIn, in.Write, in.Read = local, data, wr, rd
			if i >= FullSlots {
				in.DataIn &= 0xff
				if wr.Active() {
					in.Write = Byte
				}
			}
		}
		out := p.Step(in)
		h.last[i] = out
		if i == slot {
			sel = out
		}
	}
	h.cycle++
	for _, f := range h.observers {
		f(h)
	}
	return sel
}

// Cycle returns the number of cycles run.
//
func (h *Host) Cycle() uint64 { return h.cycle }

// UiIn returns the ui_in value of the last cycle.
//
func (h *Host) UiIn() uint8 { return h.lastUi }

// Last returns the outputs of a slot during the last cycle.
//
func (h *Host) Last(slot int) Outputs {
	if slot < 0 || slot >= SlotCount {
		return Outputs{}
	}
	return h.last[slot]
}

// UoOut returns the uo_out value of the last cycle after output selection.
//
func (h *Host) UoOut() uint8 {
	var v uint8
	for pin, slot := range h.outSel {
		if slot >= 0 && h.last[slot].UoOut&(1<<uint(pin)) != 0 {
			v |= 1 << uint(pin)
		}
	}
	return v
}

// Interrupts returns a bit mask of slots with user_interrupt asserted during
// the last cycle.
//
func (h *Host) Interrupts() uint32 {
	var m uint32
	for i, out := range h.last {
		if h.slots[i] != nil && out.Interrupt {
			m |= 1 << uint(i)
		}
	}
	return m
}
