// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package trace records signal values cycle by cycle. Recordings can be saved
// as a value change dump (VCD) for waveform viewers or rendered on a terminal.
//
package trace

import (
	"strconv"

	"github.com/pkg/errors"
)

// Signal is a recorded signal.
//
type Signal struct {
	Name   string
	Width  int
	probe  func() uint64
	values []uint64
}

// Values returns the recorded values, one per cycle.
//
func (s *Signal) Values() []uint64 { return s.values }

// Recorder samples a set of probes.
//
type Recorder struct {
	signals []*Signal
	byName  map[string]*Signal
	cycles  int
}

// NewRecorder returns an empty Recorder.
//
func NewRecorder() *Recorder {
	return &Recorder{byName: make(map[string]*Signal)}
}

// Add adds a signal of the given bit width. probe is called on every Sample.
// Signals must be added before the first Sample.
//
func (r *Recorder) Add(name string, width int, probe func() uint64) error {
	if r.cycles > 0 {
		return errors.New("trace: signal " + name + " added after recording started")
	}
	if width < 1 || width > 64 {
		return errors.Errorf("trace: invalid width %d for signal %s", width, name)
	}
	if _, ok := r.byName[name]; ok {
		return errors.New("trace: duplicate signal " + name)
	}
	s := &Signal{Name: name, Width: width, probe: probe}
	r.signals = append(r.signals, s)
	r.byName[name] = s
	return nil
}

// AddBool is a shortcut for Add with a 1 bit probe.
//
func (r *Recorder) AddBool(name string, probe func() bool) error {
	return r.Add(name, 1, func() uint64 {
		if probe() {
			return 1
		}
		return 0
	})
}

// Sample records the current value of all signals.
//
func (r *Recorder) Sample() {
	for _, s := range r.signals {
		v := s.probe()
		if s.Width < 64 {
			v &= 1<<uint(s.Width) - 1
		}
		s.values = append(s.values, v)
	}
	r.cycles++
}

// Cycles returns the number of samples recorded.
//
func (r *Recorder) Cycles() int { return r.cycles }

// Signal returns the named signal or nil.
//
func (r *Recorder) Signal(name string) *Signal { return r.byName[name] }

// Signals returns all signals in the order they were added.
//
func (r *Recorder) Signals() []*Signal { return r.signals }

// vcdID returns the VCD identifier code for the n-th signal.
func vcdID(n int) string {
	const first, count = '!', '~' - '!' + 1
	var b []byte
	for {
		b = append(b, byte(first+n%count))
		n /= count
		if n == 0 {
			break
		}
		n--
	}
	return string(b)
}

func vcdValue(s *Signal, v uint64) string {
	if s.Width == 1 {
		return strconv.FormatUint(v, 2)
	}
	return "b" + strconv.FormatUint(v, 2) + " "
}
