package audio_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/db47h/tqvsim/audio"
	"github.com/db47h/tqvsim/bus"
	"github.com/db47h/tqvsim/pwm"
	"github.com/go-audio/wav"
)

func TestSamples(t *testing.T) {
	bits := []bool{true, true, false, false, true, true, true, true, false}
	exp := []int{127, 255}
	if got := audio.Samples(bits, 4); !reflect.DeepEqual(got, exp) {
		t.Fatalf("expected %v, got %v", exp, got)
	}
	if audio.Samples(bits, 0) != nil {
		t.Fatal("expected nil for invalid period")
	}
}

func pwmBits(level uint8, periods int) []bool {
	p := pwm.New()
	in := bus.Idle(0)
	// load the level and let the registered output catch up.
	p, _ = p.Tick(bus.Inputs{RstN: true, Address: pwm.RegLevel, DataIn: uint32(level), Write: bus.Byte, Read: bus.None})
	var out bus.Outputs
	for i := 0; i < pwm.Period; i++ {
		p, _ = p.Tick(in)
	}
	bits := make([]bool, 0, periods*pwm.Period)
	for i := 0; i < periods*pwm.Period; i++ {
		p, out = p.Tick(in)
		bits = append(bits, out.UoOut&1 != 0)
	}
	return bits
}

func TestSamples_pwm(t *testing.T) {
	for _, level := range []uint8{0, 1, 128, 255} {
		s := audio.Samples(pwmBits(level, 3), pwm.Period)
		for i, v := range s {
			if v != int(level) {
				t.Fatalf("level %d: sample %d = %d", level, i, v)
			}
		}
	}
}

func TestWritePWM(t *testing.T) {
	name := filepath.Join(t.TempDir(), "pwm.wav")
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	if err = audio.WritePWM(f, pwmBits(200, 10), pwm.Period, 8000); err != nil {
		f.Close()
		t.Fatal(err)
	}
	if err = f.Close(); err != nil {
		t.Fatal(err)
	}

	f, err = os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		t.Fatal("invalid wav file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatal(err)
	}
	if dec.SampleRate != 8000 || dec.NumChans != 1 || dec.BitDepth != 8 {
		t.Fatalf("bad format: %d Hz, %d channels, %d bits", dec.SampleRate, dec.NumChans, dec.BitDepth)
	}
	if len(buf.Data) != 10 {
		t.Fatalf("expected 10 samples, got %d", len(buf.Data))
	}
}

func TestWritePWM_errors(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "x.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if audio.WritePWM(f, nil, 0, 8000) == nil {
		t.Fatal("expected error for period 0")
	}
	if audio.WritePWM(f, nil, 255, 0) == nil {
		t.Fatal("expected error for sample rate 0")
	}
}
