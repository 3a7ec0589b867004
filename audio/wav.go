// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package audio converts a PWM bitstream into PCM audio, the way an RC low
// pass filter on a PWM pin would, and saves it as a WAV file.
//
package audio

import (
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

// Samples integrates bits over consecutive windows of period cycles and
// returns one unsigned 8 bits sample per complete window: the number of high
// cycles scaled to [0, 255]. Trailing cycles that do not fill a window are
// dropped.
//
func Samples(bits []bool, period int) []int {
	if period <= 0 {
		return nil
	}
	out := make([]int, 0, len(bits)/period)
	for len(bits) >= period {
		n := 0
		for _, b := range bits[:period] {
			if b {
				n++
			}
		}
		out = append(out, n*255/period)
		bits = bits[period:]
	}
	return out
}

// WritePWM writes the PWM bitstream as a mono 8 bits WAV file. Each period of
// the bitstream becomes one sample played at sampleRate.
//
func WritePWM(w io.WriteSeeker, bits []bool, period, sampleRate int) error {
	if period <= 0 {
		return errors.Errorf("wav: invalid period %d", period)
	}
	if sampleRate <= 0 {
		return errors.Errorf("wav: invalid sample rate %d", sampleRate)
	}
	enc := wav.NewEncoder(w, sampleRate, 8, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           Samples(bits, period),
		SourceBitDepth: 8,
	}
	if err := enc.Write(buf); err != nil {
		return errors.Wrap(err, "wav: write")
	}
	return errors.Wrap(enc.Close(), "wav: close")
}
