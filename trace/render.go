// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package trace

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

type styles struct {
	name lipgloss.Style
	high lipgloss.Style
	low  lipgloss.Style
	bus  lipgloss.Style
}

func newStyles() styles {
	return styles{
		name: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)).PaddingRight(1),
		high: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(2)),
		low:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		bus:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(3)),
	}
}

func highStyle(st *styles) lipgloss.Style { return st.high }
func lowStyle(st *styles) lipgloss.Style  { return st.low }
func busStyle(st *styles) lipgloss.Style  { return st.bus }

// wave returns the waveform of s for cycles [from, to), one column per cycle.
// A nil st returns plain text.
func wave(s *Signal, from, to int, st *styles) string {
	render := func(l func(*styles) lipgloss.Style, t string) string {
		if st == nil {
			return t
		}
		return l(st).Render(t)
	}
	var b strings.Builder
	vs := s.values[from:to]
	for i := 0; i < len(vs); {
		j := i + 1
		for j < len(vs) && vs[j] == vs[i] {
			j++
		}
		l := j - i
		switch {
		case s.Width == 1 && vs[i] != 0:
			b.WriteString(render(highStyle, strings.Repeat("▔", l)))
		case s.Width == 1:
			b.WriteString(render(lowStyle, strings.Repeat("▁", l)))
		default:
			seg := "|" + strconv.FormatUint(vs[i], 16)
			if len(seg) > l {
				seg = seg[:l]
			} else {
				seg += strings.Repeat(" ", l-len(seg))
			}
			b.WriteString(render(busStyle, seg))
		}
		i = j
	}
	return b.String()
}

// Render writes a terminal rendering of cycles [from, from+n). n <= 0 renders
// up to the last cycle.
//
func (r *Recorder) Render(w io.Writer, from, n int) error {
	if from < 0 || from > r.cycles {
		return errors.Errorf("trace: start cycle %d out of range", from)
	}
	to := from + n
	if n <= 0 || to > r.cycles {
		to = r.cycles
	}
	st := newStyles()
	names := make([]string, 0, len(r.signals))
	waves := make([]string, 0, len(r.signals))
	for _, s := range r.signals {
		names = append(names, st.name.Render(s.Name))
		waves = append(waves, wave(s, from, to, &st))
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, names...),
		lipgloss.JoinVertical(lipgloss.Left, waves...))
	_, err := io.WriteString(w, out+"\n")
	return errors.Wrap(err, "trace: render")
}
