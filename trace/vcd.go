// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package trace

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// WriteVCD writes the recording as a value change dump. One clock cycle is
// one time unit of the given timescale (for example "1ns" or "15625ps").
//
func (r *Recorder) WriteVCD(w io.Writer, timescale string) error {
	if timescale == "" {
		timescale = "1ns"
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "$timescale %s $end\n", timescale)
	fmt.Fprint(bw, "$scope module tqvsim $end\n")
	for i, s := range r.signals {
		fmt.Fprintf(bw, "$var wire %d %s %s $end\n", s.Width, vcdID(i), s.Name)
	}
	fmt.Fprint(bw, "$upscope $end\n$enddefinitions $end\n")

	for c := 0; c < r.cycles; c++ {
		stamped := false
		for i, s := range r.signals {
			v := s.values[c]
			if c > 0 && s.values[c-1] == v {
				continue
			}
			if !stamped {
				fmt.Fprintf(bw, "#%d\n", c)
				if c == 0 {
					fmt.Fprint(bw, "$dumpvars\n")
				}
				stamped = true
			}
			fmt.Fprintf(bw, "%s%s\n", vcdValue(s, v), vcdID(i))
		}
		if c == 0 && stamped {
			fmt.Fprint(bw, "$end\n")
		}
	}
	fmt.Fprintf(bw, "#%d\n", r.cycles)
	return errors.Wrap(bw.Flush(), "vcd: write")
}
