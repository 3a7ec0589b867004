// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tqvsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// BusPinName returns the pin name for the n-th bit of the named bus.
//
func BusPinName(bus string, bit int) string {
	return bus + "[" + strconv.Itoa(bit) + "]"
}

// ParseIO parses a pin specification string and returns individual pin
// names in a slice, also expanding bus declarations to individual pin names.
// For example:
//
//	ParseIO("in[2], sel") // returns []string{"in[0]", "in[1]", "sel"}
//
func ParseIO(spec string) ([]string, error) {
	var out []string
	for _, item := range strings.Split(spec, ",") {
		name := strings.TrimSpace(item)
		if name == "" {
			continue
		}
		b := strings.IndexRune(name, '[')
		if b < 0 {
			if strings.ContainsAny(name, "]= ") {
				return nil, parseError(spec, name, "invalid pin name")
			}
			out = append(out, name)
			continue
		}
		if b == 0 {
			return nil, parseError(spec, name, "empty bus name")
		}
		if !strings.HasSuffix(name, "]") {
			return nil, parseError(spec, name, "missing close bracket")
		}
		cnt, err := strconv.Atoi(name[b+1 : len(name)-1])
		if err != nil || cnt <= 0 {
			return nil, parseError(spec, name, "invalid bus size")
		}
		for i := 0; i < cnt; i++ {
			out = append(out, BusPinName(name[:b], i))
		}
	}
	return out, nil
}

// IO is like ParseIO but panics on error. It is intended for static pin
// declarations in PartSpecs.
//
func IO(spec string) []string {
	out, err := ParseIO(spec)
	if err != nil {
		panic(err)
	}
	return out
}

func parseError(in string, item string, msg string) error {
	return errors.Errorf("in %q at %q: %s", in, item, msg)
}
