// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tqvsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Connection connects a part's I/O pin to a circuit wire.
//
type Connection struct {
	Pin  string
	Wire string
}

// ParseConnections parses a connection configuration like "partPinX=wireY, ..."
// into a []Connection.
//
// Bus ranges are expanded on both sides:
//
//	"in[0..3]=data[4..7]"  // in[0]=data[4], in[1]=data[5], ...
//	"in[0..7]=false"       // ties all eight pins to the same wire
//
func ParseConnections(c string) ([]Connection, error) {
	var conns []Connection
	for _, item := range strings.Split(c, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		eq := strings.IndexRune(item, '=')
		if eq < 0 {
			return nil, errors.Errorf("in %q: expected '=' in %q", c, item)
		}
		k, v := strings.TrimSpace(item[:eq]), strings.TrimSpace(item[eq+1:])
		if k == "" || v == "" {
			return nil, errors.Errorf("in %q: invalid pin mapping %q", c, item)
		}
		ks, err := expandRange(k)
		if err != nil {
			return nil, errors.Wrap(err, "expand key "+k)
		}
		vs, err := expandRange(v)
		if err != nil {
			return nil, errors.Wrap(err, "expand value "+v)
		}
		switch {
		case len(ks) == len(vs):
			for i := range ks {
				conns = append(conns, Connection{ks[i], vs[i]})
			}
		case len(vs) == 1:
			// many to one
			for _, k := range ks {
				conns = append(conns, Connection{k, vs[0]})
			}
		default:
			return nil, errors.New("pin count mismatch in pin mapping: " + k + "=" + v)
		}
	}
	return conns, nil
}

func expandRange(name string) ([]string, error) {
	i := strings.IndexRune(name, '[')
	if i < 0 {
		return []string{name}, nil
	}
	bus := name[:i]
	if bus == "" {
		return nil, errors.New("empty bus name")
	}
	n := name[i+1:]
	i = strings.Index(n, "..")
	if i < 0 {
		return []string{name}, nil
	}
	start, err := strconv.Atoi(n[:i])
	if err != nil {
		return nil, errors.Wrap(err, "bus range start")
	}
	n = n[i+2:]
	i = strings.IndexRune(n, ']')
	if i < 0 {
		return nil, errors.New("no terminating ] in bus range")
	}
	end, err := strconv.Atoi(n[:i])
	if err != nil {
		return nil, errors.Wrap(err, "bus range end")
	}
	if end < start {
		return nil, errors.Errorf("reversed bus range %d..%d", start, end)
	}
	r := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		r = append(r, BusPinName(bus, i))
	}
	return r, nil
}

// checkWiring verifies that every pin in a connection belongs to its part,
// that every wire has at most one driver and that every wire read by an input
// is driven by an output or is a constant.
//
func checkWiring(parts Parts) error {
	drivers := make(map[string]string)
	readers := make(map[string]string)
	for _, p := range parts {
		seen := make(map[string]bool, len(p.Conns))
		for _, cn := range p.Conns {
			pn := p.Name + "." + cn.Pin
			if seen[cn.Pin] {
				return errors.New("pin " + pn + " connected more than once")
			}
			seen[cn.Pin] = true
			switch {
			case p.isInput(cn.Pin):
				if _, ok := readers[cn.Wire]; !ok {
					readers[cn.Wire] = pn
				}
			case p.isOutput(cn.Pin):
				if isConstant(cn.Wire) {
					return errors.Errorf("output pin %s connected to constant %q", pn, cn.Wire)
				}
				if d, ok := drivers[cn.Wire]; ok {
					return errors.Errorf("wire %q driven by both %s and %s", cn.Wire, d, pn)
				}
				drivers[cn.Wire] = pn
			default:
				return errors.New("invalid pin name " + cn.Pin + " for part " + p.Name)
			}
		}
	}
	for w, pn := range readers {
		if isConstant(w) {
			continue
		}
		if _, ok := drivers[w]; !ok {
			return errors.Errorf("wire %q read by %s not connected to any output", w, pn)
		}
	}
	return nil
}
