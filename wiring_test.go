package tqvsim_test

import (
	"reflect"
	"testing"

	"github.com/db47h/tqvsim"
)

func TestParseConnections(t *testing.T) {
	td := []struct {
		in  string
		exp []tqvsim.Connection
		err bool
	}{
		{"", nil, false},
		{"a=b", []tqvsim.Connection{{"a", "b"}}, false},
		{" a = b , c=d ", []tqvsim.Connection{{"a", "b"}, {"c", "d"}}, false},
		{"in[0..2]=bus[4..6]", []tqvsim.Connection{
			{"in[0]", "bus[4]"}, {"in[1]", "bus[5]"}, {"in[2]", "bus[6]"},
		}, false},
		{"in[0..1]=false", []tqvsim.Connection{{"in[0]", "false"}, {"in[1]", "false"}}, false},
		{"in[3]=x[7]", []tqvsim.Connection{{"in[3]", "x[7]"}}, false},
		{"a", nil, true},
		{"a=", nil, true},
		{"in=bus[0..3]", nil, true},
		{"in[0..1]=bus[0..2]", nil, true},
		{"in[2..1]=x", nil, true},
		{"in[0..x]=x", nil, true},
		{"[0..1]=x", nil, true},
	}
	for _, d := range td {
		got, err := tqvsim.ParseConnections(d.in)
		if d.err {
			if err == nil {
				t.Errorf("%q: expected error", d.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", d.in, err)
			continue
		}
		if !reflect.DeepEqual(got, d.exp) {
			t.Errorf("%q: expected %v, got %v", d.in, d.exp, got)
		}
	}
}

func TestParseIO(t *testing.T) {
	td := []struct {
		in  string
		exp []string
		err bool
	}{
		{"", nil, false},
		{"rst_n", []string{"rst_n"}, false},
		{"ui_in[2], rst_n", []string{"ui_in[0]", "ui_in[1]", "rst_n"}, false},
		{"a[0]", nil, true},
		{"a[x]", nil, true},
		{"[3]", nil, true},
		{"a[3", nil, true},
		{"a b", nil, true},
	}
	for _, d := range td {
		got, err := tqvsim.ParseIO(d.in)
		if d.err {
			if err == nil {
				t.Errorf("%q: expected error", d.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", d.in, err)
			continue
		}
		if !reflect.DeepEqual(got, d.exp) {
			t.Errorf("%q: expected %v, got %v", d.in, d.exp, got)
		}
	}
}

func TestNewPart_panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	spec := &tqvsim.PartSpec{Name: "X", Inputs: tqvsim.IO("a")}
	spec.NewPart("a")
}
