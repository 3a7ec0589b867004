package trace

import (
	"bytes"
	"strings"
	"testing"
)

func testRecorder(t *testing.T, a []bool, b []uint64) *Recorder {
	t.Helper()
	r := NewRecorder()
	var i int
	if err := r.AddBool("a", func() bool { return a[i] }); err != nil {
		t.Fatal(err)
	}
	if err := r.Add("b", 4, func() uint64 { return b[i] }); err != nil {
		t.Fatal(err)
	}
	for i = range a {
		r.Sample()
	}
	return r
}

func TestRecorder_add(t *testing.T) {
	r := NewRecorder()
	zero := func() uint64 { return 0 }
	if err := r.Add("x", 8, zero); err != nil {
		t.Fatal(err)
	}
	for _, d := range []struct {
		name  string
		width int
	}{{"x", 8}, {"y", 0}, {"z", 65}} {
		if err := r.Add(d.name, d.width, zero); err == nil {
			t.Errorf("Add(%q, %d) should fail", d.name, d.width)
		}
	}
	r.Sample()
	if err := r.Add("late", 1, zero); err == nil {
		t.Error("Add after Sample should fail")
	}
	if r.Signal("x") == nil || r.Signal("y") != nil || len(r.Signals()) != 1 {
		t.Fatal("bad signal list")
	}
}

func TestRecorder_sample(t *testing.T) {
	r := testRecorder(t, []bool{false, true, true}, []uint64{0x13, 0xff, 2})
	if r.Cycles() != 3 {
		t.Fatalf("cycles = %d", r.Cycles())
	}
	exp := []uint64{3, 0xf, 2}
	for i, v := range r.Signal("b").Values() {
		if v != exp[i] {
			t.Errorf("cycle %d: b = %#x, expected %#x", i, v, exp[i])
		}
	}
	if vs := r.Signal("a").Values(); vs[0] != 0 || vs[1] != 1 {
		t.Errorf("a = %v", vs)
	}
}

func TestRecorder_WriteVCD(t *testing.T) {
	r := testRecorder(t, []bool{false, true, true, false}, []uint64{3, 3, 5, 5})
	var buf bytes.Buffer
	if err := r.WriteVCD(&buf, ""); err != nil {
		t.Fatal(err)
	}
	exp := `$timescale 1ns $end
$scope module tqvsim $end
$var wire 1 ! a $end
$var wire 4 " b $end
$upscope $end
$enddefinitions $end
#0
$dumpvars
0!
b11 "
$end
#1
1!
#2
b101 "
#3
0!
#4
`
	if got := buf.String(); got != exp {
		t.Fatalf("got:\n%s\nexpected:\n%s", got, exp)
	}
}

func Test_vcdID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := vcdID(i)
		if seen[id] {
			t.Fatalf("duplicate id %q for signal %d", id, i)
		}
		seen[id] = true
		if strings.ContainsAny(id, " \t\n") {
			t.Fatalf("invalid id %q", id)
		}
	}
	if vcdID(0) != "!" || vcdID(93) != "~" || vcdID(94) != "!!" {
		t.Fatalf("unexpected ids %q %q %q", vcdID(0), vcdID(93), vcdID(94))
	}
}

func Test_wave(t *testing.T) {
	r := testRecorder(t,
		[]bool{false, true, true, false, false, false, false, true},
		[]uint64{3, 3, 5, 5, 0xa, 0xa, 0xa, 7})
	td := []struct {
		name     string
		from, to int
		exp      string
	}{
		{"a", 0, 8, "▁▔▔▁▁▁▁▔"},
		{"a", 1, 3, "▔▔"},
		{"b", 0, 8, "|3|5|a |"},
		{"b", 2, 7, "|5|a "},
	}
	for _, d := range td {
		if got := wave(r.Signal(d.name), d.from, d.to, nil); got != d.exp {
			t.Errorf("wave(%s, %d, %d) = %q, expected %q", d.name, d.from, d.to, got, d.exp)
		}
	}
}

func TestRecorder_Render(t *testing.T) {
	r := testRecorder(t, []bool{false, true, true, false}, []uint64{3, 3, 5, 5})
	var buf bytes.Buffer
	if err := r.Render(&buf, 0, 0); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "a") || !strings.Contains(out, "b") || strings.Count(out, "\n") != 2 {
		t.Fatalf("unexpected rendering %q", out)
	}
	if err := r.Render(&buf, 5, 1); err == nil {
		t.Fatal("Render past the last cycle should fail")
	}
}
