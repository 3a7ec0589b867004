package logger

import (
	"strconv"
	"strings"
	"testing"
)

func TestLogger_repeat(t *testing.T) {
	l := newLogger(4)
	l.log("bus", "store")
	l.log("bus", "store")
	l.log("bus", "load")
	var b strings.Builder
	l.tail(&b, -1)
	exp := "bus: store (repeat x2)\nbus: load\n"
	if b.String() != exp {
		t.Fatalf("expected %q, got %q", exp, b.String())
	}
}

func TestLogger_max(t *testing.T) {
	l := newLogger(4)
	for i := 0; i < 10; i++ {
		l.log("t", strconv.Itoa(i))
	}
	e := l.copy()
	if len(e) != 4 || e[0].Detail != "6" || e[3].Detail != "9" {
		t.Fatalf("unexpected entries %v", e)
	}
	var b strings.Builder
	l.tail(&b, 2)
	if b.String() != "t: 8\nt: 9\n" {
		t.Fatalf("bad tail %q", b.String())
	}
	l.clear()
	if len(l.copy()) != 0 {
		t.Fatal("clear failed")
	}
}

func TestCentral(t *testing.T) {
	Clear()
	var echo strings.Builder
	SetEcho(&echo)
	defer SetEcho(nil)
	Logf("pwm", "level %d", 128)
	Log("pwm", "line\nbreak")
	if echo.String() != "pwm: level 128\npwm: linebreak\n" {
		t.Fatalf("bad echo %q", echo.String())
	}
	var b strings.Builder
	Write(&b)
	if b.String() != echo.String() {
		t.Fatalf("Write = %q, expected %q", b.String(), echo.String())
	}
	if n := len(Entries()); n != 2 {
		t.Fatalf("expected 2 entries, got %d", n)
	}
}
