package console

import (
	"strings"
	"testing"

	"twim/core"
	"twim/sim"
)

func newTestHandler(t *testing.T) (*Handler, *sim.Slave) {
	t.Helper()

	slave := sim.NewSlave(0x68)
	d := core.NewDriver(sim.Pins{}, []core.DeviceConfig{
		{Periph: slave, SCL: 6, SDA: 7},
	})
	d.Init(core.Dev1)
	return NewHandler(d), slave
}

func TestHandleRead(t *testing.T) {
	h, slave := newTestHandler(t)
	copy(slave.Regs[0x3B:], []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})

	got := h.Handle("r 68 3B 6")
	if got != "ok 010203040506" {
		t.Errorf("Handle(r) = %q", got)
	}
}

func TestHandleWrite(t *testing.T) {
	h, slave := newTestHandler(t)

	if got := h.Handle("w 68 6B 00"); got != "ok" {
		t.Errorf("Handle(w) = %q", got)
	}
	if slave.Regs[0x6B] != 0x00 {
		t.Errorf("register not written")
	}

	if got := h.Handle("w 68 6B 5A"); got != "ok" {
		t.Errorf("Handle(w) = %q", got)
	}
	if slave.Regs[0x6B] != 0x5A {
		t.Errorf("register 0x6B = %02X, want 5A", slave.Regs[0x6B])
	}
}

func TestHandleAbsentSlave(t *testing.T) {
	h, _ := newTestHandler(t)

	if got := h.Handle("r 23 00 1"); got != "err read" {
		t.Errorf("read from absent slave = %q, want err read", got)
	}
	if got := h.Handle("w 23 00 00"); got != "err write" {
		t.Errorf("write to absent slave = %q, want err write", got)
	}
}

func TestHandleStats(t *testing.T) {
	h, _ := newTestHandler(t)

	if got := h.Handle("s"); got != "errors 0" {
		t.Errorf("Handle(s) = %q, want errors 0", got)
	}
}

func TestHandleHealth(t *testing.T) {
	h, _ := newTestHandler(t)

	got := h.Handle("h")
	if !strings.Contains(got, "dev0=ok") {
		t.Errorf("Handle(h) = %q, want dev0=ok", got)
	}
}

func TestHandleBadInput(t *testing.T) {
	h, _ := newTestHandler(t)

	cases := map[string]string{
		"":             "err empty",
		"bogus":        "err unknown",
		"r 68 3B":      "err usage",
		"r ZZ 3B 1":    "err args",
		"r 68 3B 0":    "err args",
		"r 68 3B 1000": "err args",
		"r FF 3B 1":    "err args", // 8-bit address is not a 7-bit address
		"w 68 6B":      "err usage",
		"w 68 6B XYZ":  "err args",
	}
	for payload, want := range cases {
		if got := h.Handle(payload); got != want {
			t.Errorf("Handle(%q) = %q, want %q", payload, got, want)
		}
	}
}
