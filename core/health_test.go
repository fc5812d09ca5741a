package core

import (
	"strings"
	"testing"
)

func TestHealthStatuses(t *testing.T) {
	d, _, periph := newTestDriver()

	if got := d.Health(DevInvalid); got != StatusNone {
		t.Errorf("health of invalid device = %v, want none", got)
	}
	if got := d.Health(Dev1); got != StatusUnavailable {
		t.Errorf("health before Init = %v, want unavailable", got)
	}

	d.Init(Dev1)
	if got := d.Health(Dev1); got != StatusOK {
		t.Errorf("health after Init = %v, want ok", got)
	}

	// Repeated failures flip the device to unhealthy.
	periph.nackAddr = true
	for i := 0; i < unhealthyThreshold; i++ {
		d.Write(Dev1, 0x68, 0x6B, 0x00)
	}
	if got := d.Health(Dev1); got != StatusUnhealthy {
		t.Errorf("health after %d failures = %v, want unhealthy", unhealthyThreshold, got)
	}

	// One clean transaction clears the streak.
	periph.nackAddr = false
	if !d.Write(Dev1, 0x68, 0x6B, 0x00) {
		t.Fatal("clean write failed")
	}
	if got := d.Health(Dev1); got != StatusOK {
		t.Errorf("health after recovery = %v, want ok", got)
	}
}

func TestHealthSummary(t *testing.T) {
	d, _, _ := newTestDriver()
	d.Init(Dev1)

	got := d.HealthSummary()
	if !strings.HasPrefix(got, "errors=0") {
		t.Errorf("summary = %q, want errors=0 prefix", got)
	}
	if !strings.Contains(got, "dev0=ok") {
		t.Errorf("summary = %q, want dev0=ok", got)
	}
}

func TestHardwareStatusString(t *testing.T) {
	cases := map[HardwareStatus]string{
		StatusNone:        "none",
		StatusOK:          "ok",
		StatusUnavailable: "unavailable",
		StatusUnhealthy:   "unhealthy",
	}
	for st, want := range cases {
		if st.String() != want {
			t.Errorf("%d.String() = %q, want %q", st, st.String(), want)
		}
	}
}
