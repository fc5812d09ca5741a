package core

import "testing"

func TestUnstickPulseSequence(t *testing.T) {
	d, platform, _ := newTestDriver()

	d.unstick(testSCL, testSDA)

	// Both lines released first.
	if len(platform.sets) < 2 ||
		platform.sets[0] != (pinSet{testSCL, true}) ||
		platform.sets[1] != (pinSet{testSDA, true}) {
		t.Fatalf("recovery did not start by releasing both lines: %+v", platform.sets)
	}

	// Both pins detached from the peripheral into plain open-drain.
	if len(platform.configs) != 2 ||
		platform.configs[0] != (pinConfig{testSCL, PinOutputOpenDrain}) ||
		platform.configs[1] != (pinConfig{testSDA, PinOutputOpenDrain}) {
		t.Fatalf("recovery pin configs = %+v", platform.configs)
	}

	// 9 clock pulses: SCL driven low then high each time, plus one more
	// low/high pair inside the forced stop.
	sclLows := 0
	for _, s := range platform.sets {
		if s.pin == testSCL && !s.level {
			sclLows++
		}
	}
	if sclLows != 10 {
		t.Errorf("SCL low edges = %d, want 10 (9 pulses + stop)", sclLows)
	}

	// Forced stop: SCL low, SDA low, SCL high, SDA high, in that order.
	tail := platform.sets[len(platform.sets)-4:]
	want := []pinSet{
		{testSCL, false},
		{testSDA, false},
		{testSCL, true},
		{testSDA, true},
	}
	for i, s := range tail {
		if s != want[i] {
			t.Errorf("stop sequence step %d = %+v, want %+v", i, s, want[i])
		}
	}

	// Both lines left released.
	if !platform.levels[testSCL] || !platform.levels[testSDA] {
		t.Error("recovery left a bus line driven low")
	}
}

func TestUnstickWaitsOutClockStretching(t *testing.T) {
	d, platform, _ := newTestDriver()
	platform.sclStretch = 20 // slave holds SCL low for the first reads

	d.unstick(testSCL, testSDA)

	if platform.sclStretch != 0 {
		t.Error("recovery did not wait for the stretched clock")
	}

	// The stretch wait adds one 5µs delay per held-low read on top of the
	// fixed pulse delays (2 per pulse × 9 + 3 in the stop sequence).
	if platform.delays != 20+2*9+3 {
		t.Errorf("delay calls = %d, want %d", platform.delays, 20+2*9+3)
	}
}

func TestUnstickBoundsStretchWait(t *testing.T) {
	d, platform, _ := newTestDriver()
	// Hold SCL low far longer than the per-pulse budget allows.
	platform.sclStretch = 1 << 20

	d.unstick(testSCL, testSDA)

	// Each of the 9 pulses polls SCL at most 101 times before giving up
	// (100 bounded waits plus the final check).
	maxStretchReads := 9 * 101
	consumed := 1<<20 - platform.sclStretch
	if consumed > maxStretchReads {
		t.Errorf("stretch reads consumed = %d, want at most %d", consumed, maxStretchReads)
	}
}
