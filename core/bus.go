package core

import "sync/atomic"

// DeviceID selects one logical bus device in the driver's table.
type DeviceID int

const (
	Dev1 DeviceID = iota
	Dev2

	DevInvalid DeviceID = -1
)

// Timeouts are poll counts, not wall time. The long timeout bounds
// worst-case clock stretching by a well-behaved slave; tune it against the
// polling rate of the busy loop.
const (
	shortTimeout = 0x1000
	longTimeout  = 10 * shortTimeout
)

// DeviceConfig is one device table entry: the peripheral instance, its pin
// assignments, its clock domain and its timing options. Populated once at
// startup from board constants and not mutated afterwards, except for the
// Overclock flag (see SetOverclock).
type DeviceConfig struct {
	Periph    Peripheral  // bus controller instance
	SCL       Pin         // clock pin
	SDA       Pin         // data pin
	Clock     ClockDomain // peripheral clock enable
	Overclock bool        // high-speed timing profile at next Init
	PullUp    bool        // enable internal pull-ups on both pins
}

type direction uint8

const (
	txnRead direction = iota
	txnWrite
)

// busState is the per-device state machine context. One instance per table
// entry, owned by the driver, mutated only by the state machine and the
// transaction setup.
type busState struct {
	device      DeviceID
	initialized bool
	state       busStateID
	timeout     uint32 // remaining polls for the current wait state

	// Active transfer
	addr  uint8     // device address, pre-shifted
	rw    direction // direction
	reg   uint8     // register
	len   int       // remaining bytes
	buf   []byte    // caller's buffer, borrowed until STOPPED
	txnOk bool

	// One-byte scratch for Write, so two devices never share a buffer.
	writeScratch [1]byte

	failStreak uint8 // consecutive failed transactions, for health reporting
}

// timedOut consumes one poll of the wait budget. It reports true on the
// poll where the budget hits zero; the caller must treat that as a fault
// before looking at any status flag.
func (s *busState) timedOut() bool {
	if s.timeout == 0 {
		return true
	}
	s.timeout--
	return false
}

// Driver owns the device table and all per-device bus state. Construct one
// at startup and keep it for the program lifetime.
type Driver struct {
	platform Platform
	hw       []DeviceConfig
	bus      []busState

	// The only state shared across devices. Atomic because Go callers can
	// be preempted, unlike the single-core reference environment.
	errorCount atomic.Uint32
}

// NewDriver builds a driver over a board platform and its device table.
func NewDriver(platform Platform, devices []DeviceConfig) *Driver {
	d := &Driver{
		platform: platform,
		hw:       devices,
		bus:      make([]busState, len(devices)),
	}
	for i := range d.bus {
		d.bus[i].device = DeviceID(i)
	}
	return d
}

func (d *Driver) valid(dev DeviceID) bool {
	return dev >= 0 && int(dev) < len(d.hw)
}

// Init brings one device up: clock domain on, both pins in open-drain
// alternate function, timing per the table's overclock flag, clock
// stretching allowed, peripheral enabled, state machine idle. No-op for an
// invalid device id. Safe to call again on an initialized device; it
// re-applies the whole configuration.
func (d *Driver) Init(dev DeviceID) {
	if !d.valid(dev) {
		return
	}
	hw := &d.hw[dev]

	d.platform.EnableClock(hw.Clock)

	mode := PinAFOpenDrain
	if hw.PullUp {
		mode = PinAFOpenDrainPullUp
	}
	d.platform.ConfigurePin(hw.SCL, mode)
	d.platform.ConfigurePin(hw.SDA, mode)

	if hw.Overclock {
		hw.Periph.SetTiming(TimingHighSpeed)
	} else {
		hw.Periph.SetTiming(TimingStandard)
	}
	hw.Periph.EnableClockStretch()
	hw.Periph.Enable()

	d.bus[dev].device = dev
	d.bus[dev].initialized = true
	d.bus[dev].state = stateStopped
}

// SetOverclock sets the timing profile flag on every table entry. Takes
// effect on the next Init of each device, never on a running one.
func (d *Driver) SetOverclock(overclock bool) {
	for i := range d.hw {
		d.hw[i].Overclock = overclock
	}
}

// ErrorCount returns the number of bus faults detected since startup.
// Wraps around at 16 bits.
func (d *Driver) ErrorCount() uint16 {
	return uint16(d.errorCount.Load())
}

// TimeoutUserCallback counts a low-level wait-loop timeout. It always
// reports false so it can sit directly in a wait condition.
func (d *Driver) TimeoutUserCallback() bool {
	d.errorCount.Add(1)
	return false
}
