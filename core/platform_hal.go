package core

// Pin identifies a hardware pin on the target package.
type Pin uint8

// ClockDomain identifies a peripheral clock enable line.
type ClockDomain uint8

// PinMode selects how a pin is wired up.
type PinMode uint8

const (
	// PinAFOpenDrain routes the pin to its peripheral alternate function,
	// open-drain, no pull (external pull-ups fitted on the bus).
	PinAFOpenDrain PinMode = iota

	// PinAFOpenDrainPullUp is the same with the internal pull-up enabled,
	// for boards without external bus pull-ups.
	PinAFOpenDrainPullUp

	// PinOutputOpenDrain detaches the pin from the peripheral and drives it
	// as a plain open-drain GPIO output. Used during bus recovery.
	PinOutputOpenDrain
)

// Platform is the abstract board I/O that the driver is built against.
// Target code implements it over real pin and clock registers; tests
// implement it over a recording fake.
type Platform interface {
	// ConfigurePin applies a pin mode
	ConfigurePin(pin Pin, mode PinMode)

	// SetPin drives the pin high (true) or low (false)
	SetPin(pin Pin, level bool)

	// ReadPin returns the current level on the pin
	ReadPin(pin Pin) bool

	// EnableClock turns on the clock domain feeding a peripheral
	EnableClock(clk ClockDomain)

	// DelayMicroseconds busy-waits for approximately us microseconds
	DelayMicroseconds(us int)
}
