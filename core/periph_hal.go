package core

// TimingProfile selects the bus timing applied at init.
type TimingProfile uint8

const (
	TimingStandard  TimingProfile = iota // 400 kHz
	TimingHighSpeed                      // 1 MHz
)

// Flag identifies a peripheral status flag.
type Flag uint8

const (
	FlagBusy             Flag = iota // bus busy (a transaction is in flight)
	FlagTxReady                      // transmit register empty, ready for a byte
	FlagTransferComplete             // armed transfer phase finished
	FlagRxReady                      // received byte waiting in the data register
	FlagNACK                         // peer not-acknowledged the last byte
	FlagStopDetected                 // stop condition seen on the bus
)

// EndMode selects how an armed transfer phase terminates.
type EndMode uint8

const (
	// SoftEnd holds the bus after the phase so a restart can follow.
	SoftEnd EndMode = iota

	// AutoEnd generates a stop automatically once the byte count is done.
	AutoEnd
)

// StartAction selects the start/stop signaling for an armed transfer phase.
type StartAction uint8

const (
	NoStartStop   StartAction = iota // continue the current phase
	GenStartWrite                    // (repeated) start, write direction
	GenStartRead                     // (repeated) start, read direction
	GenStop                          // generate a stop condition
)

// Peripheral is the register-level surface of one bus controller instance.
// Methods map one-to-one onto peripheral register operations; the driver
// core never touches hardware except through this interface.
type Peripheral interface {
	// SetTiming applies a bus timing profile. Peripheral must be disabled.
	SetTiming(profile TimingProfile)

	// EnableClockStretch allows slaves to hold the clock line low.
	EnableClockStretch()

	// Enable turns the peripheral on with the configured timing.
	Enable()

	// ArmTransfer configures slave address, byte count, end mode and
	// start/stop generation for the next transfer phase.
	ArmTransfer(addr uint8, nbytes int, end EndMode, action StartAction)

	// WriteData pushes one byte into the transmit data register.
	WriteData(b byte)

	// ReadData pops one byte from the receive data register.
	ReadData() byte

	// Flag reports whether a status flag is raised.
	Flag(f Flag) bool

	// ClearFlag acknowledges a sticky status flag.
	ClearFlag(f Flag)
}
