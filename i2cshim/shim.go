// Package i2cshim adapts a driver device to the tinygo driver Tx shape, so
// stock device drivers from tinygo.org/x/drivers can run over the register
// transaction API.
package i2cshim

import (
	"errors"

	"tinygo.org/x/drivers"

	"twim/core"
)

var (
	// ErrUnsupportedTx is returned for transaction shapes the register
	// driver cannot express: the bus only does register-addressed reads
	// and single-byte register writes.
	ErrUnsupportedTx = errors.New("i2cshim: unsupported transaction shape")

	// ErrTxFailed is returned when the bus reports failure. The boolean
	// transaction API does not distinguish NACK from timeout.
	ErrTxFailed = errors.New("i2cshim: transaction failed")
)

// Bus binds one driver device to the drivers.I2C interface.
type Bus struct {
	d   *core.Driver
	dev core.DeviceID
}

var _ drivers.I2C = Bus{}

// New returns a Bus for one device of a driver.
func New(d *core.Driver, dev core.DeviceID) Bus {
	return Bus{d: d, dev: dev}
}

// Tx maps the generic write-then-read shape onto register transactions:
// w[0] is always the register index. A read takes exactly one write byte;
// a write takes exactly one data byte after the register.
func (b Bus) Tx(addr uint16, w, r []byte) error {
	switch {
	case len(r) > 0:
		if len(w) != 1 {
			return ErrUnsupportedTx
		}
		if !b.d.Read(b.dev, uint8(addr), w[0], len(r), r) {
			return ErrTxFailed
		}
	case len(w) == 2:
		if !b.d.Write(b.dev, uint8(addr), w[0], w[1]) {
			return ErrTxFailed
		}
	default:
		return ErrUnsupportedTx
	}
	return nil
}
