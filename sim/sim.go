// Package sim provides a host-side simulation of the bus hardware: a
// register-addressed slave behind the peripheral flag interface, and an
// inert pin platform. Used by package tests and useful for running device
// code off-target.
package sim

import "twim/core"

// Pins is a do-nothing core.Platform. Reads report a released (high) bus,
// so recovery sequences run without stalling.
type Pins struct{}

func (Pins) ConfigurePin(core.Pin, core.PinMode) {}
func (Pins) SetPin(core.Pin, bool)               {}
func (Pins) ReadPin(core.Pin) bool               { return true }
func (Pins) EnableClock(core.ClockDomain)        {}
func (Pins) DelayMicroseconds(int)               {}

// Slave simulates one well-behaved slave with a 256-byte register file and
// an auto-incrementing register pointer, which is how most sensor chips
// behave. Transactions addressed elsewhere are NACKed.
type Slave struct {
	Address uint8 // 7-bit slave address
	Regs    [256]byte

	cur       uint8 // register pointer
	expectReg bool  // next written byte is the register index

	txReady   bool
	tc        bool
	rxReady   bool
	nackf     bool
	stopf     bool
	autoEnd   bool
	pendingTx int
	pendingRx int
}

// NewSlave returns a slave answering at the given 7-bit address.
func NewSlave(address uint8) *Slave {
	return &Slave{Address: address}
}

func (s *Slave) SetTiming(core.TimingProfile) {}
func (s *Slave) EnableClockStretch()          {}
func (s *Slave) Enable()                      {}

func (s *Slave) ArmTransfer(addr uint8, nbytes int, end core.EndMode, action core.StartAction) {
	s.tc = false
	s.autoEnd = end == core.AutoEnd

	switch action {
	case core.GenStartWrite:
		if addr>>1 != s.Address {
			s.nackf = true
			return
		}
		s.expectReg = true
		s.pendingTx = nbytes
		s.txReady = nbytes > 0
	case core.GenStartRead:
		if addr>>1 != s.Address {
			s.nackf = true
			return
		}
		s.pendingRx = nbytes
		s.rxReady = nbytes > 0
	case core.NoStartStop:
		s.pendingTx = nbytes
		s.txReady = nbytes > 0
	case core.GenStop:
		s.stopf = true
	}
}

func (s *Slave) WriteData(b byte) {
	if s.expectReg {
		s.cur = b
		s.expectReg = false
	} else {
		s.Regs[s.cur] = b
		s.cur++
	}

	s.pendingTx--
	if s.pendingTx <= 0 {
		s.txReady = false
		if s.autoEnd {
			s.stopf = true
		} else {
			s.tc = true
		}
	}
}

func (s *Slave) ReadData() byte {
	b := s.Regs[s.cur]
	s.cur++

	s.pendingRx--
	if s.pendingRx <= 0 {
		s.rxReady = false
		if s.autoEnd {
			s.stopf = true
		}
	}
	return b
}

func (s *Slave) Flag(f core.Flag) bool {
	switch f {
	case core.FlagTxReady:
		return s.txReady
	case core.FlagTransferComplete:
		return s.tc
	case core.FlagRxReady:
		return s.rxReady
	case core.FlagNACK:
		return s.nackf
	case core.FlagStopDetected:
		return s.stopf
	}
	return false
}

func (s *Slave) ClearFlag(f core.Flag) {
	switch f {
	case core.FlagNACK:
		s.nackf = false
	case core.FlagStopDetected:
		s.stopf = false
	}
}
