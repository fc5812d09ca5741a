package core

// step advances one device's state machine by at most one state's work.
// States that arm a transfer phase fall through into their wait state so
// the wait budget is armed in the same poll that starts the wait.
//
// Timeout is always consumed before any flag is inspected: a fault wins
// over a flag raised in the same poll.
func (d *Driver) step(s *busState) {
	periph := d.hw[s.device].Periph

	switch s.state {
	case stateBusError:
		d.resetInterface(s)
		s.buf = nil
		s.state = stateStopped

	case stateStopping:
		if s.timedOut() {
			s.state = stateBusError
		} else if periph.Flag(FlagStopDetected) {
			periph.ClearFlag(FlagStopDetected)
			s.buf = nil
			s.state = stateStopped
		}

	case stateStopped:
		// Stick here

	case stateStarting:
		s.timeout = longTimeout
		s.state = stateStartingWait
		fallthrough

	case stateStartingWait:
		if s.timedOut() {
			s.state = stateBusError
		} else if !periph.Flag(FlagBusy) {
			if s.rw == txnRead {
				s.state = stateReadAddr
			} else {
				s.state = stateWriteAddr
			}
		}

	case stateReadAddr:
		// Address phase: write direction, one byte (the register index),
		// hold the bus for the restart that follows.
		periph.ArmTransfer(s.addr, 1, SoftEnd, GenStartWrite)
		s.state = stateReadAddrWait
		s.timeout = longTimeout
		fallthrough

	case stateReadAddrWait:
		if s.timedOut() {
			s.state = stateBusError
		} else if periph.Flag(FlagTxReady) {
			s.state = stateReadRegister
		} else if periph.Flag(FlagNACK) {
			s.state = stateNACK
		}

	case stateReadRegister:
		periph.WriteData(s.reg)
		s.state = stateReadRegisterWait
		s.timeout = longTimeout
		fallthrough

	case stateReadRegisterWait:
		if s.timedOut() {
			s.state = stateBusError
		} else if periph.Flag(FlagTransferComplete) {
			if s.len == 0 {
				// Nothing to transfer; the public API never arms this,
				// but close the transaction cleanly if a caller does.
				periph.ArmTransfer(s.addr, 0, AutoEnd, GenStop)
				s.state = stateStopping
			} else {
				s.state = stateReadRestarting
			}
		} else if periph.Flag(FlagNACK) {
			s.state = stateNACK
		}

	case stateReadRestarting:
		// Repeated start, read direction, auto stop after len bytes.
		periph.ArmTransfer(s.addr, s.len, AutoEnd, GenStartRead)
		s.state = stateReadTransfer
		s.timeout = longTimeout
		fallthrough

	case stateReadTransfer:
		if s.timedOut() {
			s.state = stateBusError
		} else if periph.Flag(FlagRxReady) {
			s.buf[0] = periph.ReadData()
			s.buf = s.buf[1:]
			s.len--

			if s.len == 0 {
				// That was the last byte
				s.txnOk = true
				s.state = stateStopping
			}

			s.timeout = longTimeout
		}

	case stateWriteAddr:
		periph.ArmTransfer(s.addr, 1, SoftEnd, GenStartWrite)
		s.state = stateWriteAddrWait
		s.timeout = longTimeout
		fallthrough

	case stateWriteAddrWait:
		if s.timedOut() {
			s.state = stateBusError
		} else if periph.Flag(FlagTxReady) {
			s.state = stateWriteRegister
		} else if periph.Flag(FlagNACK) {
			s.state = stateNACK
		}

	case stateWriteRegister:
		periph.WriteData(s.reg)
		s.state = stateWriteRegisterWait
		s.timeout = longTimeout
		fallthrough

	case stateWriteRegisterWait:
		if s.timedOut() {
			s.state = stateBusError
		} else if periph.Flag(FlagTransferComplete) {
			if s.len == 0 {
				periph.ArmTransfer(s.addr, 0, AutoEnd, GenStop)
				s.state = stateStopping
			} else {
				s.state = stateWriteRestarting
			}
		} else if periph.Flag(FlagNACK) {
			s.state = stateNACK
		}

	case stateWriteRestarting:
		// Same direction, no new start; auto stop after len bytes.
		periph.ArmTransfer(s.addr, s.len, AutoEnd, NoStartStop)
		s.state = stateWriteTransfer
		s.timeout = longTimeout
		fallthrough

	case stateWriteTransfer:
		if s.timedOut() {
			s.state = stateBusError
		} else if periph.Flag(FlagTxReady) {
			periph.WriteData(s.buf[0])
			s.buf = s.buf[1:]
			s.len--

			if s.len == 0 {
				// That was the last byte
				s.txnOk = true
				s.state = stateStopping
			}

			s.timeout = longTimeout
		}

	case stateNACK:
		// Peer rejected the address or register byte. Close cleanly;
		// no counter increment, no recovery.
		periph.ArmTransfer(s.addr, 0, AutoEnd, GenStop)
		periph.ClearFlag(FlagNACK)
		s.state = stateStopping
	}
}
