package core

// begin stages a transaction on an idle device. Reports false when the
// device id is invalid, the device was never initialized, or a transaction
// is already in flight (only STOPPED may start a new one).
func (d *Driver) begin(dev DeviceID, rw direction, addr uint8, reg uint8, length int, buf []byte) bool {
	if !d.valid(dev) {
		return false
	}

	s := &d.bus[dev]
	if !s.initialized || s.state != stateStopped {
		return false
	}

	// The peripheral wants the 8-bit addressing convention
	s.addr = addr << 1
	s.reg = reg
	s.rw = rw
	s.len = length
	s.buf = buf
	s.txnOk = false
	s.state = stateStarting
	return true
}

// waitForCompletion busy-polls the state machine until the device is back
// in STOPPED. Every path through the machine terminates there, including
// NACK and bus-error recovery, so this is bounded by the wait budgets.
func (d *Driver) waitForCompletion(dev DeviceID) {
	for {
		d.step(&d.bus[dev])
		if d.bus[dev].state == stateStopped {
			return
		}
	}
}

// finish records the outcome for health tracking and returns it.
func (d *Driver) finish(dev DeviceID) bool {
	s := &d.bus[dev]
	if s.txnOk {
		s.failStreak = 0
	} else if s.failStreak < 0xFF {
		s.failStreak++
	}
	return s.txnOk
}

// Write performs a register write of a single byte: start, address,
// register index, data byte, stop. Blocks the caller until the transaction
// reaches STOPPED; worst case is a few wait budgets plus one bus recovery.
func (d *Driver) Write(dev DeviceID, addr uint8, reg uint8, value uint8) bool {
	if !d.valid(dev) {
		return false
	}

	s := &d.bus[dev]
	s.writeScratch[0] = value

	if !d.begin(dev, txnWrite, addr, reg, 1, s.writeScratch[:]) {
		return false
	}
	d.waitForCompletion(dev)
	return d.finish(dev)
}

// Read performs a combined-format register read: start, address and
// register index in write direction, repeated start in read direction,
// length data bytes into buf, stop. buf must hold at least length bytes;
// it is borrowed only until the call returns. Blocks like Write.
func (d *Driver) Read(dev DeviceID, addr uint8, reg uint8, length int, buf []byte) bool {
	if !d.begin(dev, txnRead, addr, reg, length, buf) {
		return false
	}
	d.waitForCompletion(dev)
	return d.finish(dev)
}

// BeginWrite stages the same transaction as Write without polling it, for
// callers that schedule the bus cooperatively via Step. Reports false if
// the device cannot accept a transaction.
func (d *Driver) BeginWrite(dev DeviceID, addr uint8, reg uint8, value uint8) bool {
	if !d.valid(dev) {
		return false
	}
	s := &d.bus[dev]
	s.writeScratch[0] = value
	return d.begin(dev, txnWrite, addr, reg, 1, s.writeScratch[:])
}

// BeginRead stages the same transaction as Read without polling it.
func (d *Driver) BeginRead(dev DeviceID, addr uint8, reg uint8, length int, buf []byte) bool {
	return d.begin(dev, txnRead, addr, reg, length, buf)
}

// Step runs one poll of the device's state machine and reports whether the
// device is idle. Together with BeginRead/BeginWrite it is the
// non-blocking form of the transaction API.
func (d *Driver) Step(dev DeviceID) bool {
	if !d.valid(dev) {
		return true
	}
	d.step(&d.bus[dev])
	return d.bus[dev].state == stateStopped
}

// TxnOK reports the outcome flag of the most recent transaction on the
// device. Meaningful once Step reports idle.
func (d *Driver) TxnOK(dev DeviceID) bool {
	if !d.valid(dev) {
		return false
	}
	return d.bus[dev].txnOk
}
