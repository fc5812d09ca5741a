package core

// resetInterface recovers from a bus error: count the fault, free the bus
// with the pins under direct GPIO control, then bring the peripheral back
// up from scratch.
func (d *Driver) resetInterface(s *busState) {
	hw := &d.hw[s.device]

	d.errorCount.Add(1)
	d.unstick(hw.SCL, hw.SDA)
	d.Init(s.device)
}

// unstick frees a bus held low by a slave stuck mid-byte.
//
// Analog Devices AN-686: 9 clock pulses give the slave enough edges to
// finish any in-progress byte and release the data line, then a forced
// stop condition resets its bus logic.
func (d *Driver) unstick(scl, sda Pin) {
	p := d.platform

	p.SetPin(scl, true)
	p.SetPin(sda, true)

	// Detach both pins from the peripheral
	p.ConfigurePin(scl, PinOutputOpenDrain)
	p.ConfigurePin(sda, PinOutputOpenDrain)

	for i := 0; i < 9; i++ {
		// Wait for any clock stretching to finish
		timeout := 100
		for !p.ReadPin(scl) && timeout > 0 {
			p.DelayMicroseconds(5)
			timeout--
		}

		p.SetPin(scl, false)
		p.DelayMicroseconds(5)
		p.SetPin(scl, true)
		p.DelayMicroseconds(5)
	}

	// Generate a stop condition in case there was none
	p.SetPin(scl, false)
	p.DelayMicroseconds(5)
	p.SetPin(sda, false)
	p.DelayMicroseconds(5)

	p.SetPin(scl, true)
	p.DelayMicroseconds(5)
	p.SetPin(sda, true)
}
