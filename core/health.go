package core

// HardwareStatus reports the health of one bus device for diagnostics.
type HardwareStatus uint8

const (
	StatusNone        HardwareStatus = iota // no such device in the table
	StatusOK                                // initialized and responding
	StatusUnavailable                       // in the table but never initialized
	StatusUnhealthy                         // repeated transaction failures
)

// Consecutive failed transactions before a device is reported unhealthy.
const unhealthyThreshold = 3

func (st HardwareStatus) String() string {
	switch st {
	case StatusOK:
		return "ok"
	case StatusUnavailable:
		return "unavailable"
	case StatusUnhealthy:
		return "unhealthy"
	}
	return "none"
}

// Health derives a device's status from its table presence, init state and
// recent transaction outcomes.
func (d *Driver) Health(dev DeviceID) HardwareStatus {
	if !d.valid(dev) {
		return StatusNone
	}

	s := &d.bus[dev]
	if !s.initialized {
		return StatusUnavailable
	}
	if s.failStreak >= unhealthyThreshold {
		return StatusUnhealthy
	}
	return StatusOK
}

// HealthSummary renders a one-line status report for the console.
func (d *Driver) HealthSummary() string {
	out := "errors=" + utoa(uint32(d.ErrorCount()))
	for i := range d.hw {
		out += " dev" + itoa(i) + "=" + d.Health(DeviceID(i)).String()
	}
	return out
}
