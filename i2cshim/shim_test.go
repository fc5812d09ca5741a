package i2cshim

import (
	"bytes"
	"testing"

	"twim/core"
	"twim/sim"
)

func newTestBus(t *testing.T) (Bus, *sim.Slave) {
	t.Helper()

	slave := sim.NewSlave(0x68)
	d := core.NewDriver(sim.Pins{}, []core.DeviceConfig{
		{Periph: slave, SCL: 6, SDA: 7},
	})
	d.Init(core.Dev1)
	return New(d, core.Dev1), slave
}

func TestTxRegisterRead(t *testing.T) {
	bus, slave := newTestBus(t)
	copy(slave.Regs[0x3B:], []byte{0x11, 0x22, 0x33})

	r := make([]byte, 3)
	if err := bus.Tx(0x68, []byte{0x3B}, r); err != nil {
		t.Fatalf("Tx read error: %v", err)
	}
	if !bytes.Equal(r, []byte{0x11, 0x22, 0x33}) {
		t.Errorf("read bytes = %#v, want [11 22 33]", r)
	}
}

func TestTxRegisterWrite(t *testing.T) {
	bus, slave := newTestBus(t)

	if err := bus.Tx(0x68, []byte{0x6B, 0x40}, nil); err != nil {
		t.Fatalf("Tx write error: %v", err)
	}
	if slave.Regs[0x6B] != 0x40 {
		t.Errorf("register 0x6B = %02X, want 40", slave.Regs[0x6B])
	}
}

func TestTxUnsupportedShapes(t *testing.T) {
	bus, _ := newTestBus(t)

	cases := []struct {
		w, r []byte
	}{
		{nil, nil},                            // empty transaction
		{[]byte{0x01}, nil},                   // register with no data byte
		{[]byte{0x01, 0x02, 0x03}, nil},       // multi-byte write
		{[]byte{0x01, 0x02}, make([]byte, 1)}, // write bytes before a read
		{nil, make([]byte, 4)},                // read without register index
	}
	for i, tc := range cases {
		if err := bus.Tx(0x68, tc.w, tc.r); err != ErrUnsupportedTx {
			t.Errorf("case %d: err = %v, want ErrUnsupportedTx", i, err)
		}
	}
}

func TestTxWrongAddressFails(t *testing.T) {
	bus, _ := newTestBus(t)

	if err := bus.Tx(0x23, []byte{0x00, 0x01}, nil); err != ErrTxFailed {
		t.Errorf("err = %v, want ErrTxFailed for a NACKed address", err)
	}
}

func TestTxUninitializedDeviceFails(t *testing.T) {
	slave := sim.NewSlave(0x68)
	d := core.NewDriver(sim.Pins{}, []core.DeviceConfig{
		{Periph: slave, SCL: 6, SDA: 7},
	})
	// Device deliberately not initialized: transactions fail fast.
	bus := New(d, core.Dev1)

	if err := bus.Tx(0x68, []byte{0x6B, 0x00}, nil); err != ErrTxFailed {
		t.Errorf("err = %v, want ErrTxFailed", err)
	}
}
