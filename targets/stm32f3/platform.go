//go:build tinygo && stm32f3

package main

import (
	"device/arm"

	"twim/core"
)

// Pins are encoded as port*16+pin, so core.Pin stays one byte.
const (
	pinPB6  core.Pin = 1*16 + 6  // I2C1 SCL
	pinPB7  core.Pin = 1*16 + 7  // I2C1 SDA
	pinPF4  core.Pin = 5*16 + 4  // I2C2 SCL
	pinPA10 core.Pin = 0*16 + 10 // I2C2 SDA
)

// Clock domains the driver can ask for.
const (
	clockI2C1 core.ClockDomain = iota
	clockI2C2
)

// Alternate function 4 is I2C on these pins.
const i2cPinAF = 4

// CPU clock, for the microsecond delay loop.
const cpuFreqMHz = 72

// f3Platform implements core.Platform over the GPIO and RCC blocks.
type f3Platform struct{}

func (f3Platform) ConfigurePin(pin core.Pin, mode core.PinMode) {
	port := gpioPorts[pin/16]
	n := uint32(pin % 16)

	// Port clock on first; harmless when already enabled.
	rcc.AHBENR.SetBits(rccAHBENRIOPAEN << (pin / 16))

	// Open drain, high speed for all driver modes.
	port.OTYPER.SetBits(1 << n)
	port.OSPEEDR.ReplaceBits(0b11, 0b11, uint8(2*n))

	switch mode {
	case core.PinAFOpenDrain, core.PinAFOpenDrainPullUp:
		port.MODER.ReplaceBits(0b10, 0b11, uint8(2*n)) // alternate function
		pull := uint32(0b00)
		if mode == core.PinAFOpenDrainPullUp {
			pull = 0b01
		}
		port.PUPDR.ReplaceBits(pull, 0b11, uint8(2*n))

		if n < 8 {
			port.AFRL.ReplaceBits(i2cPinAF, 0xF, uint8(4*n))
		} else {
			port.AFRH.ReplaceBits(i2cPinAF, 0xF, uint8(4*(n-8)))
		}

	case core.PinOutputOpenDrain:
		port.MODER.ReplaceBits(0b01, 0b11, uint8(2*n)) // general purpose output
		port.PUPDR.ReplaceBits(0b00, 0b11, uint8(2*n))
	}
}

func (f3Platform) SetPin(pin core.Pin, level bool) {
	port := gpioPorts[pin/16]
	n := uint32(pin % 16)
	if level {
		port.BSRR.Set(1 << n)
	} else {
		port.BSRR.Set(1 << (n + 16))
	}
}

func (f3Platform) ReadPin(pin core.Pin) bool {
	port := gpioPorts[pin/16]
	return port.IDR.HasBits(1 << uint32(pin%16))
}

func (f3Platform) EnableClock(clk core.ClockDomain) {
	switch clk {
	case clockI2C1:
		rcc.APB1ENR.SetBits(rccAPB1ENRI2C1EN)
		rcc.CFGR3.SetBits(rccCFGR3I2C1SW)
	case clockI2C2:
		rcc.APB1ENR.SetBits(rccAPB1ENRI2C2EN)
		rcc.CFGR3.SetBits(rccCFGR3I2C2SW)
	}
}

func (f3Platform) DelayMicroseconds(us int) {
	// ~4 cycles per iteration at -opt=2
	for i := 0; i < us*cpuFreqMHz/4; i++ {
		arm.Asm("nop")
	}
}
