//go:build tinygo && stm32f3

// Firmware entry point for STM32F30x boards: brings up both bus devices
// and answers probe commands over the USART1 console.
package main

import (
	"twim/console"
	"twim/core"
	"twim/wire"
)

func main() {
	platform := f3Platform{}

	// Pin defaults from the flight controller boards this runs on.
	d := core.NewDriver(platform, []core.DeviceConfig{
		{Periph: &f3Periph{regs: i2c1}, SCL: pinPB6, SDA: pinPB7, Clock: clockI2C1},
		{Periph: &f3Periph{regs: i2c2}, SCL: pinPF4, SDA: pinPA10, Clock: clockI2C2},
	})

	d.Init(core.Dev1)
	d.Init(core.Dev2)

	initConsoleUART()
	h := console.NewHandler(d)

	var line [96]byte
	n := 0
	for {
		b := uartReadByte()

		if b != '\n' && b != '\r' {
			if n < len(line) {
				line[n] = b
				n++
			} else {
				n = 0 // overlong frame, drop it
			}
			continue
		}

		if n == 0 {
			continue
		}
		payload, err := wire.Decode(string(line[:n]))
		n = 0
		if err != nil {
			uartWriteString(wire.Encode("err frame"))
			continue
		}
		uartWriteString(wire.Encode(h.Handle(payload)))
	}
}
