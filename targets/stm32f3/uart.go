//go:build tinygo && stm32f3

package main

const (
	consoleBaud = 115200
	apb2FreqHz  = 72000000

	// USART1 on PC4/PC5 (AF7); PA9/PA10 stay free for I2C2.
	uartTxPin = 2*16 + 4
	uartRxPin = 2*16 + 5
	uartPinAF = 7
)

func initConsoleUART() {
	rcc.APB2ENR.SetBits(rccAPB2ENRUSART1)

	uartPinConfig(uartTxPin)
	uartPinConfig(uartRxPin)

	usart1.CR1.ClearBits(usartCR1UE)
	usart1.BRR.Set(apb2FreqHz / consoleBaud)
	usart1.CR1.SetBits(usartCR1TE | usartCR1RE | usartCR1UE)
}

// uartPinConfig puts a pin into push-pull AF7 for the USART.
func uartPinConfig(pin uint8) {
	port := gpioPorts[pin/16]
	n := uint32(pin % 16)

	rcc.AHBENR.SetBits(rccAHBENRIOPAEN << (pin / 16))

	port.MODER.ReplaceBits(0b10, 0b11, uint8(2*n))
	port.OTYPER.ClearBits(1 << n)
	port.OSPEEDR.ReplaceBits(0b11, 0b11, uint8(2*n))
	if n < 8 {
		port.AFRL.ReplaceBits(uartPinAF, 0xF, uint8(4*n))
	} else {
		port.AFRH.ReplaceBits(uartPinAF, 0xF, uint8(4*(n-8)))
	}
}

func uartReadByte() byte {
	for !usart1.ISR.HasBits(usartISRRXNE) {
	}
	return byte(usart1.RDR.Get())
}

func uartWriteByte(b byte) {
	for !usart1.ISR.HasBits(usartISRTXE) {
	}
	usart1.TDR.Set(uint32(b))
}

func uartWriteString(s string) {
	for i := 0; i < len(s); i++ {
		uartWriteByte(s[i])
	}
}
