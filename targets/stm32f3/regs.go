//go:build tinygo && stm32f3

package main

import (
	"runtime/volatile"
	"unsafe"
)

// Register maps for the STM32F30x parts this firmware runs on. Only the
// blocks the driver touches are described.

type i2cRegs struct {
	CR1      volatile.Register32
	CR2      volatile.Register32
	OAR1     volatile.Register32
	OAR2     volatile.Register32
	TIMINGR  volatile.Register32
	TIMEOUTR volatile.Register32
	ISR      volatile.Register32
	ICR      volatile.Register32
	PECR     volatile.Register32
	RXDR     volatile.Register32
	TXDR     volatile.Register32
}

type gpioRegs struct {
	MODER   volatile.Register32
	OTYPER  volatile.Register32
	OSPEEDR volatile.Register32
	PUPDR   volatile.Register32
	IDR     volatile.Register32
	ODR     volatile.Register32
	BSRR    volatile.Register32
	LCKR    volatile.Register32
	AFRL    volatile.Register32
	AFRH    volatile.Register32
}

type rccRegs struct {
	CR       volatile.Register32
	CFGR     volatile.Register32
	CIR      volatile.Register32
	APB2RSTR volatile.Register32
	APB1RSTR volatile.Register32
	AHBENR   volatile.Register32
	APB2ENR  volatile.Register32
	APB1ENR  volatile.Register32
	BDCR     volatile.Register32
	CSR      volatile.Register32
	AHBRSTR  volatile.Register32
	CFGR2    volatile.Register32
	CFGR3    volatile.Register32
}

type usartRegs struct {
	CR1  volatile.Register32
	CR2  volatile.Register32
	CR3  volatile.Register32
	BRR  volatile.Register32
	GTPR volatile.Register32
	RTOR volatile.Register32
	RQR  volatile.Register32
	ISR  volatile.Register32
	ICR  volatile.Register32
	RDR  volatile.Register32
	TDR  volatile.Register32
}

var (
	i2c1   = (*i2cRegs)(unsafe.Pointer(uintptr(0x40005400)))
	i2c2   = (*i2cRegs)(unsafe.Pointer(uintptr(0x40005800)))
	rcc    = (*rccRegs)(unsafe.Pointer(uintptr(0x40021000)))
	usart1 = (*usartRegs)(unsafe.Pointer(uintptr(0x40013800)))

	gpioPorts = [6]*gpioRegs{
		(*gpioRegs)(unsafe.Pointer(uintptr(0x48000000))), // A
		(*gpioRegs)(unsafe.Pointer(uintptr(0x48000400))), // B
		(*gpioRegs)(unsafe.Pointer(uintptr(0x48000800))), // C
		(*gpioRegs)(unsafe.Pointer(uintptr(0x48000C00))), // D
		(*gpioRegs)(unsafe.Pointer(uintptr(0x48001000))), // E
		(*gpioRegs)(unsafe.Pointer(uintptr(0x48001400))), // F
	}
)

// I2C register bits
const (
	i2cCR1PE        = 1 << 0
	i2cCR1ANFOFF    = 1 << 12
	i2cCR1NOSTRETCH = 1 << 17

	i2cCR2RDWRN     = 1 << 10
	i2cCR2START     = 1 << 13
	i2cCR2STOP      = 1 << 14
	i2cCR2NBYTESPos = 16
	i2cCR2AUTOEND   = 1 << 25

	i2cISRBUSY  = 1 << 15
	i2cISRTXIS  = 1 << 1
	i2cISRRXNE  = 1 << 2
	i2cISRNACKF = 1 << 4
	i2cISRSTOPF = 1 << 5
	i2cISRTC    = 1 << 6

	i2cICRNACKCF = 1 << 4
	i2cICRSTOPCF = 1 << 5
)

// RCC enable bits
const (
	rccAHBENRIOPAEN  = 1 << 17 // port n is bit 17+n
	rccAPB1ENRI2C1EN = 1 << 21
	rccAPB1ENRI2C2EN = 1 << 22
	rccAPB2ENRUSART1 = 1 << 14
	rccCFGR3I2C1SW   = 1 << 4 // SYSCLK as I2C1 kernel clock
	rccCFGR3I2C2SW   = 1 << 5
)

// USART register bits
const (
	usartCR1UE  = 1 << 0
	usartCR1RE  = 1 << 2
	usartCR1TE  = 1 << 3
	usartISRRXNE = 1 << 5
	usartISRTXE  = 1 << 7
)
