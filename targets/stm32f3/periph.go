//go:build tinygo && stm32f3

package main

import "twim/core"

// Bus timings for a 72MHz kernel clock, analog filter on.
const (
	timingHighSpeed = 0x00500E30 // 1000 kHz, setup 40, hold 4
	timingStandard  = 0x00E0257A // 400 kHz, rise 100, fall 10
)

// f3Periph implements core.Peripheral over one I2C register block.
type f3Periph struct {
	regs *i2cRegs
}

func (p *f3Periph) SetTiming(profile core.TimingProfile) {
	// TIMINGR writes require a disabled peripheral.
	p.regs.CR1.ClearBits(i2cCR1PE)

	if profile == core.TimingHighSpeed {
		p.regs.TIMINGR.Set(timingHighSpeed)
	} else {
		p.regs.TIMINGR.Set(timingStandard)
	}

	// 7-bit own address unused (master only), analog filter on.
	p.regs.OAR1.Set(0)
	p.regs.CR1.ClearBits(i2cCR1ANFOFF)
}

func (p *f3Periph) EnableClockStretch() {
	p.regs.CR1.ClearBits(i2cCR1NOSTRETCH)
}

func (p *f3Periph) Enable() {
	p.regs.CR1.SetBits(i2cCR1PE)
}

func (p *f3Periph) ArmTransfer(addr uint8, nbytes int, end core.EndMode, action core.StartAction) {
	cr2 := uint32(addr) | uint32(nbytes)<<i2cCR2NBYTESPos

	if end == core.AutoEnd {
		cr2 |= i2cCR2AUTOEND
	}

	switch action {
	case core.GenStartWrite:
		cr2 |= i2cCR2START
	case core.GenStartRead:
		cr2 |= i2cCR2START | i2cCR2RDWRN
	case core.GenStop:
		cr2 |= i2cCR2STOP
	}

	p.regs.CR2.Set(cr2)
}

func (p *f3Periph) WriteData(b byte) {
	p.regs.TXDR.Set(uint32(b))
}

func (p *f3Periph) ReadData() byte {
	return byte(p.regs.RXDR.Get())
}

func (p *f3Periph) Flag(f core.Flag) bool {
	return p.regs.ISR.HasBits(isrBit(f))
}

func (p *f3Periph) ClearFlag(f core.Flag) {
	switch f {
	case core.FlagNACK:
		p.regs.ICR.Set(i2cICRNACKCF)
	case core.FlagStopDetected:
		p.regs.ICR.Set(i2cICRSTOPCF)
	}
}

func isrBit(f core.Flag) uint32 {
	switch f {
	case core.FlagBusy:
		return i2cISRBUSY
	case core.FlagTxReady:
		return i2cISRTXIS
	case core.FlagTransferComplete:
		return i2cISRTC
	case core.FlagRxReady:
		return i2cISRRXNE
	case core.FlagNACK:
		return i2cISRNACKF
	case core.FlagStopDetected:
		return i2cISRSTOPF
	}
	return 0
}
