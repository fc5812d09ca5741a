// Package console implements the firmware side of the diagnostics link:
// it executes decoded command payloads against a bus driver and renders
// reply payloads. Shared between the firmware console loop and host tests;
// fmt-free so tinygo builds stay small.
package console

import (
	"encoding/hex"
	"strconv"
	"strings"

	"twim/core"
)

// Reads are answered out of a fixed scratch buffer; longer requests are
// rejected rather than allocated.
const maxReadLen = 32

// Handler executes console commands against one driver.
type Handler struct {
	driver  *core.Driver
	readBuf [maxReadLen]byte
}

// NewHandler binds a handler to a driver.
func NewHandler(d *core.Driver) *Handler {
	return &Handler{driver: d}
}

// Handle executes one command payload and returns the reply payload.
//
// Commands:
//
//	r <addr> <reg> <len>  register read, hex addr/reg, decimal len
//	w <addr> <reg> <val>  single-byte register write, all hex
//	s                     error counter
//	h                     per-device health report
//
// The device is always the table's first entry; probing secondary buses
// goes through a second handler.
func (h *Handler) Handle(payload string) string {
	args := strings.Fields(payload)
	if len(args) == 0 {
		return "err empty"
	}

	switch args[0] {
	case "r":
		if len(args) != 4 {
			return "err usage"
		}
		addr, ok1 := parseHexByte(args[1])
		reg, ok2 := parseHexByte(args[2])
		length, err := strconv.ParseUint(args[3], 10, 8)
		if !ok1 || !ok2 || err != nil || addr > 0x7F || length == 0 || length > maxReadLen {
			return "err args"
		}

		buf := h.readBuf[:length]
		if !h.driver.Read(core.Dev1, addr, reg, int(length), buf) {
			return "err read"
		}
		return "ok " + hex.EncodeToString(buf)

	case "w":
		if len(args) != 4 {
			return "err usage"
		}
		addr, ok1 := parseHexByte(args[1])
		reg, ok2 := parseHexByte(args[2])
		value, ok3 := parseHexByte(args[3])
		if !ok1 || !ok2 || !ok3 || addr > 0x7F {
			return "err args"
		}

		if !h.driver.Write(core.Dev1, addr, reg, value) {
			return "err write"
		}
		return "ok"

	case "s":
		return "errors " + strconv.FormatUint(uint64(h.driver.ErrorCount()), 10)

	case "h":
		return h.driver.HealthSummary()
	}

	return "err unknown"
}

func parseHexByte(s string) (uint8, bool) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}
