// Package wire implements the framing of the diagnostics console link:
// one frame per line, a text payload, a '*' separator and the payload's
// CRC16 as four uppercase hex digits. Small enough to type by hand against
// a firmware build, robust enough to catch a noisy serial line.
package wire

import "errors"

var (
	ErrBadFrame    = errors.New("wire: malformed frame")
	ErrCRCMismatch = errors.New("wire: CRC mismatch")
)

const hexDigits = "0123456789ABCDEF"

// Encode wraps a payload into a framed line, newline included.
func Encode(payload string) string {
	crc := CRC16([]byte(payload))
	return payload + "*" +
		string([]byte{
			hexDigits[crc>>12&0xF],
			hexDigits[crc>>8&0xF],
			hexDigits[crc>>4&0xF],
			hexDigits[crc&0xF],
		}) + "\n"
}

// Decode validates a framed line and returns its payload. Trailing CR/LF
// is tolerated so both raw terminals and line-buffered readers work.
func Decode(frame string) (string, error) {
	for len(frame) > 0 && (frame[len(frame)-1] == '\n' || frame[len(frame)-1] == '\r') {
		frame = frame[:len(frame)-1]
	}

	// payload '*' XXXX
	if len(frame) < 5 || frame[len(frame)-5] != '*' {
		return "", ErrBadFrame
	}

	payload := frame[:len(frame)-5]
	var got uint16
	for _, c := range []byte(frame[len(frame)-4:]) {
		v, ok := hexVal(c)
		if !ok {
			return "", ErrBadFrame
		}
		got = got<<4 | uint16(v)
	}

	if got != CRC16([]byte(payload)) {
		return "", ErrCRCMismatch
	}
	return payload, nil
}

func hexVal(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
