package wire

import (
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payloads := []string{"", "s", "r 68 3B 6", "health", "ok 01 02 03"}

	for _, payload := range payloads {
		frame := Encode(payload)
		if !strings.HasSuffix(frame, "\n") {
			t.Errorf("Encode(%q) not newline terminated", payload)
		}

		got, err := Decode(frame)
		if err != nil {
			t.Errorf("Decode(Encode(%q)) error: %v", payload, err)
		}
		if got != payload {
			t.Errorf("round trip of %q gave %q", payload, got)
		}
	}
}

func TestDecodeToleratesCRLF(t *testing.T) {
	frame := strings.TrimSuffix(Encode("stats"), "\n") + "\r\n"
	got, err := Decode(frame)
	if err != nil || got != "stats" {
		t.Errorf("Decode with CRLF = %q, %v", got, err)
	}
}

func TestDecodeRejectsCorruption(t *testing.T) {
	frame := Encode("r 68 3B 6")

	// Flip a payload byte; the CRC must catch it.
	corrupted := "w" + frame[1:]
	if _, err := Decode(corrupted); err != ErrCRCMismatch {
		t.Errorf("corrupted payload: err = %v, want ErrCRCMismatch", err)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, frame := range []string{"", "no separator", "x*12", "x*12GZ"} {
		if _, err := Decode(frame); err != ErrBadFrame {
			t.Errorf("Decode(%q) err = %v, want ErrBadFrame", frame, err)
		}
	}
}
