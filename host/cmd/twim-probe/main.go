package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"twim/host/serial"
	"twim/wire"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	verbose = flag.Bool("verbose", false, "Print raw frames")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	fmt.Printf("Connecting to firmware console on %s...\n", *device)
	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fromFirmware := bufio.NewReader(port)

	fmt.Println("Enter commands (type 'help' for available commands, 'quit' to exit):")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		args, err := shlex.Split(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
			continue
		}

		switch args[0] {
		case "quit", "exit":
			return
		case "help":
			printHelp()
			continue
		}

		payload, err := buildPayload(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		frame := wire.Encode(payload)
		if *verbose {
			fmt.Printf("-> %q\n", frame)
		}
		if _, err := port.Write([]byte(frame)); err != nil {
			fmt.Fprintf(os.Stderr, "Write error: %v\n", err)
			continue
		}

		reply, err := fromFirmware.ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "Read error: %v\n", err)
			continue
		}
		if *verbose {
			fmt.Printf("<- %q\n", reply)
		}

		answer, err := wire.Decode(reply)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Frame error: %v\n", err)
			continue
		}
		fmt.Println(answer)
	}
}

// buildPayload translates a console command into its wire payload.
func buildPayload(args []string) (string, error) {
	switch args[0] {
	case "read":
		if len(args) != 4 {
			return "", fmt.Errorf("usage: read <addr> <reg> <len>")
		}
		addr, err := parseByte(args[1], 0x7F)
		if err != nil {
			return "", err
		}
		reg, err := parseByte(args[2], 0xFF)
		if err != nil {
			return "", err
		}
		length, err := strconv.ParseUint(args[3], 0, 8)
		if err != nil || length == 0 {
			return "", fmt.Errorf("bad length %q", args[3])
		}
		return fmt.Sprintf("r %02X %02X %d", addr, reg, length), nil

	case "write":
		if len(args) != 4 {
			return "", fmt.Errorf("usage: write <addr> <reg> <value>")
		}
		addr, err := parseByte(args[1], 0x7F)
		if err != nil {
			return "", err
		}
		reg, err := parseByte(args[2], 0xFF)
		if err != nil {
			return "", err
		}
		value, err := parseByte(args[3], 0xFF)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("w %02X %02X %02X", addr, reg, value), nil

	case "stats":
		return "s", nil

	case "health":
		return "h", nil

	default:
		return "", fmt.Errorf("unknown command %q", args[0])
	}
}

func parseByte(s string, max uint64) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil || v > max {
		return 0, fmt.Errorf("bad value %q", s)
	}
	return uint8(v), nil
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  read <addr> <reg> <len>    register read (e.g. read 0x68 0x3B 6)")
	fmt.Println("  write <addr> <reg> <val>   single-byte register write")
	fmt.Println("  stats                      bus error counter")
	fmt.Println("  health                     per-device health report")
	fmt.Println("  quit                       exit")
}
