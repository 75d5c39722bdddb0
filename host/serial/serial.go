package serial

import (
	"io"
)

// Port is the serial console connection to the firmware. The interface
// keeps the monitor testable: tests substitute an in-memory transcript
// for the tarm/serial implementation.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g. "/dev/ttyACM0", "COM3").
	Device string

	// Baud rate. USB CDC consoles ignore it, real UARTs do not.
	Baud int

	// Read timeout in milliseconds (0 = blocking).
	ReadTimeout int
}

// DefaultConfig returns the configuration for the firmware's USB console.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 0, // block; the monitor reads line-at-a-time
	}
}
