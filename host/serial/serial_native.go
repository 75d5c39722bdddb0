package serial

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// NativePort is the tarm/serial backed console connection. The demo
// firmware enumerates as USB CDC, which ignores the baud setting; it is
// still applied so the same port works through a real UART adapter.
type NativePort struct {
	device string
	port   *serial.Port
}

var _ Port = (*NativePort)(nil)

// Open connects to the firmware console described by cfg.
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("serial: nil config")
	}

	p, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", cfg.Device, err)
	}

	return &NativePort{device: cfg.Device, port: p}, nil
}

// Device returns the path the port was opened with, for log context.
func (p *NativePort) Device() string { return p.device }

func (p *NativePort) Read(b []byte) (int, error)  { return p.port.Read(b) }
func (p *NativePort) Write(b []byte) (int, error) { return p.port.Write(b) }

// Close releases the device. The watch and serve commands call it from
// the signal handler to unblock a pending Read.
func (p *NativePort) Close() error {
	if p.port == nil {
		return nil
	}
	return p.port.Close()
}
