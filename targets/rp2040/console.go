//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"
)

// initConsole configures machine.Serial, which TinyGo maps to USB CDC on
// these chips. The USB descriptors are set by the runtime.
func initConsole() {
	machine.Serial.Configure(machine.UARTConfig{})
}

// usbConsole adapts machine.Serial to io.ReadWriter for the demo menu.
type usbConsole struct{}

// Read blocks until at least one byte is buffered, then drains what is
// available into p. The menu reads line-at-a-time through bufio, so the
// polling sleep only runs while the user is idle.
func (usbConsole) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for machine.Serial.Buffered() == 0 {
		time.Sleep(time.Millisecond)
	}

	n := 0
	for n < len(p) && machine.Serial.Buffered() > 0 {
		b, err := machine.Serial.ReadByte()
		if err != nil {
			break
		}
		p[n] = b
		n++
	}
	return n, nil
}

func (usbConsole) Write(p []byte) (int, error) {
	return machine.Serial.Write(p)
}
