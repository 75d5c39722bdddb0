//go:build rp2040 || rp2350

package main

import (
	"machine"

	"tinygo.org/x/drivers/hd44780i2c"

	"kennel/demos"
)

// lcdAddress is the common PCF8574 backpack address.
const lcdAddress = 0x27

// lcdDisplay shows the restart cause and counter on a 16x2 character
// LCD, mirroring the console banner for rigs without a host attached.
type lcdDisplay struct {
	dev hd44780i2c.Device
}

var _ demos.Display = (*lcdDisplay)(nil)

// initDisplay probes the LCD on I2C0. The display is optional: any
// configure failure just means headless operation, never a boot failure.
func initDisplay() demos.Display {
	if err := machine.I2C0.Configure(machine.I2CConfig{}); err != nil {
		return nil
	}

	lcd := hd44780i2c.New(machine.I2C0, lcdAddress)
	err := lcd.Configure(hd44780i2c.Config{
		Width:  16,
		Height: 2,
	})
	if err != nil {
		return nil
	}
	return &lcdDisplay{dev: lcd}
}

// Show writes two lines, truncated to the panel width.
func (d *lcdDisplay) Show(line1, line2 string) {
	d.dev.ClearDisplay()
	d.dev.Print([]byte(clip(line1, 16)))
	d.dev.SetCursor(0, 1)
	d.dev.Print([]byte(clip(line2, 16)))
}

func clip(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
