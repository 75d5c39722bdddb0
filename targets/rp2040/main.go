//go:build rp2040 || rp2350

package main

import (
	"time"

	"kennel/core"
	"kennel/demos"
)

func main() {
	// CRITICAL: run the supervisor boot sequence before anything else.
	// If the previous boot left the watchdog armed with a short timeout,
	// console and I2C bring-up below could easily outlast it and the
	// board would restart-loop forever. Boot disables the countdown,
	// classifies the restart cause from the latch, clears it, and
	// recovers the scratch-register restart counter.
	port := &hwPort{}
	sup := core.NewSupervisor(port, newScratchCell())
	sup.Boot()

	initConsole()
	display := initDisplay()
	hb := initHeartbeat()

	// Give USB CDC a moment to enumerate before the first banner.
	time.Sleep(500 * time.Millisecond)

	console := &usbConsole{}

	// Boot ran before the console existed, so its Disable failure (the
	// one error that matters: a leftover short timeout may still be
	// counting down) is only reportable now. Park rather than run demos
	// on a watchdog in an unknown state.
	if err := port.Err(); err != nil {
		for {
			console.Write([]byte("watchdog disable failed: " + err.Error() + "\r\n"))
			time.Sleep(5 * time.Second)
		}
	}

	demos.Banner(console, sup)
	if display != nil {
		display.Show("cause: "+sup.LastCause().String(), "wdt resets ready")
	}

	menu, err := demos.NewMenu(demos.Config{
		Supervisor: sup,
		Console:    console,
		Sleep:      time.Sleep,
		Display:    display,
		OnHang: func() {
			if hb != nil {
				hb.Stall()
			}
		},
	})
	if err != nil {
		// Nothing sensible to do without a menu; blink the report on
		// the console and park.
		for {
			console.Write([]byte("menu init failed: " + err.Error() + "\r\n"))
			time.Sleep(5 * time.Second)
		}
	}

	// The menu only returns on console EOF, which USB CDC never
	// delivers; loop anyway so a transient error restarts the menu
	// instead of wedging the board.
	for {
		if err := menu.Run(); err != nil {
			console.Write([]byte("menu error: " + err.Error() + "\r\n"))
			time.Sleep(time.Second)
		}
		if err := port.Err(); err != nil {
			console.Write([]byte("watchdog error: " + err.Error() + "\r\n"))
		}
	}
}
