// kennel-sim runs the watchdog demo menu against the simulated port, so
// the whole restart/classify/recover loop can be explored in a terminal
// without hardware. Simulated restarts re-run the boot sequence in
// process; only the persistent counter survives them, exactly as the
// scratch registers would on the board.
package main

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"kennel/core"
	"kennel/demos"
	"kennel/sim"
)

// stdio joins stdin and stdout into the menu's console.
type stdio struct {
	io.Reader
	io.Writer
}

func main() {
	port := sim.NewPort()
	cell := &sim.Cell{}
	sup := core.NewSupervisor(port, cell)

	var restarted uint32
	port.SetRestartHook(func() {
		atomic.StoreUint32(&restarted, 1)
	})

	boot := func() {
		cause := sup.Boot()
		fmt.Printf("\n--- boot at simulated t=%v ---\n", port.Now())
		demos.Banner(os.Stdout, sup)
		_ = cause
	}
	boot()

	menu, err := demos.NewMenu(demos.Config{
		Supervisor: sup,
		Console:    stdio{os.Stdin, os.Stdout},
		Sleep: func(d time.Duration) {
			port.Advance(d)
			// Scaled-down real sleep keeps the demo legible without
			// making the long waits actually long.
			time.Sleep(d / 16)
		},
		Alive: func() bool {
			return atomic.LoadUint32(&restarted) == 0
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for {
		if err := menu.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if atomic.LoadUint32(&restarted) != 0 {
			fmt.Printf("\n*** SYSTEM RESTART: countdown expired at t=%v ***\n", port.LastRestartAt())
			atomic.StoreUint32(&restarted, 0)
			boot()
			continue
		}
		// Clean quit from the menu.
		return
	}
}
