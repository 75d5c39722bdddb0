// kennel-host tails the watchdog demo firmware's serial console,
// records restart history, and optionally serves metrics.
package main

import (
	"os"

	"kennel/host/cmd/kennel-host/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
