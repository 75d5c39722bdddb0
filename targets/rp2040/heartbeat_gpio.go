//go:build rp2350

package main

// GPIO fallback heartbeat for targets where the PIO assembler path is
// not available. A goroutine toggles the pin; unlike the PIO version the
// pulses stop on a hard CPU hang even without Stall, which is fine - an
// external supervisor should trip in both cases.

import (
	"machine"
	"sync/atomic"
	"time"
)

const heartbeatPin = machine.GP15

type heartbeat struct {
	stalled uint32 // atomic bool
}

func initHeartbeat() *heartbeat {
	pin := heartbeatPin
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	h := &heartbeat{}
	go func() {
		level := false
		for {
			if atomic.LoadUint32(&h.stalled) != 0 {
				return
			}
			level = !level
			pin.Set(level)
			time.Sleep(16 * time.Millisecond)
		}
	}()
	return h
}

// Stall stops the toggling goroutine, leaving the pin static.
func (h *heartbeat) Stall() {
	atomic.StoreUint32(&h.stalled, 1)
}
