//go:build rp2040

package main

// Heartbeat pulse output using a PIO state machine. Some rigs pair the
// internal watchdog with an external windowed supervisor chip that
// watches a pulse train; the PIO generates it with zero CPU involvement,
// so the pulses prove only that the chip is powered and clocked. The
// hang demo stalls the state machine to make the external supervisor
// trip alongside the internal one.

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// heartbeatPin carries the pulse train to the external supervisor input.
const heartbeatPin = machine.GP15

// buildHeartbeatProgram emits a free-running square wave:
//
//	0: set pins, 1 [31]
//	1: set pins, 0 [31]
//	.wrap
func buildHeartbeatProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		asm.Set(rp2pio.SetDestPins, 1).Delay(31).Encode(),
		asm.Set(rp2pio.SetDestPins, 0).Delay(31).Encode(),
	}
}

const heartbeatPIOOrigin = 0

// heartbeat wraps the claimed state machine so the hang demo can stall it.
type heartbeat struct {
	sm rp2pio.StateMachine
}

// initHeartbeat loads and starts the pulse generator on PIO1 (PIO0 is
// left free for application use). Returns nil if the program will not
// load; the demos run fine without the external supervisor line.
func initHeartbeat() *heartbeat {
	pioHW := rp2pio.PIO1
	sm := pioHW.StateMachine(0)
	sm.TryClaim()

	program := buildHeartbeatProgram()
	offset, err := pioHW.AddProgram(program, heartbeatPIOOrigin)
	if err != nil {
		return nil
	}

	pin := heartbeatPin
	pin.Configure(machine.PinConfig{Mode: pioHW.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSetPins(pin, 1)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)
	// Slowest clock: 125MHz / 65535 ~ 1.9kHz per instruction cycle,
	// 64 cycles per period ~ 30Hz pulse train.
	cfg.SetClkDivIntFrac(65535, 0)

	sm.Init(offset, cfg)
	sm.SetPindirsConsecutive(pin, 1, true)
	sm.SetPinsConsecutive(pin, 1, false)
	sm.SetEnabled(true)

	return &heartbeat{sm: sm}
}

// Stall freezes the state machine, leaving the pin static. The external
// supervisor sees the missing edges the same way the internal watchdog
// sees the missing kicks.
func (h *heartbeat) Stall() {
	h.sm.SetEnabled(false)
}
