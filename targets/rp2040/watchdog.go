//go:build rp2040 || rp2350

package main

import (
	"machine"
	"runtime/interrupt"
	"runtime/volatile"
	"unsafe"

	"kennel/core"
)

// Watchdog and reset-reason register map (RP2040 datasheet ch. 4.7 and
// 2.13; same layout on RP2350 for these registers).
const (
	watchdogBase   = 0x40058000
	watchdogREASON = watchdogBase + 0x08 // why the last watchdog reset fired
	chipRESET      = 0x40064008          // VREG_AND_CHIP_RESET: CHIP_RESET
)

var (
	reasonReg    = (*volatile.Register32)(unsafe.Pointer(uintptr(watchdogREASON)))
	chipResetReg = (*volatile.Register32)(unsafe.Pointer(uintptr(chipRESET)))
)

const (
	reasonTimer = 1 << 0 // countdown expired
	reasonForce = 1 << 1 // software-forced watchdog reset

	chipResetHadPOR = 1 << 8  // power-on reset (brown-out folds into this)
	chipResetHadRun = 1 << 16 // RUN pin (external reset)
)

// hwPort drives the real watchdog peripheral through machine.Watchdog
// and reads the reset-reason registers directly.
//
// The reason registers are rewritten by hardware on every reset, so the
// read-once contract is enforced with a plain RAM flag: RAM is zeroed
// each boot, which re-arms the flag exactly when a fresh reading exists.
type hwPort struct {
	consumed bool
	err      error // most recent Configure/Start failure
}

var _ core.Port = (*hwPort)(nil)

// Disable stops the countdown. Configuring with a zero timeout also
// clears any reload value left over from before the reset. A failure
// here means the supervisor cannot guarantee the countdown is stopped;
// the caller checks Err before trusting the boot sequence.
func (p *hwPort) Disable() {
	p.err = machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
}

// Enable arms the countdown. The reload register only accepts the new
// value through the hardware unlock sequence; interrupts are masked so
// nothing lands between the configure and start writes. The class table
// only holds timeouts the peripheral accepts, so a failure indicates a
// wedged peripheral rather than a bad argument.
func (p *hwPort) Enable(class core.TimeoutClass) {
	state := interrupt.Disable()
	err := machine.Watchdog.Configure(machine.WatchdogConfig{
		TimeoutMillis: class.Millis(),
	})
	if err == nil {
		err = machine.Watchdog.Start()
	}
	interrupt.Restore(state)
	p.err = err
}

// Err returns the most recent watchdog configuration failure, or nil.
// The port interface has no error returns (arming cannot fail on this
// hardware with a valid timeout), so failures are latched here for the
// front end to report.
func (p *hwPort) Err() error {
	return p.err
}

// Kick reloads the countdown to its full value.
func (p *hwPort) Kick() {
	machine.Watchdog.Update()
}

// ReadCause maps the chip's reset-reason bits onto the portable cause
// bits. The RP2040 does not latch brown-out separately: the brown-out
// detector feeds the power-on reset chain, so brown-outs classify as
// power-on here.
func (p *hwPort) ReadCause() core.CauseBits {
	if p.consumed {
		return 0
	}

	var bits core.CauseBits
	if r := reasonReg.Get(); r&(reasonTimer|reasonForce) != 0 {
		bits |= core.CauseBitWatchdog
	}
	cr := chipResetReg.Get()
	if cr&chipResetHadRun != 0 {
		bits |= core.CauseBitExternal
	}
	if cr&chipResetHadPOR != 0 {
		bits |= core.CauseBitPowerOn
	}
	return bits
}

// ClearCause consumes the latch for this session.
func (p *hwPort) ClearCause() {
	p.consumed = true
}
