// Package sim provides a simulated watchdog port driven by a manually
// advanced countdown clock. It backs the core tests and the kennel-sim
// terminal demo; nothing in it touches hardware.
package sim

import (
	"sync"
	"time"

	"kennel/core"
)

// Ensure Port implements the supervisor port.
var _ core.Port = (*Port)(nil)

// Port simulates the watchdog peripheral: an autonomous countdown that
// runs whenever simulated time advances, a restart-cause latch, and a
// restart counter. Time only moves when Advance is called, so tests
// control the clock completely.
type Port struct {
	mu sync.Mutex

	now      time.Duration // simulated time since power-up
	armed    bool
	class    core.TimeoutClass
	deadline time.Duration // absolute simulated time of expiry

	cause    core.CauseBits
	restarts int
	lastFire time.Duration

	onRestart func()
}

// NewPort returns a powered-up simulated watchdog: disarmed, with the
// power-on cause bit latched, at simulated time zero.
func NewPort() *Port {
	return &Port{cause: core.CauseBitPowerOn}
}

// SetRestartHook registers a function called (with the port unlocked)
// each time the countdown expires. The kennel-sim front end uses it to
// print the restart banner and re-run the boot sequence.
func (p *Port) SetRestartHook(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onRestart = fn
}

// Disable stops the countdown.
func (p *Port) Disable() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.armed = false
}

// Enable arms the countdown with the given class, expiring one full
// timeout from the current simulated time.
func (p *Port) Enable(class core.TimeoutClass) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.armed = true
	p.class = class.Clamp()
	p.deadline = p.now + p.class.Duration()
}

// Kick reloads the countdown to its full value.
func (p *Port) Kick() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.armed {
		p.deadline = p.now + p.class.Duration()
	}
}

// ReadCause returns the latched cause bits without clearing them.
func (p *Port) ReadCause() core.CauseBits {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cause
}

// ClearCause clears the latch.
func (p *Port) ClearCause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cause = 0
}

// SetCause latches additional cause bits, as a brown-out or reset-pin
// event would.
func (p *Port) SetCause(bits core.CauseBits) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cause |= bits
}

// Advance moves simulated time forward. If an armed countdown expires
// inside the window the port performs the restart: it latches the
// watchdog cause bit, disarms (the hardware default after any reset),
// counts the restart, and invokes the restart hook. Software never runs
// this transition on real hardware; Advance is the stand-in for the
// autonomous countdown.
func (p *Port) Advance(d time.Duration) {
	p.mu.Lock()
	target := p.now + d
	var fire func()
	if p.armed && p.deadline <= target {
		p.now = p.deadline
		p.lastFire = p.deadline
		p.armed = false
		p.cause |= core.CauseBitWatchdog
		p.restarts++
		fire = p.onRestart
	}
	p.now = target
	p.mu.Unlock()

	if fire != nil {
		fire()
	}
}

// Now returns the current simulated time.
func (p *Port) Now() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

// Armed reports whether the countdown is running.
func (p *Port) Armed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.armed
}

// Restarts returns how many times the countdown expired.
func (p *Port) Restarts() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.restarts
}

// LastRestartAt returns the simulated time of the most recent expiry.
func (p *Port) LastRestartAt() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastFire
}
