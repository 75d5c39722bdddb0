package core

// Port is the abstract watchdog hardware interface that the supervisor
// drives. Platform-specific implementations handle actual register access;
// the sim package provides a countdown-clock implementation for tests and
// the terminal demo.
type Port interface {
	// Disable unconditionally stops the countdown timer.
	Disable()

	// Enable arms the countdown timer with the requested timeout class.
	// The countdown starts immediately. Implementations must run the
	// hardware unlock sequence with interrupts masked (the timeout can
	// only be changed by a timed two-step write).
	Enable(class TimeoutClass)

	// Kick resets the countdown to its full value. Calling it at an
	// interval strictly shorter than the armed timeout is the only
	// liveness proof the hardware accepts.
	Kick()

	// ReadCause returns the raw restart-cause latch bits. The latch is
	// read-once by convention: callers cache the value before clearing.
	ReadCause() CauseBits

	// ClearCause clears the restart-cause latch so the next restart
	// produces an accurate reading.
	ClearCause()
}

// PersistentCell is a 32-bit cell that survives supervisor-triggered
// restarts but not power loss. The non-standard lifetime is deliberately
// visible at the type level: ordinary globals are zeroed on every boot,
// a PersistentCell is not. On hardware it is backed by watchdog scratch
// registers; in simulation by plain memory that outlives the simulated
// restart.
type PersistentCell interface {
	// Load returns the stored value, or 0 if the cell did not survive
	// (first boot after power loss).
	Load() uint32

	// Store writes a value and marks the cell as live.
	Store(v uint32)
}
