package core

// Supervisor owns the watchdog port and the restart bookkeeping that
// survives a supervisor-triggered restart. It is created once at boot;
// the armed/disarmed state lives in the hardware and the supervisor only
// shadows the class it armed with.
//
// Failures are not observed through this API. A hang simply stops the
// kicks, the hardware restarts the system, and the next boot's
// classification is the only diagnostic.

// State mirrors the hardware countdown state.
type State uint8

const (
	StateDisarmed State = iota
	StateArmed
)

func (s State) String() string {
	if s == StateArmed {
		return "armed"
	}
	return "disarmed"
}

// Supervisor drives a watchdog Port and tracks restarts across boots.
type Supervisor struct {
	port    Port
	counter PersistentCell

	state     State
	class     TimeoutClass
	lastCause RestartCause
	restarts  uint32
	booted    bool
}

// NewSupervisor wires a supervisor to a port and a restart counter cell.
// Call Boot before anything else.
func NewSupervisor(port Port, counter PersistentCell) *Supervisor {
	return &Supervisor{port: port, counter: counter}
}

// Boot runs the mandatory startup sequence:
//
//  1. disable the countdown, in case the previous boot left it armed
//     with a timeout too short to survive initialization;
//  2. read the restart-cause latch exactly once and classify it;
//  3. clear the latch so the next restart reads accurately;
//  4. bump the persistent restart counter if the watchdog fired.
//
// It must run before any other initialization: anything that can stall
// (console setup, peripheral probing) would otherwise race a short
// leftover timeout. Calling Boot a second time reclassifies against the
// already-cleared latch and reports CauseUnknown.
func (s *Supervisor) Boot() RestartCause {
	s.port.Disable()
	s.state = StateDisarmed

	s.lastCause = ClassifyRestart(s.port)

	s.restarts = s.counter.Load()
	if s.lastCause == CauseWatchdogTimeout {
		s.restarts++
		s.counter.Store(s.restarts)
	} else if !s.booted {
		// Non-watchdog restart: keep the session counter as-is so a
		// manual reset mid-debugging does not lose the tally. A power
		// loss already zeroed the cell.
		s.counter.Store(s.restarts)
	}

	s.booted = true
	return s.lastCause
}

// Arm starts the countdown with the given class. Out-of-range classes
// clamp to the longest timeout. Arming while already armed re-runs the
// unlock sequence with the new class, which is how the class is changed.
func (s *Supervisor) Arm(class TimeoutClass) {
	class = class.Clamp()
	s.port.Enable(class)
	s.state = StateArmed
	s.class = class
}

// Disarm stops the countdown. Safe to call when already disarmed.
func (s *Supervisor) Disarm() {
	s.port.Disable()
	s.state = StateDisarmed
}

// Kick resets the countdown to its full value. It must be called at an
// interval strictly shorter than the armed class's duration; arriving
// late is indistinguishable from a hang and the restart fires. Kicking
// while disarmed is a no-op.
func (s *Supervisor) Kick() {
	if s.state != StateArmed {
		return
	}
	s.port.Kick()
}

// State reports the shadowed countdown state and the armed class. The
// class is meaningful only while armed.
func (s *Supervisor) State() (State, TimeoutClass) {
	return s.state, s.class
}

// LastCause returns the classification cached by Boot.
func (s *Supervisor) LastCause() RestartCause {
	return s.lastCause
}

// Restarts returns the cumulative count of watchdog-triggered restarts
// this powered session, as recovered from the persistent cell at Boot.
func (s *Supervisor) Restarts() uint32 {
	return s.restarts
}
