package core

import "time"

// TimeoutClass selects one of the 8 discrete watchdog timeout durations.
// The values follow the classic 8-bit prescaler table: roughly doubling
// steps from ~16 ms up to ~2.1 s. A class is immutable once armed;
// changing it requires disarming and re-arming.
type TimeoutClass uint8

const (
	Timeout16ms TimeoutClass = iota
	Timeout32ms
	Timeout65ms
	Timeout130ms
	Timeout260ms
	Timeout520ms
	Timeout1s
	Timeout2s

	numTimeoutClasses
)

// timeoutMillis maps each class to its nominal duration in milliseconds.
var timeoutMillis = [numTimeoutClasses]uint32{
	16, 32, 65, 130, 260, 520, 1000, 2100,
}

// Clamp returns the class itself, or the longest class if the value is
// outside the enumerated set. The hardware masks undefined prescaler
// bits; clamping to the safest (longest) timeout matches that behavior.
func (c TimeoutClass) Clamp() TimeoutClass {
	if c >= numTimeoutClasses {
		return Timeout2s
	}
	return c
}

// Millis returns the nominal timeout duration in milliseconds.
func (c TimeoutClass) Millis() uint32 {
	return timeoutMillis[c.Clamp()]
}

// Duration returns the nominal timeout duration.
func (c TimeoutClass) Duration() time.Duration {
	return time.Duration(c.Millis()) * time.Millisecond
}

func (c TimeoutClass) String() string {
	switch c.Clamp() {
	case Timeout16ms:
		return "16ms"
	case Timeout32ms:
		return "32ms"
	case Timeout65ms:
		return "65ms"
	case Timeout130ms:
		return "130ms"
	case Timeout260ms:
		return "260ms"
	case Timeout520ms:
		return "520ms"
	case Timeout1s:
		return "1s"
	default:
		return "2.1s"
	}
}

// TimeoutClasses returns all valid classes in ascending duration order.
func TimeoutClasses() []TimeoutClass {
	classes := make([]TimeoutClass, numTimeoutClasses)
	for i := range classes {
		classes[i] = TimeoutClass(i)
	}
	return classes
}
