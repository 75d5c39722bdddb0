package core

// CauseBits are the raw restart-cause latch bits as read from hardware.
// A restart sets the bit for its cause; bits from earlier restarts stay
// latched until software clears them, so more than one bit can be set.
type CauseBits uint8

const (
	CauseBitWatchdog CauseBits = 1 << iota // countdown expired
	CauseBitBrownOut                       // supply dropped below threshold
	CauseBitExternal                       // reset pin asserted
	CauseBitPowerOn                        // cold power-up
)

// RestartCause is the classified reason for the most recent restart.
type RestartCause uint8

const (
	CauseUnknown RestartCause = iota
	CauseWatchdogTimeout
	CauseBrownOut
	CauseExternalReset
	CausePowerOn
)

func (c RestartCause) String() string {
	switch c {
	case CauseWatchdogTimeout:
		return "watchdog"
	case CauseBrownOut:
		return "brownout"
	case CauseExternalReset:
		return "external"
	case CausePowerOn:
		return "poweron"
	default:
		return "unknown"
	}
}

// ParseCause is the inverse of RestartCause.String. Unrecognized names
// map to CauseUnknown.
func ParseCause(s string) RestartCause {
	switch s {
	case "watchdog":
		return CauseWatchdogTimeout
	case "brownout":
		return CauseBrownOut
	case "external":
		return CauseExternalReset
	case "poweron":
		return CausePowerOn
	default:
		return CauseUnknown
	}
}

// ClassifyBits reduces the raw latch bits to a single cause. When several
// bits are latched (a stale power-on flag plus a fresh watchdog flag, for
// instance) the most recent plausible event wins: watchdog timeout first,
// then brown-out, then external reset, then power-on. With no bits set
// the latch was already consumed and the cause is unknown.
func ClassifyBits(bits CauseBits) RestartCause {
	switch {
	case bits&CauseBitWatchdog != 0:
		return CauseWatchdogTimeout
	case bits&CauseBitBrownOut != 0:
		return CauseBrownOut
	case bits&CauseBitExternal != 0:
		return CauseExternalReset
	case bits&CauseBitPowerOn != 0:
		return CausePowerOn
	default:
		return CauseUnknown
	}
}

// ClassifyRestart reads the restart-cause latch, classifies it, and
// clears the latch. The read happens exactly once: a second call without
// an intervening restart returns CauseUnknown because the bits are gone.
// Callers must cache the result.
func ClassifyRestart(p Port) RestartCause {
	bits := p.ReadCause()
	cause := ClassifyBits(bits)
	p.ClearCause()
	return cause
}
