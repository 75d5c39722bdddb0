package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBitsSingle(t *testing.T) {
	cases := []struct {
		name string
		bits CauseBits
		want RestartCause
	}{
		{"watchdog", CauseBitWatchdog, CauseWatchdogTimeout},
		{"brownout", CauseBitBrownOut, CauseBrownOut},
		{"external", CauseBitExternal, CauseExternalReset},
		{"poweron", CauseBitPowerOn, CausePowerOn},
		{"none", 0, CauseUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyBits(tc.bits))
		})
	}
}

// In practice a restart latches one new bit, but stale bits from earlier
// restarts can still be set if software never cleared them. The priority
// order below is a design choice (most recent plausible event first),
// not something the hardware guarantees.
func TestClassifyBitsPriority(t *testing.T) {
	all := CauseBitWatchdog | CauseBitBrownOut | CauseBitExternal | CauseBitPowerOn
	assert.Equal(t, CauseWatchdogTimeout, ClassifyBits(all))

	assert.Equal(t, CauseBrownOut, ClassifyBits(CauseBitBrownOut|CauseBitExternal|CauseBitPowerOn))
	assert.Equal(t, CauseExternalReset, ClassifyBits(CauseBitExternal|CauseBitPowerOn))
	assert.Equal(t, CauseWatchdogTimeout, ClassifyBits(CauseBitWatchdog|CauseBitPowerOn))
}

func TestCauseStringRoundTrip(t *testing.T) {
	causes := []RestartCause{
		CauseWatchdogTimeout, CauseBrownOut, CauseExternalReset, CausePowerOn, CauseUnknown,
	}
	for _, c := range causes {
		assert.Equal(t, c, ParseCause(c.String()))
	}
	assert.Equal(t, CauseUnknown, ParseCause("gibberish"))
}
