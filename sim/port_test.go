package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kennel/core"
)

func TestPowerUpState(t *testing.T) {
	p := NewPort()
	assert.False(t, p.Armed())
	assert.Equal(t, core.CauseBitPowerOn, p.ReadCause())
	assert.Equal(t, time.Duration(0), p.Now())
}

func TestAdvanceFiresAtDeadline(t *testing.T) {
	p := NewPort()
	p.Enable(core.Timeout16ms)

	p.Advance(15 * time.Millisecond)
	assert.Equal(t, 0, p.Restarts())

	// The deadline is inclusive: landing exactly on it fires.
	p.Advance(1 * time.Millisecond)
	assert.Equal(t, 1, p.Restarts())
	assert.Equal(t, 16*time.Millisecond, p.LastRestartAt())

	// Hardware default after reset: disarmed, watchdog bit latched.
	assert.False(t, p.Armed())
	assert.NotZero(t, p.ReadCause()&core.CauseBitWatchdog)
}

func TestKickReloadsCountdown(t *testing.T) {
	p := NewPort()
	p.Enable(core.Timeout16ms)

	for i := 0; i < 10; i++ {
		p.Advance(10 * time.Millisecond)
		p.Kick()
	}
	assert.Equal(t, 0, p.Restarts())

	p.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, p.Restarts())
}

func TestRestartHookRunsOncePerExpiry(t *testing.T) {
	p := NewPort()
	calls := 0
	p.SetRestartHook(func() { calls++ })

	p.Enable(core.Timeout16ms)
	// A single large advance covers many periods but the countdown only
	// expires once: the restart disarms it.
	p.Advance(time.Second)
	require.Equal(t, 1, calls)
	require.Equal(t, 1, p.Restarts())

	p.Advance(time.Second)
	assert.Equal(t, 1, calls)
}

func TestCauseLatchAccumulatesAndClears(t *testing.T) {
	p := NewPort()
	p.SetCause(core.CauseBitExternal)
	assert.Equal(t, core.CauseBitPowerOn|core.CauseBitExternal, p.ReadCause())

	// Reads do not consume the latch; clearing does.
	assert.Equal(t, core.CauseBitPowerOn|core.CauseBitExternal, p.ReadCause())
	p.ClearCause()
	assert.Equal(t, core.CauseBits(0), p.ReadCause())
}

func TestCellLifetime(t *testing.T) {
	var c Cell
	assert.Equal(t, uint32(0), c.Load())

	c.Store(7)
	assert.Equal(t, uint32(7), c.Load())

	c.PowerCycle()
	assert.Equal(t, uint32(0), c.Load())
}
