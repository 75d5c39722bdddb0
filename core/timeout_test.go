package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeoutClassDurations(t *testing.T) {
	classes := TimeoutClasses()
	assert.Len(t, classes, 8)

	assert.Equal(t, 16*time.Millisecond, Timeout16ms.Duration())
	assert.Equal(t, 2100*time.Millisecond, Timeout2s.Duration())

	// Each step roughly doubles the previous one.
	for i := 1; i < len(classes); i++ {
		ratio := float64(classes[i].Millis()) / float64(classes[i-1].Millis())
		assert.GreaterOrEqual(t, ratio, 1.8, "class %s to %s", classes[i-1], classes[i])
		assert.LessOrEqual(t, ratio, 2.2, "class %s to %s", classes[i-1], classes[i])
	}
}

func TestTimeoutClassClamp(t *testing.T) {
	assert.Equal(t, Timeout16ms, Timeout16ms.Clamp())
	assert.Equal(t, Timeout2s, Timeout2s.Clamp())

	// Values outside the enumerated set clamp to the longest class.
	assert.Equal(t, Timeout2s, TimeoutClass(8).Clamp())
	assert.Equal(t, Timeout2s, TimeoutClass(200).Clamp())
	assert.Equal(t, uint32(2100), TimeoutClass(200).Millis())
}

func TestTimeoutClassString(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range TimeoutClasses() {
		s := c.String()
		assert.NotEmpty(t, s)
		assert.False(t, seen[s], "duplicate name %q", s)
		seen[s] = true
	}
}
