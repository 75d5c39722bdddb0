package serial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenNilConfig(t *testing.T) {
	port, err := Open(nil)
	assert.Error(t, err)
	assert.Nil(t, port)
}

func TestOpenMissingDevice(t *testing.T) {
	cfg := DefaultConfig("/dev/does-not-exist-kennel-test")
	port, err := Open(cfg)
	require.Error(t, err)
	assert.Nil(t, port)
	assert.Contains(t, err.Error(), cfg.Device)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyACM0")
	assert.Equal(t, "/dev/ttyACM0", cfg.Device)
	assert.Equal(t, 115200, cfg.Baud)
	assert.Equal(t, 0, cfg.ReadTimeout, "console reads must block")
}
