package sim

import (
	"sync"

	"kennel/core"
)

var _ core.PersistentCell = (*Cell)(nil)

// Cell is a PersistentCell backed by plain process memory. A simulated
// restart leaves the process (and therefore the cell) alive, which is
// exactly the lifetime the hardware scratch registers have across a
// watchdog reset. PowerCycle models pulling the plug.
type Cell struct {
	mu   sync.Mutex
	v    uint32
	live bool
}

// Load returns the stored value, or 0 before the first Store after a
// power cycle.
func (c *Cell) Load() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.live {
		return 0
	}
	return c.v
}

// Store writes the value and marks the cell live.
func (c *Cell) Store(v uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v = v
	c.live = true
}

// PowerCycle zeroes the cell, as a real power loss would.
func (c *Cell) PowerCycle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v = 0
	c.live = false
}
