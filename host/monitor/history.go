package monitor

import (
	"sync"
	"time"

	"kennel/core"
)

// BootRecord is one observed firmware boot: when the boot frame arrived,
// what the firmware classified, and its persistent restart counter.
type BootRecord struct {
	At    time.Time
	Cause core.RestartCause
	Count uint32
}

// Stats are the session counters the monitor accumulates.
type Stats struct {
	Boots     int
	Arms      int
	Kicks     int
	Disarms   int
	Hangs     int
	BadFrames int
}

// History stores everything a watch session has seen. It is safe for
// concurrent use: the serve command reads snapshots while the reader
// goroutine appends.
type History struct {
	mu    sync.Mutex
	boots []BootRecord
	stats Stats
}

func NewHistory() *History {
	return &History{}
}

func (h *History) RecordBoot(at time.Time, cause core.RestartCause, count uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.boots = append(h.boots, BootRecord{At: at, Cause: cause, Count: count})
	h.stats.Boots++
}

func (h *History) RecordArm() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stats.Arms++
}

func (h *History) RecordKick() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stats.Kicks++
}

func (h *History) RecordDisarm() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stats.Disarms++
}

func (h *History) RecordHang() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stats.Hangs++
}

func (h *History) RecordBadFrame() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stats.BadFrames++
}

// Boots returns a copy of the boot records in arrival order.
func (h *History) Boots() []BootRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]BootRecord, len(h.boots))
	copy(out, h.boots)
	return out
}

// Stats returns a copy of the session counters.
func (h *History) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stats
}
