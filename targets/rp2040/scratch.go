//go:build rp2040 || rp2350

package main

import (
	"runtime/volatile"
	"unsafe"

	"kennel/core"
)

// The watchdog scratch registers hold their contents through watchdog
// and soft resets and clear on power-on: exactly the lifetime the
// restart counter needs. SCRATCH0-3 can be claimed by bootloaders for
// watchdog boot vectors, so the counter lives in SCRATCH6/7.
const (
	scratchTAG = watchdogBase + 0x24 // SCRATCH6: magic tag
	scratchVAL = watchdogBase + 0x28 // SCRATCH7: counter value

	scratchMagic = 0x4B4E4E4C // "KNNL": tag distinguishing live data from power-on noise
)

var (
	scratchTagReg = (*volatile.Register32)(unsafe.Pointer(uintptr(scratchTAG)))
	scratchValReg = (*volatile.Register32)(unsafe.Pointer(uintptr(scratchVAL)))
)

// scratchCell is the hardware-backed PersistentCell.
type scratchCell struct{}

var _ core.PersistentCell = (*scratchCell)(nil)

func newScratchCell() *scratchCell {
	return &scratchCell{}
}

// Load returns the stored counter, or 0 when the tag is missing (first
// boot after power loss, or a bootloader clobbered the scratch bank).
func (c *scratchCell) Load() uint32 {
	if scratchTagReg.Get() != scratchMagic {
		return 0
	}
	return scratchValReg.Get()
}

// Store writes the value first, then the tag, so a reset between the
// two writes reads as "no data" rather than garbage.
func (c *scratchCell) Store(v uint32) {
	scratchValReg.Set(v)
	scratchTagReg.Set(scratchMagic)
}
