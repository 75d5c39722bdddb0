package report

import (
	"strconv"

	"kennel/core"
)

// Event names emitted by the firmware.
const (
	EvBoot     = "boot"     // first frame after every boot
	EvArmed    = "armed"    // countdown armed
	EvKick     = "kick"     // countdown acknowledged
	EvDisarmed = "disarmed" // countdown stopped
	EvHang     = "hang"     // deliberate hang announced (kicks stop now)
	EvDemo     = "demo"     // demo selected from the menu
)

// BootEvent reports the classified cause of the restart that led to this
// boot and the recovered restart counter.
func BootEvent(cause core.RestartCause, restarts uint32) Event {
	return Event{Name: EvBoot, Fields: []Field{
		{Key: "cause", Value: cause.String()},
		{Key: "count", Value: strconv.FormatUint(uint64(restarts), 10)},
	}}
}

// ArmedEvent reports that the countdown was armed with a class.
func ArmedEvent(class core.TimeoutClass) Event {
	return Event{Name: EvArmed, Fields: []Field{
		{Key: "class", Value: class.String()},
		{Key: "timeout_ms", Value: strconv.FormatUint(uint64(class.Millis()), 10)},
	}}
}

// KickEvent reports the n-th acknowledge of the current arming.
func KickEvent(n int) Event {
	return Event{Name: EvKick, Fields: []Field{
		{Key: "n", Value: strconv.Itoa(n)},
	}}
}

// DisarmedEvent reports that the countdown was stopped.
func DisarmedEvent() Event {
	return Event{Name: EvDisarmed}
}

// HangEvent announces a deliberate hang: the firmware stops kicking and
// expects the hardware to restart it. It is the last frame before the
// boot frame of the next session.
func HangEvent(class core.TimeoutClass) Event {
	return Event{Name: EvHang, Fields: []Field{
		{Key: "class", Value: class.String()},
	}}
}

// DemoEvent reports which demonstration was selected.
func DemoEvent(name string) Event {
	return Event{Name: EvDemo, Fields: []Field{
		{Key: "name", Value: name},
	}}
}
