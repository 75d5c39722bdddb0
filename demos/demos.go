package demos

import (
	"fmt"
	"time"

	"kennel/core"
	"kennel/report"
)

// demoStatus reports the classification cached at boot and the restart
// counter. The cause latch was already consumed by Boot, so this demo
// reads the cache, never the hardware.
func (m *Menu) demoStatus() {
	sup := m.cfg.Supervisor
	state, class := sup.State()

	m.printf("restart cause : %s\r\n", sup.LastCause())
	m.printf("wdt restarts  : %d this powered session\r\n", sup.Restarts())
	if state == core.StateArmed {
		m.printf("countdown     : armed (%s)\r\n", class)
	} else {
		m.printf("countdown     : disarmed\r\n")
	}
	m.emit(report.BootEvent(sup.LastCause(), sup.Restarts()))

	if m.cfg.Display != nil {
		m.cfg.Display.Show(
			fmt.Sprintf("cause: %s", sup.LastCause()),
			fmt.Sprintf("wdt resets: %d", sup.Restarts()),
		)
	}
	m.out.Flush()
}

// demoKickLoop arms the countdown and proves that on-time kicks keep the
// system alive: the interval is half the timeout, so every kick lands
// with a full half-period of margin.
func (m *Menu) demoKickLoop(class core.TimeoutClass, iterations int) {
	sup := m.cfg.Supervisor
	interval := class.Duration() / 2

	m.printf("arming %s, kicking every %v, %d iterations\r\n", class, interval, iterations)
	sup.Arm(class)
	m.emit(report.ArmedEvent(class))

	for i := 1; i <= iterations && m.cfg.Alive(); i++ {
		m.cfg.Sleep(interval)
		sup.Kick()
		m.emit(report.KickEvent(i))
	}

	sup.Disarm()
	m.emit(report.DisarmedEvent())
	m.printf("survived %d intervals, disarmed\r\n", iterations)
	m.out.Flush()
}

// demoHang arms the countdown and then deliberately stops kicking. On
// hardware this function never returns: the countdown expires and the
// chip restarts, and the next boot classifies the cause as a watchdog
// timeout. In the simulator the Alive hook flips when the simulated
// countdown expires, unwinding the loop so the front end can stage the
// reboot.
func (m *Menu) demoHang(class core.TimeoutClass) {
	sup := m.cfg.Supervisor

	m.printf("arming %s and going silent -- restart imminent\r\n", class)
	sup.Arm(class)
	m.emit(report.ArmedEvent(class))
	m.emit(report.HangEvent(class))
	m.out.Flush()

	if m.cfg.OnHang != nil {
		m.cfg.OnHang()
	}

	step := class.Duration() / 4
	for m.cfg.Alive() {
		// No kicks from here on. The countdown is the only thing that
		// ends this loop.
		m.cfg.Sleep(step)
	}
}

// demoDisarmRace arms the shortest class and disarms immediately, then
// waits several full timeout periods. Reaching the final print without a
// restart is the proof that Disarm actually stopped the countdown.
func (m *Menu) demoDisarmRace(class core.TimeoutClass) {
	sup := m.cfg.Supervisor

	m.printf("arming %s then disarming immediately\r\n", class)
	sup.Arm(class)
	m.emit(report.ArmedEvent(class))
	sup.Disarm()
	m.emit(report.DisarmedEvent())

	const periods = 5
	wait := time.Duration(periods) * class.Duration()
	m.printf("waiting %v (%d timeout periods)...\r\n", wait, periods)
	m.out.Flush()
	m.cfg.Sleep(wait)

	if m.cfg.Alive() {
		m.printf("still here: disarm stopped the countdown\r\n")
	}
	m.out.Flush()
}
