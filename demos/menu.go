// Package demos implements the menu of watchdog demonstrations. The code
// is written against core.Supervisor and an io.ReadWriter console so the
// same demos run over USB CDC on hardware and over stdin/stdout in the
// simulator. Sleeping is injected: the hardware front end sleeps for
// real, the simulator advances its countdown clock instead.
package demos

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"kennel/core"
	"kennel/report"
)

// Display is an optional two-line status display (the character LCD on
// hardware). Implementations must tolerate being called from the demo
// loop at human pace.
type Display interface {
	Show(line1, line2 string)
}

// Config wires a Menu to its environment.
type Config struct {
	Supervisor *core.Supervisor
	Console    io.ReadWriter

	// Sleep blocks for d. On hardware this is time.Sleep; the simulator
	// advances its clock, which may expire the countdown mid-call.
	Sleep func(d time.Duration)

	// Alive reports whether this boot session is still running. On
	// hardware it is always true (a real restart wipes the program);
	// the simulator flips it when the simulated countdown expires, so
	// demo loops that deliberately hang can unwind.
	Alive func() bool

	// OnHang, if set, runs right after the hang demo arms the countdown
	// and announces it. The hardware front end stalls the heartbeat
	// pulse output here so an external supervisor sees the hang too.
	OnHang func()

	// Display is optional; nil means no status display attached.
	Display Display
}

// Menu drives the demo selection loop.
type Menu struct {
	cfg Config
	in  *bufio.Reader
	out *bufio.Writer
}

// NewMenu validates the config and returns a runnable menu.
func NewMenu(cfg Config) (*Menu, error) {
	if cfg.Supervisor == nil || cfg.Console == nil {
		return nil, fmt.Errorf("demos: supervisor and console are required")
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	if cfg.Alive == nil {
		cfg.Alive = func() bool { return true }
	}
	return &Menu{
		cfg: cfg,
		in:  bufio.NewReader(cfg.Console),
		out: bufio.NewWriter(cfg.Console),
	}, nil
}

// Banner prints the post-boot report: the classified cause of the last
// restart and the recovered counter, as text for humans and as a frame
// for the host monitor. Front ends call it right after Supervisor.Boot.
func Banner(w io.Writer, sup *core.Supervisor) {
	fmt.Fprintf(w, "last restart: %s (watchdog restarts this session: %d)\r\n",
		sup.LastCause(), sup.Restarts())
	fmt.Fprintf(w, "%s\r\n", report.Encode(report.BootEvent(sup.LastCause(), sup.Restarts())))
}

// Run reads selections and dispatches demos until the console closes or
// 'q' is entered. It returns nil on a clean quit.
func (m *Menu) Run() error {
	for m.cfg.Alive() {
		m.printMenu()
		line, err := m.in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("demos: read selection: %w", err)
		}

		switch strings.TrimSpace(line) {
		case "1":
			m.emit(report.DemoEvent("status"))
			m.demoStatus()
		case "2":
			m.emit(report.DemoEvent("kickloop"))
			m.demoKickLoop(core.Timeout520ms, 20)
		case "3":
			m.emit(report.DemoEvent("hang"))
			m.demoHang(core.Timeout130ms)
		case "4":
			m.emit(report.DemoEvent("disarm"))
			m.demoDisarmRace(core.Timeout16ms)
		case "q", "Q":
			m.printf("bye\r\n")
			return m.out.Flush()
		case "":
			// ignore bare newlines
		default:
			m.printf("unknown selection %q\r\n", strings.TrimSpace(line))
		}
	}
	return nil
}

func (m *Menu) printMenu() {
	m.printf("\r\n==== watchdog supervisor demos ====\r\n")
	m.printf(" 1) status   - last restart cause and restart counter\r\n")
	m.printf(" 2) kickloop - arm %s, kick on time, disarm\r\n", core.Timeout520ms)
	m.printf(" 3) hang     - arm %s, stop kicking (system will restart!)\r\n", core.Timeout130ms)
	m.printf(" 4) disarm   - arm %s, disarm at once, wait it out\r\n", core.Timeout16ms)
	m.printf(" q) quit\r\n")
	m.printf("select> ")
	m.out.Flush()
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) emit(e report.Event) {
	m.printf("%s\r\n", report.Encode(e))
	m.out.Flush()
}
