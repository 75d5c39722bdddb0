package demos_test

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kennel/core"
	"kennel/demos"
	"kennel/report"
	"kennel/sim"
)

// scriptConsole feeds a scripted stdin and captures the transcript. The
// output side embeds io.Writer, not *bytes.Buffer directly: the buffer
// also has a Read method, which would collide with the reader's.
type scriptConsole struct {
	io.Reader
	io.Writer
}

var _ io.ReadWriter = scriptConsole{}

type harness struct {
	menu      *demos.Menu
	sup       *core.Supervisor
	port      *sim.Port
	out       *bytes.Buffer
	restarted bool
	hung      bool
}

// newHarness wires a menu to the simulated port with a scripted stdin.
func newHarness(t *testing.T, input string) *harness {
	t.Helper()

	h := &harness{port: sim.NewPort(), out: &bytes.Buffer{}}
	h.sup = core.NewSupervisor(h.port, &sim.Cell{})
	require.Equal(t, core.CausePowerOn, h.sup.Boot())

	h.port.SetRestartHook(func() { h.restarted = true })

	menu, err := demos.NewMenu(demos.Config{
		Supervisor: h.sup,
		Console:    scriptConsole{strings.NewReader(input), h.out},
		Sleep:      h.port.Advance,
		Alive:      func() bool { return !h.restarted },
		OnHang:     func() { h.hung = true },
	})
	require.NoError(t, err)
	h.menu = menu
	return h
}

// frames extracts and decodes every report frame in the transcript.
func (h *harness) frames(t *testing.T) []report.Event {
	t.Helper()
	var events []report.Event
	for _, line := range strings.Split(h.out.String(), "\r\n") {
		if !report.IsFrame(line) {
			continue
		}
		ev, err := report.Decode(line)
		require.NoError(t, err, "transcript frame %q", line)
		events = append(events, ev)
	}
	return events
}

func countEvents(events []report.Event, name string) int {
	n := 0
	for _, ev := range events {
		if ev.Name == name {
			n++
		}
	}
	return n
}

func TestKickLoopSurvives(t *testing.T) {
	h := newHarness(t, "2\nq\n")
	require.NoError(t, h.menu.Run())

	assert.Equal(t, 0, h.port.Restarts())
	assert.Contains(t, h.out.String(), "survived")

	events := h.frames(t)
	assert.Equal(t, 1, countEvents(events, report.EvArmed))
	assert.Equal(t, 20, countEvents(events, report.EvKick))
	assert.Equal(t, 1, countEvents(events, report.EvDisarmed))
}

func TestHangDemoRestarts(t *testing.T) {
	h := newHarness(t, "3\n")
	require.NoError(t, h.menu.Run())

	require.Equal(t, 1, h.port.Restarts())
	assert.True(t, h.hung, "OnHang hook not invoked")

	events := h.frames(t)
	assert.Equal(t, 1, countEvents(events, report.EvHang))

	// The next boot closes the loop: the restart classifies as a
	// watchdog timeout and the counter advances.
	assert.Equal(t, core.CauseWatchdogTimeout, h.sup.Boot())
	assert.Equal(t, uint32(1), h.sup.Restarts())
}

func TestDisarmRaceSurvives(t *testing.T) {
	h := newHarness(t, "4\nq\n")
	require.NoError(t, h.menu.Run())

	assert.Equal(t, 0, h.port.Restarts())
	assert.Contains(t, h.out.String(), "still here")

	events := h.frames(t)
	assert.Equal(t, 1, countEvents(events, report.EvArmed))
	assert.Equal(t, 1, countEvents(events, report.EvDisarmed))
}

type fakeDisplay struct {
	line1, line2 string
}

func (d *fakeDisplay) Show(line1, line2 string) {
	d.line1, d.line2 = line1, line2
}

func TestStatusDemo(t *testing.T) {
	display := &fakeDisplay{}

	h := &harness{port: sim.NewPort(), out: &bytes.Buffer{}}
	h.sup = core.NewSupervisor(h.port, &sim.Cell{})
	h.sup.Boot()

	menu, err := demos.NewMenu(demos.Config{
		Supervisor: h.sup,
		Console:    scriptConsole{strings.NewReader("1\nq\n"), h.out},
		Sleep:      h.port.Advance,
		Display:    display,
	})
	require.NoError(t, err)
	require.NoError(t, menu.Run())

	assert.Contains(t, h.out.String(), "restart cause : poweron")
	assert.Contains(t, display.line1, "poweron")

	events := h.frames(t)
	require.GreaterOrEqual(t, countEvents(events, report.EvBoot), 1)
}

func TestUnknownSelection(t *testing.T) {
	h := newHarness(t, "9\nq\n")
	require.NoError(t, h.menu.Run())
	assert.Contains(t, h.out.String(), `unknown selection "9"`)
}

func TestBannerEmitsDecodableFrame(t *testing.T) {
	port := sim.NewPort()
	sup := core.NewSupervisor(port, &sim.Cell{})
	sup.Boot()

	var buf bytes.Buffer
	demos.Banner(&buf, sup)

	var boot *report.Event
	for _, line := range strings.Split(buf.String(), "\r\n") {
		if report.IsFrame(line) {
			ev, err := report.Decode(line)
			require.NoError(t, err)
			boot = &ev
		}
	}
	require.NotNil(t, boot, "banner contains no frame")
	assert.Equal(t, report.EvBoot, boot.Name)

	cause, _ := boot.Get("cause")
	assert.Equal(t, "poweron", cause)
}

func TestMenuRequiresSupervisorAndConsole(t *testing.T) {
	_, err := demos.NewMenu(demos.Config{})
	assert.Error(t, err)
}

// Sanity: the sleep injection really is what drives the sim clock.
func TestKickLoopAdvancesSimTime(t *testing.T) {
	h := newHarness(t, "2\nq\n")
	require.NoError(t, h.menu.Run())

	// 20 kicks at half the 520ms class = 5.2s of simulated time.
	assert.GreaterOrEqual(t, h.port.Now(), 5*time.Second)
}
