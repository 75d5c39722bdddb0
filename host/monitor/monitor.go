// Package monitor is the host-side consumer of the firmware console: it
// tails the serial stream, passes human-readable text through, decodes
// and checksums report frames, and folds them into a session history and
// Prometheus metrics.
package monitor

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"kennel/core"
	"kennel/report"
)

// Monitor folds firmware console output into history and metrics.
type Monitor struct {
	log     zerolog.Logger
	history *History
	metrics *Metrics

	// now is stubbed in tests.
	now func() time.Time
}

// New creates a monitor. metrics may be nil (the watch command without
// serve has no scrape endpoint).
func New(log zerolog.Logger, history *History, metrics *Metrics) *Monitor {
	return &Monitor{
		log:     log,
		history: history,
		metrics: metrics,
		now:     time.Now,
	}
}

// Run reads console lines until EOF, the context is canceled, or the
// reader fails. A blocked read is only interrupted by closing the
// underlying port, so callers pair context cancellation with a Close.
func (m *Monitor) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		m.ProcessLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return nil
}

// ProcessLine handles one console line: menu text is logged untouched,
// frames are decoded and recorded. Exported so the decode command can
// replay captured logs through the same path.
func (m *Monitor) ProcessLine(line string) {
	if !report.IsFrame(line) {
		if line != "" {
			m.log.Debug().Str("console", line).Msg("firmware")
		}
		return
	}

	ev, err := report.Decode(line)
	if err != nil {
		m.history.RecordBadFrame()
		if m.metrics != nil {
			m.metrics.badFramesTotal.Inc()
		}
		m.log.Warn().Err(err).Str("line", line).Msg("rejected frame")
		return
	}

	switch ev.Name {
	case report.EvBoot:
		m.handleBoot(ev)
	case report.EvArmed:
		m.history.RecordArm()
		class, _ := ev.Get("class")
		m.log.Info().Str("class", class).Msg("countdown armed")
	case report.EvKick:
		m.history.RecordKick()
		if m.metrics != nil {
			m.metrics.kicksTotal.Inc()
		}
	case report.EvDisarmed:
		m.history.RecordDisarm()
		m.log.Info().Msg("countdown disarmed")
	case report.EvHang:
		m.history.RecordHang()
		if m.metrics != nil {
			m.metrics.hangsTotal.Inc()
		}
		class, _ := ev.Get("class")
		m.log.Warn().Str("class", class).Msg("firmware went silent on purpose; expecting a watchdog boot")
	case report.EvDemo:
		name, _ := ev.Get("name")
		m.log.Info().Str("demo", name).Msg("demo selected")
	default:
		m.log.Debug().Str("event", ev.Name).Msg("unrecognized frame event")
	}
}

func (m *Monitor) handleBoot(ev report.Event) {
	causeName, _ := ev.Get("cause")
	cause := core.ParseCause(causeName)

	var count uint32
	if s, ok := ev.Get("count"); ok {
		if v, err := strconv.ParseUint(s, 10, 32); err == nil {
			count = uint32(v)
		}
	}

	m.history.RecordBoot(m.now(), cause, count)
	if m.metrics != nil {
		m.metrics.bootsTotal.WithLabelValues(cause.String()).Inc()
		m.metrics.lastRestartCount.Set(float64(count))
	}

	evt := m.log.Info()
	if cause == core.CauseWatchdogTimeout {
		evt = m.log.Warn()
	}
	evt.Str("cause", cause.String()).Uint32("restarts", count).Msg("firmware booted")
}
