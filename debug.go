package touchui

import (
	"fmt"
	"io"
	"time"
)

// debugStats holds timing for one DrawAll or Dispatch call.
// Only populated when debug mode is on.
type debugStats struct {
	op       string
	screen   string
	widgets  int
	consumed bool
	elapsed  time.Duration
}

// SetLogOutput redirects warnings and debug lines. A nil writer silences them.
func (m *Manager) SetLogOutput(w io.Writer) {
	m.log = w
}

// SetDebugMode enables or disables debug mode. When enabled, every DrawAll
// and Dispatch logs the screen, widget count and elapsed time.
func (m *Manager) SetDebugMode(enabled bool) {
	m.debug = enabled
}

// debugLog prints timing stats to the log writer.
func (m *Manager) debugLog(stats debugStats) {
	if !m.debug || m.log == nil {
		return
	}
	_, _ = fmt.Fprintf(m.log, "[touchui] %s: screen %q | widgets: %d | consumed: %v | %v\n",
		stats.op, stats.screen, stats.widgets, stats.consumed, stats.elapsed)
}

// warnf reports a degraded-but-recoverable condition.
func (m *Manager) warnf(format string, args ...any) {
	if m.log == nil {
		return
	}
	_, _ = fmt.Fprintf(m.log, "[touchui] warning: "+format+"\n", args...)
}

// report logs err and hands it back so callers can return it directly.
func (m *Manager) report(err error) error {
	if m.log != nil {
		_, _ = fmt.Fprintf(m.log, "[touchui] error: %v\n", err)
	}
	return err
}
