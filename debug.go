package platformer

import (
	"fmt"
	"io"
	"os"
	"time"
)

// globalDebug mirrors the most recent SetDebugMode call so that code without
// a Session at hand (command execution) can check it cheaply.
var globalDebug bool

// debugOutput receives the debug log. Tests swap it for a buffer.
var debugOutput io.Writer = os.Stderr

// SetDebugMode enables or disables debug mode. When enabled, per-tick stage
// timings are printed to stderr and malformed interactable commands are
// reported instead of silently skipped.
func (s *Session) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// tickStats holds per-tick stage timings. Only populated in debug mode.
type tickStats struct {
	movables    time.Duration
	player      time.Duration
	collision   time.Duration
	interaction time.Duration
	camera      time.Duration
}

func (s *Session) debugLog(stats tickStats, outcome Outcome) {
	if !s.debug {
		return
	}
	total := stats.movables + stats.player + stats.collision + stats.interaction + stats.camera
	_, _ = fmt.Fprintf(debugOutput,
		"[platformer] movables: %v | player: %v | collision: %v | interaction: %v | camera: %v | total: %v\n",
		stats.movables, stats.player, stats.collision, stats.interaction, stats.camera, total)
	if outcome != OutcomeNone {
		_, _ = fmt.Fprintf(debugOutput, "[platformer] tick %d: level %d ended: %v (score %d)\n",
			s.ticks, s.Level, outcome, s.Score())
	}
}

// debugTimer returns a function reporting the time since the call, or a
// zero-cost stub when debug mode is off.
func (s *Session) debugTimer() func() time.Duration {
	if !s.debug {
		return func() time.Duration { return 0 }
	}
	start := time.Now()
	return func() time.Duration {
		d := time.Since(start)
		start = time.Now()
		return d
	}
}
