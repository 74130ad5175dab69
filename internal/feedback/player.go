package feedback

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/memory-match/internal/config"
)

// bell is the terminal's only sound.
const bell = "\a"

// Player turns events into sounds and haptic pulses according to the user's
// settings. Sounds ring the terminal bell; a terminal has no vibration motor,
// so pulses are logged at debug level.
type Player struct {
	out      io.Writer
	logger   *log.Logger
	settings func() config.Settings
}

// NewPlayer creates a player. settings is consulted on every event so
// toggles take effect immediately. A nil logger discards pulse logs.
func NewPlayer(out io.Writer, logger *log.Logger, settings func() config.Settings) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if settings == nil {
		settings = config.DefaultSettings
	}
	return &Player{out: out, logger: logger, settings: settings}
}

// Emit plays evt. Player is itself a Sink.
func (p *Player) Emit(evt Event) {
	s := p.settings()
	if s.SoundEnabled && p.out != nil {
		if _, err := io.WriteString(p.out, bell); err != nil {
			p.logger.Debug("bell failed", "event", evt, "err", err)
		}
	}
	if s.VibrationEnabled {
		p.logger.Debug("haptic", "event", evt, "pattern", Pattern(evt))
	}
}

// Pattern names the haptic pulse for an event.
func Pattern(evt Event) string {
	switch evt {
	case EventFlip:
		return "light"
	case EventMatch, EventGameOver:
		return "success"
	case EventNoMatch:
		return "error"
	default:
		return "none"
	}
}
