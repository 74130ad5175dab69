package feedback

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/memory-match/internal/config"
)

func TestEventString(t *testing.T) {
	tests := map[Event]string{
		EventFlip:     "flip",
		EventMatch:    "match",
		EventNoMatch:  "no-match",
		EventGameOver: "game-over",
		Event(99):     "unknown",
	}
	for evt, want := range tests {
		if got := evt.String(); got != want {
			t.Errorf("Event(%d).String() = %q, expected %q", int(evt), got, want)
		}
	}
}

func TestChannelSinkDropsOldest(t *testing.T) {
	s := NewChannelSink(2)
	s.Emit(EventFlip)
	s.Emit(EventMatch)
	s.Emit(EventGameOver)

	got := s.Drain()
	if len(got) != 2 {
		t.Fatalf("Drain returned %d events, expected 2", len(got))
	}
	if got[0] != EventMatch || got[1] != EventGameOver {
		t.Errorf("Drain = %v, expected [match game-over]", got)
	}
	if rest := s.Drain(); len(rest) != 0 {
		t.Errorf("second Drain returned %d events, expected 0", len(rest))
	}
}

func TestChannelSinkClosed(t *testing.T) {
	s := NewChannelSink(4)
	s.Close()
	s.Close()
	s.Emit(EventFlip)

	if got := s.Drain(); len(got) != 0 {
		t.Errorf("closed sink buffered %d events, expected 0", len(got))
	}
}

func TestPlayerHonoursSettings(t *testing.T) {
	tests := []struct {
		name      string
		settings  config.Settings
		wantBells int
		wantPulse bool
	}{
		{"both on", config.Settings{SoundEnabled: true, VibrationEnabled: true}, 2, true},
		{"sound only", config.Settings{SoundEnabled: true}, 2, false},
		{"vibration only", config.Settings{VibrationEnabled: true}, 0, true},
		{"both off", config.Settings{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, logs bytes.Buffer
			logger := log.New(&logs)
			logger.SetLevel(log.DebugLevel)

			p := NewPlayer(&out, logger, func() config.Settings { return tt.settings })
			p.Emit(EventFlip)
			p.Emit(EventNoMatch)

			if got := strings.Count(out.String(), bell); got != tt.wantBells {
				t.Errorf("bells = %d, expected %d", got, tt.wantBells)
			}
			gotPulse := strings.Contains(logs.String(), "haptic")
			if gotPulse != tt.wantPulse {
				t.Errorf("haptic logged = %v, expected %v", gotPulse, tt.wantPulse)
			}
			if tt.wantPulse && !strings.Contains(logs.String(), "error") {
				t.Errorf("no-match pulse pattern missing from log: %q", logs.String())
			}
		})
	}
}

func TestPattern(t *testing.T) {
	if got := Pattern(EventMatch); got != "success" {
		t.Errorf("Pattern(match) = %q, expected success", got)
	}
	if got := Pattern(EventFlip); got != "light" {
		t.Errorf("Pattern(flip) = %q, expected light", got)
	}
}
