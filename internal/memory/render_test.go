package memory

import (
	"strings"
	"testing"

	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/core"
)

func TestRenderBoard(t *testing.T) {
	cfg := config.DefaultMemoryConfig()
	e := newTestEngine(t, ModeVsComputer, nil)
	first := e.Snapshot().Cards[0]
	e.FlipCard(first.ID)

	screen := core.NewScreen(80, 24)
	Render(screen, e.Snapshot(), View{Cursor: 0, Labels: cfg.Labels()})
	out := screen.String()

	for _, want := range []string{"MEMORY MATCH", "vs Computer", "Easy", "Moves 0", "You: 0", "Computer: 0", "?"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if label := cfg.Labels()[first.ImageKey]; !strings.Contains(out, label) {
		t.Errorf("flipped card label %q not shown", label)
	}
	if got := strings.Count(out, "?"); got != 11 {
		t.Errorf("face-down cards = %d, expected 11", got)
	}
}

func TestRenderHardFits(t *testing.T) {
	e := New(config.DefaultMemoryConfig(), Options{Seed: 1})
	if err := e.StartGame(DifficultyHard); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	screen := core.NewScreen(80, 24)
	Render(screen, e.Snapshot(), View{})
	if strings.Contains(screen.String(), "Window too small") {
		t.Error("hard board does not fit an 80x24 terminal")
	}
}

func TestRenderTooSmall(t *testing.T) {
	e := newTestEngine(t, ModeSolo, nil)
	screen := core.NewScreen(30, 8)
	Render(screen, e.Snapshot(), View{})
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestRenderGameOver(t *testing.T) {
	e := newTestEngine(t, ModeSolo, nil)
	solve(e)
	screen := core.NewScreen(80, 24)
	Render(screen, e.Snapshot(), View{})
	out := screen.String()
	if !strings.Contains(out, "Finished in 00:06 with 6 moves") {
		t.Errorf("missing result line in:\n%s", out)
	}
	if !strings.Contains(out, "NEW BEST!") {
		t.Error("missing new best banner")
	}
}

func TestBoardGridMove(t *testing.T) {
	g := BoardGrid(DifficultyMedium, 20)
	if g.Rows() != 4 {
		t.Fatalf("rows = %d, expected 4", g.Rows())
	}
	if got := g.Move(0, 1, 1); got != 6 {
		t.Errorf("Move(0, 1, 1) = %d, expected 6", got)
	}
	if got := g.Move(19, 1, 1); got != 19 {
		t.Errorf("Move(19, 1, 1) = %d, expected 19", got)
	}
}
