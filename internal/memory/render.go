package memory

import (
	"fmt"

	"github.com/vovakirdan/memory-match/internal/core"
)

// Card cell layout.
const (
	cardWidth  = 7
	cardHeight = 3
	cardGapX   = 1
	cardGapY   = 0
	hudHeight  = 3
	footHeight = 2
)

// View holds the presentation state that is not part of the session.
type View struct {
	Cursor int               // Card position under the cursor
	Labels map[string]string // Face text per image key
}

// BoardGrid returns the card layout for a board of count cards.
func BoardGrid(d Difficulty, count int) core.Grid {
	return core.Grid{
		Cols:  d.Columns(),
		Count: count,
		CellW: cardWidth,
		CellH: cardHeight,
		GapX:  cardGapX,
		GapY:  cardGapY,
	}
}

// Render draws the session into dst.
func Render(dst *core.Screen, s Snapshot, v View) {
	dst.Clear()

	grid := BoardGrid(s.Difficulty, len(s.Cards))
	boardW, boardH := grid.Size()
	if boardW > dst.Width() || boardH+hudHeight+footHeight > dst.Height() {
		renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight

	renderHUD(dst, s)
	for i, c := range s.Cards {
		renderCard(dst, grid.Cell(i, boardX, boardY), c, i == v.Cursor, v.Labels)
	}
	renderFooter(dst, s, boardY+boardH+1)
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorRed)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}

func renderHUD(dst *core.Screen, s Snapshot) {
	title := fmt.Sprintf("MEMORY MATCH - %s - %s", s.Mode.Title(), s.Difficulty.Title())
	dst.DrawTextCentered(0, title, core.ColorBrightCyan)

	stats := fmt.Sprintf("Time %s   Moves %d   Pairs %d/%d",
		FormatTime(s.Elapsed), s.Moves, s.MatchedPairs, s.TotalPairs)
	if s.HasBest {
		stats += "   Best " + FormatTime(s.Best.Seconds)
	}
	dst.DrawTextCentered(1, stats, core.ColorWhite)

	if !s.Mode.TurnBased() {
		return
	}
	p1 := fmt.Sprintf("%s: %d", s.Mode.PlayerName(Player1), s.Scores[0])
	p2 := fmt.Sprintf("%s: %d", s.Mode.PlayerName(Player2), s.Scores[1])
	turn := fmt.Sprintf("Turn: %s", s.Mode.PlayerName(s.Current))
	dst.DrawTextCentered(2, p1+"   "+p2+"   "+turn, playerColor(s.Current))
}

func playerColor(p Player) core.Color {
	if p == Player2 {
		return core.ColorMagenta
	}
	return core.ColorBrightYellow
}

func renderCard(dst *core.Screen, r core.Rect, c Card, selected bool, labels map[string]string) {
	var (
		border = core.ColorGray
		face   = "?"
		color  = core.ColorGray
	)
	switch {
	case c.IsMatched:
		border, color = core.ColorGreen, core.ColorGreen
		face = cardLabel(c.ImageKey, labels)
	case c.IsFlipped:
		border, color = core.ColorYellow, core.ColorBrightYellow
		face = cardLabel(c.ImageKey, labels)
	}
	if selected {
		border = core.ColorBrightCyan
	}

	dst.DrawBox(r, border)
	x := r.X + (r.W-len([]rune(face)))/2
	dst.DrawTextColored(x, r.Y+1, face, color)
}

func cardLabel(key string, labels map[string]string) string {
	if l, ok := labels[key]; ok && l != "" {
		return l
	}
	if len(key) > 3 {
		return key[:3]
	}
	return key
}

func renderFooter(dst *core.Screen, s Snapshot, y int) {
	switch s.Status {
	case StatusPaused:
		dst.DrawTextCentered(y, "PAUSED - press P to resume", core.ColorYellow)
	case StatusOver:
		dst.DrawTextCentered(y, resultLine(s), core.ColorBrightGreen)
		dst.DrawTextCentered(y+1, "R: play again   B: menu   Q: quit", core.ColorGray)
		return
	default:
		if s.Mode.HasComputer() && s.Current == Player2 {
			dst.DrawTextCentered(y, "Computer is thinking...", core.ColorMagenta)
		}
	}
	dst.DrawTextCentered(y+1, "Arrows: move   Enter: flip   P: pause   R: restart   B: menu", core.ColorGray)
}

func resultLine(s Snapshot) string {
	line := fmt.Sprintf("Finished in %s with %d moves", FormatTime(s.Elapsed), s.Moves)
	if s.Mode.TurnBased() {
		if s.Winner == NoPlayer {
			line = fmt.Sprintf("It's a draw! %d - %d", s.Scores[0], s.Scores[1])
		} else {
			line = fmt.Sprintf("%s won %d - %d", s.Mode.PlayerName(s.Winner), s.Scores[0], s.Scores[1])
		}
	}
	if s.NewBest {
		line += "   NEW BEST!"
	}
	return line
}
