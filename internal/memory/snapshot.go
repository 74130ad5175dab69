package memory

import "time"

// Snapshot is a copy of everything a presentation layer shows.
type Snapshot struct {
	Mode         Mode
	Difficulty   Difficulty
	Status       Status
	Cards        []Card
	Flipped      []int
	MatchedPairs int
	TotalPairs   int
	Moves        int
	Current      Player
	Scores       [2]int
	Elapsed      int
	Clock        time.Duration
	Winner       Player
	Best         BestScore
	HasBest      bool
	NewBest      bool
}

// Snapshot returns the current session state. The result shares nothing
// with the engine.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Mode:         e.mode,
		Difficulty:   e.difficulty,
		Status:       e.status,
		Cards:        append([]Card(nil), e.cards...),
		Flipped:      append([]int(nil), e.flipped...),
		MatchedPairs: e.matched,
		TotalPairs:   e.total,
		Moves:        e.moves,
		Current:      e.current,
		Scores:       e.scores,
		Elapsed:      e.elapsed,
		Clock:        e.sched.Now(),
		NewBest:      e.newBest,
	}
	if e.status == StatusOver {
		s.Winner = e.Winner()
	}
	s.Best, s.HasBest = e.BestScore(e.difficulty)
	return s
}

// Winner returns the leading player, or NoPlayer on a tie. Solo games are
// always won by player 1.
func (e *Engine) Winner() Player {
	if e.mode == ModeSolo {
		return Player1
	}
	switch {
	case e.scores[0] > e.scores[1]:
		return Player1
	case e.scores[1] > e.scores[0]:
		return Player2
	default:
		return NoPlayer
	}
}

// BestScore returns the best known result for a difficulty.
func (e *Engine) BestScore(d Difficulty) (BestScore, bool) {
	b, ok := e.best[d]
	return b, ok
}

// Status returns the lifecycle state.
func (e *Engine) Status() Status { return e.status }

// Mode returns the session mode.
func (e *Engine) Mode() Mode { return e.mode }

// Difficulty returns the current (or last) difficulty.
func (e *Engine) Difficulty() Difficulty { return e.difficulty }

// ComputerTurn reports whether the computer is about to move.
func (e *Engine) ComputerTurn() bool {
	return e.mode.HasComputer() && e.current == Player2 && e.status == StatusActive
}
