package memory

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/feedback"
)

// Status is the session lifecycle state.
type Status int

const (
	StatusNotStarted Status = iota
	StatusActive
	StatusPaused
	StatusOver
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not-started"
	case StatusActive:
		return "active"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Options configures an Engine. Zero values pick sensible defaults.
type Options struct {
	Mode       Mode             // Default: solo
	Difficulty Difficulty       // Used by ResetGame before the first StartGame
	Seed       int64            // 0 means seeded from the wall clock
	Keeper     Scorekeeper      // Default: results are kept in memory only
	Sink       feedback.Sink    // Default: feedback is discarded
	Logger     *log.Logger      // Default: discard
	Now        func() time.Time // Dates score entries; default time.Now
}

// Engine runs one game session at a time.
type Engine struct {
	mode          Mode
	deck          []string
	matchDelay    time.Duration
	computerDelay time.Duration

	rng    *rand.Rand
	keeper Scorekeeper
	sink   feedback.Sink
	logger *log.Logger
	now    func() time.Time

	status     Status
	difficulty Difficulty
	cards      []Card
	index      map[int]int // card id -> position in cards
	flipped    []int
	matched    int
	total      int
	moves      int
	current    Player
	scores     [2]int
	elapsed    int
	memory     *opponentMemory

	sched      scheduler
	generation uint64

	best    map[Difficulty]BestScore
	newBest bool
}

// New creates an engine for the given configuration. Best scores are read
// from the keeper once; a failed read leaves that difficulty without a best.
func New(cfg config.MemoryConfig, opts Options) *Engine {
	if opts.Mode == "" {
		opts.Mode = ModeSolo
	}
	if !opts.Difficulty.Valid() {
		opts.Difficulty = DifficultyMedium
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Keeper == nil {
		opts.Keeper = nopKeeper{}
	}
	if opts.Sink == nil {
		opts.Sink = feedback.Discard
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	e := &Engine{
		mode:          opts.Mode,
		deck:          cfg.Keys(),
		matchDelay:    cfg.Timing.MatchDelay(),
		computerDelay: cfg.Timing.ComputerDelay(),
		rng:           rand.New(rand.NewSource(opts.Seed)),
		keeper:        opts.Keeper,
		sink:          opts.Sink,
		logger:        opts.Logger,
		now:           opts.Now,
		difficulty:    opts.Difficulty,
		current:       Player1,
		memory:        newOpponentMemory(),
		best:          make(map[Difficulty]BestScore),
	}

	for _, d := range Difficulties() {
		b, ok, err := e.keeper.BestScore(d)
		if err != nil {
			e.logger.Warn("cannot load best score", "difficulty", d, "err", err)
			continue
		}
		if ok {
			e.best[d] = b
		}
	}
	return e
}

// StartGame deals a new board and starts the session. Any session in
// progress is discarded along with everything it had scheduled.
func (e *Engine) StartGame(d Difficulty) error {
	if !d.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownDifficulty, d)
	}

	cards, err := dealCards(e.rng, e.deck, d.PairCount())
	if err != nil {
		return err
	}

	e.sched.CancelAll()
	e.generation++

	e.difficulty = d
	e.cards = cards
	e.index = make(map[int]int, len(cards))
	for i, c := range cards {
		e.index[c.ID] = i
	}
	e.flipped = e.flipped[:0]
	e.matched = 0
	e.total = d.PairCount()
	e.moves = 0
	e.current = Player1
	e.scores = [2]int{}
	e.elapsed = 0
	e.memory = newOpponentMemory()
	e.newBest = false
	e.status = StatusActive

	e.armTimer()
	e.logger.Info("game started", "mode", e.mode, "difficulty", d, "pairs", e.total)
	return nil
}

// ResetGame re-deals and restarts at the current difficulty.
func (e *Engine) ResetGame() {
	if err := e.StartGame(e.difficulty); err != nil {
		e.logger.Error("cannot reset game", "difficulty", e.difficulty, "err", err)
	}
}

// Abandon drops the session without recording anything.
func (e *Engine) Abandon() {
	if e.status == StatusNotStarted {
		return
	}
	e.sched.CancelAll()
	e.generation++
	e.flipped = e.flipped[:0]
	e.status = StatusNotStarted
	e.logger.Info("game abandoned", "mode", e.mode, "difficulty", e.difficulty, "elapsed", e.elapsed)
}

// TogglePause pauses an active session or resumes a paused one.
func (e *Engine) TogglePause() {
	switch e.status {
	case StatusActive:
		e.status = StatusPaused
	case StatusPaused:
		e.status = StatusActive
	}
}

// Advance moves the session clock forward by dt and runs everything that
// falls due. The clock only moves while the session is active.
func (e *Engine) Advance(dt time.Duration) {
	if e.status != StatusActive || dt <= 0 {
		return
	}
	e.sched.Advance(dt, e.generation)
}

// FlipCard turns a card face up. It does nothing when the move is not
// allowed, including while the computer has the turn.
func (e *Engine) FlipCard(id int) {
	if e.mode.HasComputer() && e.current == Player2 {
		return
	}
	e.flip(id)
}

// flip is shared by the human and computer players.
func (e *Engine) flip(id int) bool {
	if e.status != StatusActive || len(e.flipped) >= 2 {
		return false
	}
	c := e.card(id)
	if c == nil || c.IsFlipped || c.IsMatched {
		return false
	}

	c.IsFlipped = true
	e.flipped = append(e.flipped, id)
	e.memory.see(c.ImageKey, id)
	e.emit(feedback.EventFlip)

	if len(e.flipped) == 2 {
		e.moves++
		e.sched.After(e.matchDelay, e.generation, "evaluate", e.evaluate)
	}
	return true
}

// evaluate resolves the two face-up cards.
func (e *Engine) evaluate() {
	if len(e.flipped) != 2 {
		return
	}
	a, b := e.card(e.flipped[0]), e.card(e.flipped[1])
	e.flipped = e.flipped[:0]
	a.IsFlipped = false
	b.IsFlipped = false

	if a.ImageKey == b.ImageKey {
		a.IsMatched = true
		b.IsMatched = true
		e.scores[e.current.index()]++
		e.matched++
		e.memory.forget(a.ImageKey)
		e.emit(feedback.EventMatch)

		if e.matched == e.total {
			e.finish()
			return
		}
	} else {
		e.emit(feedback.EventNoMatch)
		if e.mode.TurnBased() {
			e.current = e.current.Other()
		}
	}

	e.scheduleComputer()
}

// finish ends the session and records the result.
func (e *Engine) finish() {
	e.status = StatusOver
	e.sched.CancelAll()
	e.emit(feedback.EventGameOver)

	e.logger.Info("game over",
		"mode", e.mode,
		"difficulty", e.difficulty,
		"seconds", e.elapsed,
		"moves", e.moves,
		"winner", e.mode.PlayerName(e.Winner()),
	)

	e.submitBest(BestScore{Seconds: e.elapsed, Moves: e.moves})

	if e.mode.SinglePlayer() {
		entry := ScoreEntry{
			ID:           uuid.NewString(),
			Mode:         e.mode,
			Difficulty:   e.difficulty,
			Moves:        e.moves,
			Seconds:      e.elapsed,
			Player1Score: e.scores[0],
			Player2Score: e.scores[1],
			Date:         e.now(),
		}
		if err := e.keeper.AppendScoreEntry(entry); err != nil {
			e.logger.Warn("cannot save score entry", "id", entry.ID, "err", err)
		}
	}
}

// submitBest keeps candidate if it beats the stored best. The in-memory
// best is updated even when persisting it fails.
func (e *Engine) submitBest(candidate BestScore) {
	prior, ok := e.best[e.difficulty]
	if stored, found, err := e.keeper.BestScore(e.difficulty); err != nil {
		e.logger.Warn("cannot read best score", "difficulty", e.difficulty, "err", err)
	} else if found {
		prior, ok = stored, true
		e.best[e.difficulty] = stored
	}

	if ok && candidate.Seconds >= prior.Seconds {
		return
	}

	e.best[e.difficulty] = candidate
	e.newBest = true
	if err := e.keeper.SetBestScore(e.difficulty, candidate); err != nil {
		e.logger.Warn("cannot save best score", "difficulty", e.difficulty, "err", err)
	}
}

// armTimer schedules the next one-second tick.
func (e *Engine) armTimer() {
	e.sched.After(time.Second, e.generation, "timer", e.tick)
}

func (e *Engine) tick() {
	if e.status != StatusActive {
		return
	}
	e.elapsed++
	e.armTimer()
}

// emit hands evt to the sink. A misbehaving sink cannot hurt the session.
func (e *Engine) emit(evt feedback.Event) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("feedback sink panicked", "event", evt, "panic", r)
		}
	}()
	e.sink.Emit(evt)
}

func (e *Engine) card(id int) *Card {
	i, ok := e.index[id]
	if !ok {
		return nil
	}
	return &e.cards[i]
}

func (e *Engine) isUnmatched(id int) bool {
	c := e.card(id)
	return c != nil && !c.IsMatched
}
