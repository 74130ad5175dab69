package memory

// opponentMemory is what the computer has seen this session: for every image
// key, the distinct card ids seen showing it, in sighting order.
type opponentMemory struct {
	seen  map[string][]int
	order []string // keys by first sighting
}

func newOpponentMemory() *opponentMemory {
	return &opponentMemory{seen: make(map[string][]int)}
}

// see records that card id shows key. Seeing the same card twice is a no-op.
func (m *opponentMemory) see(key string, id int) {
	ids, ok := m.seen[key]
	if !ok {
		m.order = append(m.order, key)
	}
	for _, known := range ids {
		if known == id {
			return
		}
	}
	m.seen[key] = append(ids, id)
}

// forget drops a key once its pair is matched.
func (m *opponentMemory) forget(key string) {
	delete(m.seen, key)
}

// recall returns the first remembered pair whose cards are both still
// unmatched, in first-sighting order of their key.
func (m *opponentMemory) recall(unmatched func(id int) bool) (int, int, bool) {
	for _, key := range m.order {
		ids, ok := m.seen[key]
		if !ok {
			continue
		}
		var pair []int
		for _, id := range ids {
			if unmatched(id) {
				pair = append(pair, id)
				if len(pair) == 2 {
					return pair[0], pair[1], true
				}
			}
		}
	}
	return 0, 0, false
}

// size returns the number of keys currently remembered.
func (m *opponentMemory) size() int {
	return len(m.seen)
}

// computerMove picks the two cards the computer flips next: a remembered pair
// when there is one, otherwise two distinct unmatched cards at random.
func (e *Engine) computerMove() (int, int, bool) {
	if a, b, ok := e.memory.recall(e.isUnmatched); ok {
		return a, b, true
	}

	var open []int
	for _, c := range e.cards {
		if !c.IsMatched {
			open = append(open, c.ID)
		}
	}
	if len(open) < 2 {
		return 0, 0, false
	}

	i := e.rng.Intn(len(open))
	j := e.rng.Intn(len(open) - 1)
	if j >= i {
		j++
	}
	return open[i], open[j], true
}

// scheduleComputer queues the computer's two flips when the turn is its own.
func (e *Engine) scheduleComputer() {
	if !e.mode.HasComputer() || e.current != Player2 || e.status != StatusActive {
		return
	}
	first, second, ok := e.computerMove()
	if !ok {
		return
	}

	e.logger.Debug("computer move", "first", first, "second", second, "remembered", e.memory.size())
	gen := e.generation
	e.sched.After(e.computerDelay, gen, "computer-first", func() {
		e.flip(first)
		e.sched.After(e.computerDelay, gen, "computer-second", func() {
			e.flip(second)
		})
	})
}
