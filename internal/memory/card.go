package memory

import (
	"fmt"
	"math/rand"
)

// Card is one position on the board.
type Card struct {
	ID        int    // Unique within a session
	ImageKey  string // Shared by exactly two cards
	IsFlipped bool   // Face up and not yet resolved
	IsMatched bool   // Pair found; permanent for the session
}

// dealCards picks pairs distinct keys uniformly from deck, creates two cards
// per key and shuffles them. IDs are assigned before the shuffle so they say
// nothing about position.
func dealCards(rng *rand.Rand, deck []string, pairs int) ([]Card, error) {
	if len(deck) < pairs {
		return nil, fmt.Errorf("memory: deck has %d faces, need %d", len(deck), pairs)
	}

	keys := make([]string, len(deck))
	copy(keys, deck)
	rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	keys = keys[:pairs]

	cards := make([]Card, 0, pairs*2)
	for i, key := range keys {
		cards = append(cards,
			Card{ID: i * 2, ImageKey: key},
			Card{ID: i*2 + 1, ImageKey: key},
		)
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards, nil
}
