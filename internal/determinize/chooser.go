package determinize

import (
	"math/rand"
	"sort"

	"hanabi-toolbox/internal/card"
)

// Chooser defines an interface for selecting a single card from a list of candidates.
// This allows us to swap out random and deterministic sampling strategies.
type Chooser interface {
	Choose(cards []card.Card) card.Card
}

// RandomChooser implements the Chooser interface by picking an element randomly.
// Candidates repeat once per remaining copy, so the pick is weighted by count.
type RandomChooser struct {
	rand *rand.Rand
}

// NewRandomChooser creates a new random chooser.
func NewRandomChooser(rand *rand.Rand) *RandomChooser {
	return &RandomChooser{rand: rand}
}

func (r *RandomChooser) Choose(cards []card.Card) card.Card {
	if len(cards) == 0 {
		return card.Hidden()
	}
	return cards[r.rand.Intn(len(cards))]
}

// DeterministicChooser implements the Chooser interface by always picking the
// lowest card in color-then-rank order. This is used for predictable testing.
// The caller's slice is left in its original order.
type DeterministicChooser struct{}

func (d *DeterministicChooser) Choose(cards []card.Card) card.Card {
	if len(cards) == 0 {
		return card.Hidden()
	}
	sorted := make([]card.Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Color() != sorted[j].Color() {
			return sorted[i].Color() < sorted[j].Color()
		}
		return sorted[i].Rank() < sorted[j].Rank()
	})
	return sorted[0]
}
