package determinize

import (
	"errors"
	"fmt"

	"hanabi-toolbox/internal/card"
	"hanabi-toolbox/internal/config"
	"hanabi-toolbox/internal/knowledge"
)

var ErrNotInPool = errors.New("card has no copies left in the pool")

// Pool counts the copies of each card that are still unaccounted for.
type Pool struct {
	numColors int
	numRanks  int
	counts    []int
	total     int
}

// NewPool returns a pool holding the full deck described by cfg.
func NewPool(cfg *config.GameConfig) *Pool {
	p := &Pool{
		numColors: cfg.NumColors(),
		numRanks:  cfg.NumRanks,
		counts:    make([]int, cfg.NumColors()*cfg.NumRanks),
	}
	for color := 0; color < p.numColors; color++ {
		for rank, n := range cfg.RankCounts {
			p.counts[p.index(color, rank)] = n
			p.total += n
		}
	}
	return p
}

func (p *Pool) index(color, rank int) int { return color*p.numRanks + rank }

func (p *Pool) contains(c card.Card) bool {
	return c.IsValid() && c.Color() < p.numColors && c.Rank() < p.numRanks
}

// Size is the number of copies left across all cards.
func (p *Pool) Size() int { return p.total }

// Count is the number of copies of c left.
func (p *Pool) Count(c card.Card) int {
	if !p.contains(c) {
		return 0
	}
	return p.counts[p.index(c.Color(), c.Rank())]
}

// Remove takes one copy of c out of the pool.
func (p *Pool) Remove(c card.Card) error {
	if p.Count(c) == 0 {
		return fmt.Errorf("%w: %s", ErrNotInPool, c)
	}
	p.counts[p.index(c.Color(), c.Rank())]--
	p.total--
	return nil
}

// Add puts one copy of c back.
func (p *Pool) Add(c card.Card) {
	if !p.contains(c) {
		return
	}
	p.counts[p.index(c.Color(), c.Rank())]++
	p.total++
}

// RemoveFireworks removes every card already played onto the fireworks.
func (p *Pool) RemoveFireworks(fireworks []int) error {
	for color, height := range fireworks {
		for rank := 0; rank < height; rank++ {
			if err := p.Remove(card.New(color, rank)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Candidates lists the remaining cards consistent with kn, one entry per
// copy, in color-then-rank order.
func (p *Pool) Candidates(kn knowledge.CardKnowledge) []card.Card {
	var out []card.Card
	for color := 0; color < p.numColors; color++ {
		for rank := 0; rank < p.numRanks; rank++ {
			c := card.New(color, rank)
			if !kn.IsCardPlausible(c) {
				continue
			}
			for n := 0; n < p.counts[p.index(color, rank)]; n++ {
				out = append(out, c)
			}
		}
	}
	return out
}
