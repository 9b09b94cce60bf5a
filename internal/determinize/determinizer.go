// Package determinize samples concrete identities for the cards a player
// cannot see, consistent with everything that player has observed.
package determinize

import (
	"errors"
	"fmt"
	"io"

	"hanabi-toolbox/internal/card"
	"hanabi-toolbox/internal/config"
	"hanabi-toolbox/internal/game"
	"hanabi-toolbox/internal/hand"

	"github.com/sirupsen/logrus"
)

// maxAttempts bounds how many times Sample restarts after painting itself
// into a corner.
const maxAttempts = 100

var (
	ErrInconsistent = errors.New("observation accounts for more copies than the deck holds")
	ErrNoCandidates = errors.New("no card is consistent with the slot's knowledge")
)

// Determinizer turns an observation into a plausible full hand for its viewer.
type Determinizer struct {
	cfg     *config.GameConfig
	chooser Chooser
	log     logrus.FieldLogger
}

// New creates a Determinizer. A nil logger discards output.
func New(cfg *config.GameConfig, chooser Chooser, log logrus.FieldLogger) *Determinizer {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Determinizer{cfg: cfg, chooser: chooser, log: log}
}

// Pool returns the cards the viewer of obs cannot account for: the full deck
// minus discards, fireworks and every card visible in another hand.
func (d *Determinizer) Pool(obs *game.Observation) (*Pool, error) {
	p := NewPool(d.cfg)
	for _, c := range obs.Discard {
		if err := p.Remove(c); err != nil {
			return nil, fmt.Errorf("%w: discard pile: %w", ErrInconsistent, err)
		}
	}
	if err := p.RemoveFireworks(obs.Fireworks); err != nil {
		return nil, fmt.Errorf("%w: fireworks: %w", ErrInconsistent, err)
	}
	for i, h := range obs.Hands {
		for _, c := range h.Cards() {
			if !c.IsValid() {
				continue
			}
			if err := p.Remove(c); err != nil {
				return nil, fmt.Errorf("%w: hand of %s: %w", ErrInconsistent, obs.Players[i], err)
			}
		}
	}
	return p, nil
}

// ValidCards lists every card that could sit at index of the viewer's own
// hand, one entry per unseen copy.
func (d *Determinizer) ValidCards(obs *game.Observation, index int) ([]card.Card, error) {
	own := obs.Own()
	if index < 0 || index >= own.Len() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", hand.ErrIndexOutOfRange, index, own.Len())
	}
	p, err := d.Pool(obs)
	if err != nil {
		return nil, err
	}
	return p.Candidates(own.Knowledge(index)), nil
}

// Sample fills the viewer's own hand with concrete cards drawn from the
// unseen pool, each consistent with its slot's knowledge and no card used
// more often than copies remain. The returned pool no longer holds the
// sampled cards, ready for Resample. Dead ends are retried only with a
// random chooser; a DeterministicChooser would repeat the same path.
func (d *Determinizer) Sample(obs *game.Observation) (*hand.Hand, *Pool, error) {
	attempts := maxAttempts
	if _, ok := d.chooser.(*DeterministicChooser); ok {
		attempts = 1
	}
	for attempt := 1; attempt <= attempts; attempt++ {
		p, err := d.Pool(obs)
		if err != nil {
			return nil, nil, err
		}
		h := hand.NewView(obs.Own(), false, false)
		err = d.fill(h, p)
		if err == nil {
			return h, p, nil
		}
		if !errors.Is(err, ErrNoCandidates) {
			return nil, nil, err
		}
		d.log.WithFields(logrus.Fields{"viewer": obs.Viewer, "attempt": attempt}).Debug("Sample hit a dead end.")
	}
	return nil, nil, fmt.Errorf("%w: gave up after %d attempts", ErrNoCandidates, attempts)
}

func (d *Determinizer) fill(h *hand.Hand, p *Pool) error {
	for i := 0; i < h.Len(); i++ {
		cands := p.Candidates(h.Knowledge(i))
		if len(cands) == 0 {
			return fmt.Errorf("%w: slot %d", ErrNoCandidates, i)
		}
		c := d.chooser.Choose(cands)
		if err := p.Remove(c); err != nil {
			return err
		}
		if _, err := h.ReplaceCard(i, c, true); err != nil {
			return err
		}
	}
	return nil
}

// Resample swaps the card at index of a sampled hand for another candidate
// from p. The old card goes back into p first, so it may be drawn again.
func (d *Determinizer) Resample(h *hand.Hand, index int, p *Pool) (card.Card, error) {
	old, err := h.ReturnFromHand(index)
	if err != nil {
		return card.Hidden(), err
	}
	p.Add(old)

	cands := p.Candidates(h.Knowledge(index))
	if len(cands) == 0 {
		// Put things back the way they were.
		_ = p.Remove(old)
		if insertErr := h.InsertCard(old, index); insertErr != nil {
			return card.Hidden(), insertErr
		}
		return card.Hidden(), fmt.Errorf("%w: slot %d", ErrNoCandidates, index)
	}
	c := d.chooser.Choose(cands)
	if err := p.Remove(c); err != nil {
		return card.Hidden(), err
	}
	if err := h.InsertCard(c, index); err != nil {
		return card.Hidden(), err
	}
	d.log.WithFields(logrus.Fields{"index": index, "old": old.Format(d.cfg), "new": c.Format(d.cfg)}).Debug("Resampled card.")
	return c, nil
}
