package hand

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"hanabi-toolbox/internal/card"
	"hanabi-toolbox/internal/knowledge"

	"github.com/sirupsen/logrus"
)

// MaxSize is the largest hand a reveal mask can describe.
const MaxSize = 8

var (
	ErrInvalidCard       = errors.New("card identity is not valid")
	ErrIndexOutOfRange   = errors.New("card index out of range")
	ErrHandTooLarge      = errors.New("hand holds more cards than a hint mask can describe")
	ErrHintOutOfRange    = errors.New("hinted value out of range")
	ErrVacantSlot        = errors.New("hand has a slot whose card was returned")
	ErrSlotOccupied      = errors.New("slot still holds a card")
	ErrImplausibleCard   = errors.New("card contradicts the knowledge kept for its slot")
	ErrContradictoryHint = errors.New("hint contradicts existing knowledge")
)

// slot binds a card to what its holder knows about it. A vacant slot has had
// its card returned and is waiting for InsertCard.
type slot struct {
	card      card.Card
	knowledge knowledge.CardKnowledge
	vacant    bool
}

// Hand is one player's ordered cards together with the holder's knowledge of
// each. Position is the only link between a card and its knowledge, so every
// mutation moves both at once.
type Hand struct {
	slots []slot
	log   logrus.FieldLogger
}

// New returns an empty hand. A nil logger discards output.
func New(log logrus.FieldLogger) *Hand {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Hand{log: log}
}

// NewView copies h for a particular observer. hideCards replaces every
// identity with card.Hidden(); hideKnowledge replaces every slot's knowledge
// with unhinted knowledge of the same shape. Hand length is preserved.
func NewView(h *Hand, hideCards, hideKnowledge bool) *Hand {
	view := &Hand{slots: make([]slot, len(h.slots)), log: h.log}
	copy(view.slots, h.slots)
	for i := range view.slots {
		if hideCards {
			view.slots[i].card = card.Hidden()
		}
		if hideKnowledge {
			view.slots[i].knowledge = view.slots[i].knowledge.Fresh()
		}
	}
	return view
}

func (h *Hand) Len() int { return len(h.slots) }

// Card returns the identity at index; it is card.Hidden() for hidden or vacant slots.
func (h *Hand) Card(index int) card.Card { return h.slots[index].card }

func (h *Hand) Knowledge(index int) knowledge.CardKnowledge { return h.slots[index].knowledge }

// Cards returns the identities in hand order.
func (h *Hand) Cards() []card.Card {
	out := make([]card.Card, len(h.slots))
	for i, s := range h.slots {
		out[i] = s.card
	}
	return out
}

// AllKnowledge returns the knowledge of every slot in hand order.
func (h *Hand) AllKnowledge() []knowledge.CardKnowledge {
	out := make([]knowledge.CardKnowledge, len(h.slots))
	for i, s := range h.slots {
		out[i] = s.knowledge
	}
	return out
}

// HasVacancy reports whether a returned card has not been replaced yet.
func (h *Hand) HasVacancy() bool {
	for _, s := range h.slots {
		if s.vacant {
			return true
		}
	}
	return false
}

// AddCard appends a dealt card with its initial knowledge.
func (h *Hand) AddCard(c card.Card, initial knowledge.CardKnowledge) error {
	if !c.IsValid() {
		return ErrInvalidCard
	}
	if h.HasVacancy() {
		return ErrVacantSlot
	}
	h.slots = append(h.slots, slot{card: c, knowledge: initial})
	return nil
}

// AddUnknownCard appends a card whose identity the owner of this hand cannot
// see, as when tracking your own hand.
func (h *Hand) AddUnknownCard(initial knowledge.CardKnowledge) error {
	if h.HasVacancy() {
		return ErrVacantSlot
	}
	h.slots = append(h.slots, slot{card: card.Hidden(), knowledge: initial})
	return nil
}

// RemoveFromHand takes the card at index out of the hand along with its
// knowledge. If discard is non-nil the card is appended to it first.
func (h *Hand) RemoveFromHand(index int, discard *[]card.Card) error {
	if err := h.checkIndex(index); err != nil {
		return err
	}
	if h.HasVacancy() {
		return ErrVacantSlot
	}
	if discard != nil {
		*discard = append(*discard, h.slots[index].card)
	}
	h.slots = append(h.slots[:index], h.slots[index+1:]...)
	return nil
}

// ReturnFromHand detaches the card at index and returns it, keeping the
// slot's knowledge. The slot stays vacant until InsertCard fills it; until
// then AddCard, RemoveFromHand and the reveal operations refuse to run.
func (h *Hand) ReturnFromHand(index int) (card.Card, error) {
	if err := h.checkIndex(index); err != nil {
		return card.Hidden(), err
	}
	s := &h.slots[index]
	if s.vacant {
		return card.Hidden(), fmt.Errorf("%w: slot %d", ErrVacantSlot, index)
	}
	c := s.card
	s.card = card.Hidden()
	s.vacant = true
	return c, nil
}

// InsertCard places c into the vacant slot at index, under the knowledge the
// slot kept. c must be consistent with that knowledge.
func (h *Hand) InsertCard(c card.Card, index int) error {
	if !c.IsValid() {
		return ErrInvalidCard
	}
	if err := h.checkIndex(index); err != nil {
		return err
	}
	s := &h.slots[index]
	if !s.vacant {
		return fmt.Errorf("%w: slot %d", ErrSlotOccupied, index)
	}
	if !s.knowledge.IsCardPlausible(c) {
		return fmt.Errorf("%w: %s into slot %d (%s)", ErrImplausibleCard, c, index, s.knowledge)
	}
	s.card = c
	s.vacant = false
	return nil
}

// RemoveKnowledge resets the knowledge at index to initial, leaving the card alone.
func (h *Hand) RemoveKnowledge(index int, initial knowledge.CardKnowledge) error {
	if err := h.checkIndex(index); err != nil {
		return err
	}
	h.slots[index].knowledge = initial
	return nil
}

// ReplaceCard swaps the card at index for c in one step and returns the old
// card. With keepKnowledge the slot's knowledge survives and c must agree
// with it; otherwise the slot's knowledge is reset.
func (h *Hand) ReplaceCard(index int, c card.Card, keepKnowledge bool) (card.Card, error) {
	if !c.IsValid() {
		return card.Hidden(), ErrInvalidCard
	}
	if err := h.checkIndex(index); err != nil {
		return card.Hidden(), err
	}
	s := &h.slots[index]
	if s.vacant {
		return card.Hidden(), fmt.Errorf("%w: slot %d", ErrVacantSlot, index)
	}
	kn := s.knowledge
	if !keepKnowledge {
		kn = kn.Fresh()
	}
	if !kn.IsCardPlausible(c) {
		return card.Hidden(), fmt.Errorf("%w: %s into slot %d (%s)", ErrImplausibleCard, c, index, kn)
	}
	old := s.card
	s.card = c
	s.knowledge = kn
	return old, nil
}

func (h *Hand) checkIndex(index int) error {
	if index < 0 || index >= len(h.slots) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(h.slots))
	}
	return nil
}

func (h *Hand) String() string { return h.Format(card.DefaultSymbols) }

// Format renders one "<card> || <knowledge>" line per slot. Vacant slots
// show "--" in place of the card.
func (h *Hand) Format(sym card.Symbols) string {
	var b strings.Builder
	for _, s := range h.slots {
		if s.vacant {
			b.WriteString("--")
		} else {
			b.WriteString(s.card.Format(sym))
		}
		b.WriteString(" || ")
		b.WriteString(s.knowledge.Format(sym))
		b.WriteByte('\n')
	}
	return b.String()
}
