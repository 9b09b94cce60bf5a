package hand

import (
	"fmt"

	"hanabi-toolbox/internal/card"
	"hanabi-toolbox/internal/knowledge"

	"github.com/sirupsen/logrus"
)

// Axis selects the card attribute a hint talks about.
type Axis int

const (
	AxisColor Axis = iota
	AxisRank
)

func (a Axis) String() string {
	return []string{"color", "rank"}[a]
}

func (a Axis) of(c card.Card) int {
	if a == AxisColor {
		return c.Color()
	}
	return c.Rank()
}

func (a Axis) knowledge(ck knowledge.CardKnowledge) knowledge.ValueKnowledge {
	if a == AxisColor {
		return ck.ColorAxis()
	}
	return ck.RankAxis()
}

func (a Axis) apply(ck *knowledge.CardKnowledge, value int, matches bool) {
	switch {
	case a == AxisColor && matches:
		ck.ApplyIsColorHint(value)
	case a == AxisColor:
		ck.ApplyIsNotColorHint(value)
	case matches:
		ck.ApplyIsRankHint(value)
	default:
		ck.ApplyIsNotRankHint(value)
	}
}

// RevealColor tells the holder which cards are of the given color. Every
// matching card gets a positive hint and every other card a negative one.
// Bit i of the result is set when card i matches and its color had not
// already been hinted.
func (h *Hand) RevealColor(color int) (uint8, error) { return h.Reveal(AxisColor, color) }

// RevealRank is RevealColor for ranks.
func (h *Hand) RevealRank(rank int) (uint8, error) { return h.Reveal(AxisRank, rank) }

// Reveal applies a hint about axis using the true identities in the hand.
func (h *Hand) Reveal(axis Axis, value int) (uint8, error) {
	if err := h.checkHint(axis, value); err != nil {
		return 0, err
	}
	var matches uint8
	for i, s := range h.slots {
		if axis.of(s.card) == value {
			matches |= 1 << i
		}
	}
	return h.applyMask(axis, value, matches)
}

// ApplyColorMask applies a color hint the holder received, described by the
// positions it touched. Use it when the hand's identities are hidden.
func (h *Hand) ApplyColorMask(color int, mask uint8) (uint8, error) {
	return h.ApplyMask(AxisColor, color, mask)
}

// ApplyRankMask is ApplyColorMask for ranks.
func (h *Hand) ApplyRankMask(rank int, mask uint8) (uint8, error) {
	return h.ApplyMask(AxisRank, rank, mask)
}

// ApplyMask applies a received hint about axis to the positions in mask and
// a negative hint to every other position. The result has the same meaning
// as Reveal's.
func (h *Hand) ApplyMask(axis Axis, value int, mask uint8) (uint8, error) {
	if err := h.checkHint(axis, value); err != nil {
		return 0, err
	}
	if len(h.slots) < MaxSize && mask>>len(h.slots) != 0 {
		return 0, fmt.Errorf("%w: mask %08b for %d cards", ErrIndexOutOfRange, mask, len(h.slots))
	}
	return h.applyMask(axis, value, mask)
}

func (h *Hand) checkHint(axis Axis, value int) error {
	if h.HasVacancy() {
		return ErrVacantSlot
	}
	if len(h.slots) > MaxSize {
		return fmt.Errorf("%w: %d cards", ErrHandTooLarge, len(h.slots))
	}
	for i, s := range h.slots {
		if size := axis.knowledge(s.knowledge).Range(); value < 0 || value >= size {
			return fmt.Errorf("%w: %s %d at slot %d with range %d", ErrHintOutOfRange, axis, value, i, size)
		}
	}
	return nil
}

// applyMask validates the whole hint before touching any slot, so a hint
// that contradicts existing knowledge leaves the hand unchanged.
func (h *Hand) applyMask(axis Axis, value int, matches uint8) (uint8, error) {
	for i, s := range h.slots {
		vk := axis.knowledge(s.knowledge)
		resolved, hinted := vk.Value()
		hit := matches&(1<<i) != 0
		if hit && ((hinted && resolved != value) || !vk.IsPlausible(value)) {
			return 0, fmt.Errorf("%w: slot %d cannot be %s %d (%s)", ErrContradictoryHint, i, axis, value, s.knowledge)
		}
		if !hit && hinted && resolved == value {
			return 0, fmt.Errorf("%w: slot %d is known to be %s %d", ErrContradictoryHint, i, axis, value)
		}
	}

	var newly uint8
	for i := range h.slots {
		s := &h.slots[i]
		hit := matches&(1<<i) != 0
		if hit && !axis.knowledge(s.knowledge).Hinted() {
			newly |= 1 << i
		}
		axis.apply(&s.knowledge, value, hit)
	}

	h.log.WithFields(logrus.Fields{
		"axis":  axis.String(),
		"value": value,
		"mask":  fmt.Sprintf("%08b", newly),
	}).Debug("Applied hint to hand.")
	return newly, nil
}
