package hand

import (
	"testing"

	"hanabi-toolbox/internal/card"
	"hanabi-toolbox/internal/knowledge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturnAndInsert(t *testing.T) {
	// GIVEN a hand whose middle card has been told it is rank 3
	h := newTestHand(t, 5, 5, card.New(0, 0), card.New(1, 2), card.New(2, 4))
	_, err := h.RevealRank(2)
	require.NoError(t, err)

	// WHEN the middle card is returned
	returned, err := h.ReturnFromHand(1)
	require.NoError(t, err)

	// THEN the slot is vacant, its knowledge kept, and aligned operations refuse
	assert.Equal(t, card.New(1, 2), returned)
	assert.True(t, h.HasVacancy())
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 2, h.Knowledge(1).Rank())
	assert.Contains(t, h.String(), "\n-- || X3|RYGWB3\n")

	t.Run("aligned operations refuse while a slot is vacant", func(t *testing.T) {
		require.ErrorIs(t, h.AddCard(card.New(0, 1), knowledge.New(5, 5)), ErrVacantSlot)
		require.ErrorIs(t, h.RemoveFromHand(0, nil), ErrVacantSlot)
		_, err := h.RevealColor(0)
		require.ErrorIs(t, err, ErrVacantSlot)
		_, err = h.ReturnFromHand(1)
		require.ErrorIs(t, err, ErrVacantSlot)
	})

	t.Run("a card contradicting the kept knowledge is refused", func(t *testing.T) {
		require.ErrorIs(t, h.InsertCard(card.New(3, 0), 1), ErrImplausibleCard)
		require.ErrorIs(t, h.InsertCard(card.Hidden(), 1), ErrInvalidCard)
		require.ErrorIs(t, h.InsertCard(card.New(3, 2), 0), ErrSlotOccupied)
		assert.True(t, h.HasVacancy())
	})

	t.Run("a consistent card fills the slot", func(t *testing.T) {
		require.NoError(t, h.InsertCard(card.New(3, 2), 1))
		assert.False(t, h.HasVacancy())
		assert.Equal(t, card.New(3, 2), h.Card(1))
		assert.Equal(t, 2, h.Knowledge(1).Rank())
	})
}

func TestRemoveKnowledge(t *testing.T) {
	h := newTestHand(t, 5, 5, card.New(0, 0), card.New(1, 1))
	_, err := h.RevealColor(0)
	require.NoError(t, err)

	t.Run("it resets the slot in place", func(t *testing.T) {
		require.NoError(t, h.RemoveKnowledge(0, knowledge.New(5, 5)))
		assert.Equal(t, knowledge.New(5, 5), h.Knowledge(0))
		assert.Equal(t, card.New(0, 0), h.Card(0))
		assert.False(t, h.Knowledge(1).ColorPlausible(0))
	})

	t.Run("it lets a vacant slot take any card", func(t *testing.T) {
		_, err := h.ReturnFromHand(1)
		require.NoError(t, err)
		require.ErrorIs(t, h.InsertCard(card.New(0, 3), 1), ErrImplausibleCard)
		require.NoError(t, h.RemoveKnowledge(1, knowledge.New(5, 5)))
		require.NoError(t, h.InsertCard(card.New(0, 3), 1))
	})

	t.Run("it rejects out-of-range indices", func(t *testing.T) {
		require.ErrorIs(t, h.RemoveKnowledge(2, knowledge.New(5, 5)), ErrIndexOutOfRange)
	})
}

func TestReplaceCard(t *testing.T) {
	h := newTestHand(t, 5, 5, card.New(0, 0), card.New(1, 1))
	_, err := h.RevealColor(1)
	require.NoError(t, err)

	t.Run("keeping knowledge requires a consistent card", func(t *testing.T) {
		_, err := h.ReplaceCard(1, card.New(2, 1), true)
		require.ErrorIs(t, err, ErrImplausibleCard)
		assert.Equal(t, card.New(1, 1), h.Card(1))
		assert.False(t, h.HasVacancy())
	})

	t.Run("keeping knowledge swaps only the card", func(t *testing.T) {
		old, err := h.ReplaceCard(1, card.New(1, 4), true)
		require.NoError(t, err)
		assert.Equal(t, card.New(1, 1), old)
		assert.Equal(t, card.New(1, 4), h.Card(1))
		assert.Equal(t, 1, h.Knowledge(1).Color())
	})

	t.Run("dropping knowledge resets the slot", func(t *testing.T) {
		old, err := h.ReplaceCard(1, card.New(2, 0), false)
		require.NoError(t, err)
		assert.Equal(t, card.New(1, 4), old)
		assert.False(t, h.Knowledge(1).ColorHinted())
	})

	t.Run("cards outside the axis ranges are refused", func(t *testing.T) {
		_, err := h.ReplaceCard(0, card.New(7, 0), false)
		require.ErrorIs(t, err, ErrImplausibleCard)
	})
}
