package hand

import (
	"testing"

	"hanabi-toolbox/internal/card"
	"hanabi-toolbox/internal/knowledge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHand deals the given cards into a hand with unhinted knowledge.
func newTestHand(t *testing.T, numColors, numRanks int, cards ...card.Card) *Hand {
	t.Helper()
	h := New(nil)
	for _, c := range cards {
		require.NoError(t, h.AddCard(c, knowledge.New(numColors, numRanks)))
	}
	return h
}

func TestAddCard(t *testing.T) {
	h := New(nil)

	t.Run("it appends valid cards in order", func(t *testing.T) {
		require.NoError(t, h.AddCard(card.New(0, 0), knowledge.New(5, 5)))
		require.NoError(t, h.AddCard(card.New(1, 3), knowledge.New(5, 5)))
		assert.Equal(t, 2, h.Len())
		assert.Equal(t, []card.Card{card.New(0, 0), card.New(1, 3)}, h.Cards())
		assert.Len(t, h.AllKnowledge(), 2)
	})

	t.Run("it rejects a hidden card", func(t *testing.T) {
		err := h.AddCard(card.Hidden(), knowledge.New(5, 5))
		require.ErrorIs(t, err, ErrInvalidCard)
		assert.Equal(t, 2, h.Len())
	})

	t.Run("it accepts an unknown card for the holder's own hand", func(t *testing.T) {
		require.NoError(t, h.AddUnknownCard(knowledge.New(5, 5)))
		assert.Equal(t, 3, h.Len())
		assert.False(t, h.Card(2).IsValid())
	})
}

func TestRemoveFromHand(t *testing.T) {
	t.Run("add then remove restores the hand and feeds the discard pile", func(t *testing.T) {
		// GIVEN a hand with two cards
		h := newTestHand(t, 5, 5, card.New(0, 0), card.New(1, 1))
		added := card.New(4, 4)
		var discard []card.Card

		// WHEN a card is added and immediately removed at the same index
		require.NoError(t, h.AddCard(added, knowledge.New(5, 5)))
		require.NoError(t, h.RemoveFromHand(2, &discard))

		// THEN length is restored and the pile gained exactly that card
		assert.Equal(t, 2, h.Len())
		assert.Equal(t, []card.Card{added}, discard)
	})

	t.Run("later slots shift down with their knowledge", func(t *testing.T) {
		h := newTestHand(t, 5, 5, card.New(0, 0), card.New(1, 1), card.New(2, 2))
		_, err := h.RevealColor(2)
		require.NoError(t, err)

		require.NoError(t, h.RemoveFromHand(0, nil))

		require.Equal(t, 2, h.Len())
		assert.Equal(t, card.New(2, 2), h.Card(1))
		assert.True(t, h.Knowledge(1).ColorHinted())
		assert.Equal(t, 2, h.Knowledge(1).Color())
		assert.False(t, h.Knowledge(0).ColorHinted())
	})

	t.Run("it rejects out-of-range indices", func(t *testing.T) {
		h := newTestHand(t, 5, 5, card.New(0, 0))
		require.ErrorIs(t, h.RemoveFromHand(1, nil), ErrIndexOutOfRange)
		require.ErrorIs(t, h.RemoveFromHand(-1, nil), ErrIndexOutOfRange)
		assert.Equal(t, 1, h.Len())
	})
}

func TestRevealColorScenario(t *testing.T) {
	// GIVEN a 3-color, 3-rank game and a hand holding color 1 rank 2
	h := newTestHand(t, 3, 3, card.New(1, 2))

	// WHEN color 1 is revealed
	mask, err := h.RevealColor(1)
	require.NoError(t, err)

	// THEN the color axis resolves and the card is marked
	assert.Equal(t, uint8(0b1), mask)
	assert.True(t, h.Knowledge(0).ColorHinted())
	assert.Equal(t, 1, h.Knowledge(0).Color())

	// WHEN rank 0 is revealed
	mask, err = h.RevealRank(0)
	require.NoError(t, err)

	// THEN nothing matches and rank 0 is ruled out without resolving the rank
	assert.Equal(t, uint8(0), mask)
	assert.False(t, h.Knowledge(0).RankHinted())
	assert.False(t, h.Knowledge(0).RankPlausible(0))
	assert.True(t, h.Knowledge(0).RankPlausible(2))
}

func TestRevealRankBothMatch(t *testing.T) {
	h := newTestHand(t, 5, 5, card.New(0, 4), card.New(3, 4))

	mask, err := h.RevealRank(4)
	require.NoError(t, err)

	assert.Equal(t, uint8(0b11), mask)
	for i := 0; i < h.Len(); i++ {
		assert.True(t, h.Knowledge(i).RankHinted())
		assert.Equal(t, 4, h.Knowledge(i).Rank())
	}
}

func TestRevealColorAcrossHand(t *testing.T) {
	cards := []card.Card{card.New(0, 0), card.New(2, 1), card.New(0, 3), card.New(4, 4), card.New(0, 2)}
	h := newTestHand(t, 5, 5, cards...)

	mask, err := h.RevealColor(0)
	require.NoError(t, err)
	assert.Equal(t, uint8(0b10101), mask)

	for i, c := range cards {
		kn := h.Knowledge(i)
		if c.Color() == 0 {
			require.True(t, kn.ColorHinted(), "slot %d", i)
			assert.Equal(t, 0, kn.Color())
		} else {
			assert.False(t, kn.ColorHinted(), "slot %d", i)
			assert.False(t, kn.ColorPlausible(0), "slot %d", i)
		}
	}

	t.Run("repeating the hint marks nothing new", func(t *testing.T) {
		mask, err := h.RevealColor(0)
		require.NoError(t, err)
		assert.Equal(t, uint8(0), mask)
	})

	t.Run("a new card is the only one marked", func(t *testing.T) {
		require.NoError(t, h.AddCard(card.New(0, 1), knowledge.New(5, 5)))
		mask, err := h.RevealColor(0)
		require.NoError(t, err)
		assert.Equal(t, uint8(0b100000), mask)
	})
}

func TestRevealRejectsBadInput(t *testing.T) {
	t.Run("value out of range", func(t *testing.T) {
		h := newTestHand(t, 5, 5, card.New(0, 0))
		_, err := h.RevealColor(5)
		require.ErrorIs(t, err, ErrHintOutOfRange)
		_, err = h.RevealRank(-1)
		require.ErrorIs(t, err, ErrHintOutOfRange)
	})

	t.Run("more cards than the mask holds", func(t *testing.T) {
		h := New(nil)
		for i := 0; i <= MaxSize; i++ {
			require.NoError(t, h.AddCard(card.New(0, 0), knowledge.New(5, 5)))
		}
		_, err := h.RevealColor(0)
		require.ErrorIs(t, err, ErrHandTooLarge)
		assert.False(t, h.Knowledge(0).ColorHinted())
	})

	t.Run("a full hand of eight is fine", func(t *testing.T) {
		h := New(nil)
		for i := 0; i < MaxSize; i++ {
			require.NoError(t, h.AddCard(card.New(1, 0), knowledge.New(5, 5)))
		}
		mask, err := h.RevealColor(1)
		require.NoError(t, err)
		assert.Equal(t, uint8(0xff), mask)
	})
}

func TestApplyMask(t *testing.T) {
	// GIVEN a holder's own hand of three unknown cards
	h := New(nil)
	for i := 0; i < 3; i++ {
		require.NoError(t, h.AddUnknownCard(knowledge.New(5, 5)))
	}

	// WHEN they are told slots 0 and 2 are rank 1
	mask, err := h.ApplyRankMask(0, 0b101)
	require.NoError(t, err)

	// THEN those slots resolve and slot 1 loses rank 1
	assert.Equal(t, uint8(0b101), mask)
	assert.Equal(t, 0, h.Knowledge(0).Rank())
	assert.Equal(t, 0, h.Knowledge(2).Rank())
	assert.False(t, h.Knowledge(1).RankHinted())
	assert.False(t, h.Knowledge(1).RankPlausible(0))

	t.Run("mask bits beyond the hand are rejected", func(t *testing.T) {
		_, err := h.ApplyColorMask(0, 0b1000)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("a contradicting hint leaves the hand untouched", func(t *testing.T) {
		before := h.AllKnowledge()
		// slot 1 has already been told it is not rank 1
		_, err := h.ApplyRankMask(0, 0b010)
		require.ErrorIs(t, err, ErrContradictoryHint)
		assert.Equal(t, before, h.AllKnowledge())

		// slot 0 is known to be rank 1
		_, err = h.ApplyRankMask(0, 0b100)
		require.ErrorIs(t, err, ErrContradictoryHint)

		// slot 2 is known to be rank 1, so rank 2 cannot touch it
		_, err = h.ApplyRankMask(1, 0b100)
		require.ErrorIs(t, err, ErrContradictoryHint)
		assert.Equal(t, before, h.AllKnowledge())
	})

	t.Run("color hints are independent of rank hints", func(t *testing.T) {
		mask, err := h.ApplyColorMask(3, 0b010)
		require.NoError(t, err)
		assert.Equal(t, uint8(0b010), mask)
		assert.Equal(t, 3, h.Knowledge(1).Color())
		assert.Equal(t, "WX|W2345", h.Knowledge(1).String())
	})
}

func TestNewView(t *testing.T) {
	h := newTestHand(t, 5, 4, card.New(0, 0), card.New(3, 2), card.New(4, 3))
	_, err := h.RevealRank(2)
	require.NoError(t, err)

	t.Run("hidden cards keep length and knowledge", func(t *testing.T) {
		view := NewView(h, true, false)
		require.Equal(t, h.Len(), view.Len())
		for i := 0; i < view.Len(); i++ {
			assert.False(t, view.Card(i).IsValid())
			assert.Equal(t, h.Knowledge(i), view.Knowledge(i))
		}
	})

	t.Run("hidden knowledge keeps length, cards and axis ranges", func(t *testing.T) {
		view := NewView(h, false, true)
		require.Equal(t, h.Len(), view.Len())
		assert.Equal(t, h.Cards(), view.Cards())
		for i := 0; i < view.Len(); i++ {
			kn := view.Knowledge(i)
			assert.False(t, kn.ColorHinted())
			assert.False(t, kn.RankHinted())
			assert.Equal(t, h.Knowledge(i).NumColors(), kn.NumColors())
			assert.Equal(t, h.Knowledge(i).NumRanks(), kn.NumRanks())
		}
	})

	t.Run("both toggles together", func(t *testing.T) {
		view := NewView(h, true, true)
		assert.Equal(t, "XX || XX|RYGWB1234\nXX || XX|RYGWB1234\nXX || XX|RYGWB1234\n", view.String())
	})

	t.Run("the view is independent of the original", func(t *testing.T) {
		view := NewView(h, false, false)
		_, err := view.RevealColor(0)
		require.NoError(t, err)
		assert.False(t, h.Knowledge(0).ColorHinted())
		assert.True(t, view.Knowledge(0).ColorHinted())
	})

	t.Run("an empty hand", func(t *testing.T) {
		view := NewView(New(nil), true, true)
		assert.Equal(t, 0, view.Len())
	})
}

func TestString(t *testing.T) {
	h := newTestHand(t, 5, 5, card.New(1, 2), card.New(4, 0))
	_, err := h.RevealColor(1)
	require.NoError(t, err)

	assert.Equal(t, "Y3 || YX|Y12345\nB1 || XX|RGWB12345\n", h.String())
	assert.Equal(t, "", New(nil).String())
}
