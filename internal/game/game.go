package game

import (
	"errors"
	"fmt"

	"hanabi-toolbox/internal/card"
	"hanabi-toolbox/internal/config"
	"hanabi-toolbox/internal/events"
	"hanabi-toolbox/internal/hand"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrGameOver        = errors.New("game is over")
	ErrSelfHint        = errors.New("players cannot hint themselves")
	ErrNoInfoTokens    = errors.New("no information tokens left")
	ErrInfoTokensFull  = errors.New("information tokens are already full")
	ErrHintTouchesNone = errors.New("hint must touch at least one card")
	ErrInvalidDeck     = errors.New("deck holds a card outside the game")
)

// Game holds the ground truth of a Hanabi game: every hand with its true
// identities, the deck, the discard pile and the fireworks. Turn order is
// left to the caller.
type Game struct {
	Config       *config.GameConfig
	Players      []string
	EventManager *events.Manager
	Discard      []card.Card
	Fireworks    []int
	InfoTokens   int
	LifeTokens   int

	hands     []*hand.Hand
	deck      []card.Card
	log       logrus.FieldLogger
	turnsLeft int
	over      bool
}

// PlayerIndex returns the seat of the named player.
func (g *Game) PlayerIndex(name string) (int, error) {
	for i, p := range g.Players {
		if p == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
}

// Hand returns the named player's hand, true identities included.
func (g *Game) Hand(name string) (*hand.Hand, error) {
	i, err := g.PlayerIndex(name)
	if err != nil {
		return nil, err
	}
	return g.hands[i], nil
}

func (g *Game) DeckSize() int { return len(g.deck) }
func (g *Game) IsOver() bool  { return g.over }

// Score is the number of cards on the fireworks, or zero once every life
// token is lost.
func (g *Game) Score() int {
	if g.LifeTokens <= 0 {
		return 0
	}
	total := 0
	for _, n := range g.Fireworks {
		total += n
	}
	return total
}

// HintColor tells target which of their cards have the given color.
func (g *Game) HintColor(giver, target string, color int) (events.HintEvent, error) {
	return g.Hint(giver, target, hand.AxisColor, color)
}

// HintRank tells target which of their cards have the given rank.
func (g *Game) HintRank(giver, target string, rank int) (events.HintEvent, error) {
	return g.Hint(giver, target, hand.AxisRank, rank)
}

// Hint spends an information token to reveal a color or rank in target's hand.
func (g *Game) Hint(giver, target string, axis hand.Axis, value int) (events.HintEvent, error) {
	if g.over {
		return events.HintEvent{}, ErrGameOver
	}
	from, err := g.PlayerIndex(giver)
	if err != nil {
		return events.HintEvent{}, err
	}
	to, err := g.PlayerIndex(target)
	if err != nil {
		return events.HintEvent{}, err
	}
	if from == to {
		return events.HintEvent{}, ErrSelfHint
	}
	if g.InfoTokens <= 0 {
		return events.HintEvent{}, ErrNoInfoTokens
	}

	limit := g.Config.NumColors()
	if axis == hand.AxisRank {
		limit = g.Config.NumRanks
	}
	if value < 0 || value >= limit {
		return events.HintEvent{}, fmt.Errorf("%w: %s %d", hand.ErrHintOutOfRange, axis, value)
	}

	h := g.hands[to]
	var touched uint8
	for i, c := range h.Cards() {
		if (axis == hand.AxisColor && c.Color() == value) || (axis == hand.AxisRank && c.Rank() == value) {
			touched |= 1 << i
		}
	}
	if touched == 0 {
		return events.HintEvent{}, ErrHintTouchesNone
	}
	newInfo, err := h.Reveal(axis, value)
	if err != nil {
		return events.HintEvent{}, err
	}
	g.InfoTokens--

	ev := events.HintEvent{Giver: giver, Target: target, Axis: axis, Value: value, Touched: touched, NewInfo: newInfo}
	g.log.WithFields(logrus.Fields{"giver": giver, "target": target, "axis": axis.String(), "value": value}).Debug("Hint given.")
	g.EventManager.Publish(ev)
	g.endTurn()
	return ev, nil
}

// Play takes the card at index from player's hand and tries to extend its
// firework. A misplay costs a life token and sends the card to the discard pile.
func (g *Game) Play(player string, index int) (card.Card, bool, error) {
	if g.over {
		return card.Hidden(), false, ErrGameOver
	}
	seat, err := g.PlayerIndex(player)
	if err != nil {
		return card.Hidden(), false, err
	}
	var removed []card.Card
	if err := g.hands[seat].RemoveFromHand(index, &removed); err != nil {
		return card.Hidden(), false, err
	}
	c := removed[0]

	success := g.Fireworks[c.Color()] == c.Rank()
	if success {
		g.Fireworks[c.Color()]++
		if c.Rank() == g.Config.NumRanks-1 && g.InfoTokens < g.Config.MaxInfoTokens {
			g.InfoTokens++
		}
	} else {
		g.Discard = append(g.Discard, c)
		g.LifeTokens--
	}
	g.log.WithFields(logrus.Fields{"player": player, "card": c.Format(g.Config), "success": success}).Debug("Card played.")
	g.EventManager.Publish(events.CardPlayedEvent{PlayerName: player, Index: index, Card: c, Success: success})

	if err := g.draw(seat); err != nil {
		return c, success, err
	}
	g.endTurn()
	return c, success, nil
}

// DiscardCard moves the card at index to the discard pile and regains an
// information token.
func (g *Game) DiscardCard(player string, index int) (card.Card, error) {
	if g.over {
		return card.Hidden(), ErrGameOver
	}
	seat, err := g.PlayerIndex(player)
	if err != nil {
		return card.Hidden(), err
	}
	if g.InfoTokens >= g.Config.MaxInfoTokens {
		return card.Hidden(), ErrInfoTokensFull
	}
	if err := g.hands[seat].RemoveFromHand(index, &g.Discard); err != nil {
		return card.Hidden(), err
	}
	c := g.Discard[len(g.Discard)-1]
	g.InfoTokens++

	g.log.WithFields(logrus.Fields{"player": player, "card": c.Format(g.Config)}).Debug("Card discarded.")
	g.EventManager.Publish(events.CardDiscardedEvent{PlayerName: player, Index: index, Card: c})

	if err := g.draw(seat); err != nil {
		return c, err
	}
	g.endTurn()
	return c, nil
}

func (g *Game) draw(seat int) error {
	if len(g.deck) == 0 {
		return nil
	}
	c := g.deck[0]
	if err := g.hands[seat].AddCard(c, g.Config.NewKnowledge()); err != nil {
		return err
	}
	g.deck = g.deck[1:]
	g.EventManager.Publish(events.CardDrawnEvent{PlayerName: g.Players[seat], Card: c})
	if len(g.deck) == 0 && g.turnsLeft < 0 {
		// Everyone gets one more action once the deck runs out.
		g.turnsLeft = len(g.Players) + 1
	}
	return nil
}

func (g *Game) endTurn() {
	if g.turnsLeft > 0 {
		g.turnsLeft--
	}
	switch {
	case g.LifeTokens <= 0:
		g.finish("all life tokens lost")
	case g.Score() == g.Config.NumColors()*g.Config.NumRanks:
		g.finish("every firework is complete")
	case g.turnsLeft == 0:
		g.finish("deck exhausted")
	}
}

func (g *Game) finish(reason string) {
	g.over = true
	g.log.WithFields(logrus.Fields{"score": g.Score(), "reason": reason}).Info("Game over.")
	g.EventManager.Publish(events.GameOverEvent{Score: g.Score(), Reason: reason})
}
