package game

import (
	"hanabi-toolbox/internal/card"
	"hanabi-toolbox/internal/config"
	"hanabi-toolbox/internal/hand"
)

// Observation is what one player is allowed to see. Hands are ordered
// starting from the viewer; the viewer's own identities are hidden.
type Observation struct {
	Viewer     string
	Players    []string
	Hands      []*hand.Hand
	Discard    []card.Card
	Fireworks  []int
	InfoTokens int
	LifeTokens int
	DeckSize   int
}

// Observation builds the view of the game for viewer. Under the minimal
// observation type hint knowledge is withheld from every hand.
func (g *Game) Observation(viewer string) (*Observation, error) {
	seat, err := g.PlayerIndex(viewer)
	if err != nil {
		return nil, err
	}
	hideKnowledge := g.Config.ObservationType == config.ObservationMinimal

	obs := &Observation{
		Viewer:     viewer,
		Discard:    append([]card.Card(nil), g.Discard...),
		Fireworks:  append([]int(nil), g.Fireworks...),
		InfoTokens: g.InfoTokens,
		LifeTokens: g.LifeTokens,
		DeckSize:   len(g.deck),
	}
	for offset := range g.Players {
		i := (seat + offset) % len(g.Players)
		obs.Players = append(obs.Players, g.Players[i])
		obs.Hands = append(obs.Hands, hand.NewView(g.hands[i], offset == 0, hideKnowledge))
	}
	return obs, nil
}

// Own returns the viewer's hand as the viewer sees it.
func (o *Observation) Own() *hand.Hand { return o.Hands[0] }
