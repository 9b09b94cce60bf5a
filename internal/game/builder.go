package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"hanabi-toolbox/internal/card"
	"hanabi-toolbox/internal/config"
	"hanabi-toolbox/internal/events"
	"hanabi-toolbox/internal/hand"

	"github.com/sirupsen/logrus"
)

// GameBuilder provides a step-by-step API for constructing a Game object.
type GameBuilder struct {
	cfg          *config.GameConfig
	eventManager *events.Manager
	log          *logrus.Logger
	rand         *rand.Rand
	names        []string
	deck         []card.Card
}

// NewBuilder creates a new GameBuilder with its required dependencies.
func NewBuilder(cfg *config.GameConfig, logger *logrus.Logger, rand *rand.Rand) *GameBuilder {
	return &GameBuilder{
		cfg:          cfg,
		log:          logger,
		rand:         rand,
		eventManager: events.NewManager(),
	}
}

// EventManager is a public getter for the unexported field.
func (b *GameBuilder) EventManager() *events.Manager {
	return b.eventManager
}

// WithPlayerNames overrides the default "Player N" names. The number of
// names sets the number of players.
func (b *GameBuilder) WithPlayerNames(names ...string) *GameBuilder {
	b.names = names
	return b
}

// WithDeck fixes the draw order instead of shuffling; the first card is
// drawn first.
func (b *GameBuilder) WithDeck(deck []card.Card) *GameBuilder {
	b.deck = deck
	return b
}

// Build constructs the Game object after all options have been configured.
func (b *GameBuilder) Build() (*Game, error) {
	cfg := b.cfg.DeepCopy()
	if len(b.names) > 0 {
		cfg.Players = len(b.names)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// 1. Name the players
	names := b.names
	if len(names) == 0 {
		for i := 0; i < cfg.Players; i++ {
			names = append(names, fmt.Sprintf("Player %d", i+1))
		}
	}
	seen := make(map[string]bool)
	for _, name := range names {
		if name == "" || seen[name] {
			return nil, errors.New("player names must be unique and non-empty")
		}
		seen[name] = true
	}

	// 2. Create the Game object
	var log logrus.FieldLogger = b.log
	if b.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	game := &Game{
		Config:       cfg,
		Players:      names,
		EventManager: b.eventManager,
		Fireworks:    make([]int, cfg.NumColors()),
		InfoTokens:   cfg.MaxInfoTokens,
		LifeTokens:   cfg.MaxLifeTokens,
		log:          log,
		turnsLeft:    -1,
	}
	for _, name := range names {
		game.hands = append(game.hands, hand.New(log.WithField("player", name)))
	}

	// 3. Build the deck
	if b.deck != nil {
		for i, c := range b.deck {
			if !c.IsValid() || c.Color() >= cfg.NumColors() || c.Rank() >= cfg.NumRanks {
				return nil, fmt.Errorf("%w: card %d (%s) is not in a %d-color, %d-rank game", ErrInvalidDeck, i, c.Format(cfg), cfg.NumColors(), cfg.NumRanks)
			}
		}
		game.deck = make([]card.Card, len(b.deck))
		copy(game.deck, b.deck)
	} else {
		game.deck = NewDeck(cfg)
		b.rand.Shuffle(len(game.deck), func(i, j int) { game.deck[i], game.deck[j] = game.deck[j], game.deck[i] })
	}
	if len(game.deck) < cfg.Players*cfg.HandSize {
		return nil, fmt.Errorf("deck of %d cannot deal %d hands of %d", len(game.deck), cfg.Players, cfg.HandSize)
	}

	// 4. Deal the cards
	for round := 0; round < cfg.HandSize; round++ {
		for i := range names {
			if err := game.draw(i); err != nil {
				return nil, err
			}
		}
	}
	if game.turnsLeft > 0 {
		game.turnsLeft = len(names)
	}

	b.eventManager.Publish(events.GameReadyEvent{Players: names, HandSize: cfg.HandSize})
	return game, nil
}

// NewDeck returns every card of the game in color-then-rank order.
func NewDeck(cfg *config.GameConfig) []card.Card {
	deck := make([]card.Card, 0, cfg.DeckSize())
	for color := 0; color < cfg.NumColors(); color++ {
		for rank, count := range cfg.RankCounts {
			for n := 0; n < count; n++ {
				deck = append(deck, card.New(color, rank))
			}
		}
	}
	return deck
}
