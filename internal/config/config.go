package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"hanabi-toolbox/internal/card"
	"hanabi-toolbox/internal/hand"
	"hanabi-toolbox/internal/knowledge"
)

// GameConfig holds the static definitions for a game of Hanabi.
type GameConfig struct {
	Colors        string `json:"colors"`
	NumRanks      int    `json:"num_ranks"`
	RankCounts    []int  `json:"rank_counts"`
	Players       int    `json:"players"`
	HandSize      int    `json:"hand_size"`
	MaxInfoTokens int    `json:"max_info_tokens"`
	MaxLifeTokens int    `json:"max_life_tokens"`

	// ObservationType is "card_knowledge" (players see hint knowledge for
	// every hand) or "minimal" (players must remember hints themselves).
	ObservationType string `json:"observation_type"`
}

const (
	ObservationCardKnowledge = "card_knowledge"
	ObservationMinimal       = "minimal"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid game configuration")

// Default returns the standard five-color game for two players.
func Default() *GameConfig {
	cfg := &GameConfig{
		Colors:        string(card.DefaultSymbols),
		NumRanks:      5,
		RankCounts:    []int{3, 2, 2, 2, 1},
		Players:       2,
		MaxInfoTokens: 8,
		MaxLifeTokens: 3,

		ObservationType: ObservationCardKnowledge,
	}
	cfg.HandSize = DefaultHandSize(cfg.Players)
	return cfg
}

// Load reads, parses, and validates the game configuration from a file.
// Fields missing from the file keep their Default values.
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	cfg.HandSize = 0
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.HandSize == 0 {
		cfg.HandSize = DefaultHandSize(cfg.Players)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultHandSize is the standard hand size for a table of players.
func DefaultHandSize(players int) int {
	if players >= 4 {
		return 4
	}
	return 5
}

// Validate checks the configuration against the limits the hand and
// knowledge packages can represent.
func (c *GameConfig) Validate() error {
	switch {
	case len(c.Colors) == 0 || len(c.Colors) > knowledge.MaxColors:
		return fmt.Errorf("%w: %d colors, want 1-%d", ErrInvalidConfig, len(c.Colors), knowledge.MaxColors)
	case c.NumRanks <= 0 || c.NumRanks > 9:
		return fmt.Errorf("%w: %d ranks, want 1-9", ErrInvalidConfig, c.NumRanks)
	case len(c.RankCounts) != c.NumRanks:
		return fmt.Errorf("%w: %d rank counts for %d ranks", ErrInvalidConfig, len(c.RankCounts), c.NumRanks)
	case c.Players < 2:
		return fmt.Errorf("%w: %d players", ErrInvalidConfig, c.Players)
	case c.HandSize <= 0 || c.HandSize > hand.MaxSize:
		return fmt.Errorf("%w: hand size %d, want 1-%d", ErrInvalidConfig, c.HandSize, hand.MaxSize)
	case c.MaxInfoTokens < 0 || c.MaxLifeTokens <= 0:
		return fmt.Errorf("%w: %d info and %d life tokens", ErrInvalidConfig, c.MaxInfoTokens, c.MaxLifeTokens)
	case c.ObservationType != ObservationCardKnowledge && c.ObservationType != ObservationMinimal:
		return fmt.Errorf("%w: observation type %q", ErrInvalidConfig, c.ObservationType)
	}
	seen := make(map[byte]bool)
	for i := 0; i < len(c.Colors); i++ {
		// 'X' marks an unknown color in rendered cards and knowledge.
		if ch := c.Colors[i]; ch < 'A' || ch > 'Z' || ch == 'X' {
			return fmt.Errorf("%w: color symbol %q must be an upper-case letter other than X", ErrInvalidConfig, ch)
		}
		if seen[c.Colors[i]] {
			return fmt.Errorf("%w: duplicate color %q", ErrInvalidConfig, c.Colors[i])
		}
		seen[c.Colors[i]] = true
	}
	for r, n := range c.RankCounts {
		if n <= 0 {
			return fmt.Errorf("%w: rank %d has %d copies", ErrInvalidConfig, r+1, n)
		}
	}
	if deck := c.DeckSize(); deck < c.Players*c.HandSize {
		return fmt.Errorf("%w: %d cards cannot fill %d hands of %d", ErrInvalidConfig, deck, c.Players, c.HandSize)
	}
	return nil
}

// DeepCopy creates a new GameConfig with all slices copied to prevent shared state.
func (c *GameConfig) DeepCopy() *GameConfig {
	newCfg := *c
	newCfg.RankCounts = make([]int, len(c.RankCounts))
	copy(newCfg.RankCounts, c.RankCounts)
	return &newCfg
}

// WithPlayers returns a copy of c for a table of n players. The hand size
// falls back to the standard one when the table size changes.
func (c *GameConfig) WithPlayers(n int) *GameConfig {
	out := c.DeepCopy()
	if n != c.Players {
		out.Players = n
		out.HandSize = DefaultHandSize(n)
	}
	return out
}

func (c *GameConfig) NumColors() int { return len(c.Colors) }

// DeckSize is the total number of cards in a fresh deck.
func (c *GameConfig) DeckSize() int {
	total := 0
	for _, n := range c.RankCounts {
		total += n
	}
	return total * c.NumColors()
}

// NewKnowledge returns unhinted knowledge shaped for this game.
func (c *GameConfig) NewKnowledge() knowledge.CardKnowledge {
	return knowledge.New(c.NumColors(), c.NumRanks)
}

func (c *GameConfig) symbols() card.ColorSymbols { return card.ColorSymbols(c.Colors) }

func (c *GameConfig) ColorChar(color int) byte       { return c.symbols().ColorChar(color) }
func (c *GameConfig) RankChar(rank int) byte         { return c.symbols().RankChar(rank) }
func (c *GameConfig) ColorIndex(ch byte) (int, bool) { return c.symbols().ColorIndex(ch) }
func (c *GameConfig) RankIndex(ch byte) (int, bool) {
	idx, ok := c.symbols().RankIndex(ch)
	if !ok || idx >= c.NumRanks {
		return -1, false
	}
	return idx, true
}
