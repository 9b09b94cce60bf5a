package card

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Card is the identity of a single Hanabi card. The zero value is an invalid
// card and stands for an identity the viewer is not allowed to see.
type Card struct {
	color int
	rank  int
	valid bool
}

// New returns a valid card. Negative indices yield an invalid card.
func New(color, rank int) Card {
	if color < 0 || rank < 0 {
		return Card{}
	}
	return Card{color: color, rank: rank, valid: true}
}

// Hidden returns the placeholder identity used in views that hide cards.
func Hidden() Card { return Card{} }

func (c Card) IsValid() bool { return c.valid }

// Color returns the color index, or -1 for an invalid card.
func (c Card) Color() int {
	if !c.valid {
		return -1
	}
	return c.color
}

// Rank returns the 0-based rank index, or -1 for an invalid card.
func (c Card) Rank() int {
	if !c.valid {
		return -1
	}
	return c.rank
}

func (c Card) String() string { return c.Format(DefaultSymbols) }

// Format renders the card as a color symbol followed by a rank symbol, or "XX".
func (c Card) Format(sym Symbols) string {
	if !c.valid {
		return "XX"
	}
	return string([]byte{sym.ColorChar(c.color), sym.RankChar(c.rank)})
}

type cardJSON struct {
	Color *string `json:"color"`
	Rank  *int    `json:"rank"`
}

// MarshalJSON encodes {"color":"R","rank":0}; both fields are null when the card is hidden.
func (c Card) MarshalJSON() ([]byte, error) {
	var out cardJSON
	if c.valid {
		color := string(DefaultSymbols.ColorChar(c.color))
		rank := c.rank
		out.Color, out.Rank = &color, &rank
	}
	return json.Marshal(out)
}

// ErrParse is returned when a card string cannot be decoded.
var ErrParse = errors.New("cannot parse card")

// Parse decodes a two-symbol card such as "R1" or "b5" using the given symbols.
func Parse(s string, sym Alphabet) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	color, ok := sym.ColorIndex(s[0])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown color %q", ErrParse, s[0])
	}
	rank, ok := sym.RankIndex(s[1])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank %q", ErrParse, s[1])
	}
	return New(color, rank), nil
}
