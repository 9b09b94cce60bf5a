package knowledge

import (
	"encoding/json"
	"fmt"
	"strings"

	"hanabi-toolbox/internal/card"
)

// MaxColors bounds the color axis so the rendered summary stays within the
// symbol alphabets the toolbox knows about.
const MaxColors = 8

// CardKnowledge is what a player has been told about one card in their hand.
type CardKnowledge struct {
	color ValueKnowledge
	rank  ValueKnowledge
}

// New returns knowledge for a card nobody has hinted yet.
func New(numColors, numRanks int) CardKnowledge {
	return CardKnowledge{
		color: NewValue(numColors),
		rank:  NewValue(numRanks),
	}
}

// Fresh returns unhinted knowledge with the same shape as ck.
func (ck CardKnowledge) Fresh() CardKnowledge { return New(ck.NumColors(), ck.NumRanks()) }

func (ck CardKnowledge) NumColors() int { return ck.color.Range() }
func (ck CardKnowledge) NumRanks() int  { return ck.rank.Range() }

func (ck CardKnowledge) ColorHinted() bool { return ck.color.Hinted() }
func (ck CardKnowledge) RankHinted() bool  { return ck.rank.Hinted() }

// Color returns the hinted color. It panics if the color was never hinted.
func (ck CardKnowledge) Color() int {
	v, ok := ck.color.Value()
	if !ok {
		panic("color requested before it was hinted")
	}
	return v
}

// Rank returns the hinted rank. It panics if the rank was never hinted.
func (ck CardKnowledge) Rank() int {
	v, ok := ck.rank.Value()
	if !ok {
		panic("rank requested before it was hinted")
	}
	return v
}

func (ck CardKnowledge) ColorPlausible(color int) bool { return ck.color.IsPlausible(color) }
func (ck CardKnowledge) RankPlausible(rank int) bool   { return ck.rank.IsPlausible(rank) }

// ColorAxis and RankAxis expose the per-axis knowledge for read-only use.
func (ck CardKnowledge) ColorAxis() ValueKnowledge { return ck.color }
func (ck CardKnowledge) RankAxis() ValueKnowledge  { return ck.rank }

// IsCardPlausible reports whether c is consistent with every hint so far.
func (ck CardKnowledge) IsCardPlausible(c card.Card) bool {
	if !c.IsValid() || c.Color() >= ck.NumColors() || c.Rank() >= ck.NumRanks() {
		return false
	}
	return ck.ColorPlausible(c.Color()) && ck.RankPlausible(c.Rank())
}

func (ck *CardKnowledge) ApplyIsColorHint(color int)    { ck.color.ApplyIsValueHint(color) }
func (ck *CardKnowledge) ApplyIsNotColorHint(color int) { ck.color.ApplyIsNotValueHint(color) }
func (ck *CardKnowledge) ApplyIsRankHint(rank int)      { ck.rank.ApplyIsValueHint(rank) }
func (ck *CardKnowledge) ApplyIsNotRankHint(rank int)   { ck.rank.ApplyIsNotValueHint(rank) }

func (ck CardKnowledge) String() string { return ck.Format(card.DefaultSymbols) }

// Format renders e.g. "RX|R12345": the hinted color and rank (X when not
// hinted), then every plausible color and every plausible rank.
func (ck CardKnowledge) Format(sym card.Symbols) string {
	if ck.NumColors() > MaxColors {
		panic(fmt.Errorf("%d colors exceed the %d supported", ck.NumColors(), MaxColors))
	}
	var b strings.Builder
	b.Grow(3 + ck.NumColors() + ck.NumRanks())
	if v, ok := ck.color.Value(); ok {
		b.WriteByte(sym.ColorChar(v))
	} else {
		b.WriteByte('X')
	}
	if v, ok := ck.rank.Value(); ok {
		b.WriteByte(sym.RankChar(v))
	} else {
		b.WriteByte('X')
	}
	b.WriteByte('|')
	for c := 0; c < ck.NumColors(); c++ {
		if ck.color.IsPlausible(c) {
			b.WriteByte(sym.ColorChar(c))
		}
	}
	for r := 0; r < ck.NumRanks(); r++ {
		if ck.rank.IsPlausible(r) {
			b.WriteByte(sym.RankChar(r))
		}
	}
	return b.String()
}

type knowledgeJSON struct {
	Color *string `json:"color"`
	Rank  *int    `json:"rank"`
}

// MarshalJSON encodes the directly hinted color and rank, null when unknown.
func (ck CardKnowledge) MarshalJSON() ([]byte, error) {
	var out knowledgeJSON
	if v, ok := ck.color.Value(); ok {
		s := string(card.DefaultSymbols.ColorChar(v))
		out.Color = &s
	}
	if v, ok := ck.rank.Value(); ok {
		out.Rank = &v
	}
	return json.Marshal(out)
}
