package cli

import (
	"io"
	"os"
	"strconv"
	"strings"

	"hanabi-toolbox/internal/card"
	"hanabi-toolbox/internal/config"
	"hanabi-toolbox/internal/game"
	"hanabi-toolbox/internal/hand"
	"hanabi-toolbox/internal/knowledge"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Yes, No, Maybe, Info, Warn, Header, Prompt, Debug *color.Color
}{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Maybe:  color.New(color.FgYellow),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
	Debug:  color.New(color.FgMagenta),
}

// CardColors maps color symbols to the terminal color used to print them.
var CardColors = map[byte]*color.Color{
	'R': color.New(color.FgRed),
	'Y': color.New(color.FgYellow),
	'G': color.New(color.FgGreen),
	'W': color.New(color.FgHiWhite, color.Bold),
	'B': color.New(color.FgBlue),
	'M': color.New(color.FgMagenta),
}

func colorizeSymbol(ch byte, s string) string {
	if c, ok := CardColors[ch]; ok {
		return c.Sprint(s)
	}
	return s
}

// ColorizeCard returns a card as a string tinted by its color.
func ColorizeCard(c card.Card, sym card.Symbols) string {
	s := c.Format(sym)
	if !c.IsValid() {
		return C.Maybe.Sprint(s)
	}
	return colorizeSymbol(s[0], s)
}

// plausibleColors lists the colors a slot may still have. A resolved color
// is marked with a check.
func plausibleColors(kn knowledge.CardKnowledge, cfg *config.GameConfig) string {
	if kn.ColorHinted() {
		ch := cfg.ColorChar(kn.Color())
		return colorizeSymbol(ch, string(ch)) + " " + C.Yes.Sprint("✔")
	}
	var parts []string
	for v := 0; v < kn.NumColors(); v++ {
		if kn.ColorPlausible(v) {
			ch := cfg.ColorChar(v)
			parts = append(parts, colorizeSymbol(ch, string(ch)))
		}
	}
	return strings.Join(parts, "")
}

func plausibleRanks(kn knowledge.CardKnowledge, cfg *config.GameConfig) string {
	if kn.RankHinted() {
		return string(cfg.RankChar(kn.Rank())) + " " + C.Yes.Sprint("✔")
	}
	var b strings.Builder
	for rank := 0; rank < kn.NumRanks(); rank++ {
		if kn.RankPlausible(rank) {
			b.WriteByte(cfg.RankChar(rank))
		}
	}
	return b.String()
}

// RenderHand displays a hand and what its holder knows about each card.
func RenderHand(w io.Writer, title string, h *hand.Hand, cfg *config.GameConfig) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Slot", "Card", "Colors", "Ranks"})
	for i := 0; i < h.Len(); i++ {
		kn := h.Knowledge(i)
		t.AppendRow(table.Row{i + 1, ColorizeCard(h.Card(i), cfg), plausibleColors(kn, cfg), plausibleRanks(kn, cfg)})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	t.Render()
}

// RenderBoard displays the fireworks, tokens, deck and discard pile.
func RenderBoard(w io.Writer, obs *game.Observation, cfg *config.GameConfig) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	header := table.Row{}
	row := table.Row{}
	for i, height := range obs.Fireworks {
		ch := cfg.ColorChar(i)
		header = append(header, colorizeSymbol(ch, string(ch)))
		row = append(row, height)
	}
	header = append(header, "Info", "Lives", "Deck")
	row = append(row, obs.InfoTokens, obs.LifeTokens, obs.DeckSize)
	t.AppendHeader(header)
	t.AppendRow(row)
	t.SetStyle(table.StyleLight)
	t.Render()

	if len(obs.Discard) > 0 {
		var parts []string
		for _, c := range obs.Discard {
			parts = append(parts, ColorizeCard(c, cfg))
		}
		C.Info.Fprintf(w, "Discarded: %s\n", strings.Join(parts, " "))
	}
}

// RenderObservation displays everything the viewer of obs can see.
func RenderObservation(w io.Writer, obs *game.Observation, cfg *config.GameConfig) {
	RenderBoard(w, obs, cfg)
	for i, name := range obs.Players {
		title := name
		if i == 0 {
			title += " (you)"
		}
		RenderHand(w, title, obs.Hands[i], cfg)
	}
}

// --- Prompting and Usage ---

func printHelp(w io.Writer, title string, rows []table.Row) {
	C.Header.Fprintf(w, "\n--- %s ---\n", title)
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Command", "Alias", "Description"})
	t.AppendSeparator()
	t.AppendRows(rows)
	t.SetStyle(table.StyleLight)
	t.Render()
}

func printPlayHelp(w io.Writer) {
	printHelp(w, "Play Mode Help", []table.Row{
		{"hint <player> color|rank <value>", "hi", "Tell another player about a color or rank, e.g. 'hint Bob color R'."},
		{"play <slot>", "p", "Play the card in a slot of your hand (slots start at 1)."},
		{"discard <slot>", "d", "Discard a card to regain an information token."},
		{"view", "v", "Show the game as the current player sees it."},
		{"hands", "ha", "Reveal every hand, your own included."},
		{"guess [slot]", "g", "Sample a hand consistent with what you know, or list a slot's candidates."},
		{"help", "h", "Show this help message."},
		{"quit", "q", "Exit play mode."},
	})
}

func printTrackHelp(w io.Writer) {
	printHelp(w, "Track Mode Help", []table.Row{
		{"color <color> <mask>", "c", "Log a color hint you received, e.g. 'color R 10110' for slots 1, 3 and 4."},
		{"rank <rank> <mask>", "r", "Log a rank hint you received, e.g. 'rank 3 01000'."},
		{"play <slot>", "p", "Log that you played a card; a new unknown card is drawn."},
		{"discard <slot>", "d", "Log that you discarded a card; a new unknown card is drawn."},
		{"drawn", "o", "Log a card drawn by another player."},
		{"view", "v", "Display what you know about your hand."},
		{"help", "h", "Show this help message."},
		{"quit", "q", "Exit track mode."},
	})
}

func (c *CLI) promptForString(prompt string) string {
	for {
		C.Prompt.Print(prompt)
		input, err := c.line.Prompt("")
		if err != nil {
			C.Info.Println("\nGoodbye!")
			os.Exit(0)
		}
		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			c.line.AppendHistory(trimmed)
			return trimmed
		}
	}
}

func (c *CLI) promptForInt(prompt string, min, max int) int {
	for {
		input := c.promptForString(prompt)
		num, err := strconv.Atoi(input)
		if err != nil || num < min || num > max {
			C.Warn.Printf("Invalid input. Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return num
	}
}

func describeSlots(mask uint8) string {
	var parts []string
	for i := 0; i < hand.MaxSize; i++ {
		if mask&(1<<i) != 0 {
			parts = append(parts, strconv.Itoa(i+1))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

// describeValue renders a hinted color or rank with the game's symbols.
func describeValue(axis hand.Axis, value int, cfg *config.GameConfig) string {
	if axis == hand.AxisColor {
		ch := cfg.ColorChar(value)
		return colorizeSymbol(ch, string(ch))
	}
	return string(cfg.RankChar(value))
}
