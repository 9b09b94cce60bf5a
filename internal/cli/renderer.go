package cli

import (
	"io"
	"strings"

	"hanabi-toolbox/internal/config"
	"hanabi-toolbox/internal/events"
)

// SimulationRenderer implements the events.Listener interface to print game events to the console.
type SimulationRenderer struct {
	cfg *config.GameConfig
	out io.Writer
}

// NewSimulationRenderer creates a renderer writing to out.
func NewSimulationRenderer(cfg *config.GameConfig, out io.Writer) *SimulationRenderer {
	return &SimulationRenderer{cfg: cfg, out: out}
}

// HandleEvent is the central dispatcher for rendering events.
func (r *SimulationRenderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.GameReadyEvent:
		C.Header.Fprintf(r.out, "--- Starting Game: %s ---\n", strings.Join(event.Players, ", "))
		C.Info.Fprintf(r.out, "Each player holds %d cards.\n", event.HandSize)
	case events.HintEvent:
		C.Info.Fprintf(r.out, "%s tells %s about %s on slots %s", event.Giver, event.Target,
			describeValue(event.Axis, event.Value, r.cfg), describeSlots(event.Touched))
		if event.NewInfo == 0 {
			C.Info.Fprintln(r.out, " (nothing new).")
		} else {
			C.Info.Fprintln(r.out, ".")
		}
	case events.CardPlayedEvent:
		if event.Success {
			C.Yes.Fprintf(r.out, "%s plays %s from slot %d.\n", event.PlayerName, ColorizeCard(event.Card, r.cfg), event.Index+1)
		} else {
			C.No.Fprintf(r.out, "%s misplays %s from slot %d and loses a life.\n", event.PlayerName, ColorizeCard(event.Card, r.cfg), event.Index+1)
		}
	case events.CardDiscardedEvent:
		C.Info.Fprintf(r.out, "%s discards %s from slot %d.\n", event.PlayerName, ColorizeCard(event.Card, r.cfg), event.Index+1)
	case events.CardDrawnEvent:
		C.Debug.Fprintf(r.out, "%s draws a card.\n", event.PlayerName)
	case events.GameOverEvent:
		C.Header.Fprintln(r.out, "\n--- GAME OVER ---")
		C.Info.Fprintf(r.out, "Final score: %d (%s)\n", event.Score, event.Reason)
	}
}
