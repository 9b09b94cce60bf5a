package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"hanabi-toolbox/internal/card"
	"hanabi-toolbox/internal/config"
	"hanabi-toolbox/internal/determinize"
	"hanabi-toolbox/internal/game"
	"hanabi-toolbox/internal/hand"

	"github.com/sirupsen/logrus"
)

// playSession is a hot-seat game: every command acts for the current player,
// and the turn passes after each hint, play or discard.
type playSession struct {
	cfg     *config.GameConfig
	game    *game.Game
	det     *determinize.Determinizer
	current int
	out     io.Writer
}

func newPlaySession(g *game.Game, det *determinize.Determinizer, out io.Writer) *playSession {
	return &playSession{cfg: g.Config, game: g, det: det, out: out}
}

func (s *playSession) player() string { return s.game.Players[s.current] }

// execute runs one command line and reports whether the session is finished.
func (s *playSession) execute(fields []string) (bool, error) {
	if len(fields) == 0 {
		return false, nil
	}
	var err error
	acted := false
	switch strings.ToLower(fields[0]) {
	case "hint", "hi":
		err = s.handleHint(fields[1:])
		acted = err == nil
	case "play", "p":
		err = s.handleAction(fields[1:], func(index int) error {
			_, _, err := s.game.Play(s.player(), index)
			return err
		})
		acted = err == nil
	case "discard", "d":
		err = s.handleAction(fields[1:], func(index int) error {
			_, err := s.game.DiscardCard(s.player(), index)
			return err
		})
		acted = err == nil
	case "view", "v":
		obs, err := s.game.Observation(s.player())
		if err != nil {
			return false, err
		}
		RenderObservation(s.out, obs, s.cfg)
	case "hands", "ha":
		for _, name := range s.game.Players {
			h, _ := s.game.Hand(name)
			RenderHand(s.out, name, h, s.cfg)
		}
	case "guess", "g":
		err = s.handleGuess(fields[1:])
	case "help", "h":
		printPlayHelp(s.out)
	case "quit", "q":
		C.Info.Fprintln(s.out, "Exiting play mode.")
		return true, nil
	default:
		return false, fmt.Errorf("%w: unknown command '%s', type 'help' for a list of commands", ErrBadCommand, fields[0])
	}
	if err != nil || !acted {
		return false, err
	}
	if s.game.IsOver() {
		return true, nil
	}
	s.current = (s.current + 1) % len(s.game.Players)
	C.Header.Fprintf(s.out, "\n--- %s's turn ---\n", s.player())
	return false, nil
}

func (s *playSession) handleHint(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: usage: hint <player> color|rank <value>", ErrBadCommand)
	}
	target := args[0]
	for _, name := range s.game.Players {
		if strings.EqualFold(name, target) {
			target = name
		}
	}
	axis, err := parseAxis(args[1])
	if err != nil {
		return err
	}
	value, err := parseHintValue(axis, args[2], s.cfg)
	if err != nil {
		return err
	}
	_, err = s.game.Hint(s.player(), target, axis, value)
	return err
}

func (s *playSession) handleAction(args []string, act func(index int) error) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected a slot number", ErrBadCommand)
	}
	own, _ := s.game.Hand(s.player())
	index, err := parseSlot(args[0], own.Len())
	if err != nil {
		return err
	}
	return act(index)
}

// handleGuess samples a full hand for the current player, or lists the
// candidates for a single slot.
func (s *playSession) handleGuess(args []string) error {
	obs, err := s.game.Observation(s.player())
	if err != nil {
		return err
	}
	if len(args) == 0 {
		h, _, err := s.det.Sample(obs)
		if err != nil {
			return err
		}
		RenderHand(s.out, fmt.Sprintf("A possible hand for %s", s.player()), h, s.cfg)
		return nil
	}
	index, err := parseSlot(args[0], obs.Own().Len())
	if err != nil {
		return err
	}
	cands, err := s.det.ValidCards(obs, index)
	if err != nil {
		return err
	}
	C.Info.Fprintf(s.out, "Slot %d could be: %s\n", index+1, summarizeCandidates(cands, s.cfg))
	return nil
}

// summarizeCandidates renders candidates as "R1 x2, R3" in color-then-rank order.
func summarizeCandidates(cands []card.Card, cfg *config.GameConfig) string {
	counts := make(map[card.Card]int)
	var distinct []card.Card
	for _, c := range cands {
		if counts[c] == 0 {
			distinct = append(distinct, c)
		}
		counts[c]++
	}
	sort.Slice(distinct, func(i, j int) bool {
		if distinct[i].Color() != distinct[j].Color() {
			return distinct[i].Color() < distinct[j].Color()
		}
		return distinct[i].Rank() < distinct[j].Rank()
	})
	var parts []string
	for _, c := range distinct {
		part := ColorizeCard(c, cfg)
		if counts[c] > 1 {
			part += fmt.Sprintf(" x%d", counts[c])
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return "nothing"
	}
	return strings.Join(parts, ", ")
}

// trackSession follows your own hand in a game played elsewhere. The cards
// are never known; only the hints you log narrow them down.
type trackSession struct {
	cfg  *config.GameConfig
	hand *hand.Hand
	deck int
	out  io.Writer
}

func newTrackSession(cfg *config.GameConfig, players int, out io.Writer, log logrus.FieldLogger) (*trackSession, error) {
	s := &trackSession{
		cfg:  cfg,
		hand: hand.New(log),
		deck: cfg.DeckSize() - players*cfg.HandSize,
		out:  out,
	}
	if s.deck < 0 {
		return nil, fmt.Errorf("%w: %d players cannot be dealt %d cards each", config.ErrInvalidConfig, players, cfg.HandSize)
	}
	for i := 0; i < cfg.HandSize; i++ {
		if err := s.hand.AddUnknownCard(cfg.NewKnowledge()); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *trackSession) execute(fields []string) (bool, error) {
	if len(fields) == 0 {
		return false, nil
	}
	switch cmd := strings.ToLower(fields[0]); cmd {
	case "color", "c", "rank", "r":
		return false, s.handleHint(cmd, fields[1:])
	case "play", "p", "discard", "d":
		return false, s.handleRemove(fields[1:])
	case "drawn", "o":
		if s.deck > 0 {
			s.deck--
		}
		C.Info.Fprintf(s.out, "%d cards left in the deck.\n", s.deck)
	case "view", "v":
		s.render()
	case "help", "h":
		printTrackHelp(s.out)
	case "quit", "q":
		C.Info.Fprintln(s.out, "Exiting track mode.")
		return true, nil
	default:
		return false, fmt.Errorf("%w: unknown command '%s', type 'help' for a list of commands", ErrBadCommand, fields[0])
	}
	return false, nil
}

func (s *trackSession) handleHint(cmd string, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: %s <value> <mask>", ErrBadCommand, cmd)
	}
	axis, err := parseAxis(cmd)
	if err != nil {
		return err
	}
	value, err := parseHintValue(axis, args[0], s.cfg)
	if err != nil {
		return err
	}
	mask, err := parseMask(args[1], s.hand.Len())
	if err != nil {
		return err
	}
	newly, err := s.hand.ApplyMask(axis, value, mask)
	if err != nil {
		return err
	}
	C.Info.Fprintf(s.out, "New information on slots: %s\n", describeSlots(newly))
	s.render()
	return nil
}

func (s *trackSession) handleRemove(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected a slot number", ErrBadCommand)
	}
	index, err := parseSlot(args[0], s.hand.Len())
	if err != nil {
		return err
	}
	if err := s.hand.RemoveFromHand(index, nil); err != nil {
		return err
	}
	if s.deck > 0 {
		if err := s.hand.AddUnknownCard(s.cfg.NewKnowledge()); err != nil {
			return err
		}
		s.deck--
	}
	s.render()
	return nil
}

func (s *trackSession) render() {
	RenderHand(s.out, "Your Hand", s.hand, s.cfg)
	C.Info.Fprintf(s.out, "%d cards left in the deck.\n", s.deck)
}
