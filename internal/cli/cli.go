package cli

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"hanabi-toolbox/internal/config"
	"hanabi-toolbox/internal/determinize"
	"hanabi-toolbox/internal/game"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// CLI manages all command-line interactions.
type CLI struct {
	log  *logrus.Logger
	line *liner.State
	out  io.Writer
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &CLI{
		log:  log,
		line: line,
		out:  os.Stdout,
	}
}

// RunPlay starts a hot-seat game between the named players, or
// cfg.Players default-named players when names is empty.
func (c *CLI) RunPlay(cfg *config.GameConfig, names []string, rand *rand.Rand) error {
	defer c.line.Close()
	C.Header.Println("--- Hanabi Play Mode ---")

	// Create a builder and subscribe the renderer to it.
	if len(names) > 0 {
		cfg = cfg.WithPlayers(len(names))
	}
	builder := game.NewBuilder(cfg, c.log, rand)
	builder.EventManager().Subscribe(NewSimulationRenderer(cfg, c.out))
	g, err := builder.WithPlayerNames(names...).Build()
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}

	chooser := determinize.NewRandomChooser(rand)
	det := determinize.New(g.Config, chooser, c.log.WithField("component", "determinizer"))
	session := newPlaySession(g, det, c.out)

	printPlayHelp(c.out)
	C.Header.Fprintf(c.out, "\n--- %s's turn ---\n", session.player())
	return c.loop("(play) ", session.execute)
}

// RunTrack starts the co-pilot for a game played at a real table.
func (c *CLI) RunTrack(cfg *config.GameConfig) error {
	defer c.line.Close()
	C.Info.Println("\n--- Starting Track Mode Co-Pilot ---")
	players := c.promptForInt(fmt.Sprintf("How many players are in the real game? (2-%d): ", maxPlayers), 2, maxPlayers)

	cfg = cfg.WithPlayers(players)
	if err := cfg.Validate(); err != nil {
		return err
	}
	session, err := newTrackSession(cfg, players, c.out, c.log.WithField("component", "tracker"))
	if err != nil {
		return err
	}

	C.Info.Println("\nTrack Mode is active! Log the hints you receive and the cards you play.")
	session.render()
	printTrackHelp(c.out)
	return c.loop("(track) ", session.execute)
}

// maxPlayers is the largest table track mode asks about.
const maxPlayers = 5

// loop reads commands until exec reports the session is done.
func (c *CLI) loop(prompt string, exec func(fields []string) (bool, error)) error {
	for {
		input, err := c.line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				C.Info.Println("\nGoodbye!")
				return nil
			}
			return fmt.Errorf("error reading line: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		c.line.AppendHistory(input)

		done, err := exec(strings.Fields(input))
		if err != nil {
			if !errors.Is(err, ErrBadCommand) {
				c.log.WithError(err).Debug("Command failed.")
			}
			C.Warn.Fprintf(c.out, "%v\n", err)
			continue
		}
		if done {
			return nil
		}
	}
}
