package events

import (
	"hanabi-toolbox/internal/card"
	"hanabi-toolbox/internal/hand"
)

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// Manager (or Event Bus) manages listeners and dispatches events.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}
func (em *Manager) Subscribe(l Listener) {
	em.listeners = append(em.listeners, l)
}
func (em *Manager) Publish(e Event) {
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(e Event)

func (f ListenerFunc) HandleEvent(e Event) { f(e) }

// GameReadyEvent is published once the game is built and cards are dealt.
type GameReadyEvent struct {
	Players  []string
	HandSize int
}

// HintEvent describes a hint given to Target. Touched has a bit for every
// card the hint points at; NewInfo only for those whose axis was not already
// known.
type HintEvent struct {
	Giver   string
	Target  string
	Axis    hand.Axis
	Value   int
	Touched uint8
	NewInfo uint8
}

type CardPlayedEvent struct {
	PlayerName string
	Index      int
	Card       card.Card
	Success    bool
}

type CardDiscardedEvent struct {
	PlayerName string
	Index      int
	Card       card.Card
}

// CardDrawnEvent carries the drawn card for logging; observers must not
// reveal it to the drawing player.
type CardDrawnEvent struct {
	PlayerName string
	Card       card.Card
}

type GameOverEvent struct {
	Score  int
	Reason string
}
