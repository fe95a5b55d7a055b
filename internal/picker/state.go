// Package picker holds the presenter's state machine. Transitions are pure
// functions over State; Machine adds observers for the rendering layer.
package picker

import (
	"fmt"

	"github.com/sidepunch/rpap/internal/deck"
)

// Status is the presenter phase.
type Status int

const (
	Idle Status = iota
	Ready
	Running
	Finished
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Event names what a transition did.
type Event int

const (
	EventIgnored Event = iota
	EventSubmitted
	EventSubmitEmpty
	EventStarted
	EventAdvanced
	EventFinished
)

func (e Event) String() string {
	switch e {
	case EventIgnored:
		return "ignored"
	case EventSubmitted:
		return "submitted"
	case EventSubmitEmpty:
		return "submit_empty"
	case EventStarted:
		return "started"
	case EventAdvanced:
		return "advanced"
	case EventFinished:
		return "finished"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// State is a snapshot of the presenter. Treat it as a value: transitions
// never mutate the receiver's deck.
type State struct {
	Status Status
	Index  int
	Deck   deck.Deck
}

// Initial is the state before anything has been submitted.
func Initial() State {
	return State{Status: Idle, Deck: deck.Placeholder()}
}

// Submit loads a freshly parsed deck. When ok is false the deck is swapped
// for the placeholder and the status is left alone.
func Submit(s State, d deck.Deck, ok bool) (State, Event) {
	if !ok || d.Len() == 0 {
		return State{Status: s.Status, Index: s.Index, Deck: deck.Placeholder()}, EventSubmitEmpty
	}
	return State{Status: Ready, Index: 0, Deck: d}, EventSubmitted
}

// Start begins the run. Only valid from Ready.
func Start(s State) (State, Event) {
	if s.Status != Ready {
		return s, EventIgnored
	}
	s.Status = Running
	s.Index = 0
	return s, EventStarted
}

// Advance shows the next card, or finishes after the last one.
func Advance(s State) (State, Event) {
	if s.Status != Running {
		return s, EventIgnored
	}
	if s.Index >= s.Deck.Len()-1 {
		s.Status = Finished
		return s, EventFinished
	}
	s.Index++
	return s, EventAdvanced
}

// Current returns the row on display, or an empty row when out of range.
func (s State) Current() deck.Row {
	if s.Index < 0 || s.Index >= s.Deck.Len() {
		return deck.Row{}
	}
	return s.Deck[s.Index]
}

// Progress reports the 1-based position and the deck size.
func (s State) Progress() (pos, total int) {
	return s.Index + 1, s.Deck.Len()
}
