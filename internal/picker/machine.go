package picker

import (
	"slices"

	"github.com/sidepunch/rpap/internal/deck"
)

// Observer is called after every transition, including ignored ones.
type Observer func(prev, next State, ev Event)

// Machine owns the current State. It belongs to the UI loop and is not
// safe for concurrent use.
type Machine struct {
	state     State
	observers []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Observer
}

func NewMachine() *Machine {
	return &Machine{state: Initial()}
}

func (m *Machine) State() State {
	return m.state
}

// Subscribe registers fn and returns a function that removes it. Calling
// the returned function more than once is a no-op.
func (m *Machine) Subscribe(fn Observer) (unsubscribe func()) {
	id := m.nextID
	m.nextID++
	m.observers = append(m.observers, subscription{id: id, fn: fn})
	return func() {
		m.observers = slices.DeleteFunc(m.observers, func(s subscription) bool { return s.id == id })
	}
}

func (m *Machine) Submit(d deck.Deck, ok bool) Event {
	return m.apply(func(s State) (State, Event) { return Submit(s, d, ok) })
}

func (m *Machine) Start() Event {
	return m.apply(Start)
}

func (m *Machine) Advance() Event {
	return m.apply(Advance)
}

func (m *Machine) apply(fn func(State) (State, Event)) Event {
	prev := m.state
	next, ev := fn(prev)
	m.state = next
	// Observers may unsubscribe while being notified.
	for _, sub := range slices.Clone(m.observers) {
		sub.fn(prev, next, ev)
	}
	return ev
}
