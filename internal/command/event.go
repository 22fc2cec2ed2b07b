package command

import (
	"fmt"

	"github.com/faizmokh/amigos/internal/addressbook"
	"github.com/faizmokh/amigos/internal/event"
)

// AddEventCommand records a new event involving existing friends.
type AddEventCommand struct {
	Name    string
	At      event.DateTime
	Friends []string
}

// Execute checks that every friend resolves to exactly one person and that the
// occasion is not already recorded.
func (c AddEventCommand) Execute(m Model) (Result, error) {
	e, err := event.New(c.Name, c.At, c.Friends)
	if err != nil {
		return Result{}, err
	}

	persons := m.Persons()
	for _, name := range e.Friends {
		switch addressbook.MatchName(persons, name).Count() {
		case 0:
			return Result{}, fmt.Errorf("%w: %s", ErrPersonNotFound, name)
		case 1:
		default:
			return Result{}, fmt.Errorf("%w: %s", ErrAmbiguousName, name)
		}
	}

	if m.HasEvent(e) {
		return Result{}, ErrDuplicateEvent
	}
	m.AddEvent(e)
	return Result{Feedback: "New event added: " + e.Name}, nil
}
