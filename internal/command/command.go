// Package command implements the operations users run against the address book.
// Each command validates everything it needs before touching the model, so a
// failed command leaves the model unchanged.
package command

import (
	"errors"

	"github.com/faizmokh/amigos/internal/event"
	"github.com/faizmokh/amigos/internal/person"
)

// Model is the address book surface commands operate on.
type Model interface {
	Persons() []person.Person
	FilteredPersons() []person.Person
	UpdateFilter(pred func(person.Person) bool)
	HasPerson(name string) bool
	AddPerson(p person.Person)
	SetPerson(target, edited person.Person) error
	HasEvent(e event.Event) bool
	AddEvent(e event.Event)
}

// Command is a single user operation.
type Command interface {
	Execute(m Model) (Result, error)
}

// Result carries the feedback shown to the user after a successful command.
type Result struct {
	Feedback string
}

// User-facing command failures. Their messages are printed verbatim.
var (
	ErrInvalidIndex    = errors.New("The person index provided is invalid")
	ErrPersonNotFound  = errors.New("No friend with this name exists")
	ErrAmbiguousName   = errors.New("More than one friend has this name")
	ErrDuplicateLog    = errors.New("This log already exists for this friend.")
	ErrDuplicatePerson = errors.New("This friend already exists in Amigos")
	ErrDuplicateEvent  = errors.New("This event already exists in Amigos")
)

// ErrMissingTitle is returned when a descriptor is used before a title was set.
var ErrMissingTitle = errors.New("a log title is required")

// ErrInvalidCommandFormat wraps usage text for malformed command arguments.
var ErrInvalidCommandFormat = errors.New("invalid command format")
