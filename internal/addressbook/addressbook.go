// Package addressbook holds the authoritative in-memory list of friends and
// events, along with the filtered view that index-based commands address.
package addressbook

import (
	"errors"
	"slices"

	"github.com/faizmokh/amigos/internal/event"
	"github.com/faizmokh/amigos/internal/person"
)

// ErrPersonNotInBook is returned by SetPerson when the target snapshot is absent.
var ErrPersonNotInBook = errors.New("person not found in address book")

// AddressBook is not safe for concurrent use.
type AddressBook struct {
	persons []person.Person
	events  []event.Event
	filter  func(person.Person) bool
}

// New returns an address book seeded with copies of persons and events.
func New(persons []person.Person, events []event.Event) *AddressBook {
	return &AddressBook{
		persons: slices.Clone(persons),
		events:  slices.Clone(events),
	}
}

// Persons returns the full ordered list.
func (b *AddressBook) Persons() []person.Person {
	return slices.Clone(b.persons)
}

// FilteredPersons returns the persons matching the current filter, in order.
func (b *AddressBook) FilteredPersons() []person.Person {
	if b.filter == nil {
		return b.Persons()
	}
	var out []person.Person
	for _, p := range b.persons {
		if b.filter(p) {
			out = append(out, p)
		}
	}
	return out
}

// UpdateFilter replaces the display predicate. A nil predicate shows everyone.
func (b *AddressBook) UpdateFilter(pred func(person.Person) bool) {
	b.filter = pred
}

// HasPerson reports whether a friend with exactly this name exists.
func (b *AddressBook) HasPerson(name string) bool {
	return slices.ContainsFunc(b.persons, func(p person.Person) bool {
		return p.HasName(name)
	})
}

// AddPerson appends p to the end of the list.
func (b *AddressBook) AddPerson(p person.Person) {
	b.persons = append(b.persons, p)
}

// SetPerson swaps the first snapshot equal to target for edited.
func (b *AddressBook) SetPerson(target, edited person.Person) error {
	idx := slices.IndexFunc(b.persons, target.Equal)
	if idx < 0 {
		return ErrPersonNotInBook
	}
	b.persons[idx] = edited
	return nil
}

// Events returns all events in insertion order.
func (b *AddressBook) Events() []event.Event {
	return slices.Clone(b.events)
}

// HasEvent reports whether an event for the same occasion already exists.
func (b *AddressBook) HasEvent(e event.Event) bool {
	return slices.ContainsFunc(b.events, e.SameAs)
}

// AddEvent appends e.
func (b *AddressBook) AddEvent(e event.Event) {
	b.events = append(b.events, e)
}
