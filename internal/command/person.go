package command

import (
	"fmt"

	"github.com/faizmokh/amigos/internal/addressbook"
	"github.com/faizmokh/amigos/internal/person"
)

// MessageListSuccess is the feedback after clearing the filter.
const MessageListSuccess = "Listed all friends"

// AddPersonCommand adds a new friend.
type AddPersonCommand struct {
	Person person.Person
}

// Execute rejects invalid records and names that are already taken.
func (c AddPersonCommand) Execute(m Model) (Result, error) {
	if err := c.Person.Validate(); err != nil {
		return Result{}, err
	}
	if m.HasPerson(c.Person.Name) {
		return Result{}, ErrDuplicatePerson
	}
	m.AddPerson(c.Person)
	return Result{Feedback: "New friend added: " + c.Person.Name}, nil
}

// FindCommand narrows the displayed list to friends whose names contain any keyword.
type FindCommand struct {
	Keywords []string
}

// Execute updates the filter and reports how many friends remain visible.
func (c FindCommand) Execute(m Model) (Result, error) {
	m.UpdateFilter(addressbook.NameContainsKeywords(c.Keywords))
	count := len(m.FilteredPersons())
	noun := "friends"
	if count == 1 {
		noun = "friend"
	}
	return Result{Feedback: fmt.Sprintf("%d %s listed!", count, noun)}, nil
}

// ListCommand shows every friend again.
type ListCommand struct{}

// Execute clears the filter.
func (ListCommand) Execute(m Model) (Result, error) {
	m.UpdateFilter(nil)
	return Result{Feedback: MessageListSuccess}, nil
}
