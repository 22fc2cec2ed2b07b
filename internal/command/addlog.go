package command

import (
	"fmt"

	"github.com/faizmokh/amigos/internal/addressbook"
	"github.com/faizmokh/amigos/internal/person"
)

// AddLogCommandWord is the command name used by the argument grammar.
const AddLogCommandWord = "addlog"

// MessageAddLogSuccess is the feedback for a successful addlog.
const MessageAddLogSuccess = "New log added!"

// MessageAddLogUsage documents the addlog grammar.
const MessageAddLogUsage = AddLogCommandWord + ": Adds a log to an existing friend in Amigos. " +
	"Parameters: INDEX " + prefixTitle + "TITLE [" + prefixDescription + "DESCRIPTION]\n" +
	"Example: " + AddLogCommandWord + " 1 " + prefixTitle + "Likes apples"

type targetMode uint8

const (
	byIndex targetMode = iota
	byName
)

// AddLogCommand appends one log to exactly one existing friend, chosen either by
// position in the displayed list or by exact name.
type AddLogCommand struct {
	mode       targetMode
	index      int
	name       string
	descriptor AddLogDescriptor
}

// NewAddLogByIndex targets the friend at the zero-based index of the displayed list.
func NewAddLogByIndex(index int, descriptor AddLogDescriptor) *AddLogCommand {
	return &AddLogCommand{mode: byIndex, index: index, descriptor: descriptor}
}

// NewAddLogByName targets the friend whose name is exactly name.
func NewAddLogByName(name string, descriptor AddLogDescriptor) *AddLogCommand {
	return &AddLogCommand{mode: byName, name: name, descriptor: descriptor}
}

// Execute resolves the target, builds the edited snapshot and swaps it into m.
func (c *AddLogCommand) Execute(m Model) (Result, error) {
	target, err := c.resolveTarget(m)
	if err != nil {
		return Result{}, err
	}

	logs, err := c.descriptor.LogsAfterAdd(target)
	if err != nil {
		return Result{}, err
	}

	if err := m.SetPerson(target, target.WithLogs(logs)); err != nil {
		return Result{}, fmt.Errorf("replace %q: %w", target.Name, err)
	}
	return Result{Feedback: MessageAddLogSuccess}, nil
}

func (c *AddLogCommand) resolveTarget(m Model) (person.Person, error) {
	switch c.mode {
	case byName:
		match := addressbook.MatchName(m.Persons(), c.name)
		switch match.Count() {
		case 0:
			return person.Person{}, ErrPersonNotFound
		case 1:
			p, _ := match.One()
			return p, nil
		default:
			return person.Person{}, ErrAmbiguousName
		}
	default:
		shown := m.FilteredPersons()
		if c.index < 0 || c.index >= len(shown) {
			return person.Person{}, ErrInvalidIndex
		}
		return shown[c.index], nil
	}
}

// Equal reports whether other targets the same friend the same way with an equal descriptor.
func (c *AddLogCommand) Equal(other *AddLogCommand) bool {
	if c == other {
		return true
	}
	if other == nil || c.mode != other.mode {
		return false
	}
	switch c.mode {
	case byName:
		if c.name != other.name {
			return false
		}
	default:
		if c.index != other.index {
			return false
		}
	}
	return c.descriptor.Equal(other.descriptor)
}

func (c *AddLogCommand) String() string {
	if c.mode == byName {
		return fmt.Sprintf("Name: %s\nContent:\n%s", c.name, c.descriptor)
	}
	return fmt.Sprintf("Index: %d\nContent:\n%s", c.index+1, c.descriptor)
}
