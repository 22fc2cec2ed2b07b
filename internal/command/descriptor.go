package command

import (
	"fmt"

	"github.com/faizmokh/amigos/internal/person"
)

// AddLogDescriptor stages the log to append. Title is required at the point of
// use; a nil Description is treated as empty.
type AddLogDescriptor struct {
	Title       *string
	Description *string
}

// NewAddLogDescriptor is a convenience for the common case where both fields are known.
func NewAddLogDescriptor(title, description string) AddLogDescriptor {
	return AddLogDescriptor{Title: &title, Description: &description}
}

// SetTitle stages title.
func (d *AddLogDescriptor) SetTitle(title string) {
	d.Title = &title
}

// SetDescription stages description.
func (d *AddLogDescriptor) SetDescription(description string) {
	d.Description = &description
}

// HasTitle reports whether a title has been staged.
func (d AddLogDescriptor) HasTitle() bool {
	return d.Title != nil
}

// Log builds the staged log, validating the title.
func (d AddLogDescriptor) Log() (person.Log, error) {
	if !d.HasTitle() {
		return person.Log{}, ErrMissingTitle
	}
	return person.NewLog(*d.Title, d.description())
}

// LogsAfterAdd returns p's logs with the staged log appended. The returned
// slice never aliases p.Logs. It fails with ErrDuplicateLog if p already has an
// equal log.
func (d AddLogDescriptor) LogsAfterAdd(p person.Person) ([]person.Log, error) {
	toAdd, err := d.Log()
	if err != nil {
		return nil, err
	}
	if p.ContainsLog(toAdd) {
		return nil, ErrDuplicateLog
	}

	logs := make([]person.Log, 0, len(p.Logs)+1)
	logs = append(logs, p.Logs...)
	return append(logs, toAdd), nil
}

// Equal compares the staged (title, description) pairs.
func (d AddLogDescriptor) Equal(other AddLogDescriptor) bool {
	if d.HasTitle() != other.HasTitle() {
		return false
	}
	if d.HasTitle() && *d.Title != *other.Title {
		return false
	}
	return d.description() == other.description()
}

func (d AddLogDescriptor) String() string {
	title := "<none>"
	if d.HasTitle() {
		title = *d.Title
	}
	return fmt.Sprintf("Title: %s\nDescription: %s", title, d.description())
}

func (d AddLogDescriptor) description() string {
	if d.Description == nil {
		return ""
	}
	return *d.Description
}
