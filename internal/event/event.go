package event

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidName is returned for a blank event name.
var ErrInvalidName = errors.New("event names should not be blank")

// Event is something planned with one or more friends.
type Event struct {
	ID      uuid.UUID
	Name    string
	At      DateTime
	Friends []string
	Done    bool
}

// New validates the fields and assigns a fresh id. Duplicate friend names are dropped.
func New(name string, at DateTime, friends []string) (Event, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, "\r\n") {
		return Event{}, ErrInvalidName
	}
	if at.IsZero() {
		return Event{}, fmt.Errorf("%w: missing date", ErrInvalidDateTime)
	}

	return Event{
		ID:      uuid.New(),
		Name:    name,
		At:      at,
		Friends: uniqueNames(friends),
	}, nil
}

// SameAs reports whether e and other describe the same occasion: same name at the same time.
func (e Event) SameAs(other Event) bool {
	return strings.EqualFold(e.Name, other.Name) && e.At.Equal(other.At)
}

// Involves reports whether name is one of the event's friends.
func (e Event) Involves(name string) bool {
	return slices.Contains(e.Friends, name)
}

func uniqueNames(names []string) []string {
	var out []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || slices.Contains(out, name) {
			continue
		}
		out = append(out, name)
	}
	return out
}
