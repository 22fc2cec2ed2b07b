// Package markdown persists the address book as two human-editable Markdown
// files: friends.md and events.md.
package markdown

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/faizmokh/amigos/internal/addressbook"
	"github.com/faizmokh/amigos/internal/event"
	"github.com/faizmokh/amigos/internal/files"
	"github.com/faizmokh/amigos/internal/logging"
	"github.com/faizmokh/amigos/internal/person"
)

// Store reads and rewrites the Markdown data files managed by a files.Manager.
type Store struct {
	manager *files.Manager
	log     logging.Logger
}

// NewStore wires the dependencies required to read and write Markdown data files.
func NewStore(manager *files.Manager, log logging.Logger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{manager: manager, log: log.With("storage", "markdown")}
}

// Load parses both data files, creating them on first use.
func (s *Store) Load(ctx context.Context) (*addressbook.AddressBook, error) {
	if s == nil || s.manager == nil {
		return nil, fmt.Errorf("store not initialized with file manager")
	}

	var persons []person.Person
	err := s.readSections(ctx, s.manager.FriendsPath(), friendsHeader, func(sec *Section) error {
		p, err := decodePerson(sec)
		if err != nil {
			return err
		}
		persons = append(persons, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var events []event.Event
	err = s.readSections(ctx, s.manager.EventsPath(), eventsHeader, func(sec *Section) error {
		e, err := decodeEvent(sec)
		if err != nil {
			return err
		}
		events = append(events, e)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug(ctx, "loaded address book", "persons", len(persons), "events", len(events))
	return addressbook.New(persons, events), nil
}

// Save rewrites both data files from book.
func (s *Store) Save(ctx context.Context, book *addressbook.AddressBook) error {
	if s == nil || s.manager == nil {
		return fmt.Errorf("store not initialized with file manager")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	persons := book.Persons()
	sections := make([]string, 0, len(persons))
	for _, p := range persons {
		sections = append(sections, formatPerson(p))
	}
	if err := s.manager.WriteFileAtomic(s.manager.FriendsPath(), render(friendsHeader, sections)); err != nil {
		return fmt.Errorf("save friends: %w", err)
	}

	events := book.Events()
	sections = sections[:0]
	for _, e := range events {
		sections = append(sections, formatEvent(e))
	}
	if err := s.manager.WriteFileAtomic(s.manager.EventsPath(), render(eventsHeader, sections)); err != nil {
		return fmt.Errorf("save events: %w", err)
	}

	s.log.Debug(ctx, "saved address book", "persons", len(persons), "events", len(events))
	return nil
}

// Close is a no-op; files are opened per call.
func (s *Store) Close() error {
	return nil
}

func (s *Store) readSections(ctx context.Context, path, header string, fn func(*Section) error) error {
	if _, err := s.manager.EnsureFile(path, header); err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	parser := NewParser(file)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		sec, err := parser.NextSection()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if err := fn(sec); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
}

func render(header string, sections []string) []byte {
	var b strings.Builder
	b.WriteString(header)
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sec)
	}
	return []byte(b.String())
}
