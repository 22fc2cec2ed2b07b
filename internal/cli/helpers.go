package cli

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/faizmokh/amigos/internal/addressbook"
	"github.com/faizmokh/amigos/internal/command"
	"github.com/faizmokh/amigos/internal/event"
	"github.com/faizmokh/amigos/internal/person"
)

func formatPerson(p person.Person) string {
	builder := strings.Builder{}
	builder.Grow(32 + len(p.Name) + len(p.Tags)*8)

	builder.WriteString(p.Name)
	if p.Phone != "" {
		builder.WriteString(" ")
		builder.WriteString(p.Phone)
	}

	if len(p.Tags) > 0 {
		builder.WriteString(" (")
		for i, tag := range p.Tags {
			if i > 0 {
				builder.WriteString(", ")
			}
			builder.WriteString("#")
			builder.WriteString(tag)
		}
		builder.WriteString(")")
	}

	switch n := len(p.Logs); n {
	case 0:
	case 1:
		builder.WriteString(" [1 log]")
	default:
		fmt.Fprintf(&builder, " [%d logs]", n)
	}

	return builder.String()
}

func printPersons(out io.Writer, persons []person.Person) {
	if len(persons) == 0 {
		fmt.Fprintln(out, "(no friends)")
		return
	}
	for i, p := range persons {
		fmt.Fprintf(out, "%d. %s\n", i+1, formatPerson(p))
	}
}

func formatEvent(e event.Event) string {
	status := " "
	if e.Done {
		status = "x"
	}

	builder := strings.Builder{}
	builder.WriteString("[")
	builder.WriteString(status)
	builder.WriteString("] ")
	builder.WriteString(e.At.String())
	builder.WriteString(" ")
	builder.WriteString(e.Name)
	if len(e.Friends) > 0 {
		builder.WriteString(" (with ")
		builder.WriteString(strings.Join(e.Friends, ", "))
		builder.WriteString(")")
	}
	return builder.String()
}

// chronological returns events ordered by time, keeping insertion order for ties.
func chronological(events []event.Event) []event.Event {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b event.Event) int {
		switch {
		case a.At.Before(b.At):
			return -1
		case b.At.Before(a.At):
			return 1
		default:
			return 0
		}
	})
	return sorted
}

// resolvePerson finds a friend by 1-based index into the full list, or by exact name.
func resolvePerson(book *addressbook.AddressBook, indexArg, name string) (person.Person, error) {
	persons := book.Persons()
	if name != "" {
		match := addressbook.MatchName(persons, name)
		switch match.Count() {
		case 0:
			return person.Person{}, command.ErrPersonNotFound
		case 1:
			p, _ := match.One()
			return p, nil
		default:
			return person.Person{}, command.ErrAmbiguousName
		}
	}

	index, err := strconv.Atoi(strings.TrimSpace(indexArg))
	if err != nil || index < 1 || index > len(persons) {
		return person.Person{}, command.ErrInvalidIndex
	}
	return persons[index-1], nil
}
