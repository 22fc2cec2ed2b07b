package addressbook

import (
	"strings"

	"github.com/faizmokh/amigos/internal/person"
)

// NameMatch is the outcome of an exact-name lookup. Callers must handle the
// zero, one and many cases separately.
type NameMatch struct {
	Name    string
	Matches []person.Person
}

// MatchName collects every person in persons whose name is exactly name.
func MatchName(persons []person.Person, name string) NameMatch {
	m := NameMatch{Name: name}
	for _, p := range persons {
		if p.HasName(name) {
			m.Matches = append(m.Matches, p)
		}
	}
	return m
}

// Count returns the number of matches.
func (m NameMatch) Count() int {
	return len(m.Matches)
}

// One returns the single match. ok is false for zero or several matches.
func (m NameMatch) One() (p person.Person, ok bool) {
	if len(m.Matches) != 1 {
		return person.Person{}, false
	}
	return m.Matches[0], true
}

// NameContainsKeywords returns a predicate matching persons whose name contains
// any of keywords as a whole word, ignoring case.
func NameContainsKeywords(keywords []string) func(person.Person) bool {
	wanted := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			wanted = append(wanted, strings.ToLower(k))
		}
	}
	return func(p person.Person) bool {
		for _, word := range strings.Fields(strings.ToLower(p.Name)) {
			for _, k := range wanted {
				if word == k {
					return true
				}
			}
		}
		return false
	}
}
