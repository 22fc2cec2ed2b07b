package person

import (
	"fmt"
	"slices"
	"strings"
)

// Log is a titled note attached to a friend. Two logs are equal when both
// title and description match.
type Log struct {
	Title       string
	Description string
}

// NewLog validates title and returns the log. An empty description is allowed.
func NewLog(title, description string) (Log, error) {
	if !IsValidLogTitle(title) {
		return Log{}, fmt.Errorf("%w: %q", ErrInvalidLogTitle, title)
	}
	return Log{Title: title, Description: description}, nil
}

// String renders the log as "Title: description", or just the title.
func (l Log) String() string {
	if l.Description == "" {
		return l.Title
	}
	return l.Title + ": " + l.Description
}

// Person is a snapshot of a friend's record. Values held by an address book
// are never modified in place; use WithLogs or WithTags to derive an edited copy.
type Person struct {
	Name        string
	Phone       string
	Email       string
	Address     string
	Description string
	Tags        []string
	Logs        []Log
}

// New builds a validated Person with normalized tags and no logs.
func New(name, phone, email, address, description string, tags []string) (Person, error) {
	p := Person{
		Name:        strings.TrimSpace(name),
		Phone:       strings.TrimSpace(phone),
		Email:       strings.TrimSpace(email),
		Address:     strings.TrimSpace(address),
		Description: strings.TrimSpace(description),
		Tags:        normalizeTags(tags),
	}
	if err := p.Validate(); err != nil {
		return Person{}, err
	}
	return p, nil
}

// Validate checks every field. Optional fields are only checked when set.
func (p Person) Validate() error {
	if !IsValidName(p.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, p.Name)
	}
	if p.Phone != "" && !IsValidPhone(p.Phone) {
		return fmt.Errorf("%w: %q", ErrInvalidPhone, p.Phone)
	}
	if p.Email != "" && !IsValidEmail(p.Email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, p.Email)
	}
	if p.Address != "" && !IsValidAddress(p.Address) {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, p.Address)
	}
	for _, tag := range p.Tags {
		if !IsValidTag(tag) {
			return fmt.Errorf("%w: %q", ErrInvalidTag, tag)
		}
	}
	for _, l := range p.Logs {
		if !IsValidLogTitle(l.Title) {
			return fmt.Errorf("%w: %q", ErrInvalidLogTitle, l.Title)
		}
	}
	return nil
}

// ContainsLog reports whether an equal log is already recorded.
func (p Person) ContainsLog(l Log) bool {
	return slices.Contains(p.Logs, l)
}

// WithLogs returns a copy of p whose logs are replaced by a copy of logs.
func (p Person) WithLogs(logs []Log) Person {
	edited := p.clone()
	edited.Logs = slices.Clone(logs)
	return edited
}

// WithTags returns a copy of p with the given tags, normalized.
func (p Person) WithTags(tags []string) Person {
	edited := p.clone()
	edited.Tags = normalizeTags(tags)
	return edited
}

// Equal compares all fields. Tags are compared as sets, logs in order.
func (p Person) Equal(other Person) bool {
	return p.Name == other.Name &&
		p.Phone == other.Phone &&
		p.Email == other.Email &&
		p.Address == other.Address &&
		p.Description == other.Description &&
		slices.Equal(normalizeTags(p.Tags), normalizeTags(other.Tags)) &&
		slices.Equal(p.Logs, other.Logs)
}

// HasName reports whether the friend's name is exactly name.
func (p Person) HasName(name string) bool {
	return p.Name == name
}

func (p Person) clone() Person {
	c := p
	c.Tags = slices.Clone(p.Tags)
	c.Logs = slices.Clone(p.Logs)
	return c
}

func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
		if tag != "" {
			out = append(out, tag)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
