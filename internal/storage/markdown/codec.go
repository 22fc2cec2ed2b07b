package markdown

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/faizmokh/amigos/internal/event"
	"github.com/faizmokh/amigos/internal/person"
)

// ErrMalformedRecord marks a section that cannot be turned back into a friend or event.
var ErrMalformedRecord = errors.New("malformed record")

const (
	friendsHeader = "# Friends\n"
	eventsHeader  = "# Events\n"

	keyPhone       = "phone"
	keyEmail       = "email"
	keyAddress     = "address"
	keyDescription = "description"
	keyTags        = "tags"
	keyLog         = "log"
	keyID          = "id"
	keyWhen        = "when"
	keyFriends     = "friends"
	keyDone        = "done"
)

func formatPerson(p person.Person) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n", p.Name)
	writeField(&b, keyPhone, p.Phone)
	writeField(&b, keyEmail, p.Email)
	writeField(&b, keyAddress, p.Address)
	writeField(&b, keyDescription, p.Description)
	if len(p.Tags) > 0 {
		tags := make([]string, len(p.Tags))
		for i, tag := range p.Tags {
			tags[i] = "#" + tag
		}
		fmt.Fprintf(&b, "- %s: %s\n", keyTags, strings.Join(tags, " "))
	}
	for _, l := range p.Logs {
		fmt.Fprintf(&b, "- %s: %s %s\n", keyLog, strconv.Quote(l.Title), strconv.Quote(l.Description))
	}
	return b.String()
}

func formatEvent(e event.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n", e.Name)
	fmt.Fprintf(&b, "- %s: %s\n", keyID, e.ID)
	fmt.Fprintf(&b, "- %s: %s\n", keyWhen, e.At.Input())
	if len(e.Friends) > 0 {
		fmt.Fprintf(&b, "- %s: %s\n", keyFriends, strings.Join(e.Friends, ", "))
	}
	fmt.Fprintf(&b, "- %s: %t\n", keyDone, e.Done)
	return b.String()
}

func writeField(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", key, encodeValue(value))
}

// encodeValue quotes values that would not survive a single-line round trip.
func encodeValue(v string) string {
	if strings.ContainsAny(v, "\r\n") || strings.HasPrefix(v, `"`) || v != strings.TrimSpace(v) {
		return strconv.Quote(v)
	}
	return v
}

func decodeValue(v string) (string, error) {
	if !strings.HasPrefix(v, `"`) {
		return v, nil
	}
	return strconv.Unquote(v)
}

func decodePerson(s *Section) (person.Person, error) {
	p := person.Person{Name: s.Heading}

	for _, target := range []struct {
		key string
		dst *string
	}{
		{keyPhone, &p.Phone},
		{keyEmail, &p.Email},
		{keyAddress, &p.Address},
		{keyDescription, &p.Description},
	} {
		raw, ok := s.Get(target.key)
		if !ok {
			continue
		}
		value, err := decodeValue(raw)
		if err != nil {
			return person.Person{}, fmt.Errorf("%w: friend %q field %s: %v", ErrMalformedRecord, s.Heading, target.key, err)
		}
		*target.dst = value
	}

	if raw, ok := s.Get(keyTags); ok {
		p = p.WithTags(strings.Fields(raw))
	}

	var logs []person.Log
	for _, raw := range s.All(keyLog) {
		l, err := parseLog(raw)
		if err != nil {
			return person.Person{}, fmt.Errorf("%w: friend %q: %v", ErrMalformedRecord, s.Heading, err)
		}
		if p.WithLogs(logs).ContainsLog(l) {
			continue
		}
		logs = append(logs, l)
	}
	p = p.WithLogs(logs)

	if err := p.Validate(); err != nil {
		return person.Person{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return p, nil
}

func parseLog(raw string) (person.Log, error) {
	titleQuoted, err := strconv.QuotedPrefix(raw)
	if err != nil {
		return person.Log{}, fmt.Errorf("log title: %w", err)
	}
	title, _ := strconv.Unquote(titleQuoted)

	rest := strings.TrimSpace(raw[len(titleQuoted):])
	var description string
	if rest != "" {
		descQuoted, err := strconv.QuotedPrefix(rest)
		if err != nil {
			return person.Log{}, fmt.Errorf("log description: %w", err)
		}
		description, _ = strconv.Unquote(descQuoted)
	}

	return person.NewLog(title, description)
}

func decodeEvent(s *Section) (event.Event, error) {
	e := event.Event{Name: s.Heading}

	raw, ok := s.Get(keyWhen)
	if !ok {
		return event.Event{}, fmt.Errorf("%w: event %q has no date", ErrMalformedRecord, s.Heading)
	}
	at, err := event.Parse(raw)
	if err != nil {
		return event.Event{}, fmt.Errorf("%w: event %q: %w", ErrMalformedRecord, s.Heading, err)
	}
	e.At = at

	if raw, ok := s.Get(keyID); ok {
		id, err := uuid.Parse(raw)
		if err != nil {
			return event.Event{}, fmt.Errorf("%w: event %q id: %v", ErrMalformedRecord, s.Heading, err)
		}
		e.ID = id
	} else {
		e.ID = uuid.New()
	}

	if raw, ok := s.Get(keyFriends); ok {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				e.Friends = append(e.Friends, name)
			}
		}
	}

	if raw, ok := s.Get(keyDone); ok {
		done, err := strconv.ParseBool(raw)
		if err != nil {
			return event.Event{}, fmt.Errorf("%w: event %q done flag: %v", ErrMalformedRecord, s.Heading, err)
		}
		e.Done = done
	}

	return e, nil
}
