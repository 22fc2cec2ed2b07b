package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/amigos/internal/addressbook"
	"github.com/faizmokh/amigos/internal/command"
	"github.com/faizmokh/amigos/internal/person"
)

type fakeStore struct {
	book    *addressbook.AddressBook
	loadErr error
	saved   *addressbook.AddressBook
	saves   int
}

func (f *fakeStore) Load(context.Context) (*addressbook.AddressBook, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return addressbook.New(f.book.Persons(), f.book.Events()), nil
}

func (f *fakeStore) Save(_ context.Context, book *addressbook.AddressBook) error {
	f.saved = book
	f.saves++
	return nil
}

func newFakeStore(t *testing.T, names ...string) *fakeStore {
	t.Helper()
	persons := make([]person.Person, 0, len(names))
	for _, name := range names {
		p, err := person.New(name, "", "", "", "", nil)
		if err != nil {
			t.Fatalf("person.New(%q): %v", name, err)
		}
		persons = append(persons, p)
	}
	return &fakeStore{book: addressbook.New(persons, nil)}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func loadedModel(t *testing.T, store *fakeStore) Model {
	t.Helper()
	m := NewModel(context.Background(), store, nil)
	m, _ = update(m, m.Init()())
	if m.loading {
		t.Fatalf("model still loading after bookLoadedMsg")
	}
	return m
}

func TestModelLoadsFriends(t *testing.T) {
	m := loadedModel(t, newFakeStore(t, "Alice Tan", "Bob Lee"))

	if len(m.visible) != 2 {
		t.Fatalf("visible = %d, want 2", len(m.visible))
	}
	if m.statusLine != "Loaded 2 friends." {
		t.Fatalf("statusLine = %q", m.statusLine)
	}

	m, _ = update(m, key("j"))
	if m.selected != 1 {
		t.Fatalf("selected = %d, want 1", m.selected)
	}
	m, _ = update(m, key("j"))
	if m.selected != 1 {
		t.Fatalf("selected moved past the end: %d", m.selected)
	}
	if view := m.View(); !strings.Contains(view, "Bob Lee") {
		t.Fatalf("view missing selected friend:\n%s", view)
	}
}

func TestModelShowsLoadError(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("disk on fire")}
	m := NewModel(context.Background(), store, nil)
	m, _ = update(m, m.Init()())

	if !strings.Contains(m.errorLine, "disk on fire") {
		t.Fatalf("errorLine = %q", m.errorLine)
	}
}

func typeLine(m Model, text string) Model {
	m, _ = update(m, key(text))
	return m
}

func TestModelAddsLogToSelectedFriend(t *testing.T) {
	store := newFakeStore(t, "Alice Tan", "Bob Lee")
	m := loadedModel(t, store)
	m, _ = update(m, key("j"))

	m, _ = update(m, key("L"))
	if m.mode != modeAddLog {
		t.Fatalf("mode = %v, want modeAddLog", m.mode)
	}
	if got := m.input.Value(); got != "t/" {
		t.Fatalf("input prefill = %q, want %q", got, "t/")
	}

	m = typeLine(m, "Likes tea d/green")
	m, cmd := update(m, key("enter"))
	if cmd == nil {
		t.Fatalf("expected save command, got nil (error %q)", m.errorLine)
	}
	if m.mode != modeNormal {
		t.Fatalf("mode = %v, want modeNormal", m.mode)
	}

	m, _ = update(m, cmd())
	if m.statusLine != command.MessageAddLogSuccess {
		t.Fatalf("statusLine = %q, want %q", m.statusLine, command.MessageAddLogSuccess)
	}
	if store.saves != 1 {
		t.Fatalf("saves = %d, want 1", store.saves)
	}
	bob := store.saved.Persons()[1]
	if len(bob.Logs) != 1 || bob.Logs[0] != (person.Log{Title: "Likes tea", Description: "green"}) {
		t.Fatalf("saved logs = %#v", bob.Logs)
	}
	if len(m.visible[1].Logs) != 1 {
		t.Fatalf("visible list not refreshed: %#v", m.visible[1])
	}
}

func TestModelRejectsDuplicateLog(t *testing.T) {
	store := newFakeStore(t, "Alice Tan")
	m := loadedModel(t, store)

	for i := 0; i < 2; i++ {
		m, _ = update(m, key("L"))
		m = typeLine(m, "Same")
		var cmd tea.Cmd
		m, cmd = update(m, key("enter"))
		if i == 0 {
			if cmd == nil {
				t.Fatalf("first add should save, error %q", m.errorLine)
			}
			m, _ = update(m, cmd())
			continue
		}
		if cmd != nil {
			t.Fatalf("duplicate add should not save")
		}
	}

	if m.errorLine != command.ErrDuplicateLog.Error() {
		t.Fatalf("errorLine = %q, want %q", m.errorLine, command.ErrDuplicateLog.Error())
	}
	if m.mode != modeAddLog {
		t.Fatalf("mode = %v, want input to stay open", m.mode)
	}
	if store.saves != 1 {
		t.Fatalf("saves = %d, want 1", store.saves)
	}
}

func TestModelFindTargetsFilteredList(t *testing.T) {
	store := newFakeStore(t, "Alice Tan", "Bob Lee", "Carol Tan")
	m := loadedModel(t, store)

	m, _ = update(m, key("/"))
	m = typeLine(m, "carol")
	m, _ = update(m, key("enter"))
	if len(m.visible) != 1 || m.visible[0].Name != "Carol Tan" {
		t.Fatalf("visible = %#v, want only Carol Tan", m.visible)
	}
	if m.statusLine != "1 friend listed!" {
		t.Fatalf("statusLine = %q", m.statusLine)
	}

	m, _ = update(m, key("L"))
	m = typeLine(m, "Plays chess")
	m, cmd := update(m, key("enter"))
	if cmd == nil {
		t.Fatalf("expected save command, error %q", m.errorLine)
	}
	m, _ = update(m, cmd())

	persons := store.saved.Persons()
	if len(persons[0].Logs) != 0 || len(persons[2].Logs) != 1 {
		t.Fatalf("log went to wrong friend: %#v", persons)
	}

	m, _ = update(m, key("esc"))
	if len(m.visible) != 3 || len(m.keywords) != 0 {
		t.Fatalf("esc should clear the filter, visible = %d", len(m.visible))
	}
}

func TestModelCopiesContactCard(t *testing.T) {
	m := loadedModel(t, newFakeStore(t, "Alice Tan"))
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	m, cmd := update(m, key("y"))
	if cmd == nil {
		t.Fatalf("expected copy command")
	}
	m, _ = update(m, cmd())

	if copied != "Alice Tan\n" {
		t.Fatalf("copied = %q", copied)
	}
	if m.statusLine != "Copied Alice Tan to the clipboard." {
		t.Fatalf("statusLine = %q", m.statusLine)
	}
}

func TestFormatListItemFitsWidth(t *testing.T) {
	p := person.Person{Name: "Bartholomew Montgomery Fitzgerald"}
	got := formatListItem(0, p, 12)
	if w := len([]rune(got)); w != 12 {
		t.Fatalf("formatListItem width = %d (%q), want 12", w, got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("formatListItem = %q, want ellipsis", got)
	}

	short := formatListItem(1, person.Person{Name: "Al"}, 8)
	if short != "2. Al   " {
		t.Fatalf("formatListItem = %q, want padded", short)
	}
}
