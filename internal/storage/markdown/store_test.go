package markdown

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faizmokh/amigos/internal/addressbook"
	"github.com/faizmokh/amigos/internal/event"
	"github.com/faizmokh/amigos/internal/files"
	"github.com/faizmokh/amigos/internal/person"
)

func newStore(t *testing.T) (*Store, *files.Manager) {
	t.Helper()
	manager, err := files.NewManager(t.TempDir())
	require.NoError(t, err)
	return NewStore(manager, nil), manager
}

func TestLoadCreatesEmptyFiles(t *testing.T) {
	store, manager := newStore(t)

	book, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, book.Persons())
	assert.Empty(t, book.Events())

	data, err := os.ReadFile(manager.FriendsPath())
	require.NoError(t, err)
	assert.Equal(t, friendsHeader, string(data))
	_, err = os.Stat(manager.EventsPath())
	assert.NoError(t, err)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	store, manager := newStore(t)
	ctx := context.Background()

	alice, err := person.New("Alice Tan", "91234567", "alice@example.com", "1 Main St", "met at\nuniversity", []string{"school", "#gym"})
	require.NoError(t, err)
	alice = alice.WithLogs([]person.Log{
		{Title: "Likes apples"},
		{Title: `Quote "this"`, Description: "multi\nline"},
	})
	bob, err := person.New("Bob Lee", "", "", "", "", nil)
	require.NoError(t, err)

	dinner, err := event.New("Dinner", event.MustParse("5-5-2021 1930"), []string{"Alice Tan", "Bob Lee"})
	require.NoError(t, err)
	dinner.Done = true

	book := addressbook.New([]person.Person{alice, bob}, []event.Event{dinner})
	require.NoError(t, store.Save(ctx, book))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)

	persons := loaded.Persons()
	require.Len(t, persons, 2)
	assert.True(t, alice.Equal(persons[0]), "got %+v", persons[0])
	assert.True(t, bob.Equal(persons[1]), "got %+v", persons[1])

	events := loaded.Events()
	require.Len(t, events, 1)
	assert.Equal(t, dinner.ID, events[0].ID)
	assert.Equal(t, "Dinner", events[0].Name)
	assert.True(t, dinner.At.Equal(events[0].At))
	assert.Equal(t, []string{"Alice Tan", "Bob Lee"}, events[0].Friends)
	assert.True(t, events[0].Done)

	data, err := os.ReadFile(manager.FriendsPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Alice Tan\n")
	assert.Contains(t, string(data), "- tags: #gym #school\n")
	assert.Contains(t, string(data), `- log: "Likes apples" ""`)
}

func TestLoadSkipsDuplicateLogs(t *testing.T) {
	store, manager := newStore(t)
	content := friendsHeader + `
## Alice Tan
- log: "Same" "desc"
- log: "Same" "desc"
- log: "Same" "other"
`
	require.NoError(t, os.WriteFile(manager.FriendsPath(), []byte(content), 0o644))

	book, err := store.Load(context.Background())
	require.NoError(t, err)
	persons := book.Persons()
	require.Len(t, persons, 1)
	assert.Equal(t, []person.Log{{Title: "Same", Description: "desc"}, {Title: "Same", Description: "other"}}, persons[0].Logs)
}

func TestLoadRejectsMalformedRecords(t *testing.T) {
	tests := map[string]struct {
		friends string
		events  string
	}{
		"invalid name":    {friends: "## !!bad\n"},
		"unquoted log":    {friends: "## Alice\n- log: no quotes\n"},
		"blank log title": {friends: "## Alice\n- log: \"\" \"x\"\n"},
		"invalid email":   {friends: "## Alice\n- email: nope\n"},
		"event date":      {events: "## Dinner\n- when: 31-2-2021 1200\n"},
		"event no date":   {events: "## Dinner\n- done: false\n"},
		"event done flag": {events: "## Dinner\n- when: 1-2-2021 1200\n- done: maybe\n"},
		"event id":        {events: "## Dinner\n- id: xyz\n- when: 1-2-2021 1200\n"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			store, manager := newStore(t)
			if tc.friends != "" {
				require.NoError(t, os.WriteFile(manager.FriendsPath(), []byte(friendsHeader+"\n"+tc.friends), 0o644))
			}
			if tc.events != "" {
				require.NoError(t, os.WriteFile(manager.EventsPath(), []byte(eventsHeader+"\n"+tc.events), 0o644))
			}

			_, err := store.Load(context.Background())
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

func TestLoadAssignsMissingEventID(t *testing.T) {
	store, manager := newStore(t)
	require.NoError(t, os.WriteFile(manager.EventsPath(), []byte(eventsHeader+"\n## Picnic\n- when: 1-6-2022 0930\n- friends: Alice, Bob\n"), 0o644))

	book, err := store.Load(context.Background())
	require.NoError(t, err)
	events := book.Events()
	require.Len(t, events, 1)
	assert.NotEqual(t, uuid.Nil, events[0].ID)
	assert.Equal(t, []string{"Alice", "Bob"}, events[0].Friends)
	assert.False(t, events[0].Done)
}

func TestSaveHonorsCancelledContext(t *testing.T) {
	store, manager := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Save(ctx, addressbook.New(nil, nil))
	assert.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(manager.FriendsPath())
	assert.True(t, os.IsNotExist(statErr))
}

func TestEncodeValue(t *testing.T) {
	assert.Equal(t, "plain text", encodeValue("plain text"))
	assert.Equal(t, `"two\nlines"`, encodeValue("two\nlines"))
	assert.True(t, strings.HasPrefix(encodeValue(`"quoted`), `"\"`))

	for _, v := range []string{"plain", "two\nlines", `"quoted`, " padded "} {
		got, err := decodeValue(encodeValue(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}
