package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faizmokh/amigos/internal/addressbook"
	"github.com/faizmokh/amigos/internal/person"
)

func newPerson(t *testing.T, name string, logs ...person.Log) person.Person {
	t.Helper()
	p, err := person.New(name, "91234567", "", "", "", []string{"friends"})
	require.NoError(t, err)
	return p.WithLogs(logs)
}

func newBook(t *testing.T) *addressbook.AddressBook {
	t.Helper()
	return addressbook.New([]person.Person{
		newPerson(t, "Alice Tan", person.Log{Title: "Likes apples"}),
		newPerson(t, "Bob Lee"),
		newPerson(t, "Carol Tan"),
	}, nil)
}

func TestAddLogByIndexAppendsLog(t *testing.T) {
	book := newBook(t)
	before := book.Persons()

	cmd := NewAddLogByIndex(0, NewAddLogDescriptor("Birthday", "May 5"))
	result, err := cmd.Execute(book)
	require.NoError(t, err)
	assert.Equal(t, MessageAddLogSuccess, result.Feedback)

	after := book.Persons()
	want := []person.Log{{Title: "Likes apples"}, {Title: "Birthday", Description: "May 5"}}
	assert.Equal(t, want, after[0].Logs)

	// Everything else is untouched.
	assert.Equal(t, before[0].Name, after[0].Name)
	assert.Equal(t, before[0].Phone, after[0].Phone)
	assert.Equal(t, before[0].Tags, after[0].Tags)
	assert.True(t, before[1].Equal(after[1]))
	assert.True(t, before[2].Equal(after[2]))
	assert.Len(t, before[0].Logs, 1, "previous snapshot must not change")
}

func TestAddLogByIndexUsesFilteredList(t *testing.T) {
	book := newBook(t)
	book.UpdateFilter(addressbook.NameContainsKeywords([]string{"tan"}))

	_, err := NewAddLogByIndex(1, NewAddLogDescriptor("Moved house", "")).Execute(book)
	require.NoError(t, err)

	persons := book.Persons()
	assert.Empty(t, persons[1].Logs, "Bob is hidden by the filter")
	assert.Equal(t, []person.Log{{Title: "Moved house"}}, persons[2].Logs)
}

func TestAddLogByIndexOutOfBounds(t *testing.T) {
	book := newBook(t)
	before := book.Persons()

	for _, index := range []int{3, 4, -1} {
		_, err := NewAddLogByIndex(index, NewAddLogDescriptor("Title", "")).Execute(book)
		assert.ErrorIs(t, err, ErrInvalidIndex, "index %d", index)
	}

	book.UpdateFilter(addressbook.NameContainsKeywords([]string{"bob"}))
	_, err := NewAddLogByIndex(1, NewAddLogDescriptor("Title", "")).Execute(book)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	assertUnchanged(t, before, book.Persons())
}

func TestAddLogByName(t *testing.T) {
	book := newBook(t)

	_, err := NewAddLogByName("Bob Lee", NewAddLogDescriptor("Plays chess", "Sundays")).Execute(book)
	require.NoError(t, err)
	assert.Equal(t, []person.Log{{Title: "Plays chess", Description: "Sundays"}}, book.Persons()[1].Logs)
}

func TestAddLogByNameIgnoresFilter(t *testing.T) {
	book := newBook(t)
	book.UpdateFilter(addressbook.NameContainsKeywords([]string{"alice"}))

	_, err := NewAddLogByName("Carol Tan", NewAddLogDescriptor("Plays chess", "")).Execute(book)
	require.NoError(t, err)
	assert.Len(t, book.Persons()[2].Logs, 1)
}

func TestAddLogByNameNotFound(t *testing.T) {
	book := newBook(t)
	before := book.Persons()

	for _, name := range []string{"Dave", "alice tan", "Alice"} {
		_, err := NewAddLogByName(name, NewAddLogDescriptor("Title", "")).Execute(book)
		assert.ErrorIs(t, err, ErrPersonNotFound, "name %q", name)
	}
	assertUnchanged(t, before, book.Persons())
}

func TestAddLogByNameAmbiguous(t *testing.T) {
	book := addressbook.New([]person.Person{
		newPerson(t, "Sam"),
		newPerson(t, "Sam", person.Log{Title: "Other Sam"}),
	}, nil)
	before := book.Persons()

	_, err := NewAddLogByName("Sam", NewAddLogDescriptor("Title", "")).Execute(book)
	assert.ErrorIs(t, err, ErrAmbiguousName)
	assertUnchanged(t, before, book.Persons())
}

func TestAddLogDuplicate(t *testing.T) {
	book := newBook(t)
	before := book.Persons()

	_, err := NewAddLogByIndex(0, NewAddLogDescriptor("Likes apples", "")).Execute(book)
	assert.ErrorIs(t, err, ErrDuplicateLog)
	assert.Equal(t, "This log already exists for this friend.", err.Error())

	_, err = NewAddLogByName("Alice Tan", AddLogDescriptor{Title: ptr("Likes apples")}).Execute(book)
	assert.ErrorIs(t, err, ErrDuplicateLog)

	assertUnchanged(t, before, book.Persons())

	// Same title with a different description is a different log.
	_, err = NewAddLogByIndex(0, NewAddLogDescriptor("Likes apples", "green ones")).Execute(book)
	assert.NoError(t, err)
}

func TestAddLogMissingTitle(t *testing.T) {
	book := newBook(t)

	_, err := NewAddLogByIndex(0, AddLogDescriptor{}).Execute(book)
	assert.ErrorIs(t, err, ErrMissingTitle)

	_, err = NewAddLogByIndex(0, NewAddLogDescriptor(" ", "")).Execute(book)
	assert.ErrorIs(t, err, person.ErrInvalidLogTitle)
}

func TestAddLogCommandEqual(t *testing.T) {
	d := NewAddLogDescriptor("Title", "Desc")

	a := NewAddLogByIndex(0, d)
	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(NewAddLogByIndex(0, NewAddLogDescriptor("Title", "Desc"))))
	assert.False(t, a.Equal(NewAddLogByIndex(1, d)))
	assert.False(t, a.Equal(NewAddLogByIndex(0, NewAddLogDescriptor("Title", ""))))
	assert.False(t, a.Equal(NewAddLogByName("Alice", d)))
	assert.False(t, a.Equal(nil))

	n := NewAddLogByName("Alice", d)
	assert.True(t, n.Equal(NewAddLogByName("Alice", d)))
	assert.False(t, n.Equal(NewAddLogByName("Bob", d)))
}

func TestAddLogCommandString(t *testing.T) {
	cmd := NewAddLogByIndex(0, NewAddLogDescriptor("Title", "Desc"))
	assert.Equal(t, "Index: 1\nContent:\nTitle: Title\nDescription: Desc", cmd.String())

	byName := NewAddLogByName("Alice", AddLogDescriptor{Title: ptr("Title")})
	assert.Equal(t, "Name: Alice\nContent:\nTitle: Title\nDescription: ", byName.String())
}

func assertUnchanged(t *testing.T, before, after []person.Person) {
	t.Helper()
	require.Len(t, after, len(before))
	for i := range before {
		assert.True(t, before[i].Equal(after[i]), "person %d changed", i)
	}
}

func ptr(s string) *string {
	return &s
}
