package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/amigos/internal/addressbook"
	"github.com/faizmokh/amigos/internal/command"
	"github.com/faizmokh/amigos/internal/logging"
	"github.com/faizmokh/amigos/internal/person"
)

// Store is the persistence the TUI needs.
type Store interface {
	Load(ctx context.Context) (*addressbook.AddressBook, error)
	Save(ctx context.Context, book *addressbook.AddressBook) error
}

// Model owns Bubble Tea state for the main TUI experience.
type Model struct {
	ctx   context.Context
	store Store
	log   logging.Logger
	copy  func(string) error

	book     *addressbook.AddressBook
	visible  []person.Person
	selected int
	keywords []string

	mode  mode
	input textinput.Model
	width int

	loading    bool
	statusLine string
	errorLine  string
}

type mode uint8

const (
	modeNormal mode = iota
	modeFind
	modeAddLog
)

type bookLoadedMsg struct {
	book *addressbook.AddressBook
	err  error
}

type savedMsg struct {
	feedback string
	err      error
}

type copiedMsg struct {
	name string
	err  error
}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, store Store, log logging.Logger) Model {
	if log == nil {
		log = logging.Discard()
	}

	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 256

	return Model{
		ctx:        ctx,
		store:      store,
		log:        log,
		copy:       clipboard.WriteAll,
		book:       addressbook.New(nil, nil),
		mode:       modeNormal,
		input:      input,
		width:      defaultWidth,
		loading:    true,
		statusLine: "Loading friends...",
	}
}

// Init loads the address book.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case bookLoadedMsg:
		return m.handleLoaded(msg)
	case savedMsg:
		return m.handleSaved(msg)
	case copiedMsg:
		return m.handleCopied(msg)
	default:
		if m.mode != modeNormal {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeNormal {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		if m.selected < len(m.visible)-1 {
			m.selected++
			m.statusLine = fmt.Sprintf("Selected friend %d of %d", m.selected+1, len(m.visible))
			m.errorLine = ""
		}
	case "up", "k":
		if m.selected > 0 {
			m.selected--
			m.statusLine = fmt.Sprintf("Selected friend %d of %d", m.selected+1, len(m.visible))
			m.errorLine = ""
		}
	case "r":
		return m.reload()
	case "/":
		return m.beginInput(modeFind, "Find friends (keywords; Enter to filter, empty to show all, Esc to cancel)", strings.Join(m.keywords, " "))
	case "esc":
		if len(m.keywords) > 0 {
			return m.applyFilter(nil)
		}
	case "L":
		if len(m.visible) == 0 || m.loading {
			return m, nil
		}
		label := fmt.Sprintf("New log for %s (t/TITLE d/DESCRIPTION; Enter to save, Esc to cancel)", m.visible[m.selected].Name)
		return m.beginInput(modeAddLog, label, "t/")
	case "y":
		if len(m.visible) == 0 {
			return m, nil
		}
		return m, m.copyCmd(m.visible[m.selected])
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submitInput()
	case tea.KeyEsc:
		return m.cancelInput("Cancelled.")
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) beginInput(next mode, label, value string) (tea.Model, tea.Cmd) {
	m.mode = next
	m.input.Placeholder = label
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.statusLine = label
	m.errorLine = ""
	return m, m.input.Focus()
}

func (m Model) cancelInput(message string) (tea.Model, tea.Cmd) {
	m.resetInput()
	if message != "" {
		m.statusLine = message
	}
	m.errorLine = ""
	return m, nil
}

func (m *Model) resetInput() {
	m.mode = modeNormal
	m.input.Blur()
	m.input.SetValue("")
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case modeFind:
		m.resetInput()
		return m.applyFilter(strings.Fields(value))
	case modeAddLog:
		descriptor, err := command.ParseAddLogDescriptor(value)
		if err != nil {
			m.errorLine = err.Error()
			return m, nil
		}
		return m.execute(command.NewAddLogByIndex(m.selected, descriptor), command.AddLogCommandWord)
	default:
		return m, nil
	}
}

// execute runs c on the update loop and persists a snapshot of the result.
func (m Model) execute(c command.Command, name string) (tea.Model, tea.Cmd) {
	result, err := c.Execute(m.book)
	if err != nil {
		m.log.Info(m.ctx, "command rejected", "command", name, "error", err)
		m.errorLine = err.Error()
		return m, nil
	}

	m.resetInput()
	m.refreshVisible()
	m.statusLine = "Saving..."
	m.errorLine = ""
	return m, m.saveCmd(result.Feedback)
}

func (m Model) applyFilter(keywords []string) (tea.Model, tea.Cmd) {
	var (
		result command.Result
		err    error
	)
	if len(keywords) == 0 {
		result, err = command.ListCommand{}.Execute(m.book)
	} else {
		result, err = command.FindCommand{Keywords: keywords}.Execute(m.book)
	}
	if err != nil {
		m.errorLine = err.Error()
		return m, nil
	}

	m.keywords = keywords
	m.selected = 0
	m.refreshVisible()
	m.statusLine = result.Feedback
	m.errorLine = ""
	return m, nil
}

func (m *Model) refreshVisible() {
	m.visible = m.book.FilteredPersons()
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.statusLine = "Refreshing friends..."
	m.errorLine = ""
	return m, m.loadCmd()
}

func (m Model) handleLoaded(msg bookLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Failed to load: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}

	m.book = msg.book
	if len(m.keywords) > 0 {
		m.book.UpdateFilter(addressbook.NameContainsKeywords(m.keywords))
	}
	m.refreshVisible()
	m.errorLine = ""
	if len(m.visible) == 0 {
		m.statusLine = "No friends yet. Add one with `amigos add NAME`."
	} else {
		m.statusLine = fmt.Sprintf("Loaded %d friend%s.", len(m.visible), plural(len(m.visible)))
	}
	return m, nil
}

func (m Model) handleSaved(msg savedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Save failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	m.errorLine = ""
	m.statusLine = msg.feedback
	return m, nil
}

func (m Model) handleCopied(msg copiedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Copy failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	m.errorLine = ""
	m.statusLine = fmt.Sprintf("Copied %s to the clipboard.", msg.name)
	return m, nil
}

func (m Model) loadCmd() tea.Cmd {
	store := m.store
	ctx := m.ctx
	return func() tea.Msg {
		book, err := store.Load(ctx)
		return bookLoadedMsg{book: book, err: err}
	}
}

// saveCmd persists a copy of the book so the update loop can keep mutating its own.
func (m Model) saveCmd(feedback string) tea.Cmd {
	store := m.store
	ctx := m.ctx
	snapshot := addressbook.New(m.book.Persons(), m.book.Events())
	return func() tea.Msg {
		if err := store.Save(ctx, snapshot); err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{feedback: feedback}
	}
}

func (m Model) copyCmd(p person.Person) tea.Cmd {
	copyFn := m.copy
	card := p.Card()
	return func() tea.Msg {
		return copiedMsg{name: p.Name, err: copyFn(card)}
	}
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
