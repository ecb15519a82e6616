package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"memo/internal/config"
	"memo/internal/logging"
	"memo/internal/notes"
)

const (
	placeholderTitle = "Untitled"
	minListWidth     = 24
	maxListWidth     = 40
	minEditorWidth   = 20
	minContentHeight = 6
)

type focusZone int

const (
	focusSidebar focusZone = iota
	focusFilter
	focusTitle
	focusContent
)

// savedPayload is the last (trimmed title, content) pair known to match the
// server for a note. Autosave compares against it to skip no-op writes.
type savedPayload struct {
	title   string
	content string
}

type Model struct {
	api NotesAPI
	log logging.Logger

	store *notes.Store

	titleInput  textinput.Model
	filterInput textinput.Model
	content     textarea.Model
	preview     viewport.Model
	loader      spinner.Model

	focus       focusZone
	previewOpen bool

	// draftID is the note the title/content inputs are bound to. saveSeq
	// invalidates armed debounce timers: a tick whose seq is stale loses.
	draftID string
	saveSeq int

	saveDelay      time.Duration
	requestTimeout time.Duration

	lastSynced map[string]savedPayload

	loading  bool
	saving   bool
	mutating bool

	status    string
	width     int
	height    int
	listWidth int
}

func NewModel(api NotesAPI, cfg config.Config, log logging.Logger) Model {
	if log == nil {
		log = logging.Nop()
	}

	title := textinput.New()
	title.Placeholder = placeholderTitle
	title.Prompt = ""
	title.CharLimit = 0

	filter := textinput.New()
	filter.Placeholder = "filter"
	filter.Prompt = "/"
	filter.CharLimit = 0

	content := textarea.New()
	content.Placeholder = ""
	content.ShowLineNumbers = false
	content.CharLimit = 0

	loader := spinner.New()
	loader.Spinner = spinner.Line
	loader.Style = lipgloss.NewStyle()

	return Model{
		api:            api,
		log:            log.With(logging.F("component", "ui")),
		store:          notes.NewStore(),
		titleInput:     title,
		filterInput:    filter,
		content:        content,
		preview:        viewport.New(minEditorWidth, minContentHeight),
		loader:         loader,
		focus:          focusSidebar,
		saveDelay:      cfg.AutosaveDelay(),
		requestTimeout: cfg.RequestTimeout(),
		lastSynced:     map[string]savedPayload{},
		status:         "loading notes",
	}
}

func Run(api NotesAPI, cfg config.Config, log logging.Logger) error {
	model := NewModel(api, cfg, log)
	p := tea.NewProgram(&model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(fetchNotesCmd(m.api, m.requestTimeout, false), m.loader.Tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.loader, cmd = m.loader.Update(msg)
		return m, cmd
	case notesLoadedMsg:
		m.handleNotesLoaded(msg)
		return m, nil
	case noteCreatedMsg:
		return m, m.handleNoteCreated(msg)
	case noteSavedMsg:
		m.handleNoteSaved(msg)
		return m, nil
	case noteDeletedMsg:
		m.handleNoteDeleted(msg)
		return m, nil
	case saveDebounceMsg:
		return m, m.handleSaveDebounce(msg)
	case tea.KeyMsg:
		return m.reduceKey(msg)
	}
	return m, nil
}

func (m *Model) busy() bool {
	return m.loading || m.saving || m.mutating
}

func (m *Model) reduceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+r":
		return m, m.startRefresh()
	case "ctrl+n":
		return m, m.startCreate()
	case "ctrl+d":
		return m, m.startDelete()
	case "ctrl+p":
		m.togglePreview()
		return m, nil
	case "ctrl+y":
		m.copyActiveContent()
		return m, nil
	case "tab":
		m.cycleFocus()
		return m, nil
	case "esc":
		m.setFocus(focusSidebar)
		return m, nil
	}

	switch m.focus {
	case focusSidebar:
		return m.reduceSidebarKey(msg)
	case focusFilter:
		return m.reduceFilterKey(msg)
	case focusTitle, focusContent:
		return m.reduceEditorKey(msg)
	}
	return m, nil
}

func (m *Model) reduceSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.moveSelection(-1)
		return m, nil
	case "down", "j":
		m.moveSelection(1)
		return m, nil
	case "enter":
		if m.store.Active() != nil {
			m.setFocus(focusTitle)
		}
		return m, nil
	case "/":
		m.setFocus(focusFilter)
		return m, nil
	}
	return m, nil
}

func (m *Model) reduceFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		m.setFocus(focusSidebar)
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.store.SetQuery(m.filterInput.Value())
	return m, cmd
}

func (m *Model) reduceEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.draftID == "" {
		return m, nil
	}
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		if msg.String() == "enter" {
			m.setFocus(focusContent)
			return m, nil
		}
		before := m.titleInput.Value()
		m.titleInput, cmd = m.titleInput.Update(msg)
		if m.titleInput.Value() != before {
			return m, tea.Batch(cmd, m.scheduleAutosave())
		}
	case focusContent:
		before := m.content.Value()
		m.content, cmd = m.content.Update(msg)
		if m.content.Value() != before {
			if m.previewOpen {
				m.renderPreview()
			}
			return m, tea.Batch(cmd, m.scheduleAutosave())
		}
	}
	return m, cmd
}

func (m *Model) moveSelection(delta int) {
	visible := m.store.Visible()
	if len(visible) == 0 {
		return
	}
	index := -1
	for i, note := range visible {
		if note.ID == m.store.ActiveID() {
			index = i
			break
		}
	}
	if index == -1 {
		index = 0
	} else {
		index += delta
		if index < 0 {
			index = 0
		}
		if index >= len(visible) {
			index = len(visible) - 1
		}
	}
	m.store.SetActive(visible[index].ID)
	m.rebindDraft()
}

func (m *Model) setFocus(zone focusZone) {
	m.focus = zone
	m.titleInput.Blur()
	m.filterInput.Blur()
	m.content.Blur()
	switch zone {
	case focusFilter:
		m.filterInput.Focus()
	case focusTitle:
		m.titleInput.Focus()
	case focusContent:
		m.content.Focus()
	}
}

func (m *Model) cycleFocus() {
	switch m.focus {
	case focusSidebar, focusFilter:
		if m.store.Active() != nil {
			m.setFocus(focusTitle)
		}
	case focusTitle:
		m.setFocus(focusContent)
	case focusContent:
		m.setFocus(focusSidebar)
	}
}

// rebindDraft resets the editable draft whenever the active note identity
// changes. The sequence bump invalidates any debounce armed for the previous
// note so a pending save cannot leak across selections.
func (m *Model) rebindDraft() {
	active := m.store.Active()
	id := ""
	if active != nil {
		id = active.ID
	}
	if id == m.draftID {
		return
	}
	m.saveSeq++
	m.draftID = id
	if active == nil {
		m.titleInput.SetValue("")
		m.content.SetValue("")
		if m.focus == focusTitle || m.focus == focusContent {
			m.setFocus(focusSidebar)
		}
		return
	}
	m.titleInput.SetValue(active.Title)
	m.content.SetValue(active.Content)
	if m.previewOpen {
		m.renderPreview()
	}
}

func (m *Model) startRefresh() tea.Cmd {
	if m.loading {
		return nil
	}
	m.loading = true
	m.status = "loading notes"
	return tea.Batch(fetchNotesCmd(m.api, m.requestTimeout, true), m.loader.Tick)
}

func (m *Model) startCreate() tea.Cmd {
	if m.mutating {
		return nil
	}
	m.mutating = true
	m.status = "creating note"
	return tea.Batch(createNoteCmd(m.api, m.requestTimeout, placeholderTitle, ""), m.loader.Tick)
}

func (m *Model) startDelete() tea.Cmd {
	active := m.store.Active()
	if active == nil || m.mutating {
		return nil
	}
	m.mutating = true
	m.status = "deleting " + displayTitle(active.Title)
	return tea.Batch(deleteNoteCmd(m.api, m.requestTimeout, active.ID), m.loader.Tick)
}

func (m *Model) handleNotesLoaded(msg notesLoadedMsg) {
	m.loading = false
	if msg.err != nil {
		m.status = "load error: " + msg.err.Error()
		m.log.Warn("load failed", logging.F("err", msg.err))
		return
	}
	m.store.Load(msg.records, msg.preserve)
	m.lastSynced = map[string]savedPayload{}
	for _, note := range m.store.Notes() {
		m.lastSynced[note.ID] = savedPayload{title: note.Title, content: note.Content}
	}
	m.rebindDraft()
	m.status = fmt.Sprintf("%d notes", m.store.Len())
}

func (m *Model) handleNoteDeleted(msg noteDeletedMsg) {
	m.mutating = false
	if msg.err != nil {
		m.status = "delete error: " + msg.err.Error()
		m.log.Warn("delete failed", logging.F("id", msg.id), logging.F("err", msg.err))
		return
	}
	m.store.Remove(msg.id)
	delete(m.lastSynced, msg.id)
	m.rebindDraft()
	m.status = "note deleted"
}

func displayTitle(title string) string {
	if title == "" {
		return "(untitled)"
	}
	return title
}
