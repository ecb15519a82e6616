package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"memo/internal/logging"
	"memo/internal/notes"
)

// handleNoteCreated inserts and selects the new note when the service handed
// back a usable id. When it did not, a full reload with selection reset picks
// up the newest note instead.
func (m *Model) handleNoteCreated(msg noteCreatedMsg) tea.Cmd {
	m.mutating = false
	if msg.err != nil {
		m.status = "create error: " + msg.err.Error()
		m.log.Warn("create failed", logging.F("err", msg.err))
		return nil
	}

	note := notes.Normalize(msg.record)
	if note.ID == "" {
		m.loading = true
		m.status = "loading notes"
		return fetchNotesCmd(m.api, m.requestTimeout, false)
	}

	if note.UpdatedAt.IsZero() {
		note.UpdatedAt = time.Now()
	}
	m.store.InsertOrReplace(note)
	m.store.SetActive(note.ID)
	m.lastSynced[note.ID] = savedPayload{title: note.Title, content: note.Content}
	m.rebindDraft()
	m.setFocus(focusTitle)
	m.status = "note created"
	return nil
}
