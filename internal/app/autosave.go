package app

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"memo/internal/logging"
	"memo/internal/notes"
)

// scheduleAutosave arms the debounce timer for the current draft. Every call
// bumps the sequence, so in a burst of edits only the last armed timer's tick
// is still live when it fires; the rest are dropped on arrival.
func (m *Model) scheduleAutosave() tea.Cmd {
	if m.draftID == "" {
		return nil
	}
	m.saveSeq++
	return debounceSaveCmd(m.draftID, m.titleInput.Value(), m.content.Value(), m.saveSeq, m.saveDelay)
}

func (m *Model) handleSaveDebounce(msg saveDebounceMsg) tea.Cmd {
	if msg.seq != m.saveSeq || msg.id != m.draftID {
		return nil
	}
	if m.saving {
		// A save for this note is still in flight; saves are serialized
		// per note, so check back after another delay.
		return debounceSaveCmd(msg.id, msg.title, msg.content, msg.seq, m.saveDelay)
	}
	payload := savedPayload{title: strings.TrimSpace(msg.title), content: msg.content}
	if last, ok := m.lastSynced[msg.id]; ok && last == payload {
		return nil
	}
	m.saving = true
	m.status = "saving"
	return saveNoteCmd(m.api, m.requestTimeout, msg.id, payload.title, payload.content)
}

// handleNoteSaved merges a successful save into the store: the local draft
// fields first, then whatever authoritative fields the service echoed back.
// On failure the stored note keeps its pre-save fields.
func (m *Model) handleNoteSaved(msg noteSavedMsg) {
	m.saving = false
	if msg.err != nil {
		m.status = "save error: " + msg.err.Error()
		m.log.Warn("save failed", logging.F("id", msg.id), logging.F("err", msg.err))
		return
	}
	note := m.store.Get(msg.id)
	if note == nil {
		// Note disappeared while the save was in flight; nothing to merge.
		return
	}

	merged := *note
	merged.Title = msg.title
	merged.Content = msg.content
	stamp := time.Now()
	if msg.record != nil {
		authoritative := notes.Normalize(msg.record)
		if notes.TitlePresent(msg.record) {
			merged.Title = authoritative.Title
		}
		if notes.ContentPresent(msg.record) {
			merged.Content = authoritative.Content
		}
		if !authoritative.UpdatedAt.IsZero() {
			stamp = authoritative.UpdatedAt
		}
		merged.Raw = msg.record
	}
	merged.UpdatedAt = stamp

	m.store.InsertOrReplace(&merged)
	m.lastSynced[msg.id] = savedPayload{
		title:   strings.TrimSpace(merged.Title),
		content: merged.Content,
	}
	m.status = "saved"
}
