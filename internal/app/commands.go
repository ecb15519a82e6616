package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func fetchNotesCmd(api NotesAPI, timeout time.Duration, preserve bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		records, err := api.ListNotes(ctx)
		return notesLoadedMsg{records: records, preserve: preserve, err: err}
	}
}

func createNoteCmd(api NotesAPI, timeout time.Duration, title, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		record, err := api.CreateNote(ctx, title, content)
		return noteCreatedMsg{record: record, err: err}
	}
}

func saveNoteCmd(api NotesAPI, timeout time.Duration, id, title, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		record, err := api.UpdateNote(ctx, id, title, content)
		return noteSavedMsg{id: id, title: title, content: content, record: record, err: err}
	}
}

func deleteNoteCmd(api NotesAPI, timeout time.Duration, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := api.DeleteNote(ctx, id)
		return noteDeletedMsg{id: id, err: err}
	}
}

func debounceSaveCmd(id, title, content string, seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return saveDebounceMsg{id: id, title: title, content: content, seq: seq}
	})
}
