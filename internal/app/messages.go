package app

// One message type per async result, each carrying the error from its own
// action so a failing call never disturbs unrelated state.

type notesLoadedMsg struct {
	records  []map[string]any
	preserve bool
	err      error
}

type noteCreatedMsg struct {
	record map[string]any
	err    error
}

type noteSavedMsg struct {
	id      string
	title   string
	content string
	record  map[string]any
	err     error
}

type noteDeletedMsg struct {
	id  string
	err error
}

// saveDebounceMsg is the expiry of an autosave timer. It carries the draft
// session tuple by value: a stale seq, or an id that no longer matches the
// bound draft, means the timer was superseded and the tick is dropped.
type saveDebounceMsg struct {
	id      string
	title   string
	content string
	seq     int
}
