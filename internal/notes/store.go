package notes

import (
	"sort"
	"strings"

	"memo/internal/types"
)

// Store is the in-memory ordered note collection plus the active-selection
// pointer and the free-text filter. It belongs to the UI event loop and is
// never shared across goroutines.
//
// Every mutation re-establishes the invariants: ordering is most recently
// updated first, and the active id is either empty or present in the
// collection.
type Store struct {
	notes    []*types.Note
	activeID string
	query    string
}

func NewStore() *Store {
	return &Store{}
}

// Load normalizes records, drops the unusable ones, and replaces the whole
// collection. When preserve is true and the previously active id survives the
// reload the selection is kept; otherwise the first note of the new ordering
// becomes active.
func (s *Store) Load(records []map[string]any, preserve bool) {
	previous := s.activeID
	s.notes = s.notes[:0]
	for _, record := range records {
		note := Normalize(record)
		if note.ID == "" {
			continue
		}
		s.notes = append(s.notes, note)
	}
	s.sort()
	if preserve && previous != "" && s.Get(previous) != nil {
		s.activeID = previous
		return
	}
	s.selectFirst()
}

// InsertOrReplace puts note into the collection, replacing any existing note
// with the same id, and re-sorts. Selection is untouched.
func (s *Store) InsertOrReplace(note *types.Note) {
	if note == nil || note.ID == "" {
		return
	}
	for i, existing := range s.notes {
		if existing.ID == note.ID {
			s.notes[i] = note
			s.sort()
			return
		}
	}
	s.notes = append([]*types.Note{note}, s.notes...)
	s.sort()
}

// Remove deletes the note with the given id. If it was active, the first note
// of the post-removal ordering becomes active.
func (s *Store) Remove(id string) {
	filtered := s.notes[:0]
	for _, note := range s.notes {
		if note.ID == id {
			continue
		}
		filtered = append(filtered, note)
	}
	s.notes = filtered
	if s.activeID == id {
		s.selectFirst()
	}
}

// SetActive moves the selection. An empty id clears it; an id not present in
// the collection is ignored.
func (s *Store) SetActive(id string) {
	if id == "" {
		s.activeID = ""
		return
	}
	if s.Get(id) == nil {
		return
	}
	s.activeID = id
}

func (s *Store) Active() *types.Note {
	return s.Get(s.activeID)
}

func (s *Store) ActiveID() string {
	return s.activeID
}

func (s *Store) Get(id string) *types.Note {
	if id == "" {
		return nil
	}
	for _, note := range s.notes {
		if note.ID == id {
			return note
		}
	}
	return nil
}

func (s *Store) Len() int {
	return len(s.notes)
}

// Notes returns the ordered collection. Callers must not mutate it.
func (s *Store) Notes() []*types.Note {
	return s.notes
}

func (s *Store) SetQuery(query string) {
	s.query = query
}

func (s *Store) Query() string {
	return s.query
}

// Visible returns the notes matching the filter, in store order. A blank or
// whitespace-only query matches everything; otherwise the match is a
// case-insensitive substring test against title or content.
func (s *Store) Visible() []*types.Note {
	query := strings.ToLower(strings.TrimSpace(s.query))
	if query == "" {
		return s.notes
	}
	out := make([]*types.Note, 0, len(s.notes))
	for _, note := range s.notes {
		if strings.Contains(strings.ToLower(note.Title), query) ||
			strings.Contains(strings.ToLower(note.Content), query) {
			out = append(out, note)
		}
	}
	return out
}

func (s *Store) selectFirst() {
	if len(s.notes) == 0 {
		s.activeID = ""
		return
	}
	s.activeID = s.notes[0].ID
}

func (s *Store) sort() {
	// Newest first; zero timestamps are naturally oldest. Ties break by id
	// so reloads are stable.
	sort.SliceStable(s.notes, func(i, j int) bool {
		a, b := s.notes[i].UpdatedAt, s.notes[j].UpdatedAt
		if a.Equal(b) {
			return s.notes[i].ID < s.notes[j].ID
		}
		return a.After(b)
	})
}
