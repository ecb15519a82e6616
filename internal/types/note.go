package types

import "time"

// Note is the canonical client-side shape of a remote note. Services spell
// their fields inconsistently; notes.Normalize maps whatever comes off the
// wire into this record.
type Note struct {
	ID        string
	Title     string
	Content   string
	UpdatedAt time.Time
	// Raw keeps the original decoded payload for tolerance. Logic never
	// reads it.
	Raw map[string]any
}
