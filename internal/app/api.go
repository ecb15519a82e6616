package app

import "context"

// NotesAPI is the remote notes service surface the UI depends on. The
// concrete implementation is *client.Client; tests swap in fakes.
type NotesAPI interface {
	ListNotes(ctx context.Context) ([]map[string]any, error)
	CreateNote(ctx context.Context, title, content string) (map[string]any, error)
	UpdateNote(ctx context.Context, id, title, content string) (map[string]any, error)
	DeleteNote(ctx context.Context, id string) error
}
