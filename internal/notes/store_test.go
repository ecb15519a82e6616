package notes

import (
	"testing"
	"time"

	"memo/internal/types"
)

func record(id, title, content, updated string) map[string]any {
	raw := map[string]any{"id": id, "title": title, "content": content}
	if updated != "" {
		raw["updated_at"] = updated
	}
	return raw
}

func TestLoadDropsRecordsWithoutID(t *testing.T) {
	store := NewStore()
	store.Load([]map[string]any{
		record("a", "A", "", "2024-01-02T00:00:00Z"),
		{"title": "no id"},
		nil,
	}, false)
	if store.Len() != 1 {
		t.Fatalf("expected 1 note, got %d", store.Len())
	}
	if store.ActiveID() != "a" {
		t.Fatalf("active = %q", store.ActiveID())
	}
}

func TestLoadOrdersNewestFirstWithZeroTimesLast(t *testing.T) {
	store := NewStore()
	store.Load([]map[string]any{
		record("old", "old", "", "2024-01-01T00:00:00Z"),
		record("untimed", "untimed", "", ""),
		record("new", "new", "", "2024-03-01T00:00:00Z"),
		record("garbage", "garbage", "", "not-a-date"),
	}, false)

	list := store.Notes()
	if len(list) != 4 {
		t.Fatalf("expected 4 notes, got %d", len(list))
	}
	if list[0].ID != "new" || list[1].ID != "old" {
		t.Fatalf("unexpected order: %s, %s", list[0].ID, list[1].ID)
	}
	for i := 1; i < len(list); i++ {
		if list[i].UpdatedAt.After(list[i-1].UpdatedAt) {
			t.Fatalf("order not non-increasing at %d", i)
		}
	}
	if store.ActiveID() != "new" {
		t.Fatalf("active = %q", store.ActiveID())
	}
}

func TestLoadSelectionRepair(t *testing.T) {
	store := NewStore()
	store.Load([]map[string]any{
		record("a", "A", "", "2024-01-03T00:00:00Z"),
		record("b", "B", "", "2024-01-02T00:00:00Z"),
		record("c", "C", "", "2024-01-01T00:00:00Z"),
	}, false)
	store.SetActive("b")

	// Preserve keeps a surviving selection.
	store.Load([]map[string]any{
		record("a", "A", "", "2024-01-03T00:00:00Z"),
		record("b", "B", "", "2024-01-02T00:00:00Z"),
	}, true)
	if store.ActiveID() != "b" {
		t.Fatalf("active = %q, want b", store.ActiveID())
	}

	// A vanished selection falls back to the first element.
	store.Load([]map[string]any{
		record("a", "A", "", "2024-01-03T00:00:00Z"),
		record("c", "C", "", "2024-01-01T00:00:00Z"),
	}, true)
	if store.ActiveID() != "a" {
		t.Fatalf("active = %q, want a", store.ActiveID())
	}

	// Reset policy ignores the previous selection outright.
	store.SetActive("c")
	store.Load([]map[string]any{
		record("a", "A", "", "2024-01-03T00:00:00Z"),
		record("c", "C", "", "2024-01-01T00:00:00Z"),
	}, false)
	if store.ActiveID() != "a" {
		t.Fatalf("active = %q, want a", store.ActiveID())
	}
}

func TestLoadEmptyClearsSelection(t *testing.T) {
	store := NewStore()
	store.Load([]map[string]any{record("a", "A", "", "")}, false)
	store.Load(nil, true)
	if store.Len() != 0 || store.ActiveID() != "" {
		t.Fatalf("expected empty store with no selection, got %d/%q", store.Len(), store.ActiveID())
	}
}

func TestInsertOrReplace(t *testing.T) {
	store := NewStore()
	store.Load([]map[string]any{
		record("a", "A", "", "2024-01-02T00:00:00Z"),
		record("b", "B", "", "2024-01-01T00:00:00Z"),
	}, false)

	store.InsertOrReplace(&types.Note{
		ID:        "b",
		Title:     "B2",
		UpdatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	list := store.Notes()
	if len(list) != 2 {
		t.Fatalf("expected replace, got %d notes", len(list))
	}
	if list[0].ID != "b" || list[0].Title != "B2" {
		t.Fatalf("expected b first after update, got %s/%s", list[0].ID, list[0].Title)
	}
	// Selection does not follow inserts.
	if store.ActiveID() != "a" {
		t.Fatalf("active = %q", store.ActiveID())
	}

	store.InsertOrReplace(&types.Note{ID: "c", Title: "C"})
	if store.Len() != 3 {
		t.Fatalf("expected insert, got %d notes", store.Len())
	}
}

func TestRemoveActiveSelectsNewFirst(t *testing.T) {
	store := NewStore()
	store.Load([]map[string]any{
		record("a", "A", "", "2024-01-03T00:00:00Z"),
		record("b", "B", "", "2024-01-02T00:00:00Z"),
		record("c", "C", "", "2024-01-01T00:00:00Z"),
	}, false)
	if store.ActiveID() != "a" {
		t.Fatalf("active = %q", store.ActiveID())
	}

	store.Remove("a")
	if store.ActiveID() != "b" {
		t.Fatalf("active = %q, want b", store.ActiveID())
	}

	store.Remove("c")
	if store.ActiveID() != "b" {
		t.Fatalf("removing inactive note moved selection to %q", store.ActiveID())
	}

	store.Remove("b")
	if store.ActiveID() != "" {
		t.Fatalf("active = %q, want empty", store.ActiveID())
	}
}

func TestSetActiveIgnoresUnknownID(t *testing.T) {
	store := NewStore()
	store.Load([]map[string]any{record("a", "A", "", "")}, false)
	store.SetActive("ghost")
	if store.ActiveID() != "a" {
		t.Fatalf("active = %q", store.ActiveID())
	}
	store.SetActive("")
	if store.ActiveID() != "" {
		t.Fatalf("active = %q, want empty", store.ActiveID())
	}
}

func TestVisibleFilter(t *testing.T) {
	store := NewStore()
	store.Load([]map[string]any{
		record("a", "Groceries", "milk and eggs", "2024-01-03T00:00:00Z"),
		record("b", "Work", "ship the MILK service", "2024-01-02T00:00:00Z"),
		record("c", "Travel", "pack bags", "2024-01-01T00:00:00Z"),
	}, false)

	store.SetQuery("milk")
	visible := store.Visible()
	if len(visible) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(visible))
	}
	if visible[0].ID != "a" || visible[1].ID != "b" {
		t.Fatalf("unexpected matches: %s, %s", visible[0].ID, visible[1].ID)
	}

	store.SetQuery("  ")
	if len(store.Visible()) != 3 {
		t.Fatal("blank query should match everything")
	}

	store.SetQuery("TRAVEL")
	visible = store.Visible()
	if len(visible) != 1 || visible[0].ID != "c" {
		t.Fatalf("case-insensitive title match failed: %v", visible)
	}
}
