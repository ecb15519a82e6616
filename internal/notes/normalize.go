package notes

import (
	"math"
	"strconv"
	"strings"
	"time"

	"memo/internal/types"
)

// Accepted spellings per logical field, in resolution order. Backends in the
// wild disagree on all of these.
var (
	idFields      = []string{"id", "note_id", "noteId", "_id"}
	contentFields = []string{"content", "body"}
	updatedFields = []string{"updatedAt", "updated_at", "modified_at", "modifiedAt"}
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Normalize maps a raw service record into the canonical Note. It never
// panics: unusable values coerce to their zero defaults. A record with no
// recognizable id normalizes to an empty ID and must be discarded by callers.
func Normalize(raw map[string]any) *types.Note {
	note := &types.Note{Raw: raw}
	if raw == nil {
		return note
	}
	note.ID = stringID(firstPresent(raw, idFields))
	note.Title = strings.TrimSpace(stringValue(raw["title"]))
	note.Content = stringValue(firstPresent(raw, contentFields))
	note.UpdatedAt = parseTimestamp(firstPresent(raw, updatedFields))
	return note
}

// TitlePresent reports whether raw carries an explicit title field.
func TitlePresent(raw map[string]any) bool {
	if raw == nil {
		return false
	}
	value, ok := raw["title"]
	return ok && value != nil
}

// ContentPresent reports whether raw carries any recognized content field.
func ContentPresent(raw map[string]any) bool {
	return raw != nil && firstPresent(raw, contentFields) != nil
}

func firstPresent(raw map[string]any, keys []string) any {
	for _, key := range keys {
		if value, ok := raw[key]; ok && value != nil {
			return value
		}
	}
	return nil
}

func stringValue(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}

func stringID(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		// JSON numbers decode as float64; keep integral ids free of a
		// trailing ".0".
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

func parseTimestamp(value any) time.Time {
	switch v := value.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}
		}
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
		return time.Time{}
	case float64:
		if v <= 0 {
			return time.Time{}
		}
		// Values this large are epoch milliseconds.
		if v >= 1e12 {
			return time.UnixMilli(int64(v)).UTC()
		}
		return time.Unix(int64(v), 0).UTC()
	default:
		return time.Time{}
	}
}
