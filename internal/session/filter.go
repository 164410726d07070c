package session

import "strings"

// Filter selects the visible subset of a session's buffer. The zero value
// matches every record.
type Filter struct {
	// MinLevel hides records below this severity when HasMinLevel is set.
	MinLevel    Level
	HasMinLevel bool
	// Search is a case-insensitive substring match against record text.
	// Empty means no text filtering.
	Search string
}

// Matches reports whether a record passes both filter criteria.
func (f Filter) Matches(r Record) bool {
	if f.HasMinLevel && r.Level < f.MinLevel {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(r.Text), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// Apply recomputes the visible set from scratch over the full retained
// buffer. It never mutates its input; filtering is a pure projection.
func (f Filter) Apply(buffer []Record) []Record {
	visible := make([]Record, 0, len(buffer))
	for _, r := range buffer {
		if f.Matches(r) {
			visible = append(visible, r)
		}
	}
	return visible
}
