package entities

import (
	"strings"
	"time"
)

// MinutesDocument is an immutable snapshot produced by a generation request.
// It is never updated in place; each request yields a wholly new document.
type MinutesDocument struct {
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ParseAttendees derives the ordered attendee list from raw input: names are
// trimmed, empties dropped, input order preserved. Derived fresh on every
// generation request, never stored as session state.
func ParseAttendees(raw []string) []string {
	attendees := make([]string, 0, len(raw))
	for _, name := range raw {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		attendees = append(attendees, name)
	}
	return attendees
}
