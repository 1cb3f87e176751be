package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TranscriptEntry is a single recognized utterance. Immutable once created;
// entries are owned exclusively by their SessionTranscript.
type TranscriptEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text"`
}

// Render formats the entry as one line of the flattened transcript
func (e TranscriptEntry) Render() string {
	return fmt.Sprintf("[%s] %s", e.Timestamp.Format("15:04:05"), e.Text)
}

// SessionTranscript is the ordered, append-only log of transcript entries for
// one session. Mutated only via Append, SetFingerprint and Reset.
type SessionTranscript struct {
	ID uuid.UUID

	entries     []TranscriptEntry
	fingerprint string
	now         func() time.Time
}

// NewSessionTranscript creates an empty transcript for a new session
func NewSessionTranscript() *SessionTranscript {
	return &SessionTranscript{
		ID:  uuid.New(),
		now: time.Now,
	}
}

// Append adds an entry with the current timestamp and the given text.
// Callers only invoke this after a successful transcription outcome.
func (s *SessionTranscript) Append(text string) TranscriptEntry {
	entry := TranscriptEntry{Timestamp: s.now(), Text: text}
	s.entries = append(s.entries, entry)
	return entry
}

// Flatten renders all entries in insertion order, one "[HH:MM:SS] text" line
// each, joined by newlines. Returns the empty string when no entries exist.
func (s *SessionTranscript) Flatten() string {
	if len(s.entries) == 0 {
		return ""
	}
	lines := make([]string, len(s.entries))
	for i, e := range s.entries {
		lines[i] = e.Render()
	}
	return strings.Join(lines, "\n")
}

// Reset clears all entries and the stored fingerprint. Irreversible.
func (s *SessionTranscript) Reset() {
	s.entries = nil
	s.fingerprint = ""
}

// Empty reports whether no entries have been appended
func (s *SessionTranscript) Empty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries
func (s *SessionTranscript) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entry log
func (s *SessionTranscript) Entries() []TranscriptEntry {
	out := make([]TranscriptEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Fingerprint returns the equality token of the most recently accepted audio
func (s *SessionTranscript) Fingerprint() string {
	return s.fingerprint
}

// SetFingerprint records the equality token of an accepted audio submission
func (s *SessionTranscript) SetFingerprint(fp string) {
	s.fingerprint = fp
}
