package minutes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minutesdev/meeting-minutes/internal/usecase/summary"
)

// Composer assembles the final minutes document from the transcript, agenda
// and attendee list. The output is a pure function of its inputs, the
// injected summarizer's output and the clock; it cannot fail.
type Composer struct {
	strategy summary.Strategy
	now      func() time.Time
}

// NewComposer creates a composer using the given summary strategy
func NewComposer(strategy summary.Strategy) *Composer {
	return &Composer{strategy: strategy, now: time.Now}
}

// Compose renders the minutes document. Section order is fixed: header,
// AGENDA (only when agenda is non-empty), ATTENDEES (only when non-empty,
// comma-joined in input order), DISCUSSION SUMMARY (always), FULL TRANSCRIPT
// (always, verbatim).
func (c *Composer) Compose(ctx context.Context, transcript, agenda string, attendees []string) string {
	now := c.now()

	var b strings.Builder
	b.WriteString("MEETING MINUTES\n")
	b.WriteString("==================\n\n")
	fmt.Fprintf(&b, "Date: %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "Time: %s\n\n", now.Format("15:04:05"))

	if agenda != "" {
		fmt.Fprintf(&b, "AGENDA:\n%s\n\n", agenda)
	}

	if len(attendees) > 0 {
		fmt.Fprintf(&b, "ATTENDEES:\n%s\n\n", strings.Join(attendees, ", "))
	}

	b.WriteString("DISCUSSION SUMMARY:\n")
	if s := c.strategy.Summarize(ctx, transcript); s != "" {
		b.WriteString(s)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n\nFULL TRANSCRIPT:\n================\n%s\n", transcript)

	return b.String()
}
