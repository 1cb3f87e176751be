package summary

import (
	"context"
	"fmt"
	"strings"
)

const (
	// fragments at or below this length are treated as noise
	minFragmentLength = 20
	maxKeyPoints      = 5
)

// Extractive is the fallback strategy used when no AI credential is
// configured: it surfaces the first few substantial sentences of the
// transcript as a numbered list. Deterministic and side-effect free.
type Extractive struct{}

// Summarize splits the transcript on sentence-terminating punctuation and
// returns up to the first five fragments longer than the noise threshold.
func (Extractive) Summarize(_ context.Context, transcript string) string {
	fragments := strings.FieldsFunc(transcript, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var b strings.Builder
	count := 0
	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if len(fragment) <= minFragmentLength {
			continue
		}
		count++
		if count > 1 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s", count, fragment)
		if count == maxKeyPoints {
			break
		}
	}
	return b.String()
}

// Name identifies the strategy in logs
func (Extractive) Name() string {
	return "extractive"
}
