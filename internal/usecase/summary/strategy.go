package summary

import "context"

// Placeholder is returned whenever the AI backend cannot produce a summary.
// Summarization failure must never block minutes generation.
const Placeholder = "Summary not available now. Please try again later."

// Strategy produces a discussion summary from a flattened transcript.
// Implementations never fail the caller: internal errors become Placeholder.
// Which strategy runs is a startup decision, not a per-call one.
type Strategy interface {
	Summarize(ctx context.Context, transcript string) string
	Name() string
}
