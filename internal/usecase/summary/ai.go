package summary

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Backend is the text-generation boundary used by the AI strategy
type Backend interface {
	GenerateSummary(ctx context.Context, transcript string) (string, error)
}

// AIStrategy asks a text-generation backend for the discussion summary.
// Backend errors are absorbed and replaced with Placeholder.
type AIStrategy struct {
	backend Backend
	logger  *zap.Logger
}

// NewAIStrategy creates an AI-backed summary strategy
func NewAIStrategy(backend Backend, logger *zap.Logger) *AIStrategy {
	return &AIStrategy{backend: backend, logger: logger}
}

// Summarize requests a bullet-point summary from the backend
func (s *AIStrategy) Summarize(ctx context.Context, transcript string) string {
	out, err := s.backend.GenerateSummary(ctx, transcript)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("summary backend failed, substituting placeholder", zap.Error(err))
		}
		return Placeholder
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return Placeholder
	}
	return out
}

// Name identifies the strategy in logs
func (s *AIStrategy) Name() string {
	return "ai"
}
