package transcription

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/minutesdev/meeting-minutes/pkg/ai"
)

// Outcome classifies the result of a transcription attempt
type Outcome string

const (
	OutcomeSuccess          Outcome = "success"
	OutcomeLowConfidence    Outcome = "low_confidence"
	OutcomeTransportFailure Outcome = "transport_failure"
)

// Result is the classified outcome of a transcription attempt. On success,
// Text holds the recognized utterance verbatim; otherwise it holds a
// human-readable advisory for display.
type Result struct {
	Text    string
	Outcome Outcome
}

const (
	lowConfidenceAdvisory    = "Could not understand the audio clearly. Please speak louder and more clearly."
	transportFailureAdvisory = "Could not connect to speech recognition service. Check internet connection. Error: %v"
)

// Recognizer is the speech recognition backend boundary
type Recognizer interface {
	Recognize(ctx context.Context, audio io.Reader) (*ai.RecognitionResult, error)
}

// Adapter wraps the speech backend behind the three-outcome contract.
// It never returns an error: every backend failure is mapped to an outcome.
type Adapter struct {
	recognizer    Recognizer
	minConfidence float64
	stagingDir    string
	logger        *zap.Logger

	retryInitialInterval time.Duration
	retryMaxElapsed      time.Duration
}

// NewAdapter creates a transcription adapter. minConfidence is the threshold
// below which recognized text is classified as low-confidence. stagingDir
// may be empty to use the system temp directory.
func NewAdapter(recognizer Recognizer, minConfidence float64, stagingDir string, logger *zap.Logger) *Adapter {
	if stagingDir == "" {
		stagingDir = os.TempDir()
	}
	return &Adapter{
		recognizer:           recognizer,
		minConfidence:        minConfidence,
		stagingDir:           stagingDir,
		logger:               logger,
		retryInitialInterval: 2 * time.Second,
		retryMaxElapsed:      30 * time.Second,
	}
}

// Transcribe sends audio bytes to the backend and classifies the response.
// Exactly one of the three outcomes is returned; the session transcript must
// only be appended to on OutcomeSuccess.
func (a *Adapter) Transcribe(ctx context.Context, audio []byte) Result {
	stagePath, err := a.stageAudio(audio)
	if err != nil {
		return Result{
			Text:    fmt.Sprintf(transportFailureAdvisory, err),
			Outcome: OutcomeTransportFailure,
		}
	}
	defer func() {
		if rmErr := os.Remove(stagePath); rmErr != nil && a.logger != nil {
			a.logger.Warn("failed to remove staged audio",
				zap.String("path", stagePath),
				zap.Error(rmErr),
			)
		}
	}()

	var recognition *ai.RecognitionResult
	operation := func() error {
		f, err := os.Open(stagePath)
		if err != nil {
			return backoff.Permanent(err)
		}
		defer f.Close()

		r, err := a.recognizer.Recognize(ctx, f)
		if err != nil {
			return err
		}
		recognition = r
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = a.retryInitialInterval
	bo.MaxElapsedTime = a.retryMaxElapsed

	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		if a.logger != nil {
			a.logger.Error("transcription backend unreachable", zap.Error(err))
		}
		return Result{
			Text:    fmt.Sprintf(transportFailureAdvisory, err),
			Outcome: OutcomeTransportFailure,
		}
	}

	if recognition.Text == "" || recognition.Confidence < a.minConfidence {
		if a.logger != nil {
			a.logger.Info("transcription below confidence threshold",
				zap.Float64("confidence", recognition.Confidence),
				zap.Float64("threshold", a.minConfidence),
			)
		}
		return Result{Text: lowConfidenceAdvisory, Outcome: OutcomeLowConfidence}
	}

	return Result{Text: recognition.Text, Outcome: OutcomeSuccess}
}

// stageAudio writes the audio to a uniquely named temp file for upload.
// The caller removes the file on every exit path.
func (a *Adapter) stageAudio(audio []byte) (string, error) {
	path := filepath.Join(a.stagingDir, fmt.Sprintf("audio-%s.wav", uuid.NewString()))
	if err := os.WriteFile(path, audio, 0o600); err != nil {
		return "", fmt.Errorf("staging audio: %w", err)
	}
	return path, nil
}
