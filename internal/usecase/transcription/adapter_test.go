package transcription

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/minutesdev/meeting-minutes/pkg/ai"
)

type stubRecognizer struct {
	result *ai.RecognitionResult
	err    error
	calls  int
}

func (s *stubRecognizer) Recognize(ctx context.Context, audio io.Reader) (*ai.RecognitionResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestAdapter(t *testing.T, rec Recognizer) *Adapter {
	t.Helper()
	a := NewAdapter(rec, 0.45, t.TempDir(), nil)
	a.retryInitialInterval = time.Millisecond
	a.retryMaxElapsed = 10 * time.Millisecond
	return a
}

func TestTranscribe_Success(t *testing.T) {
	rec := &stubRecognizer{result: &ai.RecognitionResult{Text: "The budget was approved.", Confidence: 0.91}}
	a := newTestAdapter(t, rec)

	res := a.Transcribe(context.Background(), []byte("audio"))
	if res.Outcome != OutcomeSuccess {
		t.Fatalf("outcome = %s, want success", res.Outcome)
	}
	if res.Text != "The budget was approved." {
		t.Fatalf("text = %q, recognized text must be used verbatim", res.Text)
	}
}

func TestTranscribe_LowConfidence(t *testing.T) {
	rec := &stubRecognizer{result: &ai.RecognitionResult{Text: "mumbled words", Confidence: 0.2}}
	a := newTestAdapter(t, rec)

	res := a.Transcribe(context.Background(), []byte("audio"))
	if res.Outcome != OutcomeLowConfidence {
		t.Fatalf("outcome = %s, want low_confidence", res.Outcome)
	}
	if res.Text != lowConfidenceAdvisory {
		t.Fatalf("text = %q, want the fixed advisory", res.Text)
	}
}

func TestTranscribe_EmptyText(t *testing.T) {
	rec := &stubRecognizer{result: &ai.RecognitionResult{Text: "", Confidence: 0.99}}
	a := newTestAdapter(t, rec)

	res := a.Transcribe(context.Background(), []byte("audio"))
	if res.Outcome != OutcomeLowConfidence {
		t.Fatalf("outcome = %s, want low_confidence for empty recognition", res.Outcome)
	}
}

func TestTranscribe_TransportFailure(t *testing.T) {
	rec := &stubRecognizer{err: errors.New("connection refused")}
	a := newTestAdapter(t, rec)

	res := a.Transcribe(context.Background(), []byte("audio"))
	if res.Outcome != OutcomeTransportFailure {
		t.Fatalf("outcome = %s, want transport_failure", res.Outcome)
	}
	if !strings.Contains(res.Text, "connection refused") {
		t.Fatalf("advisory %q should include the underlying error", res.Text)
	}
	if rec.calls < 2 {
		t.Fatalf("expected retries before giving up, got %d call(s)", rec.calls)
	}
}

func TestTranscribe_StagingCleanedUp(t *testing.T) {
	dir := t.TempDir()

	for _, rec := range []*stubRecognizer{
		{result: &ai.RecognitionResult{Text: "ok then", Confidence: 0.9}},
		{result: &ai.RecognitionResult{Text: "", Confidence: 0.9}},
		{err: errors.New("boom")},
	} {
		a := NewAdapter(rec, 0.45, dir, nil)
		a.retryInitialInterval = time.Millisecond
		a.retryMaxElapsed = 5 * time.Millisecond
		a.Transcribe(context.Background(), []byte("audio"))
	}

	leftovers, err := filepath.Glob(filepath.Join(dir, "audio-*.wav"))
	if err != nil {
		t.Fatal(err)
	}
	if len(leftovers) != 0 {
		t.Fatalf("staged audio files not cleaned up: %v", leftovers)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Fatal(err)
	}
}
