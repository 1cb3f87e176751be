package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/minutesdev/meeting-minutes/errors"
	"github.com/minutesdev/meeting-minutes/internal/domain/entities"
	"github.com/minutesdev/meeting-minutes/internal/infrastructure/store"
	"github.com/minutesdev/meeting-minutes/internal/usecase/minutes"
	"github.com/minutesdev/meeting-minutes/internal/usecase/transcription"
)

// Transcriber is the transcription adapter boundary
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) transcription.Result
}

// SubmitResult is what one audio submission produced
type SubmitResult struct {
	Outcome    transcription.Outcome
	Text       string
	Appended   bool
	Duplicate  bool
	Transcript string
}

// Service owns the state of the single session: the transcript log, the
// agenda text and the latest generated minutes. Every operation is
// serialized by one mutex; echo serves requests concurrently, but the
// session model is one in-flight operation at a time. Session state is only
// mutated after a blocking backend call has returned a definitive outcome.
type Service struct {
	mu         sync.Mutex
	transcript *entities.SessionTranscript
	agenda     string
	minutes    *entities.MinutesDocument

	transcriber Transcriber
	composer    *minutes.Composer
	exports     *store.ArtifactStore
	logger      *zap.Logger
	now         func() time.Time
}

// NewService creates a service with a fresh, empty session
func NewService(transcriber Transcriber, composer *minutes.Composer, exports *store.ArtifactStore, logger *zap.Logger) *Service {
	return &Service{
		transcript:  entities.NewSessionTranscript(),
		transcriber: transcriber,
		composer:    composer,
		exports:     exports,
		logger:      logger,
		now:         time.Now,
	}
}

// SubmitAudio runs one audio blob through the pipeline: deduplicate,
// transcribe, and append to the session transcript on success. Low-confidence
// and transport outcomes are surfaced as advisories and never mutate the
// transcript. Byte-identical resubmissions of the last accepted recording are
// reported as duplicates without calling the backend.
func (s *Service) SubmitAudio(ctx context.Context, audio []byte) (*SubmitResult, error) {
	if len(audio) == 0 {
		return nil, errors.ErrMissingAudio()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	process, fingerprint := transcription.ShouldProcess(audio, s.transcript.Fingerprint())
	if !process {
		s.logger.Info("duplicate audio submission ignored",
			zap.String("session_id", s.transcript.ID.String()),
		)
		return &SubmitResult{Duplicate: true, Transcript: s.transcript.Flatten()}, nil
	}

	result := s.transcriber.Transcribe(ctx, audio)

	out := &SubmitResult{Outcome: result.Outcome, Text: result.Text}
	if result.Outcome == transcription.OutcomeSuccess {
		s.transcript.SetFingerprint(fingerprint)
		entry := s.transcript.Append(result.Text)
		out.Appended = true
		s.logger.Info("transcript entry appended",
			zap.String("session_id", s.transcript.ID.String()),
			zap.Time("timestamp", entry.Timestamp),
			zap.Int("entries", s.transcript.Len()),
		)
	} else {
		s.logger.Warn("transcription did not produce an entry",
			zap.String("session_id", s.transcript.ID.String()),
			zap.String("outcome", string(result.Outcome)),
		)
	}
	out.Transcript = s.transcript.Flatten()
	return out, nil
}

// Transcript returns the current flattened transcript
func (s *Service) Transcript() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript.Flatten()
}

// UploadAgenda stores agenda text for the session. A later upload freely
// overwrites an earlier one; the empty string means "absent".
func (s *Service) UploadAgenda(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agenda = text
	s.logger.Info("agenda updated",
		zap.String("session_id", s.transcript.ID.String()),
		zap.Int("length", len(text)),
	)
}

// Agenda returns the current agenda text
func (s *Service) Agenda() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agenda
}

// Generate composes a wholly new minutes document from the current
// transcript, agenda and the given attendee names. The attendee list is
// derived fresh from the input; it is not session state.
func (s *Service) Generate(ctx context.Context, attendees []string) (*entities.MinutesDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.transcript.Empty() {
		return nil, errors.ErrEmptyTranscript()
	}

	doc := &entities.MinutesDocument{
		Content:     s.composer.Compose(ctx, s.transcript.Flatten(), s.agenda, entities.ParseAttendees(attendees)),
		GeneratedAt: s.now(),
	}
	s.minutes = doc

	s.logger.Info("meeting minutes generated",
		zap.String("session_id", s.transcript.ID.String()),
		zap.Int("entries", s.transcript.Len()),
		zap.Int("attendees", len(entities.ParseAttendees(attendees))),
	)
	return doc, nil
}

// Minutes returns the most recently generated document
func (s *Service) Minutes() (*entities.MinutesDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.minutes == nil {
		return nil, errors.ErrMinutesNotGenerated()
	}
	return s.minutes, nil
}

// Reset clears the transcript, fingerprint, agenda and generated minutes.
// The next audio submission is processed as new regardless of prior history.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript.Reset()
	s.agenda = ""
	s.minutes = nil

	s.logger.Info("session reset",
		zap.String("session_id", s.transcript.ID.String()),
	)
}

// ExportTranscript snapshots the flattened transcript as a downloadable
// plain-text artifact and returns its filename.
func (s *Service) ExportTranscript() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.transcript.Empty() {
		return "", errors.ErrEmptyTranscript()
	}

	filename := fmt.Sprintf("meeting_transcript_%s.txt", s.now().Format("20060102_1504"))
	s.exports.Put(filename, store.Artifact{
		Content:     []byte(s.transcript.Flatten()),
		ContentType: "text/plain; charset=utf-8",
	})
	return filename, nil
}

// ExportMinutes snapshots the latest minutes document as a downloadable
// artifact. Format is "txt" or "docx".
func (s *Service) ExportMinutes(format string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.minutes == nil {
		return "", errors.ErrMinutesNotGenerated()
	}

	stamp := s.now().Format("20060102_1504")
	switch format {
	case "docx":
		payload, err := renderMinutesDocx(s.minutes.Content)
		if err != nil {
			return "", errors.ErrExportFailed(err)
		}
		filename := fmt.Sprintf("meeting_minutes_%s.docx", stamp)
		s.exports.Put(filename, store.Artifact{
			Content:     payload,
			ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		})
		return filename, nil
	default:
		filename := fmt.Sprintf("meeting_minutes_%s.txt", stamp)
		s.exports.Put(filename, store.Artifact{
			Content:     []byte(s.minutes.Content),
			ContentType: "text/plain; charset=utf-8",
		})
		return filename, nil
	}
}

// Export retrieves a previously exported artifact by filename
func (s *Service) Export(filename string) (store.Artifact, bool) {
	return s.exports.Get(filename)
}
