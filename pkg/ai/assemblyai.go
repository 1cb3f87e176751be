package ai

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/minutesdev/meeting-minutes/pkg/config"
)

// RecognitionResult is the raw output of the speech recognition backend
type RecognitionResult struct {
	Text       string
	Confidence float64
}

// SpeechClient wraps the AssemblyAI SDK for blocking audio recognition
type SpeechClient struct {
	client       *aai.Client
	languageCode string
}

// NewSpeechClient creates a speech client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewSpeechClient(cfg *config.AssemblyAIConfig) *SpeechClient {
	var apiKey, languageCode, baseURL string
	if cfg != nil {
		apiKey = cfg.APIKey
		languageCode = cfg.LanguageCode
		baseURL = cfg.BaseURL
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	if languageCode == "" {
		languageCode = "en_us"
	}

	opts := []aai.ClientOption{aai.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, aai.WithBaseURL(baseURL))
	}

	return &SpeechClient{
		client:       aai.NewClientWithOptions(opts...),
		languageCode: languageCode,
	}
}

// Recognize uploads the audio and blocks until the backend returns a final
// transcript. The returned text is used verbatim; confidence is the backend's
// overall score for the transcript.
func (c *SpeechClient) Recognize(ctx context.Context, audio io.Reader) (*RecognitionResult, error) {
	uploadURL, err := c.client.Upload(ctx, audio)
	if err != nil {
		return nil, fmt.Errorf("uploading audio: %w", err)
	}

	params := &aai.TranscriptOptionalParams{
		LanguageCode: aai.TranscriptLanguageCode(c.languageCode),
		Punctuate:    aai.Bool(true),
		FormatText:   aai.Bool(true),
	}

	transcript, err := c.client.Transcripts.TranscribeFromURL(ctx, uploadURL, params)
	if err != nil {
		return nil, fmt.Errorf("transcribing audio: %w", err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		detail := "unknown error"
		if transcript.Error != nil {
			detail = *transcript.Error
		}
		return nil, fmt.Errorf("backend rejected audio: %s", detail)
	}

	result := &RecognitionResult{}
	if transcript.Text != nil {
		result.Text = strings.TrimSpace(*transcript.Text)
	}
	if transcript.Confidence != nil {
		result.Confidence = *transcript.Confidence
	}
	return result, nil
}
