package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/minutesdev/meeting-minutes/internal/infrastructure/store"
	"github.com/minutesdev/meeting-minutes/internal/usecase/minutes"
	"github.com/minutesdev/meeting-minutes/internal/usecase/session"
	"github.com/minutesdev/meeting-minutes/internal/usecase/summary"
	"github.com/minutesdev/meeting-minutes/internal/usecase/transcription"
	"github.com/minutesdev/meeting-minutes/pkg/config"
	"github.com/minutesdev/meeting-minutes/pkg/validator"
)

type fixedTranscriber struct {
	result transcription.Result
}

func (f fixedTranscriber) Transcribe(ctx context.Context, audio []byte) transcription.Result {
	return f.result
}

func newTestServer(t *testing.T, tr session.Transcriber) *echo.Echo {
	t.Helper()

	svc := session.NewService(
		tr,
		minutes.NewComposer(summary.Extractive{}),
		store.NewArtifactStore(time.Minute),
		zap.NewNop(),
	)

	e := echo.New()
	e.Validator = validator.New()

	cfg := &config.Config{}
	cfg.Server.Environment = "test"

	NewRouter(cfg, NewSessionHandler(svc, zap.NewNop())).Setup(e)
	return e
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	return body, writer.FormDataContentType()
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return envelope.Data
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(t, fixedTranscriber{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestSubmitAudio_Success(t *testing.T) {
	e := newTestServer(t, fixedTranscriber{result: transcription.Result{
		Text:    "Hello everyone.",
		Outcome: transcription.OutcomeSuccess,
	}})

	body, contentType := multipartBody(t, "audio", "segment.wav", []byte("pcm-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/v1/session/audio", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	data := decodeEnvelope(t, rec)
	if data["outcome"] != "success" {
		t.Fatalf("outcome = %v", data["outcome"])
	}
	if data["appended"] != true {
		t.Fatal("successful submission should report appended")
	}
	if !strings.Contains(data["transcript"].(string), "Hello everyone.") {
		t.Fatalf("transcript = %v", data["transcript"])
	}
}

func TestSubmitAudio_MissingFile(t *testing.T) {
	e := newTestServer(t, fixedTranscriber{})

	req := httptest.NewRequest(http.MethodPost, "/v1/session/audio", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestUploadAgenda_JSONText(t *testing.T) {
	e := newTestServer(t, fixedTranscriber{})

	payload := strings.NewReader(`{"text":"1. Budget 2. Staffing"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/session/agenda", payload)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/session/agenda", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	data := decodeEnvelope(t, rec)
	if data["agenda"] != "1. Budget 2. Staffing" {
		t.Fatalf("agenda = %v", data["agenda"])
	}
}

func TestUploadAgenda_BlankTextRejected(t *testing.T) {
	e := newTestServer(t, fixedTranscriber{})

	payload := strings.NewReader(`{"text":"   "}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/session/agenda", payload)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestUploadAgenda_File(t *testing.T) {
	e := newTestServer(t, fixedTranscriber{})

	body, contentType := multipartBody(t, "agenda", "agenda.txt", []byte("Quarterly planning"))
	req := httptest.NewRequest(http.MethodPost, "/v1/session/agenda", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	data := decodeEnvelope(t, rec)
	if data["agenda"] != "Quarterly planning" {
		t.Fatalf("agenda = %v", data["agenda"])
	}
}

func TestGenerateMinutes_EmptyTranscript(t *testing.T) {
	e := newTestServer(t, fixedTranscriber{})

	req := httptest.NewRequest(http.MethodPost, "/v1/session/minutes", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusPreconditionFailed {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestGenerateAndDownloadMinutes(t *testing.T) {
	e := newTestServer(t, fixedTranscriber{result: transcription.Result{
		Text:    "The budget was approved without objections.",
		Outcome: transcription.OutcomeSuccess,
	}})

	body, contentType := multipartBody(t, "audio", "segment.wav", []byte("pcm-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/v1/session/audio", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("audio status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/session/minutes", strings.NewReader(`{"attendees":["Alice","Bob"]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("generate status = %d, body = %s", rec.Code, rec.Body.String())
	}
	data := decodeEnvelope(t, rec)
	content := data["content"].(string)
	if !strings.Contains(content, "MEETING MINUTES") || !strings.Contains(content, "ATTENDEES:\nAlice, Bob") {
		t.Fatalf("unexpected minutes content:\n%s", content)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/session/minutes/export", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("export status = %d, body = %s", rec.Code, rec.Body.String())
	}
	data = decodeEnvelope(t, rec)
	download := data["download_path"].(string)

	req = httptest.NewRequest(http.MethodGet, download, nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("download status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "MEETING MINUTES") {
		t.Fatal("downloaded artifact should contain the document")
	}
}

func TestGetMinutes_BeforeGeneration(t *testing.T) {
	e := newTestServer(t, fixedTranscriber{})

	req := httptest.NewRequest(http.MethodGet, "/v1/session/minutes", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestExportMinutes_InvalidFormat(t *testing.T) {
	e := newTestServer(t, fixedTranscriber{})

	req := httptest.NewRequest(http.MethodPost, "/v1/session/minutes/export?format=pdf", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestDownloadExport_Unknown(t *testing.T) {
	e := newTestServer(t, fixedTranscriber{})

	req := httptest.NewRequest(http.MethodGet, "/v1/exports/nope.txt", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestResetSession(t *testing.T) {
	e := newTestServer(t, fixedTranscriber{result: transcription.Result{
		Text:    "Hello.",
		Outcome: transcription.OutcomeSuccess,
	}})

	body, contentType := multipartBody(t, "audio", "segment.wav", []byte("pcm-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/v1/session/audio", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	req = httptest.NewRequest(http.MethodDelete, "/v1/session", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("reset status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/session/transcript", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	data := decodeEnvelope(t, rec)
	if data["transcript"] != "" {
		t.Fatalf("transcript = %v", data["transcript"])
	}
}
