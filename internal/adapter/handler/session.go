package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/minutesdev/meeting-minutes/errors"
	dto "github.com/minutesdev/meeting-minutes/internal/adapter/dto/session"
	"github.com/minutesdev/meeting-minutes/internal/usecase/ingest"
	"github.com/minutesdev/meeting-minutes/internal/usecase/session"
)

// Session handles session-related HTTP requests
type Session struct {
	service *session.Service
	logger  *zap.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service *session.Service, logger *zap.Logger) *Session {
	return &Session{
		service: service,
		logger:  logger,
	}
}

// SubmitAudio handles POST /session/audio
// @Summary      Submit an audio segment
// @Description  Transcribes one audio segment and appends it to the session transcript
// @Tags         Session
// @Accept       multipart/form-data
// @Produce      json
// @Param        audio  formData  file  true  "Audio segment"
// @Success      200  {object}  dto.SubmitAudioResponse  "Submission outcome"
// @Failure      400  {object}  map[string]interface{}   "No audio provided"
// @Router       /session/audio [post]
func (h *Session) SubmitAudio(c echo.Context) error {
	audio, err := readFormFile(c, "audio")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrMissingAudio())
	}

	result, err := h.service.SubmitAudio(c.Request().Context(), audio)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, dto.SubmitAudioResponse{
		Outcome:    string(result.Outcome),
		Text:       result.Text,
		Appended:   result.Appended,
		Duplicate:  result.Duplicate,
		Transcript: result.Transcript,
	})
}

// GetTranscript handles GET /session/transcript
// @Summary      Get the session transcript
// @Tags         Session
// @Produce      json
// @Success      200  {object}  dto.TranscriptResponse
// @Router       /session/transcript [get]
func (h *Session) GetTranscript(c echo.Context) error {
	return HandleSuccess(h.logger, c, dto.TranscriptResponse{
		Transcript: h.service.Transcript(),
	})
}

// UploadAgenda handles POST /session/agenda
// @Summary      Upload the meeting agenda
// @Description  Accepts a multipart "agenda" file (txt, pdf or docx) or a JSON body with raw text
// @Tags         Session
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.AgendaResponse
// @Failure      400  {object}  map[string]interface{}  "Empty agenda"
// @Router       /session/agenda [post]
func (h *Session) UploadAgenda(c echo.Context) error {
	if file, err := c.FormFile("agenda"); err == nil {
		data, err := readMultipartFile(file)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
		}
		text := ingest.ExtractText(file.Filename, data)
		h.service.UploadAgenda(text)
		return HandleSuccess(h.logger, c, dto.AgendaResponse{Agenda: text})
	}

	var req dto.UploadAgendaRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	h.service.UploadAgenda(req.Text)
	return HandleSuccess(h.logger, c, dto.AgendaResponse{Agenda: req.Text})
}

// GetAgenda handles GET /session/agenda
// @Summary      Get the current agenda text
// @Tags         Session
// @Produce      json
// @Success      200  {object}  dto.AgendaResponse
// @Router       /session/agenda [get]
func (h *Session) GetAgenda(c echo.Context) error {
	return HandleSuccess(h.logger, c, dto.AgendaResponse{
		Agenda: h.service.Agenda(),
	})
}

// GenerateMinutes handles POST /session/minutes
// @Summary      Generate meeting minutes
// @Description  Composes a new minutes document from the current transcript, agenda and attendees
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        request  body  dto.GenerateMinutesRequest  false  "Attendee names"
// @Success      200  {object}  dto.MinutesResponse
// @Failure      412  {object}  map[string]interface{}  "Transcript is empty"
// @Router       /session/minutes [post]
func (h *Session) GenerateMinutes(c echo.Context) error {
	var req dto.GenerateMinutesRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	doc, err := h.service.Generate(c.Request().Context(), req.Attendees)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, dto.MinutesResponse{
		Content:     doc.Content,
		GeneratedAt: doc.GeneratedAt,
	})
}

// GetMinutes handles GET /session/minutes
// @Summary      Get the latest generated minutes
// @Tags         Session
// @Produce      json
// @Success      200  {object}  dto.MinutesResponse
// @Failure      404  {object}  map[string]interface{}  "No minutes generated yet"
// @Router       /session/minutes [get]
func (h *Session) GetMinutes(c echo.Context) error {
	doc, err := h.service.Minutes()
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, dto.MinutesResponse{
		Content:     doc.Content,
		GeneratedAt: doc.GeneratedAt,
	})
}

// ResetSession handles DELETE /session
// @Summary      Reset the session
// @Description  Clears the transcript, agenda and generated minutes
// @Tags         Session
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /session [delete]
func (h *Session) ResetSession(c echo.Context) error {
	h.service.Reset()
	return HandleSuccess(h.logger, c, map[string]interface{}{
		"reset": true,
	})
}

// ExportTranscript handles POST /session/transcript/export
// @Summary      Export the transcript as a text file
// @Tags         Exports
// @Produce      json
// @Success      200  {object}  dto.ExportResponse
// @Failure      412  {object}  map[string]interface{}  "Transcript is empty"
// @Router       /session/transcript/export [post]
func (h *Session) ExportTranscript(c echo.Context) error {
	filename, err := h.service.ExportTranscript()
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, dto.ExportResponse{
		Filename:     filename,
		DownloadPath: "/v1/exports/" + filename,
	})
}

// ExportMinutes handles POST /session/minutes/export
// @Summary      Export the minutes document
// @Description  Exports the latest minutes as txt (default) or docx
// @Tags         Exports
// @Produce      json
// @Param        format  query  string  false  "Export format"  Enums(txt, docx)
// @Success      200  {object}  dto.ExportResponse
// @Failure      404  {object}  map[string]interface{}  "No minutes generated yet"
// @Router       /session/minutes/export [post]
func (h *Session) ExportMinutes(c echo.Context) error {
	req := dto.ExportMinutesRequest{Format: c.QueryParam("format")}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	filename, err := h.service.ExportMinutes(req.Format)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, dto.ExportResponse{
		Filename:     filename,
		DownloadPath: "/v1/exports/" + filename,
	})
}

// DownloadExport handles GET /exports/:filename
// @Summary      Download an exported artifact
// @Tags         Exports
// @Produce      octet-stream
// @Param        filename  path  string  true  "Export filename"
// @Success      200  {file}  file
// @Failure      404  {object}  map[string]interface{}  "Export not found or expired"
// @Router       /exports/{filename} [get]
func (h *Session) DownloadExport(c echo.Context) error {
	filename := c.Param("filename")

	artifact, ok := h.service.Export(filename)
	if !ok {
		return HandleError(h.logger, c, errors.ErrExportNotFound(filename))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, artifact.ContentType, artifact.Content)
}

// readFormFile reads the named multipart file into memory
func readFormFile(c echo.Context, name string) ([]byte, error) {
	file, err := c.FormFile(name)
	if err != nil {
		return nil, err
	}
	return readMultipartFile(file)
}

func readMultipartFile(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}
