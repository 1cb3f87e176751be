package session

// UploadAgendaRequest represents an agenda submitted as raw text.
// File uploads go through the multipart form path instead.
type UploadAgendaRequest struct {
	Text string `json:"text" validate:"notblank"`
}

// GenerateMinutesRequest represents the request to generate meeting minutes
type GenerateMinutesRequest struct {
	Attendees []string `json:"attendees,omitempty" validate:"omitempty,max=100,dive,max=255"`
}

// ExportMinutesRequest represents query parameters for a minutes export
type ExportMinutesRequest struct {
	Format string `query:"format" validate:"omitempty,oneof=txt docx"`
}
