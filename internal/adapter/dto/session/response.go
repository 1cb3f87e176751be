package session

import "time"

// SubmitAudioResponse reports the outcome of one audio submission
type SubmitAudioResponse struct {
	Outcome    string `json:"outcome"`
	Text       string `json:"text,omitempty"`
	Appended   bool   `json:"appended"`
	Duplicate  bool   `json:"duplicate"`
	Transcript string `json:"transcript"`
}

// TranscriptResponse carries the flattened session transcript
type TranscriptResponse struct {
	Transcript string `json:"transcript"`
}

// AgendaResponse carries the current agenda text
type AgendaResponse struct {
	Agenda string `json:"agenda"`
}

// MinutesResponse carries a generated minutes document
type MinutesResponse struct {
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ExportResponse points at a downloadable export artifact
type ExportResponse struct {
	Filename     string `json:"filename"`
	DownloadPath string `json:"download_path"`
}
