package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/google/uuid"
)

const (
	exportFontName = "Calibri"
	exportFontSize = 11
)

// renderMinutesDocx converts the plain-text minutes document into a styled
// .docx payload. godocx writes to disk, so the document is staged in a
// uniquely named temp file and removed afterwards.
func renderMinutesDocx(content string) ([]byte, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, err
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "="):
			doc.AddParagraph("")
		case isSectionHeading(trimmed):
			addLine(doc.AddParagraph(""), trimmed, true, 13)
		default:
			addLine(doc.AddParagraph(""), line, false, exportFontSize)
		}
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("minutes-%s.docx", uuid.NewString()))
	if err := doc.SaveTo(path); err != nil {
		return nil, err
	}
	defer os.Remove(path)

	return os.ReadFile(path)
}

// isSectionHeading matches the fixed template's section labels
func isSectionHeading(line string) bool {
	switch line {
	case "MEETING MINUTES", "AGENDA:", "ATTENDEES:", "DISCUSSION SUMMARY:", "FULL TRANSCRIPT:":
		return true
	}
	return false
}

func addLine(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(exportFontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
