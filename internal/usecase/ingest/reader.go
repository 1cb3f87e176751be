package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

const unsupportedFormatMessage = "Unsupported file format"

// ExtractText converts an uploaded agenda file into plain text. It never
// returns an error: unsupported formats and extraction failures are rendered
// as descriptive strings, which callers treat as ordinary agenda content.
func ExtractText(filename string, data []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return string(data)
	case ".pdf":
		text, err := extractPDF(data)
		if err != nil {
			return fmt.Sprintf("Error reading file: %v", err)
		}
		return text
	case ".docx":
		text, err := extractDocx(data)
		if err != nil {
			return fmt.Sprintf("Error reading file: %v", err)
		}
		return text
	default:
		return unsupportedFormatMessage
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// extractDocx reads paragraph text runs from word/document.xml
func extractDocx(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var document io.ReadCloser
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			document, err = f.Open()
			if err != nil {
				return "", err
			}
			break
		}
	}
	if document == nil {
		return "", fmt.Errorf("missing word/document.xml")
	}
	defer document.Close()

	decoder := xml.NewDecoder(document)
	var b strings.Builder
	inTextRun := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch el := token.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				inTextRun = true
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inTextRun = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inTextRun {
				b.Write(el)
			}
		}
	}
	return b.String(), nil
}
