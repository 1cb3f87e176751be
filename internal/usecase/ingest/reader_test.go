package ingest

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func TestExtractText_PlainText(t *testing.T) {
	got := ExtractText("agenda.txt", []byte("1. Budget\n2. Staffing"))
	if got != "1. Budget\n2. Staffing" {
		t.Fatalf("ExtractText = %q", got)
	}
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	got := ExtractText("agenda.xlsx", []byte("whatever"))
	if got != unsupportedFormatMessage {
		t.Fatalf("ExtractText = %q, want %q", got, unsupportedFormatMessage)
	}
}

func TestExtractText_CorruptPDFBecomesMessage(t *testing.T) {
	got := ExtractText("agenda.pdf", []byte("not a pdf at all"))
	if !strings.HasPrefix(got, "Error reading file: ") {
		t.Fatalf("extraction failure should be rendered as agenda text, got %q", got)
	}
}

func TestExtractText_Docx(t *testing.T) {
	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>1. Budget review</w:t></w:r></w:p>
    <w:p><w:r><w:t>2. Staffing </w:t></w:r><w:r><w:t>plan</w:t></w:r></w:p>
  </w:body>
</w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	got := ExtractText("agenda.docx", buf.Bytes())
	if !strings.Contains(got, "1. Budget review") {
		t.Fatalf("missing first paragraph in %q", got)
	}
	if !strings.Contains(got, "2. Staffing plan") {
		t.Fatalf("runs within a paragraph should concatenate, got %q", got)
	}
}

func TestExtractText_DocxMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, _ := zw.Create("word/other.xml")
	f.Write([]byte("<x/>"))
	zw.Close()

	got := ExtractText("agenda.docx", buf.Bytes())
	if !strings.HasPrefix(got, "Error reading file: ") {
		t.Fatalf("ExtractText = %q", got)
	}
}
