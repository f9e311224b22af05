package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestText_PlainText(t *testing.T) {
	got, err := Text([]byte("  Jane Doe\nGo developer\n"), MimeTXT)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "Jane Doe\nGo developer" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestText_PlainTextInvalidUTF8(t *testing.T) {
	if _, err := Text([]byte{0xff, 0xfe, 0xfd}, MimeTXT); err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
}

func TestText_UnsupportedFormat(t *testing.T) {
	_, err := Text([]byte("payload"), "image/png")
	if err == nil {
		t.Fatal("expected unsupported format error")
	}
	var formatErr *UnsupportedFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected UnsupportedFormatError, got %T", err)
	}
	if formatErr.MediaType != "image/png" {
		t.Fatalf("unexpected media type: %q", formatErr.MediaType)
	}
}

func TestText_MediaTypeParametersIgnored(t *testing.T) {
	got, err := Text([]byte("hello"), "text/plain; charset=utf-8")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "hello" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestText_Docx(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Senior Go Engineer</w:t></w:r></w:p>
  </w:body>
</w:document>`
	data := buildDocx(t, doc)

	got, err := Text(data, MimeDOCX)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(got, "Jane Doe") || !strings.Contains(got, "Senior Go Engineer") {
		t.Fatalf("unexpected text: %q", got)
	}
	if !strings.Contains(got, "\n") {
		t.Fatalf("expected paragraphs separated by newline, got %q", got)
	}
}

func TestText_DocxMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	if _, err := Text(buf.Bytes(), MimeDOCX); err == nil {
		t.Fatal("expected error for zip without document.xml")
	}
}

func TestText_PDFGarbage(t *testing.T) {
	if _, err := Text([]byte("not a pdf"), MimePDF); err == nil {
		t.Fatal("expected error for invalid pdf data")
	}
}

func TestText_DeterministicForSameBytes(t *testing.T) {
	data := []byte("Jane Doe\nGo developer")
	first, err := Text(data, MimeTXT)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	second, err := Text(data, MimeTXT)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if first != second {
		t.Fatalf("extraction not deterministic: %q vs %q", first, second)
	}
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}
