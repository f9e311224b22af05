package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Supported media types for resume uploads.
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeDOC  = "application/msword"
	MimeTXT  = "text/plain"
)

// UnsupportedFormatError reports an upload outside the supported media types.
type UnsupportedFormatError struct {
	MediaType string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported media type: %s", e.MediaType)
}

// Text extracts plain text from an in-memory resume payload.
// Extraction is pure: identical bytes always produce identical text.
func Text(data []byte, mediaType string) (string, error) {
	switch normalizeMediaType(mediaType) {
	case MimePDF:
		return extractPDF(data)
	case MimeDOCX, MimeDOC:
		return extractDOCX(data)
	case MimeTXT:
		return extractTXT(data)
	default:
		return "", &UnsupportedFormatError{MediaType: normalizeMediaType(mediaType)}
	}
}

// extractPDF reads every page and joins page texts with a newline.
// Pages that yield no text contribute an empty string.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

// extractDOCX reads word/document.xml and joins paragraphs with a newline.
func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("document.xml file not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}

	return paragraphText(raw), nil
}

// paragraphText walks the document XML and emits one line per paragraph,
// in document order.
func paragraphText(raw []byte) string {
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				buf.WriteString("\n")
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func extractTXT(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("text file is not valid UTF-8")
	}
	return strings.TrimSpace(string(data)), nil
}

func normalizeMediaType(mediaType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mediaType, ";")[0]))
}
