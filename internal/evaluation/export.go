package evaluation

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

var csvHeader = []string{"Candidate Name", "Email", "Score", "Match", "Skills Found", "Rationale"}

// WriteCSV writes records as UTF-8 comma-separated text with a header row,
// suitable for direct download.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.CandidateName,
			emailOrNA(r.Email),
			strconv.Itoa(r.Score),
			matchLabel(r.Match),
			strings.Join(r.Skills, "; "),
			r.Rationale,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVBytes renders records to CSV content in memory.
func CSVBytes(records []Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func matchLabel(match bool) string {
	if match {
		return "Yes"
	}
	return "No"
}

func emailOrNA(email string) string {
	if strings.TrimSpace(email) == "" {
		return "N/A"
	}
	return email
}
