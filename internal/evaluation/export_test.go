package evaluation

import (
	"encoding/csv"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	records := []Record{
		{CandidateName: "Jane Doe", Email: "jane@example.com", Score: 85, Match: true, Skills: []string{"Go", "Postgres"}, Rationale: "Strong fit."},
		{CandidateName: "Unknown", Email: "", Score: 0, Match: false, Skills: []string{}, Rationale: "Evaluation failed."},
	}

	data, err := CSVBytes(records)
	if err != nil {
		t.Fatalf("CSVBytes: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Candidate Name" || rows[0][3] != "Match" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][3] != "Yes" || rows[1][4] != "Go; Postgres" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[2][1] != "N/A" || rows[2][3] != "No" {
		t.Fatalf("unexpected second row: %v", rows[2])
	}
}
