package analytics

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

var reportHeader = []string{"Email", "Name", "Role", "Logins", "Batches", "Resumes Processed", "Last Activity"}

// ReportCSV renders the admin report as CSV.
func ReportCSV(report Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(reportHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range report.Rows {
		lastActivity := ""
		if row.LastActivity != nil {
			lastActivity = row.LastActivity.UTC().Format("2006-01-02 15:04:05")
		}
		record := []string{
			row.Email,
			row.FullName,
			row.Role,
			strconv.Itoa(row.LoginCount),
			strconv.Itoa(row.BatchCount),
			strconv.Itoa(row.ResumesProcessed),
			lastActivity,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
