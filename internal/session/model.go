package session

import (
	"time"

	"skillsync-backend/internal/evaluation"
)

// Upload is one resume document submitted for evaluation.
type Upload struct {
	FileName  string
	MediaType string
	Data      []byte
}

// DocumentError reports a document that could not enter evaluation.
type DocumentError struct {
	FileName string `json:"fileName"`
	Message  string `json:"message"`
}

// Batch holds the outcome of one evaluation run for a user. Records are
// ranked by score; resumeTexts is index-aligned with Records so the
// interview generator can retrieve the selected candidate's text.
type Batch struct {
	ID             string              `json:"batchId"`
	JobDescription string              `json:"-"`
	Records        []evaluation.Record `json:"records"`
	Errors         []DocumentError     `json:"errors"`
	SelectedIndex  int                 `json:"selectedIndex"`
	CreatedAt      time.Time           `json:"createdAt"`

	resumeTexts []string
}

// Selected returns the currently selected record and its resume text.
// When the stored index is out of range it falls back to the top-ranked
// candidate.
func (b *Batch) Selected() (evaluation.Record, string, bool) {
	if len(b.Records) == 0 {
		return evaluation.Record{}, "", false
	}
	idx := b.SelectedIndex
	if idx < 0 || idx >= len(b.Records) {
		idx = 0
	}
	return b.Records[idx], b.resumeTexts[idx], true
}
