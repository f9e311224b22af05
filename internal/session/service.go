package session

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"skillsync-backend/internal/analytics"
	"skillsync-backend/internal/evaluation"
	"skillsync-backend/internal/extract"
	"skillsync-backend/internal/interview"
	"skillsync-backend/internal/shared/metrics"
	"skillsync-backend/internal/shared/telemetry"
)

// llmCallTimeout bounds each AI call; expiry surfaces as a service failure
// for that document only.
const llmCallTimeout = 2 * time.Minute

// Service orchestrates a full evaluation run: extraction, scoring, ranking
// and usage accounting, with per-document failure isolation.
type Service struct {
	Engine    *evaluation.Engine
	Generator *interview.Generator
	Analytics analytics.Sink
	Store     *Store
}

// EvaluateBatch processes uploads sequentially. A document that fails
// extraction becomes a DocumentError; a document that fails evaluation
// still yields a zero-score record so the candidate stays visible in the
// ranked list. One failing document never aborts the rest.
func (s *Service) EvaluateBatch(ctx context.Context, userEmail, jobDescription string, uploads []Upload) (*Batch, error) {
	if len(uploads) == 0 {
		return nil, errors.New("no documents to evaluate")
	}

	metrics.IncBatchStarted()
	start := time.Now()

	batch := &Batch{
		ID:             uuid.NewString(),
		JobDescription: jobDescription,
		Errors:         []DocumentError{},
		CreatedAt:      start.UTC(),
	}

	for _, upload := range uploads {
		text, err := extract.Text(upload.Data, upload.MediaType)
		if err != nil {
			metrics.IncDocumentFailed()
			telemetry.Warn("session.extract_failed", map[string]any{
				"batch_id":  batch.ID,
				"file_name": upload.FileName,
				"error":     err.Error(),
			})
			batch.Errors = append(batch.Errors, DocumentError{
				FileName: upload.FileName,
				Message:  err.Error(),
			})
			continue
		}

		callCtx, cancel := context.WithTimeout(ctx, llmCallTimeout)
		record, err := s.Engine.Evaluate(callCtx, jobDescription, text)
		cancel()
		if err != nil {
			metrics.IncDocumentFailed()
			telemetry.Warn("session.evaluate_failed", map[string]any{
				"batch_id":  batch.ID,
				"file_name": upload.FileName,
				"error":     err.Error(),
			})
		}
		metrics.IncEvaluation()
		batch.Records = append(batch.Records, record)
		batch.resumeTexts = append(batch.resumeTexts, text)
	}

	rank(batch)

	if len(batch.Records) > 0 {
		if err := s.Analytics.LogUsage(ctx, userEmail, len(uploads)); err != nil {
			telemetry.Error("session.log_usage", map[string]any{
				"batch_id": batch.ID,
				"error":    err.Error(),
			})
		}
	}

	s.Store.Put(userEmail, batch)

	metrics.IncBatchCompleted()
	metrics.ObserveBatchDurationMs(float64(time.Since(start).Milliseconds()))
	telemetry.Info("session.batch_completed", map[string]any{
		"batch_id":   batch.ID,
		"records":    len(batch.Records),
		"errors":     len(batch.Errors),
		"user_email": userEmail,
	})
	return batch, nil
}

// rank orders records by score descending, keeping submission order among
// equal scores, and carries the resume texts along.
func rank(batch *Batch) {
	idx := make([]int, len(batch.Records))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return batch.Records[idx[a]].Score > batch.Records[idx[b]].Score
	})

	records := make([]evaluation.Record, len(idx))
	texts := make([]string, len(idx))
	for pos, original := range idx {
		records[pos] = batch.Records[original]
		texts[pos] = batch.resumeTexts[original]
	}
	batch.Records = records
	batch.resumeTexts = texts
}

// Current returns the user's latest batch.
func (s *Service) Current(userEmail string) (*Batch, error) {
	return s.Store.Get(userEmail)
}

// SetSelection picks a candidate from the ranked list.
func (s *Service) SetSelection(userEmail string, index int) (*Batch, error) {
	return s.Store.Select(userEmail, index)
}

// GenerateQA builds interview questions for the selected candidate of the
// user's current batch.
func (s *Service) GenerateQA(ctx context.Context, userEmail string) (evaluation.Record, []interview.QAPair, error) {
	batch, err := s.Store.Get(userEmail)
	if err != nil {
		return evaluation.Record{}, nil, err
	}
	record, resumeText, ok := batch.Selected()
	if !ok {
		return evaluation.Record{}, nil, ErrNoBatch
	}

	callCtx, cancel := context.WithTimeout(ctx, llmCallTimeout)
	defer cancel()
	pairs, err := s.Generator.Generate(callCtx, batch.JobDescription, resumeText)
	if err != nil {
		metrics.IncQAFailed()
		return record, nil, err
	}
	metrics.IncQAGenerated()
	return record, pairs, nil
}
