package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"skillsync-backend/internal/llm"
)

const (
	evalTemperature = 0
	evalMaxTokens   = 1000
)

// Engine evaluates resume text against a job description via the AI service.
type Engine struct {
	LLM llm.Client
}

// Evaluate scores one resume against the job description. The returned Record
// is always usable: on failure it is the zero-score sentinel and the error
// carries the failure tag (ErrEmptyJobDescription, ErrEmptyResume or
// *ServiceError). Blank inputs never reach the AI service.
func (e *Engine) Evaluate(ctx context.Context, jobDescription, resumeText string) (Record, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return sentinelRecord(""), ErrEmptyJobDescription
	}
	if strings.TrimSpace(resumeText) == "" {
		return sentinelRecord(""), ErrEmptyResume
	}

	raw, err := e.LLM.Complete(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(jobDescription, resumeText),
		Temperature: evalTemperature,
		MaxTokens:   evalMaxTokens,
	})
	if err != nil {
		return sentinelRecord(""), &ServiceError{Err: err}
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return sentinelRecord(""), &ServiceError{Err: fmt.Errorf("parse evaluation: %w", err)}
	}

	record := normalize(payload)
	if record.CandidateName == "Unknown" || record.Email == "" {
		name, email := fallbackContact(resumeText)
		if record.CandidateName == "Unknown" && name != "" {
			record.CandidateName = name
		}
		if record.Email == "" {
			record.Email = email
		}
	}
	return record, nil
}

// normalize maps the raw JSON payload into a Record. It never fails: missing
// or wrong-typed fields coerce to safe defaults. This is the last line of
// defense against malformed AI output.
func normalize(payload map[string]any) Record {
	score := coerceScore(payload["Score"])
	return Record{
		CandidateName: coerceString(payload["Candidate Name"], "Unknown"),
		Email:         coerceString(payload["Email"], ""),
		Score:         score,
		Match:         score >= MatchThreshold,
		Skills:        coerceStrings(payload["Skills Found"]),
		Rationale:     coerceString(payload["Rationale"], "No explanation provided."),
	}
}

func coerceScore(v any) int {
	switch val := v.(type) {
	case float64:
		return clampScore(int(val))
	case int:
		return clampScore(val)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return clampScore(n)
		}
	}
	return 0
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

func coerceString(v any, def string) string {
	if s, ok := v.(string); ok {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			return trimmed
		}
	}
	return def
}

func coerceStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
