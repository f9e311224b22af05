package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"skillsync-backend/internal/llm"
)

const (
	qaTemperature = 0.7
	qaMaxTokens   = 1500
	questionCount = 10
)

const systemPrompt = "You are an experienced recruitment consultant."

const promptTemplate = `
You are an AI consultant in recruitment. Generate %d concise technical interview questions with model answers based on the information provided.

### Job Description:
%s

### Candidate Resume:
%s

Instructions:
- The questions should target essential technical areas from the job description.
- Answers should be short and informative.

Return a JSON output with the structure:
{
  "questions": [
    {"question": "Question 1", "answer": "Answer 1"},
    ...
  ]
}
`

// QAPair is one interview question with its model answer.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GenerationError reports a Q&A generation that failed at the service or
// parsing stage.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "interview qa generation failed: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Generator produces interview Q&A sets for a selected candidate.
type Generator struct {
	LLM llm.Client
}

// Generate requests 10 technical questions with model answers. A response
// with fewer entries is accepted as-is; entry order is preserved.
func (g *Generator) Generate(ctx context.Context, jobDescription, resumeText string) ([]QAPair, error) {
	raw, err := g.LLM.Complete(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      fmt.Sprintf(promptTemplate, questionCount, jobDescription, resumeText),
		Temperature: qaTemperature,
		MaxTokens:   qaMaxTokens,
	})
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	var payload struct {
		Questions []QAPair `json:"questions"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &GenerationError{Err: fmt.Errorf("parse qa response: %w", err)}
	}

	pairs := make([]QAPair, 0, len(payload.Questions))
	for _, p := range payload.Questions {
		if strings.TrimSpace(p.Question) == "" {
			continue
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}
