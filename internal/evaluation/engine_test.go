package evaluation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"skillsync-backend/internal/llm"
)

type stubClient struct {
	response string
	err      error
	calls    int
	lastReq  llm.Request
}

func (s *stubClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestEvaluateSuccess(t *testing.T) {
	client := &stubClient{response: `{
		"Candidate Name": "Jane Doe",
		"Email": "jane@example.com",
		"Score": 85,
		"Match": false,
		"Skills Found": ["Go", "Postgres"],
		"Rationale": "Strong backend experience."
	}`}
	engine := &Engine{LLM: client}

	record, err := engine.Evaluate(context.Background(), "Go developer", "Jane Doe resume text")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if record.CandidateName != "Jane Doe" {
		t.Fatalf("unexpected name: %q", record.CandidateName)
	}
	if record.Score != 85 {
		t.Fatalf("unexpected score: %d", record.Score)
	}
	// Match is recomputed from the score, not taken from the response.
	if !record.Match {
		t.Fatal("expected match for score above threshold")
	}
	if len(record.Skills) != 2 || record.Skills[0] != "Go" {
		t.Fatalf("unexpected skills: %v", record.Skills)
	}
	if client.calls != 1 {
		t.Fatalf("expected 1 call, got %d", client.calls)
	}
}

func TestEvaluateEmptyResumeSkipsService(t *testing.T) {
	client := &stubClient{response: "{}"}
	engine := &Engine{LLM: client}

	record, err := engine.Evaluate(context.Background(), "jd", "   \n\t ")
	if !errors.Is(err, ErrEmptyResume) {
		t.Fatalf("expected ErrEmptyResume, got %v", err)
	}
	if client.calls != 0 {
		t.Fatalf("expected no service calls, got %d", client.calls)
	}
	if record.CandidateName != "Unknown" || record.Score != 0 || record.Match {
		t.Fatalf("expected sentinel record, got %+v", record)
	}
}

func TestEvaluateEmptyJobDescriptionSkipsService(t *testing.T) {
	client := &stubClient{response: `{"Candidate Name": "Jane Doe", "Score": 85}`}
	engine := &Engine{LLM: client}

	record, err := engine.Evaluate(context.Background(), "   \n ", "Jane Doe resume text")
	if !errors.Is(err, ErrEmptyJobDescription) {
		t.Fatalf("expected ErrEmptyJobDescription, got %v", err)
	}
	if client.calls != 0 {
		t.Fatalf("expected no service calls, got %d", client.calls)
	}
	if record.CandidateName != "Unknown" || record.Score != 0 || record.Match {
		t.Fatalf("expected sentinel record, got %+v", record)
	}
}

func TestEvaluateServiceFailure(t *testing.T) {
	client := &stubClient{err: errors.New("boom")}
	engine := &Engine{LLM: client}

	record, err := engine.Evaluate(context.Background(), "jd", "resume")
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %v", err)
	}
	if record.CandidateName != "Unknown" || record.Score != 0 {
		t.Fatalf("expected sentinel record, got %+v", record)
	}
	if record.Skills == nil || len(record.Skills) != 0 {
		t.Fatalf("expected empty skills slice, got %v", record.Skills)
	}
}

func TestEvaluateMalformedResponse(t *testing.T) {
	client := &stubClient{response: "Sure! Here is the evaluation you asked for."}
	engine := &Engine{LLM: client}

	record, err := engine.Evaluate(context.Background(), "jd", "resume")
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %v", err)
	}
	if record.CandidateName != "Unknown" || record.Score != 0 || record.Match {
		t.Fatalf("expected sentinel record, got %+v", record)
	}
}

func TestEvaluateScoreAsString(t *testing.T) {
	client := &stubClient{response: `{"Candidate Name": "Jo", "Email": "jo@x.io", "Score": "72"}`}
	engine := &Engine{LLM: client}

	record, err := engine.Evaluate(context.Background(), "jd", "resume")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if record.Score != 72 {
		t.Fatalf("unexpected score: %d", record.Score)
	}
	if !record.Match {
		t.Fatal("expected match at score 72")
	}
	if record.Rationale != "No explanation provided." {
		t.Fatalf("unexpected rationale default: %q", record.Rationale)
	}
}

func TestEvaluateScoreClamped(t *testing.T) {
	client := &stubClient{response: `{"Score": 140}`}
	engine := &Engine{LLM: client}

	record, err := engine.Evaluate(context.Background(), "jd", "resume")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if record.Score != 100 {
		t.Fatalf("expected score clamped to 100, got %d", record.Score)
	}
}

func TestEvaluateContactFallback(t *testing.T) {
	client := &stubClient{response: `{"Score": 50}`}
	engine := &Engine{LLM: client}

	resume := "John Smith\nBackend engineer\nContact: john.smith@corp.example"
	record, err := engine.Evaluate(context.Background(), "jd", resume)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if record.CandidateName != "John Smith" {
		t.Fatalf("expected name from resume text, got %q", record.CandidateName)
	}
	if record.Email != "john.smith@corp.example" {
		t.Fatalf("expected email from resume text, got %q", record.Email)
	}
	if record.Match {
		t.Fatal("expected no match at score 50")
	}
}

func TestEvaluatePromptCarriesInputs(t *testing.T) {
	client := &stubClient{response: `{"Score": 10}`}
	engine := &Engine{LLM: client}

	if _, err := engine.Evaluate(context.Background(), "Senior Go role", "resume body"); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if client.lastReq.Temperature != 0 {
		t.Fatalf("unexpected temperature: %v", client.lastReq.Temperature)
	}
	if client.lastReq.MaxTokens != 1000 {
		t.Fatalf("unexpected max tokens: %d", client.lastReq.MaxTokens)
	}
	if !strings.Contains(client.lastReq.Prompt, "Senior Go role") || !strings.Contains(client.lastReq.Prompt, "resume body") {
		t.Fatal("prompt missing job description or resume text")
	}
}
