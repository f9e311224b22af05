package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"skillsync-backend/internal/llm"
)

// Client implements llm.Client using the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a new Gemini client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for Gemini")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Complete performs one generation call with a JSON response MIME type.
func (c *Client) Complete(ctx context.Context, req llm.Request) (string, error) {
	temp := req.Temperature
	config := &genai.GenerateContentConfig{
		Temperature:      &temp,
		MaxOutputTokens:  int32(req.MaxTokens),
		ResponseMIMEType: "application/json",
	}
	if strings.TrimSpace(req.System) != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("gemini response empty")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini response empty content")
	}
	return text, nil
}

var _ llm.Client = (*Client)(nil)
