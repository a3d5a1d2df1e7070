package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// #region model-interface

// Completion is one generative-model response.
type Completion struct {
	Text       string
	Confidence float64
}

// Model is the generative-model backend. It may be called several times
// within one request (main answer plus extraction sub-tasks).
type Model interface {
	Complete(ctx context.Context, prompt string) (Completion, error)
}

// #endregion model-interface

// #region gemini-client

// GeminiClient talks to the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini client for the given model
// (gemini-2.5-flash when empty).
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Complete sends a prompt and returns the completion. Gemini reports no
// confidence of its own, so a fixed 0.8 is attached.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (Completion, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return Completion{}, fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return Completion{}, fmt.Errorf("empty completion")
	}
	return Completion{Text: text, Confidence: 0.8}, nil
}

// #endregion gemini-client
