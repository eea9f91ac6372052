// Package llm wraps the hosted generative model used for answer generation.
package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	// GenerationModel is the Gemini model used for answer generation.
	GenerationModel = "gemini-2.5-flash-lite"

	// Temperature keeps answers close to the retrieved context.
	Temperature = 0.1

	// MaxOutputTokens caps the generated answer length.
	MaxOutputTokens = 6000
)

// GeminiClient generates answer text from an assembled prompt.
// The client is stateless and safe to share between requests.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini API client. The API key is required;
// a missing key is a startup configuration error.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  GenerationModel,
	}, nil
}

// Generate sends the prompt to Gemini and returns the generated text.
// Timeouts, rate limits and rejections surface as errors to the caller;
// there is no retry and no partial answer.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](Temperature),
		MaxOutputTokens: MaxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("gemini completion failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}

	return text, nil
}
