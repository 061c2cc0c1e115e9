// Package generator models the external text-generation collaborator as an
// opaque, injectable boundary. The core never manages retries, timeouts or
// concurrency for this call; that policy belongs to the caller.
package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is the one-method boundary to the external generator: given a
// rewrite request, return candidate replacement text for the entry.
type Client interface {
	Propose(ctx context.Context, req Request) (string, error)
	Close() error
}

// Request carries the context the generator needs to rewrite one entry.
type Request struct {
	EntryText      string
	Violations     []string
	MissingPhrases []string
}

// Config holds generator settings.
type Config struct {
	Model string
}

// DefaultConfig returns the default generator settings.
func DefaultConfig() *Config {
	return &Config{Model: "gemini-1.5-flash"}
}

// GeminiClient implements Client over the Gemini API.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a Gemini-backed generator client.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, config: config}, nil
}

// Propose asks the model for a single-line rewrite of the entry.
func (c *GeminiClient) Propose(ctx context.Context, req Request) (string, error) {
	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(0.1) // Low temperature for consistent output

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(req)))
	if err != nil {
		return "", &ProposeError{Message: "generation failed", Cause: err}
	}

	text, err := extractText(resp)
	if err != nil {
		return "", &ProposeError{Message: "unusable response", Cause: err}
	}
	return strings.TrimSpace(text), nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// buildPrompt renders the rewrite instructions for one entry.
func buildPrompt(req Request) string {
	var sb strings.Builder
	sb.WriteString("You are a résumé editor. Rewrite the following bullet so it leads with a strong action verb, quantifies impact, and avoids passive filler. Keep it truthful to the original content and return only the rewritten bullet, no commentary.\n\n")
	sb.WriteString("BULLET:\n")
	sb.WriteString(req.EntryText)
	sb.WriteString("\n")

	if len(req.Violations) > 0 {
		sb.WriteString("\nISSUES TO FIX:\n")
		for _, v := range req.Violations {
			sb.WriteString("- " + v + "\n")
		}
	}
	if len(req.MissingPhrases) > 0 {
		sb.WriteString("\nWORK IN THESE KEYWORDS WHERE HONEST:\n")
		sb.WriteString(strings.Join(req.MissingPhrases, ", "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// extractText pulls the first text candidate out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
