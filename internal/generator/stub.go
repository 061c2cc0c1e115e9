package generator

import (
	"context"
	"strings"
)

// StubClient is a deterministic Client for tests and offline runs. It
// produces a predictable rewrite without calling any external service.
type StubClient struct {
	// Responses maps entry text to a canned rewrite. Entries without a
	// canned response get the original text back with the missing
	// keywords appended, so diffs are still non-trivial.
	Responses map[string]string
}

// NewStubClient creates a stub generator with no canned responses.
func NewStubClient() *StubClient {
	return &StubClient{Responses: make(map[string]string)}
}

// Propose returns the canned response for the entry text, or a
// deterministic augmentation of the original.
func (c *StubClient) Propose(_ context.Context, req Request) (string, error) {
	if text, ok := c.Responses[req.EntryText]; ok {
		return text, nil
	}
	if len(req.MissingPhrases) == 0 {
		return req.EntryText, nil
	}
	return req.EntryText + " using " + strings.Join(req.MissingPhrases, ", "), nil
}

// Close is a no-op for the stub.
func (c *StubClient) Close() error {
	return nil
}
