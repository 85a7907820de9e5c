// Package llm abstracts the text-completion provider used to turn free-text
// prompts into structured intents.
package llm

import "context"

// Provider is the interface a completion provider must implement.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Complete sends a completion request and returns the full response.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)
}

// CompletionRequest represents a request to the provider.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Message represents a chat message.
type Message struct {
	Role    string
	Content string
}

// CompletionResponse represents the full response.
type CompletionResponse struct {
	Content      string
	Model        string
	FinishReason string
}

// NewRequest builds a completion request with a system and a user message.
func NewRequest(model, systemPrompt, userPrompt string, maxTokens int, temperature float64) *CompletionRequest {
	return &CompletionRequest{
		Model: model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
}
