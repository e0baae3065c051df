package llm

import (
	"context"
	"fmt"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message in the conversation, in the shape the completion API
// expects.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Client interface {
	// Complete sends the system prompt and conversation to the model and
	// returns the assistant's reply text.
	Complete(ctx context.Context, system string, turns []Turn) (string, error)
}

// UpstreamError carries a non-success response from the completion API. The
// handler propagates its status code to the caller; the raw body stays in
// server logs only.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion api returned status %d", e.StatusCode)
}
