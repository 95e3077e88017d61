package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/llmdesk/llmdesk/internal/models"
)

// Invoker is the model-invocation boundary. The production wiring uses
// MockInvoker; a real provider client implements the same interface.
type Invoker interface {
	Invoke(ctx context.Context, model models.LlmModel, prompt string) (string, error)
}

// MockInvoker returns canned, provider-specific responses after a simulated
// network delay. It never dials anything.
type MockInvoker struct {
	Delay time.Duration
}

func NewMockInvoker() *MockInvoker {
	return &MockInvoker{Delay: time.Second}
}

func (m *MockInvoker) Invoke(ctx context.Context, model models.LlmModel, prompt string) (string, error) {
	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(m.Delay):
		}
	}

	switch model.Provider {
	case "OpenAI":
		return fmt.Sprintf("Hello! I am the %s model. Here is my response to your request %q: as a language model I can perform a wide range of AI tasks, including text generation, question answering, and translation.", model.Name, prompt), nil
	case "Anthropic":
		return fmt.Sprintf("This is Claude. Regarding %q: I am an AI assistant built by Anthropic, and I try to give helpful and accurate answers.", prompt), nil
	case "Google":
		return fmt.Sprintf("This is the Gemini model. Answering %q using Google's latest AI technology.", prompt), nil
	default:
		return fmt.Sprintf("The %s model generated a response to %q. A real provider integration is required.", model.Name, prompt), nil
	}
}
