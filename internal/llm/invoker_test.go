package llm

import (
	"context"
	"testing"
	"time"

	"github.com/llmdesk/llmdesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockInvokerProviderTemplates(t *testing.T) {
	invoker := &MockInvoker{Delay: 0}
	ctx := context.Background()

	out, err := invoker.Invoke(ctx, models.LlmModel{Name: "GPT-4", Provider: "OpenAI"}, "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "GPT-4")
	assert.Contains(t, out, `"hello"`)

	out, err = invoker.Invoke(ctx, models.LlmModel{Name: "Claude-3", Provider: "Anthropic"}, "summarize this")
	require.NoError(t, err)
	assert.Contains(t, out, "Claude")
	assert.Contains(t, out, `"summarize this"`)

	out, err = invoker.Invoke(ctx, models.LlmModel{Name: "Gemini-Pro", Provider: "Google"}, "translate")
	require.NoError(t, err)
	assert.Contains(t, out, "Gemini")
	assert.Contains(t, out, `"translate"`)
}

func TestMockInvokerFallbackForUnknownProvider(t *testing.T) {
	invoker := &MockInvoker{Delay: 0}

	out, err := invoker.Invoke(context.Background(), models.LlmModel{Name: "Llama-3", Provider: "Meta"}, "hi")
	require.NoError(t, err)
	assert.Contains(t, out, "Llama-3")
	assert.Contains(t, out, `"hi"`)
	assert.Contains(t, out, "real provider integration")
}

func TestMockInvokerHonorsCancellation(t *testing.T) {
	invoker := &MockInvoker{Delay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := invoker.Invoke(ctx, models.LlmModel{Name: "GPT-4", Provider: "OpenAI"}, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewMockInvokerDefaultsToOneSecond(t *testing.T) {
	assert.Equal(t, time.Second, NewMockInvoker().Delay)
}
