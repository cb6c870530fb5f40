package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripReasoningTags(t *testing.T) {
	in := "<think>the reader likes epic fantasy, so...</think>{\"recommendations\": []}"
	assert.Equal(t, `{"recommendations": []}`, StripReasoningTags(in))

	// Multiple blocks and surrounding whitespace.
	in = "  <think>a</think>answer<think>b</think>  "
	assert.Equal(t, "answer", StripReasoningTags(in))

	// Plain output passes through untouched.
	assert.Equal(t, `{"ok": true}`, StripReasoningTags(`{"ok": true}`))
}

func TestDisabledClient(t *testing.T) {
	c := NewClient("", "gpt-4o-mini", 800, 0.7, true)
	assert.False(t, c.IsEnabled())

	_, err := c.Recommend(context.Background(), nil, nil, 5)
	assert.Error(t, err)

	_, err = c.DetectSeries(context.Background(), "Dune")
	assert.Error(t, err)

	c = NewClient("sk-test", "gpt-4o-mini", 800, 0.7, false)
	assert.False(t, c.IsEnabled())
}
