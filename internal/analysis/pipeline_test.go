package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thywilljoshua/finslides/internal/ai"
	"github.com/thywilljoshua/finslides/internal/document"
	"github.com/thywilljoshua/finslides/internal/slides"
)

func TestSlidePromptRequestsDelimiter(t *testing.T) {
	assert.Contains(t, ai.SlidePrompt, slides.Delimiter)
}

func TestPipelineRun(t *testing.T) {
	t.Run("Should default prompt and inferrer", func(t *testing.T) {
		p := NewPipeline(nil, "")
		assert.Equal(t, ai.SlidePrompt, p.Prompt)
		_, err := p.Run(context.Background(), testDoc())
		assert.ErrorIs(t, err, ai.ErrNotConfigured)
	})

	t.Run("Should return whitespace-only text as a result", func(t *testing.T) {
		p := NewPipeline(ai.InferFunc(func(context.Context, document.Payload, string) (string, error) {
			return " \n\t", nil
		}), "custom")
		text, err := p.Run(context.Background(), testDoc())
		require.NoError(t, err)
		assert.Equal(t, " \n\t", text)
	})

	t.Run("Should reach success with no content for whitespace-only text", func(t *testing.T) {
		m := newMachine(&fakeInferrer{text: " \n\t"})
		m.Select(testDoc())
		s, started := m.Analyze(context.Background())
		require.True(t, started)
		assert.Equal(t, Success, s.View)
		assert.True(t, s.NoContent())
		assert.Empty(t, s.ErrorMessage)
	})

	t.Run("Should treat text-free output as an empty response", func(t *testing.T) {
		p := NewPipeline(ai.InferFunc(func(context.Context, document.Payload, string) (string, error) {
			return "", nil
		}), "")
		_, err := p.Run(context.Background(), testDoc())
		assert.True(t, ai.IsEmptyResponse(err))
	})

	t.Run("Should pass provider errors through unchanged", func(t *testing.T) {
		want := ai.NewProviderError(ai.ErrTypeQuota, "quota exceeded", "gemini")
		p := NewPipeline(ai.InferFunc(func(context.Context, document.Payload, string) (string, error) {
			return "", want
		}), "")
		_, err := p.Run(context.Background(), testDoc())
		assert.Same(t, want, err)
	})

	t.Run("Should encode before inferring", func(t *testing.T) {
		var got document.Payload
		p := NewPipeline(ai.InferFunc(func(_ context.Context, image document.Payload, prompt string) (string, error) {
			got = image
			assert.Equal(t, "custom", prompt)
			return "A", nil
		}), "custom")
		text, err := p.Run(context.Background(), testDoc())
		require.NoError(t, err)
		assert.Equal(t, "A", text)
		raw, err := got.Bytes()
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), raw)
	})
}
