package analysis

import (
	"context"

	"github.com/thywilljoshua/finslides/internal/ai"
	"github.com/thywilljoshua/finslides/internal/document"
)

// Pipeline runs encode then infer, strictly in that order.
type Pipeline struct {
	Inferrer ai.Inferrer
	Prompt   string
}

// NewPipeline uses the slide prompt unless another is given.
func NewPipeline(inferrer ai.Inferrer, prompt string) *Pipeline {
	if prompt == "" {
		prompt = ai.SlidePrompt
	}
	if inferrer == nil {
		inferrer = ai.Unconfigured{}
	}
	return &Pipeline{Inferrer: inferrer, Prompt: prompt}
}

// Run returns the raw model text for doc. The payload does not outlive the call.
func (p *Pipeline) Run(ctx context.Context, doc *document.Document) (string, error) {
	payload, err := document.Encode(ctx, doc)
	if err != nil {
		return "", err
	}
	text, err := p.Inferrer.Infer(ctx, payload, p.Prompt)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", &ai.EmptyResponseError{}
	}
	return text, nil
}
