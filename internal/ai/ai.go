package ai

import (
	"context"

	"github.com/thywilljoshua/finslides/internal/document"
)

// Inferrer is the single remote capability the analysis needs:
// submit an image plus an instructional prompt, get the full text back.
// Implementations make exactly one call per invocation and never retry.
type Inferrer interface {
	Infer(ctx context.Context, image document.Payload, prompt string) (string, error)
}

// InferFunc lets a plain function satisfy Inferrer.
type InferFunc func(ctx context.Context, image document.Payload, prompt string) (string, error)

func (f InferFunc) Infer(ctx context.Context, image document.Payload, prompt string) (string, error) {
	return f(ctx, image, prompt)
}
