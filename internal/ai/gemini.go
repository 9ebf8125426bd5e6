package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	genai "google.golang.org/genai"

	"github.com/thywilljoshua/finslides/internal/document"
)

const providerGemini = "gemini"

// GeminiConfig holds what is needed to reach the Gemini API.
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	// HTTPClient is optional; tests point it at an httptest server.
	HTTPClient *http.Client
}

type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, NewProviderError(ErrTypeConfiguration, "missing GEMINI_API_KEY", providerGemini)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	c, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, NewProviderErrorWithCause(ErrTypeConfiguration, err.Error(), providerGemini, err)
	}
	return &Gemini{client: c, model: cfg.Model}, nil
}

func (g *Gemini) Name() string  { return providerGemini }
func (g *Gemini) Model() string { return g.model }

// Infer sends the image and the prompt as one user turn and returns the
// model's full text. One request, no retries.
func (g *Gemini) Infer(ctx context.Context, image document.Payload, prompt string) (string, error) {
	if g.client == nil {
		return "", NewProviderError(ErrTypeConfiguration, "gemini not configured", providerGemini)
	}
	data, err := image.Bytes()
	if err != nil {
		return "", NewProviderErrorWithCause(ErrTypeValidation, "image payload is not valid base64", providerGemini, err)
	}
	content := &genai.Content{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: image.MIMEType, Data: data}},
			{Text: prompt},
		},
	}
	res, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{content}, nil)
	if err != nil {
		return "", classifyError(providerGemini, err)
	}
	if res == nil {
		return "", &EmptyResponseError{Provider: providerGemini, Model: g.model}
	}
	raw := res.Text()
	if raw == "" {
		return "", &EmptyResponseError{Provider: providerGemini, Model: g.model}
	}
	if text := stripCodeFences(raw); text != "" {
		return text, nil
	}
	return raw, nil
}

// stripCodeFences removes a ```markdown (or bare ```) fence the model
// sometimes wraps the whole answer in. Anything that is not fully wrapped,
// opening and closing fence both on their own lines, is returned as is.
func stripCodeFences(s string) string {
	t := strings.TrimSpace(s)
	if len(t) < 6 || !strings.HasPrefix(t, "```") || !strings.HasSuffix(t, "```") {
		return s
	}
	firstNewline := strings.Index(t, "\n")
	if firstNewline == -1 {
		return s
	}
	body := t[firstNewline+1 : len(t)-3]
	if body != "" && !strings.HasSuffix(body, "\n") {
		return s
	}
	if strings.Contains(body, "```") {
		return s
	}
	return strings.TrimSpace(body)
}

var _ Inferrer = (*Gemini)(nil)

// ErrNotConfigured is returned by Unconfigured.
var ErrNotConfigured = errors.New("no inference provider configured: set GEMINI_API_KEY")

// Unconfigured stands in when no API key is available so the rest of the
// application can still run; every attempt fails with a ProviderError.
type Unconfigured struct{}

func (Unconfigured) Infer(context.Context, document.Payload, string) (string, error) {
	return "", NewProviderErrorWithCause(ErrTypeConfiguration, ErrNotConfigured.Error(), "", ErrNotConfigured)
}
