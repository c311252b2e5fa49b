package ai

import (
	"context"
	"errors"
)

var ErrNotConfigured = errors.New("AI features are disabled: no API key configured")

// Generator produces text for a prompt. When wantsJSON is set the model is
// asked for a JSON document, which may still come back wrapped in a code
// fence.
type Generator interface {
	GenerateText(ctx context.Context, prompt string, wantsJSON bool) (string, error)
}

// Disabled is the generator used when no API key is configured.
type Disabled struct{}

func (Disabled) GenerateText(context.Context, string, bool) (string, error) {
	return "", ErrNotConfigured
}

func NewGenerator(p GeminiParams) Generator {
	if p.APIKey == "" {
		return Disabled{}
	}
	return NewGeminiClient(p)
}
