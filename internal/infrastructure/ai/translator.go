// Package ai implements the translation layer: one chat-completion request
// against an OpenAI-compatible provider, reply parsing, and a static fallback
// mapping used whenever the provider is unavailable or its reply unusable.
package ai

import (
	"context"
	"net/http"

	"github.com/llmshell/llmshell/internal/domain"
	"github.com/llmshell/llmshell/internal/ports"
)

// Translator implements ports.Translator.
type Translator struct {
	client *chatClient
	logger ports.Logger
}

// NewTranslator builds a translator for the active provider. A missing
// credential leaves the client nil, so translation runs offline against the
// fallback table. An unknown provider name is a construction error.
func NewTranslator(cfg domain.Config, logger ports.Logger) (*Translator, error) {
	t := &Translator{logger: logger}

	provider, ok := cfg.ActiveProvider()
	if !ok {
		return t, nil
	}
	apiKey := provider.Credential()
	if apiKey == "" {
		logger.Debug("no credential configured, using fallback translation", map[string]interface{}{
			"provider": provider.Name,
		})
		return t, nil
	}

	client, err := newChatClient(provider, apiKey, &http.Client{Timeout: domain.DefaultHTTPClientTimeout})
	if err != nil {
		return nil, err
	}
	t.client = client
	return t, nil
}

// Translate implements ports.Translator. It never fails: provider errors and
// unusable replies degrade once to the fallback mapping, without retrying.
func (t *Translator) Translate(ctx context.Context, input string) []string {
	if t.client == nil {
		return FallbackCommands(input)
	}

	content, err := t.client.Complete(ctx, input)
	if err != nil {
		t.logger.Warn("translation failed, using fallback", map[string]interface{}{
			"provider": t.client.provider.Name,
			"error":    err.Error(),
		})
		return FallbackCommands(input)
	}

	commands := parseCandidates(content)
	if len(commands) == 0 {
		return FallbackCommands(input)
	}
	return commands
}

var _ ports.Translator = (*Translator)(nil)
