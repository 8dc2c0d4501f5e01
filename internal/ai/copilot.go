package ai

import (
	"context"
	"fmt"
)

// copilotBackend is a registered placeholder: Microsoft Copilot exposes no
// direct completion API, so every invocation fails before touching the
// network.
type copilotBackend struct{}

func newCopilotBackend() *copilotBackend { return &copilotBackend{} }

func (b *copilotBackend) Name() string { return "copilot" }

func (b *copilotBackend) Invoke(ctx context.Context, req Request) (string, error) {
	return "", fmt.Errorf("%w: microsoft copilot has no direct api, use azure openai instead", ErrProviderUnavailable)
}
