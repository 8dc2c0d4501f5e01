package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type geminiBackend struct {
	model string
}

func newGeminiBackend() *geminiBackend {
	return &geminiBackend{model: "gemini-pro"}
}

func (b *geminiBackend) Name() string { return "gemini" }

func (b *geminiBackend) Invoke(ctx context.Context, req Request) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  req.Credential,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create genai client: %w", err)
	}

	// Gemini takes a single prompt; fold the system message in front and
	// steer JSON output through an instruction suffix.
	prompt := req.Prompt
	if req.SystemMessage != "" {
		prompt = req.SystemMessage + "\n\n" + prompt
	}
	if req.ResponseFormat == ResponseFormatJSON {
		prompt += "\n\nPlease respond with valid JSON only."
	}

	resp, err := client.Models.GenerateContent(ctx, b.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini returned empty response")
	}
	return output, nil
}
