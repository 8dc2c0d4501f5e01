package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const deepSeekEndpoint = "https://api.deepseek.com/v1/chat/completions"

// deepSeekBackend speaks the provider's OpenAI-compatible chat API directly.
type deepSeekBackend struct {
	endpoint string
	client   *http.Client
}

func newDeepSeekBackend() *deepSeekBackend {
	return &deepSeekBackend{endpoint: deepSeekEndpoint, client: http.DefaultClient}
}

func (b *deepSeekBackend) Name() string { return "deepseek" }

type deepSeekMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type deepSeekRequest struct {
	Model          string                  `json:"model"`
	Messages       []deepSeekMessage       `json:"messages"`
	Temperature    float64                 `json:"temperature"`
	MaxTokens      int                     `json:"max_tokens"`
	ResponseFormat *deepSeekResponseFormat `json:"response_format,omitempty"`
}

type deepSeekResponseFormat struct {
	Type string `json:"type"`
}

type deepSeekResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (b *deepSeekBackend) Invoke(ctx context.Context, req Request) (string, error) {
	messages := make([]deepSeekMessage, 0, 2)
	if req.SystemMessage != "" {
		messages = append(messages, deepSeekMessage{Role: "system", Content: req.SystemMessage})
	}
	messages = append(messages, deepSeekMessage{Role: "user", Content: req.Prompt})

	var format *deepSeekResponseFormat
	if req.ResponseFormat == ResponseFormatJSON {
		format = &deepSeekResponseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(deepSeekRequest{
		Model:          "deepseek-chat",
		Messages:       messages,
		Temperature:    req.Temperature,
		MaxTokens:      req.MaxTokens,
		ResponseFormat: format,
	})
	if err != nil {
		return "", fmt.Errorf("marshal deepseek request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build deepseek request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+req.Credential)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("deepseek request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read deepseek response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deepseek api status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var parsed deepSeekResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode deepseek response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("deepseek returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
