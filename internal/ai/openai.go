package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
)

type openAIBackend struct {
	model shared.ChatModel
}

func newOpenAIBackend() *openAIBackend {
	return &openAIBackend{model: openai.ChatModelGPT4o}
}

func (b *openAIBackend) Name() string { return "openai" }

func (b *openAIBackend) Invoke(ctx context.Context, req Request) (string, error) {
	client := openai.NewClient(option.WithAPIKey(req.Credential))

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.SystemMessage != "" {
		messages = append(messages, openai.SystemMessage(req.SystemMessage))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:       b.model,
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
	}
	if req.ResponseFormat == ResponseFormatJSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	completion, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}
