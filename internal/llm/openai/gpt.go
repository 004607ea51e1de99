package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"

	"github.com/answersheet/gradebot/internal/llm"
)

// ErrImagesUnsupported mirrors the bedrock provider: extraction stays on the
// local vision backend.
var ErrImagesUnsupported = errors.New("openai provider does not accept image attachments")

func (c *Client) Generate(ctx context.Context, request llm.Request) (*llm.Response, error) {
	if len(request.Images) > 0 {
		return nil, ErrImagesUnsupported
	}

	modelID := request.Model
	if modelID == "" {
		modelID = c.ModelID
	}

	message := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(request.Prompt),
		},
		MaxCompletionTokens: openai.Int(int64(request.MaxTokens)),
		Temperature:         openai.Float(request.Temperature),
		Model:               openai.ChatModel(modelID),
	}

	output, err := c.Client.Chat.Completions.New(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("unable to invoke gpt model: %w", err)
	}

	if len(output.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	response := output.Choices[0]
	return &llm.Response{
		Content:    response.Message.Content,
		StopReason: fmt.Sprint(response.FinishReason),
	}, nil
}

func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	return []string{c.ModelID}, nil
}
