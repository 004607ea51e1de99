package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/rs/zerolog"

	"github.com/answersheet/gradebot/internal/llm"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	api    *api.Client
	logger *zerolog.Logger
}

func NewClient(host string, timeout time.Duration, logger *zerolog.Logger) (*Client, error) {
	if host == "" {
		host = "http://localhost:11434"
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}

	return &Client{
		api:    api.NewClient(base, &http.Client{Timeout: timeout}),
		logger: logger,
	}, nil
}

func (c *Client) Generate(ctx context.Context, request llm.Request) (*llm.Response, error) {
	images := make([]api.ImageData, 0, len(request.Images))
	for _, img := range request.Images {
		images = append(images, api.ImageData(img))
	}

	stream := false
	req := &api.GenerateRequest{
		Model:  request.Model,
		Prompt: request.Prompt,
		Images: images,
		Stream: &stream,
		Options: map[string]any{
			"temperature": request.Temperature,
			"num_predict": request.MaxTokens,
		},
	}

	var content strings.Builder
	var stopReason string
	err := c.api.Generate(ctx, req, func(resp api.GenerateResponse) error {
		content.WriteString(resp.Response)
		if resp.Done {
			stopReason = resp.DoneReason
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to invoke model %s: %w", request.Model, err)
	}

	return &llm.Response{
		Content:    content.String(),
		StopReason: stopReason,
	}, nil
}

func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	resp, err := c.api.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to list models: %w", err)
	}

	names := make([]string, 0, len(resp.Models))
	for _, model := range resp.Models {
		names = append(names, model.Name)
	}
	return names, nil
}
