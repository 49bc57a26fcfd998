package groq

import (
	"context"
	"fmt"

	groq "github.com/conneroisu/groq-go"

	"slidecraft/internal/llm"
)

type Client struct {
	client       *groq.Client
	model        groq.ChatModel
	systemPrompt string
	temperature  float64
}

func NewClient(apiKey, model, systemPrompt string, temperature float64) (*Client, error) {
	client, err := groq.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("create groq client: %w", err)
	}

	return &Client{
		client:       client,
		model:        groq.ChatModel(model),
		systemPrompt: systemPrompt,
		temperature:  temperature,
	}, nil
}

// GenerateDeck asks for a json_object response so the model skips the prose,
// though the extractor downstream copes either way.
func (c *Client) GenerateDeck(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.ChatCompletion(ctx, groq.ChatCompletionRequest{
		Model: c.model,
		Messages: []groq.ChatCompletionMessage{
			{Role: groq.RoleSystem, Content: c.systemPrompt},
			{Role: groq.RoleUser, Content: prompt},
		},
		Temperature: float32(c.temperature),
		ResponseFormat: &groq.ChatResponseFormat{
			Type: "json_object",
		},
	})
	if err != nil {
		return "", &llm.UpstreamError{Provider: "groq", Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &llm.UpstreamError{Provider: "groq", Err: fmt.Errorf("no response choices")}
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", &llm.UpstreamError{Provider: "groq", Err: fmt.Errorf("empty response")}
	}

	return content, nil
}

func (c *Client) Model() string {
	return string(c.model)
}
