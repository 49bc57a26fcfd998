package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"slidecraft/internal/llm"
)

type Client struct {
	client       *genai.Client
	model        string
	temperature  float64
	systemPrompt string
}

// deckSchema mirrors the deck document contract so Gemini returns structured
// JSON directly instead of prose with an embedded object.
var slideSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"type":         {Type: genai.TypeString, Description: "One of title_slide, bullet_slide, image_slide, two_column"},
		"title":        {Type: genai.TypeString},
		"subtitle":     {Type: genai.TypeString},
		"bullets":      {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"image_prompt": {Type: genai.TypeString},
		"notes":        {Type: genai.TypeString},
	},
	Required: []string{"type", "title"},
}

var deckSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":  {Type: genai.TypeString},
		"slides": {Type: genai.TypeArray, Items: slideSchema},
	},
	Required: []string{"title", "slides"},
}

func NewClient(ctx context.Context, apiKey, model, systemPrompt string, temperature float64) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{
		client:       client,
		model:        model,
		temperature:  temperature,
		systemPrompt: systemPrompt,
	}, nil
}

func (c *Client) GenerateDeck(ctx context.Context, prompt string) (string, error) {
	temp := float32(c.temperature)
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: c.systemPrompt}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema:   deckSchema,
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", &llm.UpstreamError{Provider: "gemini", Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &llm.UpstreamError{Provider: "gemini", Err: fmt.Errorf("no response")}
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func (c *Client) Model() string {
	return c.model
}
