package app

import (
	"context"
	"fmt"

	"slidecraft/internal/imagesearch"
	"slidecraft/internal/llm"
	"slidecraft/internal/llm/gemini"
	"slidecraft/internal/llm/groq"
	"slidecraft/internal/llm/openai"
	"slidecraft/internal/render"
	"slidecraft/internal/storage"
	"slidecraft/pkg/config"
	"slidecraft/pkg/prompts"
)

// BuildService wires config into a ready pipeline. Configuration errors are
// reported here, before anything touches the network.
func BuildService(ctx context.Context, cfg *config.Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p, err := prompts.Load()
	if err != nil {
		return nil, err
	}

	llmClient, err := buildLLMClient(ctx, cfg, p)
	if err != nil {
		return nil, err
	}

	var imageSource render.ImageSource
	if cfg.GoogleSearchAPIKey != "" && cfg.GoogleSearchEngineID != "" {
		imageSource = imagesearch.NewClient(cfg.GoogleSearchAPIKey, cfg.GoogleSearchEngineID)
	}

	localStorage := storage.NewLocalStorage(cfg.Deck.OutputDir)
	if err := localStorage.EnsureDirectories(); err != nil {
		return nil, err
	}

	var gcs *storage.GCSStorage
	if cfg.GCSBucket != "" {
		gcs, err = storage.NewGCSStorage(ctx, cfg.GCSBucket, cfg.GCS.DeckDir)
		if err != nil {
			return nil, err
		}
	}

	return NewService(ServiceOptions{
		Config:   cfg,
		Prompts:  p,
		LLM:      llmClient,
		Renderer: render.NewRenderer(imageSource),
		Storage:  localStorage,
		GCS:      gcs,
	}), nil
}

func buildLLMClient(ctx context.Context, cfg *config.Config, p *prompts.Prompts) (llm.Client, error) {
	switch cfg.LLM.Provider {
	case "groq":
		return groq.NewClient(cfg.GroqAPIKey, cfg.LLM.Model, p.System.Deck, cfg.LLM.Temperature)
	case "gemini":
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLM.Model, p.System.Deck, cfg.LLM.Temperature)
	case "openai":
		return openai.NewClient(cfg.OpenAIAPIKey, openai.Options{
			Model:        cfg.LLM.Model,
			Temperature:  cfg.LLM.Temperature,
			SystemPrompt: p.System.Deck,
			BaseURL:      cfg.LLM.BaseURL,
		}), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}
