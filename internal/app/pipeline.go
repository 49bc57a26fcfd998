package app

import (
	"context"
	"errors"
	"log/slog"

	"slidecraft/internal/deck"
	"slidecraft/pkg/prompts"
)

type Pipeline struct {
	service *Service
}

type GenerateRequest struct {
	Prompt  string
	OutFile string // empty means the configured default
	Upload  bool
}

type GenerateResult struct {
	Title      string
	OutputPath string
	SlideCount int
	UploadURL  string
	Violations []string
	Warnings   []string
}

func NewPipeline(service *Service) *Pipeline {
	return &Pipeline{service: service}
}

// Generate runs the whole flow: prompt → LLM → extract → validate → render →
// optional upload. Validation violations and render warnings are collected on
// the result rather than failing the run; everything else is fatal.
func (pipeline *Pipeline) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	service := pipeline.service

	userPrompt, err := service.Prompts().RenderDeck(prompts.DeckParams{
		Prompt:     req.Prompt,
		SlideCount: service.Config().Deck.SlideCount,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Generating deck spec...", "model", service.LLM().Model())
	raw, err := service.LLM().GenerateDeck(ctx, userPrompt)
	if err != nil {
		return nil, err
	}

	candidate, err := deck.Extract(raw)
	if err != nil {
		var extractErr *deck.ExtractionError
		if errors.As(err, &extractErr) {
			slog.Debug("Model output carried no JSON", "raw", extractErr.Raw)
		}
		return nil, err
	}

	d, err := deck.Decode([]byte(candidate))
	if err != nil {
		slog.Debug("Candidate JSON did not decode", "candidate", candidate)
		return nil, err
	}

	result := &GenerateResult{Title: d.Title}

	for _, v := range deck.Validate(d) {
		slog.Warn("Validation violation", "path", v.Path, "reason", v.Reason)
		result.Violations = append(result.Violations, v.String())
	}

	outFile := req.OutFile
	if outFile == "" {
		outFile = service.Config().Deck.OutFile
	}
	outPath := service.Storage().ResolveOutPath(outFile)

	slog.Info("Rendering deck...", "slides", len(d.Slides), "out", outPath)
	rendered, err := service.Renderer().Render(ctx, d, outPath)
	if err != nil {
		return nil, err
	}

	result.OutputPath = rendered.OutputPath
	result.SlideCount = rendered.SlideCount
	for _, w := range rendered.Warnings {
		result.Warnings = append(result.Warnings, w.Message)
	}

	if req.Upload {
		if service.GCS() == nil {
			slog.Warn("GCS bucket not configured, skipping upload")
		} else {
			url, err := service.GCS().UploadDeck(ctx, rendered.OutputPath)
			if err != nil {
				return nil, err
			}
			result.UploadURL = url
		}
	}

	return result, nil
}
