// Package render translates a deck specification into a .pptx file. The deck
// may carry validation violations; the renderer defends against missing
// fields itself and degrades per slide instead of failing the whole build.
package render

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"slidecraft/internal/deck"
	"slidecraft/internal/pptx"
)

// ErrNoImageSource is recorded as a warning when a slide asks for an image
// but no image collaborator is configured.
var ErrNoImageSource = errors.New("no image source configured")

// RenderError means a slide shape the validator should have rejected reached
// the renderer anyway. The slide is skipped and rendering continues; the
// error is surfaced as a warning on the result.
type RenderError struct {
	Slide int
	Type  string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("slide %d: unrecognized slide type %q", e.Slide, e.Type)
}

// ImageSource resolves an image_prompt to image bytes. Optional collaborator;
// slides render without images when it is absent.
type ImageSource interface {
	Fetch(ctx context.Context, prompt string) ([]byte, error)
}

type Warning struct {
	Slide   int
	Message string
}

type Result struct {
	OutputPath string
	SlideCount int
	Warnings   []Warning
}

type Renderer struct {
	images ImageSource
}

func NewRenderer(images ImageSource) *Renderer {
	return &Renderer{images: images}
}

// Render writes the deck to outPath, overwriting any existing file. Each
// slide is dispatched on its declared type; per-slide problems (missing image
// collaborator, unknown type) become warnings, not failures.
func (r *Renderer) Render(ctx context.Context, d *deck.Deck, outPath string) (*Result, error) {
	pres := pptx.New()
	pres.SetTitle(d.Title)

	result := &Result{OutputPath: outPath}

	for i, s := range d.Slides {
		switch s.Type {
		case deck.TypeTitle:
			pres.AddSlide(pptx.Slide{Title: s.Title, Subtitle: s.Subtitle})

		case deck.TypeBullet:
			slide := pptx.Slide{Title: s.Title, Bullets: s.Bullets}
			if s.ImagePrompt != "" {
				image, err := r.fetchImage(ctx, s.ImagePrompt)
				if err != nil {
					result.warn(i, fmt.Sprintf("image skipped: %v", err))
				} else {
					slide.Image = image
				}
			}
			pres.AddSlide(slide)

		case deck.TypeImage:
			// Bullets become caption text; no image is placed. Known gap,
			// kept on purpose.
			pres.AddSlide(pptx.Slide{Title: s.Title, Bullets: s.Bullets})

		case deck.TypeTwoColumn:
			// Left column only; there is no right-column field in the schema.
			pres.AddSlide(pptx.Slide{Title: s.Title, Bullets: s.Bullets, Placement: pptx.BodyLeft})

		default:
			renderErr := &RenderError{Slide: i, Type: s.Type}
			result.warn(i, renderErr.Error())
		}
	}

	if err := pres.WriteFile(outPath); err != nil {
		return nil, err
	}

	result.SlideCount = pres.SlideCount()
	return result, nil
}

func (r *Renderer) fetchImage(ctx context.Context, prompt string) ([]byte, error) {
	if r.images == nil {
		return nil, ErrNoImageSource
	}

	image, err := r.images.Fetch(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	return image, nil
}

func (res *Result) warn(slide int, message string) {
	slog.Warn("Render warning", "slide", slide, "message", message)
	res.Warnings = append(res.Warnings, Warning{Slide: slide, Message: message})
}
