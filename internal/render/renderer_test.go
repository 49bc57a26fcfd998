package render

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"slidecraft/internal/deck"
)

type fakeImageSource struct {
	data []byte
	err  error
}

func (f *fakeImageSource) Fetch(_ context.Context, _ string) ([]byte, error) {
	return f.data, f.err
}

func slidePartCount(t *testing.T, path string) int {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer func() { _ = r.Close() }()

	count := 0
	for _, f := range r.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			count++
		}
	}
	return count
}

func slideContent(t *testing.T, path string, n int) string {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer func() { _ = r.Close() }()

	name := fmt.Sprintf("ppt/slides/slide%d.xml", n)
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer func() { _ = rc.Close() }()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(data)
	}
	t.Fatalf("slide part %s not found", name)
	return ""
}

func TestRenderTitleSlide(t *testing.T) {
	d := &deck.Deck{
		Title: "T",
		Slides: []deck.Slide{
			{Type: deck.TypeTitle, Title: "Hello", Subtitle: "World"},
		},
	}

	out := filepath.Join(t.TempDir(), "out.pptx")
	result, err := NewRenderer(nil).Render(context.Background(), d, out)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if result.SlideCount != 1 {
		t.Errorf("SlideCount = %d, want 1", result.SlideCount)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", result.Warnings)
	}

	slide := slideContent(t, out, 1)
	if !strings.Contains(slide, "<a:t>Hello</a:t>") || !strings.Contains(slide, "<a:t>World</a:t>") {
		t.Error("title slide missing title or subtitle text")
	}
}

func TestRenderBulletSlide(t *testing.T) {
	d := &deck.Deck{
		Title: "T",
		Slides: []deck.Slide{
			{Type: deck.TypeBullet, Title: "B", Bullets: []string{"a", "b", "c"}},
		},
	}

	out := filepath.Join(t.TempDir(), "out.pptx")
	result, err := NewRenderer(nil).Render(context.Background(), d, out)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if result.SlideCount != 1 {
		t.Fatalf("SlideCount = %d, want 1", result.SlideCount)
	}

	slide := slideContent(t, out, 1)
	for _, want := range []string{"<a:t>B</a:t>", "<a:t>a</a:t>", "<a:t>b</a:t>", "<a:t>c</a:t>"} {
		if !strings.Contains(slide, want) {
			t.Errorf("bullet slide missing %s", want)
		}
	}
	if strings.Index(slide, "<a:t>a</a:t>") > strings.Index(slide, "<a:t>b</a:t>") {
		t.Error("bullets out of order")
	}
}

func TestRenderImagePromptWithoutCollaborator(t *testing.T) {
	d := &deck.Deck{
		Title: "T",
		Slides: []deck.Slide{
			{Type: deck.TypeBullet, Title: "B", Bullets: []string{"a"}, ImagePrompt: "a rocket"},
		},
	}

	out := filepath.Join(t.TempDir(), "out.pptx")
	result, err := NewRenderer(nil).Render(context.Background(), d, out)
	if err != nil {
		t.Fatalf("Render() must not fail when the image source is absent: %v", err)
	}

	if result.SlideCount != 1 {
		t.Errorf("SlideCount = %d, want 1", result.SlideCount)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("Warnings = %v, want exactly one", result.Warnings)
	}
	if !strings.Contains(result.Warnings[0].Message, ErrNoImageSource.Error()) {
		t.Errorf("warning %q does not mention the missing image source", result.Warnings[0].Message)
	}
}

func TestRenderImagePromptWithCollaborator(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), []byte("img")...)
	d := &deck.Deck{
		Title: "T",
		Slides: []deck.Slide{
			{Type: deck.TypeBullet, Title: "B", Bullets: []string{"a"}, ImagePrompt: "a rocket"},
		},
	}

	out := filepath.Join(t.TempDir(), "out.pptx")
	result, err := NewRenderer(&fakeImageSource{data: png}).Render(context.Background(), d, out)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", result.Warnings)
	}

	slide := slideContent(t, out, 1)
	if !strings.Contains(slide, "<p:pic>") {
		t.Error("bullet slide missing side image")
	}
}

func TestRenderImageFetchFailureIsWarning(t *testing.T) {
	d := &deck.Deck{
		Title: "T",
		Slides: []deck.Slide{
			{Type: deck.TypeBullet, Title: "B", ImagePrompt: "a rocket"},
			{Type: deck.TypeBullet, Title: "After"},
		},
	}

	out := filepath.Join(t.TempDir(), "out.pptx")
	source := &fakeImageSource{err: errors.New("search quota exhausted")}
	result, err := NewRenderer(source).Render(context.Background(), d, out)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if result.SlideCount != 2 {
		t.Errorf("SlideCount = %d, want 2 (render continues after image failure)", result.SlideCount)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("Warnings = %v, want one", result.Warnings)
	}
}

func TestRenderImageSlideHasNoImage(t *testing.T) {
	d := &deck.Deck{
		Title: "T",
		Slides: []deck.Slide{
			{Type: deck.TypeImage, Title: "I", Bullets: []string{"caption"}, ImagePrompt: "ignored"},
		},
	}

	out := filepath.Join(t.TempDir(), "out.pptx")
	png := append([]byte("\x89PNG\r\n\x1a\n"), []byte("img")...)
	result, err := NewRenderer(&fakeImageSource{data: png}).Render(context.Background(), d, out)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if result.SlideCount != 1 {
		t.Fatalf("SlideCount = %d, want 1", result.SlideCount)
	}

	// image_slide renders caption text only; no picture even with a source.
	slide := slideContent(t, out, 1)
	if strings.Contains(slide, "<p:pic>") {
		t.Error("image_slide should not place a picture")
	}
	if !strings.Contains(slide, "<a:t>caption</a:t>") {
		t.Error("image_slide missing caption text")
	}
}

func TestRenderUnknownTypeSkipsSlide(t *testing.T) {
	d := &deck.Deck{
		Title: "T",
		Slides: []deck.Slide{
			{Type: deck.TypeTitle, Title: "First"},
			{Type: "chart_slide", Title: "Bogus"},
			{Type: deck.TypeBullet, Title: "Last"},
		},
	}

	out := filepath.Join(t.TempDir(), "out.pptx")
	result, err := NewRenderer(nil).Render(context.Background(), d, out)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if result.SlideCount != 2 {
		t.Errorf("SlideCount = %d, want 2 (unknown slide skipped)", result.SlideCount)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0].Message, "chart_slide") {
		t.Errorf("Warnings = %v, want one mentioning the unknown type", result.Warnings)
	}
	if got := slidePartCount(t, out); got != 2 {
		t.Errorf("archive has %d slide parts, want 2", got)
	}
}

func TestRenderPreservesOrderAndCount(t *testing.T) {
	var slides []deck.Slide
	for i := 0; i < 5; i++ {
		slides = append(slides, deck.Slide{Type: deck.TypeBullet, Title: fmt.Sprintf("slide-%d", i)})
	}
	d := &deck.Deck{Title: "T", Slides: slides}

	out := filepath.Join(t.TempDir(), "out.pptx")
	result, err := NewRenderer(nil).Render(context.Background(), d, out)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if result.SlideCount != 5 {
		t.Fatalf("SlideCount = %d, want 5", result.SlideCount)
	}

	for i := 0; i < 5; i++ {
		slide := slideContent(t, out, i+1)
		want := fmt.Sprintf("<a:t>slide-%d</a:t>", i)
		if !strings.Contains(slide, want) {
			t.Errorf("slide %d missing %s", i+1, want)
		}
	}
}

func TestRenderZeroSlides(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pptx")
	result, err := NewRenderer(nil).Render(context.Background(), &deck.Deck{Title: "T", Slides: []deck.Slide{}}, out)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if result.SlideCount != 0 {
		t.Errorf("SlideCount = %d, want 0", result.SlideCount)
	}
	if got := slidePartCount(t, out); got != 0 {
		t.Errorf("archive has %d slide parts, want 0", got)
	}
}
