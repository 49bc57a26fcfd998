package prompts

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

const defaultPromptsPath = "prompts.yaml"

const defaultSystemDeck = `You are a presentation designer. Respond with ONLY a single JSON object, no prose and no markdown. The object has a "title" string and a "slides" array. Each slide has a "type" (one of "title_slide", "bullet_slide", "image_slide", "two_column") and a "title" string. Slides may also carry "subtitle" (string), "bullets" (array of strings), "image_prompt" (string) and "notes" (string).`

const defaultDeckGenerate = `Create a slide deck about the following request. Aim for roughly {{.SlideCount}} slides, starting with a title_slide. Request: {{.Prompt}}`

type Prompts struct {
	System SystemPrompts `yaml:"system"`
	Deck   DeckPrompts   `yaml:"deck"`
}

type SystemPrompts struct {
	Deck string `yaml:"deck"`
}

type DeckPrompts struct {
	Generate string `yaml:"generate"`
}

type DeckParams struct {
	Prompt     string
	SlideCount int
}

func Defaults() *Prompts {
	return &Prompts{
		System: SystemPrompts{Deck: defaultSystemDeck},
		Deck:   DeckPrompts{Generate: defaultDeckGenerate},
	}
}

// Load reads prompts.yaml from the working directory, falling back to the
// built-in prompts when the file does not exist.
func Load() (*Prompts, error) {
	p, err := LoadFrom(defaultPromptsPath)
	if os.IsNotExist(err) {
		return Defaults(), nil
	}
	return p, err
}

func LoadFrom(path string) (*Prompts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	p := Defaults()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse prompts file: %w", err)
	}

	return p, nil
}

func (p *Prompts) RenderDeck(params DeckParams) (string, error) {
	return render(p.Deck.Generate, params)
}

func render(tmpl string, data any) (string, error) {
	t, err := template.New("prompt").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
