package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath  = "config.yaml"
	defaultProvider    = "openai"
	defaultOpenAIModel = "gpt-4o-mini"
	defaultGroqModel   = "llama-3.3-70b-versatile"
	defaultGeminiModel = "gemini-2.0-flash"
	defaultTemperature = 0.7
	defaultSlideCount  = 8
	defaultOutputDir   = "./output"
	defaultOutFile     = "output.pptx"
	defaultGCSDeckDir  = "decks"
)

// ErrMissingAPIKey is the configuration error reported before any network
// call when the active provider has no credential.
var ErrMissingAPIKey = errors.New("missing API key")

type Config struct {
	OpenAIAPIKey         string
	GroqAPIKey           string
	GeminiAPIKey         string
	GoogleCloudProject   string
	GCSBucket            string
	GoogleSearchAPIKey   string
	GoogleSearchEngineID string

	LLM  LLMConfig  `yaml:"llm"`
	Deck DeckConfig `yaml:"deck"`
	GCS  GCSConfig  `yaml:"gcs"`
}

type LLMConfig struct {
	Provider    string  `yaml:"provider"` // "openai", "groq" or "gemini"
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	BaseURL     string  `yaml:"base_url"`
}

type DeckConfig struct {
	OutputDir  string `yaml:"output_dir"`
	OutFile    string `yaml:"out_file"`
	SlideCount int    `yaml:"slide_count"`
}

type GCSConfig struct {
	DeckDir string `yaml:"deck_dir"`
}

func Load(ctx context.Context) *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		OpenAIAPIKey:         os.Getenv("OPENAI_API_KEY"),
		GroqAPIKey:           os.Getenv("GROQ_API_KEY"),
		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
		GoogleCloudProject:   os.Getenv("GOOGLE_CLOUD_PROJECT"),
		GCSBucket:            os.Getenv("GCS_BUCKET"),
		GoogleSearchAPIKey:   os.Getenv("GOOGLE_SEARCH_API_KEY"),
		GoogleSearchEngineID: os.Getenv("GOOGLE_SEARCH_ENGINE_ID"),
	}

	loadYAMLConfig(cfg)
	applyDefaults(cfg)
	loadSecrets(ctx, cfg)

	return cfg
}

func loadYAMLConfig(cfg *Config) {
	data, err := os.ReadFile(defaultConfigPath)
	if err != nil {
		slog.Debug("No config.yaml found, using defaults")
		return
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		slog.Error("Failed to parse config.yaml", "error", err)
	}
}

func applyDefaults(cfg *Config) {
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = defaultProvider
	}
	if cfg.LLM.Model == "" {
		switch cfg.LLM.Provider {
		case "groq":
			cfg.LLM.Model = defaultGroqModel
		case "gemini":
			cfg.LLM.Model = defaultGeminiModel
		default:
			cfg.LLM.Model = defaultOpenAIModel
		}
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = defaultTemperature
	}
	if cfg.Deck.OutputDir == "" {
		cfg.Deck.OutputDir = defaultOutputDir
	}
	if cfg.Deck.OutFile == "" {
		cfg.Deck.OutFile = defaultOutFile
	}
	if cfg.Deck.SlideCount == 0 {
		cfg.Deck.SlideCount = defaultSlideCount
	}
	if cfg.GCS.DeckDir == "" {
		cfg.GCS.DeckDir = defaultGCSDeckDir
	}
}

// APIKey returns the credential for the active provider.
func (cfg *Config) APIKey() string {
	switch cfg.LLM.Provider {
	case "groq":
		return cfg.GroqAPIKey
	case "gemini":
		return cfg.GeminiAPIKey
	default:
		return cfg.OpenAIAPIKey
	}
}

// Validate reports configuration errors that must stop the run before any
// network call is made.
func (cfg *Config) Validate() error {
	switch cfg.LLM.Provider {
	case "openai", "groq", "gemini":
	default:
		return fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}

	if cfg.APIKey() == "" {
		return fmt.Errorf("%w for provider %s (set %s)", ErrMissingAPIKey, cfg.LLM.Provider, keyEnvVar(cfg.LLM.Provider))
	}

	return nil
}

func keyEnvVar(provider string) string {
	switch provider {
	case "groq":
		return "GROQ_API_KEY"
	case "gemini":
		return "GEMINI_API_KEY"
	default:
		return "OPENAI_API_KEY"
	}
}
