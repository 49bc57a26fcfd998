package config

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// loadSecrets fills a missing provider key from GCP Secret Manager when a
// project is configured. Failure is non-fatal; Validate catches a key that
// is still empty.
func loadSecrets(ctx context.Context, cfg *Config) {
	if cfg.GoogleCloudProject == "" || cfg.APIKey() != "" {
		return
	}

	envVar := keyEnvVar(cfg.LLM.Provider)
	secretName := strings.ReplaceAll(strings.ToLower(envVar), "_", "-")

	value, err := fetchSecret(ctx, cfg.GoogleCloudProject, secretName)
	if err != nil {
		slog.Debug("Secret Manager lookup failed", "secret", secretName, "error", err)
		return
	}

	switch cfg.LLM.Provider {
	case "groq":
		cfg.GroqAPIKey = value
	case "gemini":
		cfg.GeminiAPIKey = value
	default:
		cfg.OpenAIAPIKey = value
	}
	slog.Debug("Loaded provider key from Secret Manager", "secret", secretName)
}

func fetchSecret(ctx context.Context, project, name string) (string, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("create secret manager client: %w", err)
	}
	defer func() { _ = client.Close() }()

	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", project, name),
	})
	if err != nil {
		return "", fmt.Errorf("access secret %s: %w", name, err)
	}

	return string(resp.GetPayload().GetData()), nil
}
