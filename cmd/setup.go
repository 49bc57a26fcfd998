package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard for Slidecraft",
	Long:  `Configure the LLM provider, API keys, and output directory.`,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	fmt.Println(titleStyle.Render("Slidecraft Setup"))

	if _, err := os.Stat(".env"); err == nil {
		var overwrite bool
		if err := huh.NewConfirm().
			Title("Found existing .env file").
			Description("Overwrite?").
			Value(&overwrite).
			Run(); err != nil {
			return err
		}
		if !overwrite {
			fmt.Println(infoStyle.Render("Kept existing .env"))
			return nil
		}
	}

	env := make(map[string]string)

	if err := configureProvider(env); err != nil {
		return err
	}
	if err := configureImageSearch(env); err != nil {
		return err
	}
	if err := configureGCS(env); err != nil {
		return err
	}

	if err := os.MkdirAll("output", 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	fmt.Println(successStyle.Render("✓ Created output directory"))

	return writeEnvFile(env)
}

func configureProvider(env map[string]string) error {
	var provider string
	if err := huh.NewSelect[string]().
		Title("LLM provider").
		Options(
			huh.NewOption("OpenAI", "openai"),
			huh.NewOption("Groq", "groq"),
			huh.NewOption("Gemini", "gemini"),
		).
		Value(&provider).
		Run(); err != nil {
		return err
	}

	envVar := map[string]string{
		"openai": "OPENAI_API_KEY",
		"groq":   "GROQ_API_KEY",
		"gemini": "GEMINI_API_KEY",
	}[provider]

	var apiKey string
	if err := huh.NewInput().
		Title(envVar).
		EchoMode(huh.EchoModePassword).
		Value(&apiKey).
		Run(); err != nil {
		return err
	}

	if apiKey = strings.TrimSpace(apiKey); apiKey != "" {
		env[envVar] = apiKey
	}
	return nil
}

func configureImageSearch(env map[string]string) error {
	var setup bool
	if err := huh.NewConfirm().
		Title("Setup image search?").
		Description("Lets bullet slides with an image_prompt pull a side image via Google Custom Search").
		Value(&setup).
		Run(); err != nil || !setup {
		return err
	}

	var apiKey, engineID string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Google Search API Key").
				EchoMode(huh.EchoModePassword).
				Value(&apiKey),
			huh.NewInput().
				Title("Search Engine ID").
				Value(&engineID),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if apiKey = strings.TrimSpace(apiKey); apiKey != "" {
		env["GOOGLE_SEARCH_API_KEY"] = apiKey
	}
	if engineID = strings.TrimSpace(engineID); engineID != "" {
		env["GOOGLE_SEARCH_ENGINE_ID"] = engineID
	}
	return nil
}

func configureGCS(env map[string]string) error {
	var setup bool
	if err := huh.NewConfirm().
		Title("Setup GCS uploads?").
		Description("Publish rendered decks to a Cloud Storage bucket with --upload").
		Value(&setup).
		Run(); err != nil || !setup {
		return err
	}

	var project, bucket string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Google Cloud Project").
				Value(&project),
			huh.NewInput().
				Title("GCS Bucket").
				Value(&bucket),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if project = strings.TrimSpace(project); project != "" {
		env["GOOGLE_CLOUD_PROJECT"] = project
	}
	if bucket = strings.TrimSpace(bucket); bucket != "" {
		env["GCS_BUCKET"] = bucket
	}
	return nil
}

func writeEnvFile(env map[string]string) error {
	f, err := os.Create(".env")
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	order := []string{
		"OPENAI_API_KEY",
		"GROQ_API_KEY",
		"GEMINI_API_KEY",
		"GOOGLE_CLOUD_PROJECT",
		"GCS_BUCKET",
		"GOOGLE_SEARCH_API_KEY",
		"GOOGLE_SEARCH_ENGINE_ID",
	}

	for _, key := range order {
		if val, ok := env[key]; ok && val != "" {
			if _, err := fmt.Fprintf(f, "%s=%s\n", key, val); err != nil {
				return err
			}
		}
	}

	fmt.Println(successStyle.Render("✓ Wrote .env"))
	return nil
}
