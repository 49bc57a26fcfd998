package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"slidecraft/internal/app"
	"slidecraft/pkg/config"
)

var (
	genPrompt      string
	genOut         string
	genModel       string
	genTemperature float64
	genUpload      bool
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a slide deck from a prompt",
	Long: `Generate asks the configured LLM for a slide specification, validates it,
and renders it into a .pptx file. Validation problems are reported but do not
stop rendering.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genPrompt, "prompt", "p", "", "Content request for the deck")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "Output file path (default output.pptx in the output dir)")
	generateCmd.Flags().StringVarP(&genModel, "model", "m", "", "Model identifier override")
	generateCmd.Flags().Float64Var(&genTemperature, "temperature", 0, "Sampling temperature override")
	generateCmd.Flags().BoolVarP(&genUpload, "upload", "u", false, "Upload the rendered deck to the configured GCS bucket")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := config.Load(ctx)
	if genModel != "" {
		cfg.LLM.Model = genModel
	}
	if cmd.Flags().Changed("temperature") {
		cfg.LLM.Temperature = genTemperature
	}

	if genPrompt == "" {
		if err := huh.NewInput().
			Title("What should the deck cover?").
			Value(&genPrompt).
			Run(); err != nil {
			return err
		}
	}
	if strings.TrimSpace(genPrompt) == "" {
		return errors.New("please provide a prompt with --prompt")
	}

	service, err := app.BuildService(ctx, cfg)
	if err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			return fmt.Errorf("configuration error: %w", err)
		}
		return err
	}

	pipeline := app.NewPipeline(service)

	var result *app.GenerateResult
	var genErr error
	_ = spinner.New().
		Title("Generating deck...").
		Action(func() {
			result, genErr = pipeline.Generate(ctx, app.GenerateRequest{
				Prompt:  genPrompt,
				OutFile: genOut,
				Upload:  genUpload,
			})
		}).
		Run()
	if genErr != nil {
		return genErr
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("✓ Deck written: %s (%d slides)", result.OutputPath, result.SlideCount)))
	if result.Title != "" {
		fmt.Println(infoStyle.Render("  Title: " + result.Title))
	}
	if result.UploadURL != "" {
		fmt.Println(infoStyle.Render("  Uploaded: " + result.UploadURL))
	}
	for _, v := range result.Violations {
		fmt.Println(warnStyle.Render("  Spec violation: " + v))
	}
	for _, w := range result.Warnings {
		fmt.Println(warnStyle.Render("  Warning: " + w))
	}

	return nil
}
