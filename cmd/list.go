package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"slidecraft/internal/storage"
	"slidecraft/pkg/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List rendered decks",
	Long: `List shows the decks in the local output directory and, when a GCS
bucket is configured, the decks uploaded to it.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Load(ctx)

	local := storage.NewLocalStorage(cfg.Deck.OutputDir)
	if err := local.EnsureDirectories(); err != nil {
		return err
	}
	decks, err := local.ListDecks()
	if err != nil {
		return err
	}

	var remote []string
	if cfg.GCSBucket != "" {
		gcs, err := storage.NewGCSStorage(ctx, cfg.GCSBucket, cfg.GCS.DeckDir)
		if err != nil {
			return err
		}
		defer func() { _ = gcs.Close() }()

		names, err := gcs.ListDecks(ctx)
		if err != nil {
			return err
		}
		for _, name := range names {
			remote = append(remote, fmt.Sprintf("gs://%s/%s", cfg.GCSBucket, name))
		}
	}

	for _, line := range deckListLines(cfg.Deck.OutputDir, decks, remote, cfg.GCSBucket != "") {
		fmt.Println(line)
	}
	return nil
}

func deckListLines(outputDir string, local, remote []string, showRemote bool) []string {
	lines := []string{infoStyle.Render(fmt.Sprintf("Local decks (%s):", outputDir))}
	if len(local) == 0 {
		lines = append(lines, "  (none)")
	}
	for _, deck := range local {
		lines = append(lines, "  "+deck)
	}

	if showRemote {
		lines = append(lines, infoStyle.Render("Uploaded decks:"))
		if len(remote) == 0 {
			lines = append(lines, "  (none)")
		}
		for _, deck := range remote {
			lines = append(lines, "  "+deck)
		}
	}

	return lines
}
