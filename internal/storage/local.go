package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

type LocalStorage struct {
	outputDir string
}

func NewLocalStorage(outputDir string) *LocalStorage {
	return &LocalStorage{outputDir: outputDir}
}

func (s *LocalStorage) EnsureDirectories() error {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// ResolveOutPath places bare filenames inside the output directory; paths
// with a directory component are used as given.
func (s *LocalStorage) ResolveOutPath(name string) string {
	if filepath.Dir(name) != "." {
		return name
	}
	return filepath.Join(s.outputDir, name)
}

func (s *LocalStorage) ListDecks() ([]string, error) {
	entries, err := os.ReadDir(s.outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	var decks []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == ".pptx" {
			decks = append(decks, filepath.Join(s.outputDir, entry.Name()))
		}
	}

	return decks, nil
}
