package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDeckListLines(t *testing.T) {
	tests := []struct {
		name       string
		local      []string
		remote     []string
		showRemote bool
		want       []string
	}{
		{
			name:  "localOnly",
			local: []string{"./output/a.pptx", "./output/b.pptx"},
			want:  []string{"a.pptx", "b.pptx"},
		},
		{
			name: "emptyLocal",
			want: []string{"(none)"},
		},
		{
			name:       "withRemote",
			local:      []string{"./output/a.pptx"},
			remote:     []string{"gs://bucket/decks/a.pptx"},
			showRemote: true,
			want:       []string{"a.pptx", "Uploaded decks", "gs://bucket/decks/a.pptx"},
		},
		{
			name:       "bucketConfiguredButEmpty",
			local:      []string{"./output/a.pptx"},
			showRemote: true,
			want:       []string{"Uploaded decks", "(none)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := deckListLines("./output", tt.local, tt.remote, tt.showRemote)
			joined := strings.Join(lines, "\n")
			for _, want := range tt.want {
				if !strings.Contains(joined, want) {
					t.Errorf("deckListLines() = %q, missing %q", joined, want)
				}
			}
			if !tt.showRemote && strings.Contains(joined, "Uploaded decks") {
				t.Errorf("deckListLines() = %q, shows an upload section without a bucket", joined)
			}
		})
	}
}

func TestRunList(t *testing.T) {
	tmp := t.TempDir()
	orig, _ := os.Getwd()
	defer func() { _ = os.Chdir(orig) }()
	_ = os.Chdir(tmp)

	t.Setenv("GCS_BUCKET", "")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")

	if err := os.MkdirAll("output", 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("output", "deck.pptx"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	listCmd.SetContext(context.Background())
	if err := runList(listCmd, nil); err != nil {
		t.Fatalf("runList() error: %v", err)
	}
}
