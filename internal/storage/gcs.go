package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCSStorage publishes rendered decks to a Cloud Storage bucket. Uses
// application default credentials.
type GCSStorage struct {
	client  *storage.Client
	bucket  string
	deckDir string
}

func NewGCSStorage(ctx context.Context, bucket, deckDir string) (*GCSStorage, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSStorage{
		client:  client,
		bucket:  bucket,
		deckDir: deckDir,
	}, nil
}

func (s *GCSStorage) Close() error {
	return s.client.Close()
}

// UploadDeck copies a local deck file into the bucket and returns its gs URL.
func (s *GCSStorage) UploadDeck(ctx context.Context, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open deck: %w", err)
	}
	defer func() { _ = f.Close() }()

	objectName := s.deckDir + "/" + filepath.Base(localPath)
	w := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to upload deck: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", s.bucket, objectName), nil
}

func (s *GCSStorage) ListDecks(ctx context.Context) ([]string, error) {
	bkt := s.client.Bucket(s.bucket)
	query := &storage.Query{Prefix: s.deckDir}

	var decks []string
	it := bkt.Objects(ctx, query)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}

		if strings.ToLower(filepath.Ext(attrs.Name)) == ".pptx" {
			decks = append(decks, attrs.Name)
		}
	}

	return decks, nil
}
