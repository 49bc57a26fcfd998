package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"slidecraft/internal/llm"
)

func TestGenerateDeck(t *testing.T) {
	tests := []struct {
		name           string
		serverResponse response
		serverStatus   int
		wantErr        bool
		wantContent    string
	}{
		{
			name: "successfulGeneration",
			serverResponse: response{
				ID: "test-123",
				Choices: []choice{
					{Message: Message{Role: "assistant", Content: `{"title":"T","slides":[]}`}},
				},
			},
			serverStatus: http.StatusOK,
			wantContent:  `{"title":"T","slides":[]}`,
		},
		{
			name: "emptyChoices",
			serverResponse: response{
				ID:      "test-456",
				Choices: []choice{},
			},
			serverStatus: http.StatusOK,
			wantErr:      true,
		},
		{
			name: "apiError",
			serverResponse: response{
				Error: &apiError{Message: "rate limit exceeded", Type: "rate_limit"},
			},
			serverStatus: http.StatusOK,
			wantErr:      true,
		},
		{
			name:         "serverError",
			serverStatus: http.StatusInternalServerError,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST, got %s", r.Method)
				}
				if r.Header.Get("Authorization") != "Bearer test-key" {
					t.Errorf("expected Authorization header with Bearer token")
				}

				var req request
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Errorf("failed to decode request: %v", err)
				}
				if len(req.Messages) != 2 || req.Messages[0].Role != roleSystem {
					t.Errorf("expected system+user messages, got %+v", req.Messages)
				}
				if req.Temperature != 0.4 {
					t.Errorf("temperature = %v, want 0.4", req.Temperature)
				}

				w.WriteHeader(tt.serverStatus)
				if tt.serverStatus == http.StatusOK {
					_ = json.NewEncoder(w).Encode(tt.serverResponse)
				}
			}))
			defer server.Close()

			client := NewClient("test-key", Options{
				Model:        "gpt-4o-mini",
				Temperature:  0.4,
				SystemPrompt: "Respond with only JSON.",
				BaseURL:      server.URL,
			})

			got, err := client.GenerateDeck(context.Background(), "a deck about space")

			if (err != nil) != tt.wantErr {
				t.Fatalf("GenerateDeck() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var upstream *llm.UpstreamError
				if !errors.As(err, &upstream) {
					t.Fatalf("GenerateDeck() error type = %T, want *llm.UpstreamError", err)
				}
				if upstream.Provider != "openai" {
					t.Errorf("UpstreamError.Provider = %q, want openai", upstream.Provider)
				}
				return
			}
			if got != tt.wantContent {
				t.Errorf("GenerateDeck() = %q, want %q", got, tt.wantContent)
			}
		})
	}
}

func TestGenerateDeckZeroTemperature(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		_ = json.NewEncoder(w).Encode(response{
			Choices: []choice{{Message: Message{Role: "assistant", Content: "{}"}}},
		})
	}))
	defer server.Close()

	client := NewClient("test-key", Options{
		Model:       "gpt-4o-mini",
		Temperature: 0,
		BaseURL:     server.URL,
	})

	if _, err := client.GenerateDeck(context.Background(), "x"); err != nil {
		t.Fatalf("GenerateDeck() error: %v", err)
	}
	if !strings.Contains(string(body), `"temperature":0`) {
		t.Errorf("request body %s does not carry the explicit zero temperature", body)
	}
}

func TestModel(t *testing.T) {
	client := NewClient("k", Options{Model: "gpt-4o-mini"})
	if client.Model() != "gpt-4o-mini" {
		t.Errorf("Model() = %q, want gpt-4o-mini", client.Model())
	}
}
