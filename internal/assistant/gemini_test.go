package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewGeminiClient(GeminiConfig{
		APIKey:      "test-key",
		BaseURL:     server.URL,
		Timeout:     2 * time.Second,
		Temperature: 0.7,
	}, zerolog.Nop())
}

func TestGeminiClient_Generate(t *testing.T) {
	var got generateRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Empty(t, r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "Aloo gobi: "}, {"text": "saute potatoes."}]}, "finishReason": "STOP"}],
			"usageMetadata": {"promptTokenCount": 40, "candidatesTokenCount": 12, "totalTokenCount": 52}
		}`))
	})

	text, err := client.Generate(context.Background(), "prompt text", SystemInstruction)
	require.NoError(t, err)
	assert.Equal(t, "Aloo gobi: saute potatoes.", text)

	require.Len(t, got.Contents, 1)
	assert.Equal(t, "user", got.Contents[0].Role)
	assert.Equal(t, "prompt text", got.Contents[0].Parts[0].Text)
	require.NotNil(t, got.SystemInstruction)
	assert.Equal(t, SystemInstruction, got.SystemInstruction.Parts[0].Text)
	require.NotNil(t, got.GenerationConfig)
	assert.Equal(t, 0.7, got.GenerationConfig.Temperature)
}

func TestGeminiClient_NoCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	})

	text, err := client.Generate(context.Background(), "prompt", "")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGeminiClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"api error", http.StatusForbidden, `{"error": {"code": 403, "message": "API key not valid", "status": "PERMISSION_DENIED"}}`, "API key not valid"},
		{"quota", http.StatusTooManyRequests, `{}`, "status 429"},
		{"malformed", http.StatusOK, `{not json`, "failed to parse response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Generate(context.Background(), "prompt", "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGeminiClient_MissingAPIKey(t *testing.T) {
	client := NewGeminiClient(GeminiConfig{}, zerolog.Nop())

	_, err := client.Generate(context.Background(), "prompt", "")
	assert.ErrorIs(t, err, ErrAPIKeyMissing)
}

func TestGeminiClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(server.Close)

	client := NewGeminiClient(GeminiConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 50 * time.Millisecond,
	}, zerolog.Nop())

	_, err := client.Generate(context.Background(), "prompt", "")
	assert.Error(t, err)
}

func TestGeminiClient_BreakerOpensAfterFailures(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	for i := 0; i < 5; i++ {
		_, err := client.Generate(context.Background(), "prompt", "")
		require.Error(t, err)
	}

	_, err := client.Generate(context.Background(), "prompt", "")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(5), calls.Load())
}

func TestGeminiClient_FallbackThroughAssistant(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	a := New(client, zerolog.Nop())
	assert.Equal(t, ErrorFallback, a.Suggest(context.Background(), []string{"Carrots"}, ""))
}
