package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akorolev/quarterday/internal/gemini"
)

func TestGenerate(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Tip "},{"text":"A"}]}}]}`))
	}))
	defer srv.Close()

	c := gemini.NewClient(gemini.Options{APIKey: "test-key", BaseURL: srv.URL})
	text, err := c.Generate(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, "Tip A", text, "candidate parts are concatenated")
	assert.Equal(t, "/models/"+gemini.DefaultModel+":generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	cfg, ok := gotBody["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, gemini.DefaultTemperature, cfg["temperature"], 1e-9)
	assert.InDelta(t, gemini.DefaultTopP, cfg["topP"], 1e-9)
	assert.EqualValues(t, gemini.DefaultTopK, cfg["topK"])
}

func TestGenerateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	c := gemini.NewClient(gemini.Options{APIKey: "test-key", BaseURL: srv.URL})
	_, err := c.Generate(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RESOURCE_EXHAUSTED")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerateMissingKey(t *testing.T) {
	c := gemini.NewClient(gemini.Options{})
	_, err := c.Generate(context.Background(), "hello")
	assert.ErrorIs(t, err, gemini.ErrMissingAPIKey)
}

func TestGenerateEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := gemini.NewClient(gemini.Options{APIKey: "test-key", BaseURL: srv.URL})
	text, err := c.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Empty(t, text, "empty candidate list yields empty text, not an error")
}
