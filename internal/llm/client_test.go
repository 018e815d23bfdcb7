package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listmate/internal/config"
)

func testConfig(base string) *config.ModelConfig {
	return &config.ModelConfig{
		APIKey:      "test-key",
		APIBase:     base,
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		MaxTokens:   2048,
		Timeout:     5,
		Enabled:     true,
	}
}

func TestGenerate(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": `{"title":"T"}`}},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	out, err := client.Generate(context.Background(), "you are a copywriter", "write a listing")
	require.NoError(t, err)
	assert.Equal(t, `{"title":"T"}`, out)

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	require.NotNil(t, gotReq.ResponseFormat)
	assert.Equal(t, "json_object", gotReq.ResponseFormat.Type)
}

func TestGenerateDisabled(t *testing.T) {
	client := NewClient(&config.ModelConfig{Enabled: false})
	assert.False(t, client.IsEnabled())

	_, err := client.Generate(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enabled")
}

func TestGenerateNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.Generate(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestGenerateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.Generate(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
