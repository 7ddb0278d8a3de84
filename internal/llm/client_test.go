package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.APIKey = "test-key"
	cfg.Timeout = 2 * time.Second
	return cfg
}

func completionBody(text string) string {
	return `{"model": "gpt-4o-mini", "choices": [{"message": {"role": "assistant", "content": ` + mustJSON(text) + `}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGenerateSendsPromptAndReturnsText(t *testing.T) {
	var captured chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody(`{"suggestions": []}`)))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))

	resp, err := c.Generate(context.Background(), GenerateRequest{
		SystemPrompt: "ти плануєш ТО",
		UserPrompt:   "перенеси період",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"suggestions": []}`, resp.Text)
	assert.Equal(t, "gpt-4o-mini", resp.Model)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "перенеси період", captured.Messages[1].Content)
	assert.InDelta(t, 0.2, captured.Temperature, 0.001)
}

func TestGenerateRequiresAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	c := NewClient(cfg)

	_, err := c.Generate(context.Background(), GenerateRequest{UserPrompt: "x"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGenerateTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(completionBody("late")))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond
	c := NewClient(cfg)

	_, err := c.Generate(context.Background(), GenerateRequest{UserPrompt: "x"})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestGenerateCallerCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(completionBody("late")))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := c.Generate(ctx, GenerateRequest{UserPrompt: "x"})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestGenerateRejectsEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"model": "gpt-4o-mini", "choices": []}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))

	_, err := c.Generate(context.Background(), GenerateRequest{UserPrompt: "x"})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestGenerateSurfacesEndpointError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limited", "type": "rate_limit"}}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))

	_, err := c.Generate(context.Background(), GenerateRequest{UserPrompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestGenerateOverridesTemperatureAndTokens(t *testing.T) {
	var captured chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(completionBody("ok")))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))

	temp := 0.7
	tokens := 256
	_, err := c.Generate(context.Background(), GenerateRequest{
		UserPrompt:  "x",
		Temperature: &temp,
		MaxTokens:   &tokens,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.7, captured.Temperature, 0.001)
	assert.Equal(t, 256, captured.MaxTokens)
}
