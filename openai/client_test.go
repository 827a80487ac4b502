package openai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flumekit/flume"
	"github.com/flumekit/flume/openai"
)

func TestClient_StreamRequestFormat(t *testing.T) {
	t.Parallel()

	var captured []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
		assert.Equal(t, "text/event-stream", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("data: [DONE]\n\n"))
	}))
	defer srv.Close()

	temp := 0.6
	topP := 0.9
	client := openai.New("test-api-key", openai.WithBaseURL(srv.URL))
	s, err := client.Stream(context.Background(), flume.Request{
		Model: "llama-3-8b-instruct",
		Messages: []flume.Message{
			{Role: flume.RoleSystem, Content: "You are terse."},
			{Role: flume.RoleUser, Content: "Hello"},
		},
		MaxTokens:   256,
		Temperature: &temp,
		TopP:        &topP,
	})
	require.NoError(t, err)
	defer s.Close()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(captured, &body))

	assert.Equal(t, "llama-3-8b-instruct", body["model"])
	assert.Equal(t, float64(256), body["max_tokens"])
	assert.Equal(t, 0.6, body["temperature"])
	assert.Equal(t, 0.9, body["top_p"])
	assert.Equal(t, true, body["stream"])

	msgs := body["messages"].([]interface{})
	require.Len(t, msgs, 2)
	msg0 := msgs[0].(map[string]interface{})
	assert.Equal(t, "system", msg0["role"])
	assert.Equal(t, "You are terse.", msg0["content"])
	msg1 := msgs[1].(map[string]interface{})
	assert.Equal(t, "user", msg1["role"])
	assert.Equal(t, "Hello", msg1["content"])
}

func TestClient_ParametersForwardedVerbatim(t *testing.T) {
	t.Parallel()

	// Out-of-range values are the service's problem, not the client's.
	var captured []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("data: [DONE]\n\n"))
	}))
	defer srv.Close()

	temp := 7.5
	client := openai.New("k", openai.WithBaseURL(srv.URL))
	s, err := client.Stream(context.Background(), flume.Request{
		Messages:    []flume.Message{{Role: flume.RoleUser, Content: "hi"}},
		Temperature: &temp,
	})
	require.NoError(t, err)
	defer s.Close()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(captured, &body))
	assert.Equal(t, 7.5, body["temperature"])
}

func TestClient_Defaults(t *testing.T) {
	t.Parallel()

	var captured []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("data: [DONE]\n\n"))
	}))
	defer srv.Close()

	client := openai.New("", openai.WithBaseURL(srv.URL))
	s, err := client.Stream(context.Background(), flume.Request{
		Messages: []flume.Message{{Role: flume.RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	defer s.Close()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(captured, &body))
	assert.NotEmpty(t, body["model"])
	assert.NotZero(t, body["max_tokens"])
	_, hasTemp := body["temperature"]
	assert.False(t, hasTemp)
	_, hasTopP := body["top_p"]
	assert.False(t, hasTopP)
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "structured API error",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"type":"invalid_request_error","message":"Incorrect API key provided"}}`,
			wantMsg: "Incorrect API key provided",
		},
		{
			name:    "opaque error body",
			status:  http.StatusBadGateway,
			body:    "upstream timed out",
			wantMsg: "upstream timed out",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := openai.New("k", openai.WithBaseURL(srv.URL))
			_, err := client.Stream(context.Background(), flume.Request{
				Messages: []flume.Message{{Role: flume.RoleUser, Content: "hi"}},
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestClient_Complete(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req map[string]interface{}
		if assert.NoError(t, json.Unmarshal(body, &req)) {
			assert.Equal(t, false, req["stream"])
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices":[{"message":{"role":"assistant","content":"The capital of France is Paris."},"finish_reason":"stop"}],
			"usage":{"prompt_tokens":12,"completion_tokens":8,"total_tokens":20}
		}`))
	}))
	defer srv.Close()

	client := openai.New("k", openai.WithBaseURL(srv.URL))
	got, err := client.Complete(context.Background(), flume.Request{
		Messages: []flume.Message{{Role: flume.RoleUser, Content: "Capital of France?"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "The capital of France is Paris.", got.Text)
	assert.Equal(t, "stop", got.FinishReason)
	assert.Equal(t, flume.Usage{PromptTokens: 12, CompletionTokens: 8, TotalTokens: 20}, got.Usage)
}

func TestClient_CompleteNoChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[],"usage":{}}`))
	}))
	defer srv.Close()

	client := openai.New("k", openai.WithBaseURL(srv.URL))
	_, err := client.Complete(context.Background(), flume.Request{
		Messages: []flume.Message{{Role: flume.RoleUser, Content: "hi"}},
	})
	assert.ErrorContains(t, err, "no choices")
}
