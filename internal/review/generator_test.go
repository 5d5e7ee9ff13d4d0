package review

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmh201708/ResearchPilot/internal/pkg/apperr"
	"github.com/bmh201708/ResearchPilot/internal/pkg/llm"
)

func newLLMServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestGenerateMissingAPIKey(t *testing.T) {
	g := NewGenerator(llm.NewClient("https://example.com", "", "test-model"))

	_, err := g.Generate(context.Background(), "manuscript")
	assertCode(t, err, http.StatusInternalServerError, "llm_config_missing")
}

func TestGenerateSuccess(t *testing.T) {
	server := newLLMServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 0.2, req["temperature"])
		assert.Equal(t, float64(1200), req["max_tokens"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{{
				"message": map[string]interface{}{
					"content": "```json\n{\"decision\":\"accept\",\"score\":75,\"summary\":\"好\",\"strengths\":[\"新颖\"]}\n```",
				},
			}},
		})
	})

	g := NewGenerator(llm.NewClient(server.URL, "sk-test", "test-model"))
	result, err := g.Generate(context.Background(), "manuscript text")
	require.NoError(t, err)

	assert.Equal(t, DecisionAccept, result.Decision)
	assert.Equal(t, 7.5, result.Score)
	assert.Equal(t, "好", result.Summary)
	assert.Equal(t, []string{"新颖"}, result.Strengths)
}

func TestGenerateUpstreamErrorWithMessage(t *testing.T) {
	server := newLLMServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"message": "rate limit exceeded"},
		})
	})

	g := NewGenerator(llm.NewClient(server.URL, "sk-test", "test-model"))
	_, err := g.Generate(context.Background(), "manuscript")
	assertCode(t, err, http.StatusBadGateway, "llm_request_failed")
	assert.Equal(t, "rate limit exceeded", err.(*apperr.Error).Detail)
}

func TestGenerateUpstreamErrorWithoutMessage(t *testing.T) {
	server := newLLMServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("oops"))
	})

	g := NewGenerator(llm.NewClient(server.URL, "sk-test", "test-model"))
	_, err := g.Generate(context.Background(), "manuscript")
	assertCode(t, err, http.StatusBadGateway, "llm_request_failed")
	assert.Equal(t, "llm_http_500", err.(*apperr.Error).Detail)
}

func TestGenerateInvalidResponse(t *testing.T) {
	server := newLLMServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{{
				"message": map[string]interface{}{"content": "抱歉，我无法评审这篇文章。"},
			}},
		})
	})

	g := NewGenerator(llm.NewClient(server.URL, "sk-test", "test-model"))
	_, err := g.Generate(context.Background(), "manuscript")
	assertCode(t, err, http.StatusBadGateway, "llm_response_invalid")
}

func TestGenerateContentFragments(t *testing.T) {
	server := newLLMServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{{
				"message": map[string]interface{}{
					"content": []map[string]interface{}{
						{"text": "{\"decision\":\"reject\","},
						{"text": "\"score\":4}"},
					},
				},
			}},
		})
	})

	g := NewGenerator(llm.NewClient(server.URL, "sk-test", "test-model"))
	result, err := g.Generate(context.Background(), "manuscript")
	require.NoError(t, err)
	assert.Equal(t, DecisionReject, result.Decision)
	assert.Equal(t, 4.0, result.Score)
}
