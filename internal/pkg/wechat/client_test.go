package wechat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSCode2SessionSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sns/jscode2session", r.URL.Path)
		assert.Equal(t, "app-id", r.URL.Query().Get("appid"))
		assert.Equal(t, "the-code", r.URL.Query().Get("js_code"))
		assert.Equal(t, "authorization_code", r.URL.Query().Get("grant_type"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"openid":      "openid-1",
			"session_key": "sk",
		})
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "app-id", "app-secret")
	result, err := client.JSCode2Session(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "openid-1", result.OpenID)
}

func TestJSCode2SessionErrCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"errcode": 40029,
			"errmsg":  "invalid code",
		})
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "app-id", "app-secret")
	_, err := client.JSCode2Session(context.Background(), "bad-code")
	assert.ErrorContains(t, err, "40029")
}

func TestJSCode2SessionMissingOpenID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{})
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "app-id", "app-secret")
	_, err := client.JSCode2Session(context.Background(), "the-code")
	assert.Error(t, err)
}
