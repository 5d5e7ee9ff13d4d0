package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildChatCompletionsURL(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"https://api-inference.modelscope.cn", "https://api-inference.modelscope.cn/v1/chat/completions"},
		{"https://api.openai.com/v1", "https://api.openai.com/v1/chat/completions"},
		{"https://api.openai.com/v1/", "https://api.openai.com/v1/chat/completions"},
		{"https://proxy.example.com/v1/chat/completions", "https://proxy.example.com/v1/chat/completions"},
		{"  https://host.example.com/  ", "https://host.example.com/v1/chat/completions"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BuildChatCompletionsURL(tt.base), "base=%q", tt.base)
	}
}

func TestExtractContent(t *testing.T) {
	t.Run("字符串content", func(t *testing.T) {
		body := []byte(`{"choices":[{"message":{"content":"hello"}}]}`)
		content, ok := extractContent(body)
		assert.True(t, ok)
		assert.Equal(t, "hello", content)
	})

	t.Run("片段数组content", func(t *testing.T) {
		body := []byte(`{"choices":[{"message":{"content":[{"text":"a"},{"text":"b"}]}}]}`)
		content, ok := extractContent(body)
		assert.True(t, ok)
		assert.Equal(t, "a\nb", content)
	})

	t.Run("回退到choices[0].text", func(t *testing.T) {
		body := []byte(`{"choices":[{"text":"legacy"}]}`)
		content, ok := extractContent(body)
		assert.True(t, ok)
		assert.Equal(t, "legacy", content)
	})

	t.Run("无choices", func(t *testing.T) {
		_, ok := extractContent([]byte(`{"choices":[]}`))
		assert.False(t, ok)
	})
}

func TestExtractErrorMessage(t *testing.T) {
	assert.Equal(t, "quota exceeded",
		extractErrorMessage([]byte(`{"error":{"message":"quota exceeded"}}`)))
	assert.Equal(t, "bad request",
		extractErrorMessage([]byte(`{"message":"bad request"}`)))
	assert.Equal(t, "", extractErrorMessage([]byte(`not json`)))
}
