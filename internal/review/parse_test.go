package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLLMContentWholeString(t *testing.T) {
	obj, ok := parseLLMContent(`{"decision":"accept","score":8}`)
	require.True(t, ok)
	assert.Equal(t, "accept", obj["decision"])
}

func TestParseLLMContentFencedBlock(t *testing.T) {
	content := "这是评审结论：\n```json\n{\"decision\": \"reject\", \"score\": 3.5}\n```\n谢谢。"
	obj, ok := parseLLMContent(content)
	require.True(t, ok)
	assert.Equal(t, "reject", obj["decision"])
	assert.Equal(t, 3.5, obj["score"])
}

func TestParseLLMContentFencedBlockUppercase(t *testing.T) {
	// 外层大括号让首尾截取不可解析，只有代码块路径能恢复
	content := "说明{\n```JSON\n{\"decision\": \"accept\", \"score\": 8}\n```\n补充}"
	obj, ok := parseLLMContent(content)
	require.True(t, ok)
	assert.Equal(t, "accept", obj["decision"])
}

func TestParseLLMContentBraceSubstring(t *testing.T) {
	content := `模型说明文字 {"decision":"accept","summary":"好"} 末尾噪声`
	obj, ok := parseLLMContent(content)
	require.True(t, ok)
	assert.Equal(t, "好", obj["summary"])
}

func TestParseLLMContentFailure(t *testing.T) {
	for _, content := range []string{"", "没有任何JSON", "{broken json}"} {
		_, ok := parseLLMContent(content)
		assert.False(t, ok, "content=%q", content)
	}
}
