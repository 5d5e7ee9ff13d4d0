package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDecision(t *testing.T) {
	tests := []struct {
		raw  interface{}
		want string
	}{
		{"accept", DecisionAccept},
		{"Strong Accept", DecisionAccept},
		{"reject", DecisionReject},
		{"accept with reject leaning", DecisionReject}, // reject优先
		{"borderline", DecisionReject},
		{nil, DecisionReject},
		{123, DecisionReject},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeDecision(tt.raw), "raw=%v", tt.raw)
	}
}

func TestNormalizeScore(t *testing.T) {
	tests := []struct {
		raw  interface{}
		want float64
	}{
		{7.25, 7.3},
		{"6.5", 6.5},
		{55.0, 5.5},   // 百分制除以10
		{105.0, 10.0}, // 超出百分制夹到上限
		{-3.0, 0.0},
		{"abc", 0.0},
		{nil, 0.0},
		{10.0, 10.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeScore(tt.raw), "raw=%v", tt.raw)
	}
}

func TestNormalizeStringList(t *testing.T) {
	raw := []interface{}{" a ", "", "b", 3, "c", "d", "e", "f"}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, normalizeStringList(raw))

	assert.Equal(t, []string{}, normalizeStringList("不是数组"))
	assert.Equal(t, []string{}, normalizeStringList(nil))
}

func TestNormalizeResult(t *testing.T) {
	obj := map[string]interface{}{
		"decision":  "Accept",
		"score":     88.0,
		"summary":   "  一篇扎实的工作  ",
		"strengths": []interface{}{"清晰"},
	}
	result := normalizeResult(obj)

	assert.Equal(t, DecisionAccept, result.Decision)
	assert.Equal(t, 8.8, result.Score)
	assert.Equal(t, "一篇扎实的工作", result.Summary)
	assert.Equal(t, []string{"清晰"}, result.Strengths)
	assert.Empty(t, result.Weaknesses)
	assert.Empty(t, result.Suggestions)
	assert.NotNil(t, result.Weaknesses)
	assert.NotNil(t, result.Suggestions)
}
