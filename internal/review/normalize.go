package review

import (
	"math"
	"strconv"
	"strings"
)

const maxListItems = 5

const (
	DecisionAccept = "ACCEPT"
	DecisionReject = "REJECT"
)

// normalizeDecision 包含reject即REJECT（优先于accept），包含accept则ACCEPT，
// 其余一律REJECT
func normalizeDecision(raw interface{}) string {
	s := strings.ToLower(strings.TrimSpace(toString(raw)))
	if strings.Contains(s, "reject") {
		return DecisionReject
	}
	if strings.Contains(s, "accept") {
		return DecisionAccept
	}
	return DecisionReject
}

// normalizeScore 非数值归0；(10,100]按百分制除以10；夹到[0,10]并保留1位小数
func normalizeScore(raw interface{}) float64 {
	var score float64
	switch v := raw.(type) {
	case float64:
		score = v
	case int:
		score = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		score = parsed
	default:
		return 0
	}

	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0
	}
	if score > 10 && score <= 100 {
		score = score / 10
	}
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	return math.Round(score*10) / 10
}

// normalizeStringList 仅保留非空字符串项，逐项trim，至多5条；非数组返回空
func normalizeStringList(raw interface{}) []string {
	items, ok := raw.([]interface{})
	if !ok {
		return []string{}
	}
	result := make([]string, 0, maxListItems)
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		result = append(result, s)
		if len(result) >= maxListItems {
			break
		}
	}
	return result
}

// normalizeResult 把模型返回的松散JSON对象归一化为完整结果
func normalizeResult(obj map[string]interface{}) *Result {
	return &Result{
		Decision:    normalizeDecision(obj["decision"]),
		Score:       normalizeScore(obj["score"]),
		Summary:     strings.TrimSpace(toString(obj["summary"])),
		Strengths:   normalizeStringList(obj["strengths"]),
		Weaknesses:  normalizeStringList(obj["weaknesses"]),
		Suggestions: normalizeStringList(obj["suggestions"]),
	}
}

func toString(raw interface{}) string {
	s, _ := raw.(string)
	return s
}
