package review

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencedJSONPattern = regexp.MustCompile("(?is)```json\\s*(.*?)```")

// parseLLMContent 依次尝试三种方式从模型输出中恢复JSON对象：
// 整串解析、```json 代码块、首个 { 到末个 } 的子串。
func parseLLMContent(content string) (map[string]interface{}, bool) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, false
	}

	if obj, ok := tryParseObject(trimmed); ok {
		return obj, true
	}

	if m := fencedJSONPattern.FindStringSubmatch(trimmed); m != nil {
		if obj, ok := tryParseObject(strings.TrimSpace(m[1])); ok {
			return obj, true
		}
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end > start {
		if obj, ok := tryParseObject(trimmed[start : end+1]); ok {
			return obj, true
		}
	}

	return nil, false
}

func tryParseObject(s string) (map[string]interface{}, bool) {
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil, false
	}
	return obj, true
}
