package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIError 上游LLM服务返回的非2xx错误
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("llm_http_%d", e.StatusCode)
}

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

func (c *Client) Model() string { return c.model }

func (c *Client) HasAPIKey() bool { return strings.TrimSpace(c.apiKey) != "" }

// BuildChatCompletionsURL 根据 base URL 推导 chat/completions 端点
func BuildChatCompletionsURL(baseURL string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if strings.HasSuffix(base, "/chat/completions") {
		return base
	}
	if strings.HasSuffix(base, "/v1") {
		return base + "/chat/completions"
	}
	return base + "/v1/chat/completions"
}

type Message struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	Messages    []Message `json:"messages"`
}

// ChatCompletion 调用 chat/completions 并返回首个choice的文本内容。
// 上游返回非2xx时返回 *APIError，message 取 provider 的 error.message / message。
func (c *Client) ChatCompletion(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error) {
	reqBody := chatRequest{
		Model:       c.model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := BuildChatCompletionsURL(c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, Message: extractErrorMessage(body)}
	}

	content, ok := extractContent(body)
	if !ok {
		return "", fmt.Errorf("上游响应缺少可用的choices内容")
	}
	return content, nil
}

func extractErrorMessage(body []byte) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return envelope.Message
}

// extractContent 取 choices[0].message.content；content 可能是字符串，
// 也可能是 {text} 片段数组（按换行拼接）；兜底取 choices[0].text。
func extractContent(body []byte) (string, bool) {
	var resp struct {
		Choices []struct {
			Message struct {
				Content json.RawMessage `json:"content"`
			} `json:"message"`
			Text string `json:"text"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || len(resp.Choices) == 0 {
		return "", false
	}

	choice := resp.Choices[0]
	raw := choice.Message.Content
	if len(raw) > 0 && string(raw) != "null" {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s, true
		}
		var fragments []struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(raw, &fragments); err == nil {
			parts := make([]string, 0, len(fragments))
			for _, f := range fragments {
				parts = append(parts, f.Text)
			}
			return strings.Join(parts, "\n"), true
		}
	}
	if choice.Text != "" {
		return choice.Text, true
	}
	return "", false
}
