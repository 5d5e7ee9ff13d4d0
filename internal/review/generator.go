package review

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bmh201708/ResearchPilot/internal/pkg/apperr"
	"github.com/bmh201708/ResearchPilot/internal/pkg/llm"
)

const systemPrompt = "You are a strict but constructive academic peer reviewer. " +
	"Evaluate the manuscript rigorously and reply with JSON only."

const userPromptTemplate = `Review the following manuscript and return a JSON object with exactly these fields:
- "decision": "ACCEPT" or "REJECT"
- "score": overall quality score from 0 to 10
- "summary": a short summary of the manuscript
- "strengths": array of up to 5 strengths
- "weaknesses": array of up to 5 weaknesses
- "suggestions": array of up to 5 concrete suggestions for improvement

Manuscript:
%s`

// Generator 调用LLM生成评审结论并归一化
type Generator struct {
	client *llm.Client
}

func NewGenerator(client *llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate 对稿件文本生成评审结果。错误均为带状态码的业务错误。
func (g *Generator) Generate(ctx context.Context, manuscriptText string) (*Result, error) {
	if !g.client.HasAPIKey() {
		return nil, apperr.New(http.StatusInternalServerError, "llm_config_missing")
	}

	content, err := g.client.ChatCompletion(ctx, systemPrompt,
		fmt.Sprintf(userPromptTemplate, manuscriptText), 0.2, 1200)
	if err != nil {
		if apiErr, ok := err.(*llm.APIError); ok {
			detail := apiErr.Message
			if detail == "" {
				detail = fmt.Sprintf("llm_http_%d", apiErr.StatusCode)
			}
			return nil, apperr.NewWithDetail(http.StatusBadGateway, "llm_request_failed", detail)
		}
		return nil, apperr.NewWithDetail(http.StatusBadGateway, "llm_request_failed", err.Error())
	}

	obj, ok := parseLLMContent(content)
	if !ok {
		return nil, apperr.New(http.StatusBadGateway, "llm_response_invalid")
	}
	return normalizeResult(obj), nil
}
