package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmh201708/ResearchPilot/internal/api/middleware"
	"github.com/bmh201708/ResearchPilot/internal/pkg/apperr"
	"github.com/bmh201708/ResearchPilot/internal/review"
	"github.com/bmh201708/ResearchPilot/internal/service"
)

type stubExtractor struct {
	manuscript *review.Manuscript
	err        error
}

func (s *stubExtractor) Extract(input *review.ExtractInput) (*review.Manuscript, error) {
	return s.manuscript, s.err
}

type stubReviewer struct {
	result *review.Result
	err    error
}

func (s *stubReviewer) Generate(ctx context.Context, text string) (*review.Result, error) {
	return s.result, s.err
}

func newReviewRouter(t *testing.T, extractor review.TextExtractor, reviewer review.Reviewer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := review.NewRegistry(2 * time.Hour)
	runner := review.NewRunner(registry, extractor, reviewer, nil)
	h := NewReviewHandler(service.NewReviewService(registry, runner, "test-model",
		"http://llm.test/v1/chat/completions"))

	r := gin.New()
	// 测试里直接注入用户，跳过JWT
	r.Use(func(c *gin.Context) { c.Set(middleware.UserIDKey, "user-1") })
	r.POST("/lab/review-simulator/tasks", h.CreateTask)
	r.GET("/lab/review-simulator/tasks/:taskId", h.GetTask)
	r.POST("/lab/review-simulator", h.Simulate)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreateTaskAccepted(t *testing.T) {
	r := newReviewRouter(t,
		&stubExtractor{manuscript: &review.Manuscript{Text: "text", Extension: "txt"}},
		&stubReviewer{result: &review.Result{Decision: review.DecisionAccept, Score: 8}})

	w := doJSON(t, r, http.MethodPost, "/lab/review-simulator/tasks", map[string]string{
		"fileName": "paper.txt",
		"fileUrl":  "https://files.myqcloud.com/paper.txt",
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	body := parseBody(t, w)
	task := body["task"].(map[string]interface{})
	taskID := task["taskId"].(string)
	require.NotEmpty(t, taskID)
	assert.Equal(t, review.StatusPending, task["status"])

	// 轮询到终态
	require.Eventually(t, func() bool {
		w := doJSON(t, r, http.MethodGet, "/lab/review-simulator/tasks/"+taskID, nil)
		if w.Code != http.StatusOK {
			return false
		}
		status := parseBody(t, w)["task"].(map[string]interface{})["status"]
		return status == review.StatusDone
	}, 2*time.Second, 20*time.Millisecond)
}

func TestCreateTaskInvalidExtension(t *testing.T) {
	r := newReviewRouter(t, &stubExtractor{}, &stubReviewer{})

	w := doJSON(t, r, http.MethodPost, "/lab/review-simulator/tasks", map[string]string{
		"fileName": "paper.docx",
		"fileUrl":  "https://files.myqcloud.com/paper.docx",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "unsupported_file_type", parseBody(t, w)["message"])
}

func TestCreateTaskMissingFields(t *testing.T) {
	r := newReviewRouter(t, &stubExtractor{}, &stubReviewer{})

	// 缺fileName：即使扩展名可由extension推断，也先按缺字段拒绝
	w := doJSON(t, r, http.MethodPost, "/lab/review-simulator/tasks", map[string]string{
		"extension": "txt",
		"fileUrl":   "https://files.myqcloud.com/a.txt",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_payload", parseBody(t, w)["message"])

	// 缺fileUrl
	w = doJSON(t, r, http.MethodPost, "/lab/review-simulator/tasks", map[string]string{
		"fileName": "paper.txt",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_payload", parseBody(t, w)["message"])

	// 空请求体
	w = doJSON(t, r, http.MethodPost, "/lab/review-simulator/tasks", map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_payload", parseBody(t, w)["message"])
}

func TestGetTaskNotFound(t *testing.T) {
	r := newReviewRouter(t, &stubExtractor{}, &stubReviewer{})

	w := doJSON(t, r, http.MethodGet, "/lab/review-simulator/tasks/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "task_not_found", parseBody(t, w)["message"])
}

func TestSimulateSync(t *testing.T) {
	r := newReviewRouter(t,
		&stubExtractor{manuscript: &review.Manuscript{Text: "text", Extension: "md"}},
		&stubReviewer{result: &review.Result{Decision: review.DecisionReject, Score: 3.5, Summary: "一般"}})

	w := doJSON(t, r, http.MethodPost, "/lab/review-simulator", map[string]string{
		"fileName":      "paper.md",
		"contentBase64": "aGVsbG8=",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := parseBody(t, w)
	reviewBody := body["review"].(map[string]interface{})
	assert.Equal(t, "REJECT", reviewBody["decision"])
	assert.Equal(t, 3.5, reviewBody["score"])
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, "test-model", meta["model"])
	assert.Equal(t, "http://llm.test/v1/chat/completions", meta["endpoint"])
	assert.Equal(t, float64(4), meta["inputChars"])
	assert.Equal(t, "md", meta["fileType"])
}

func TestSimulateSyncMissingFileName(t *testing.T) {
	r := newReviewRouter(t, &stubExtractor{}, &stubReviewer{})

	w := doJSON(t, r, http.MethodPost, "/lab/review-simulator", map[string]string{
		"extension":     "md",
		"contentBase64": "aGVsbG8=",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_payload", parseBody(t, w)["message"])
}

func TestSimulateSyncPropagatesError(t *testing.T) {
	r := newReviewRouter(t,
		&stubExtractor{err: apperr.NewWithDetail(http.StatusBadGateway, "llm_request_failed", "rate limit")},
		&stubReviewer{})

	w := doJSON(t, r, http.MethodPost, "/lab/review-simulator", map[string]string{
		"fileName":      "paper.txt",
		"contentBase64": "aGVsbG8=",
	})
	require.Equal(t, http.StatusBadGateway, w.Code)

	body := parseBody(t, w)
	assert.Equal(t, "llm_request_failed", body["message"])
	assert.Equal(t, "rate limit", body["detail"])
}
