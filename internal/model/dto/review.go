package dto

import (
	"time"

	"github.com/bmh201708/ResearchPilot/internal/review"
)

// ReviewSimulateRequest 评审模拟请求（异步与同步共用）。
// 异步任务要求 fileName+fileUrl；同步要求 fileName 且 contentBase64 与 fileUrl 二选一。
type ReviewSimulateRequest struct {
	FileName      string `json:"fileName"`
	MimeType      string `json:"mimeType"`
	Extension     string `json:"extension"`
	ContentBase64 string `json:"contentBase64"`
	FileURL       string `json:"fileUrl"`
}

// ReviewTaskPayload 任务对外视图
type ReviewTaskPayload struct {
	TaskID    string         `json:"taskId"`
	Status    string         `json:"status"`
	FileName  string         `json:"fileName,omitempty"`
	Error     string         `json:"error,omitempty"`
	Review    *review.Result `json:"review,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// ReviewTaskResponse 任务创建/查询返回
type ReviewTaskResponse struct {
	Task *ReviewTaskPayload `json:"task"`
}

// ReviewMeta 同步评审的调用信息
type ReviewMeta struct {
	Model      string `json:"model"`
	Endpoint   string `json:"endpoint"`
	InputChars int    `json:"inputChars"`
	FileType   string `json:"fileType"`
}

// ReviewSyncResponse 同步评审返回
type ReviewSyncResponse struct {
	Review *review.Result `json:"review"`
	Meta   *ReviewMeta    `json:"meta"`
}
