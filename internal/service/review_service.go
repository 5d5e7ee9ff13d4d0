package service

import (
	"context"
	"net/http"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/bmh201708/ResearchPilot/internal/model/dto"
	"github.com/bmh201708/ResearchPilot/internal/pkg/apperr"
	"github.com/bmh201708/ResearchPilot/internal/review"
)

// ReviewService 评审模拟：异步任务 + 同步直出
type ReviewService struct {
	registry *review.Registry
	runner   *review.Runner
	model    string
	endpoint string
}

func NewReviewService(registry *review.Registry, runner *review.Runner, modelName, endpoint string) *ReviewService {
	return &ReviewService{registry: registry, runner: runner, model: modelName, endpoint: endpoint}
}

// CreateTask 校验入参、登记任务并后台执行。异步任务只从云存储URL取稿件。
func (s *ReviewService) CreateTask(userID string, req *dto.ReviewSimulateRequest) (*dto.ReviewTaskPayload, error) {
	input := &review.ExtractInput{
		FileName:  req.FileName,
		MimeType:  req.MimeType,
		Extension: req.Extension,
		FileURL:   req.FileURL,
	}
	ext, err := review.ValidateCreateInput(input)
	if err != nil {
		return nil, err
	}

	task := &review.Task{
		TaskID:    uuid.NewString(),
		UserID:    userID,
		FileName:  req.FileName,
		MimeType:  req.MimeType,
		Extension: ext,
		FileURL:   req.FileURL,
		Status:    review.StatusPending,
	}
	s.registry.Create(task)
	payload := taskPayload(s.registry.Get(task.TaskID))
	s.runner.Run(task, input)

	return payload, nil
}

// GetTask 查询任务；不存在或不属于当前用户都按不存在处理
func (s *ReviewService) GetTask(userID, taskID string) (*dto.ReviewTaskPayload, error) {
	task := s.registry.Get(taskID)
	if task == nil || task.UserID != userID {
		return nil, apperr.New(http.StatusNotFound, "task_not_found")
	}
	return taskPayload(task), nil
}

// Simulate 同步评审，错误直接向上传递
func (s *ReviewService) Simulate(ctx context.Context, req *dto.ReviewSimulateRequest) (*dto.ReviewSyncResponse, error) {
	input := &review.ExtractInput{
		FileName:      req.FileName,
		MimeType:      req.MimeType,
		Extension:     req.Extension,
		ContentBase64: req.ContentBase64,
		FileURL:       req.FileURL,
	}
	if err := review.ValidateSimulateInput(input); err != nil {
		return nil, err
	}

	result, manuscript, err := s.runner.RunSync(ctx, input)
	if err != nil {
		return nil, err
	}
	return &dto.ReviewSyncResponse{
		Review: result,
		Meta: &dto.ReviewMeta{
			Model:      s.model,
			Endpoint:   s.endpoint,
			InputChars: utf8.RuneCountInString(manuscript.Text),
			FileType:   manuscript.Extension,
		},
	}, nil
}

func taskPayload(task *review.Task) *dto.ReviewTaskPayload {
	if task == nil {
		return nil
	}
	return &dto.ReviewTaskPayload{
		TaskID:    task.TaskID,
		Status:    task.Status,
		FileName:  task.FileName,
		Error:     task.Error,
		Review:    task.Review,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}
