package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmh201708/ResearchPilot/internal/api/middleware"
	"github.com/bmh201708/ResearchPilot/internal/model/dto"
	"github.com/bmh201708/ResearchPilot/internal/pkg/response"
	"github.com/bmh201708/ResearchPilot/internal/service"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// CreateTask POST /lab/review-simulator/tasks
func (h *ReviewHandler) CreateTask(c *gin.Context) {
	var req dto.ReviewSimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetail(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	task, err := h.reviewService.CreateTask(middleware.GetUserID(c), &req)
	if err != nil {
		response.Error(c, err, "review_simulation_failed")
		return
	}
	response.Accepted(c, dto.ReviewTaskResponse{Task: task})
}

// GetTask GET /lab/review-simulator/tasks/:taskId
func (h *ReviewHandler) GetTask(c *gin.Context) {
	task, err := h.reviewService.GetTask(middleware.GetUserID(c), c.Param("taskId"))
	if err != nil {
		response.Error(c, err, "review_simulation_failed")
		return
	}
	response.OK(c, dto.ReviewTaskResponse{Task: task})
}

// Simulate POST /lab/review-simulator （同步直出）
func (h *ReviewHandler) Simulate(c *gin.Context) {
	var req dto.ReviewSimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetail(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	resp, err := h.reviewService.Simulate(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err, "review_simulation_failed")
		return
	}
	response.OK(c, resp)
}
