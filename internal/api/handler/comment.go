package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bmh201708/ResearchPilot/internal/api/middleware"
	"github.com/bmh201708/ResearchPilot/internal/model/dto"
	"github.com/bmh201708/ResearchPilot/internal/pkg/response"
	"github.com/bmh201708/ResearchPilot/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// List GET /papers/:id/comments
func (h *CommentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	resp, err := h.commentService.List(middleware.GetUserID(c), c.Param("id"), page, pageSize)
	if err != nil {
		response.Error(c, err, "comment_list_failed")
		return
	}
	response.OK(c, resp)
}

// Create POST /papers/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetail(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	comment, err := h.commentService.Create(middleware.GetUserID(c), c.Param("id"), req.Content)
	if err != nil {
		response.Error(c, err, "comment_create_failed")
		return
	}
	response.OK(c, gin.H{"comment": comment})
}

// Like POST /papers/:id/comments/:commentId/like
func (h *CommentHandler) Like(c *gin.Context) {
	resp, err := h.commentService.ToggleLike(middleware.GetUserID(c), c.Param("commentId"))
	if err != nil {
		response.Error(c, err, "comment_like_failed")
		return
	}
	response.OK(c, resp)
}
