package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmh201708/ResearchPilot/internal/api/middleware"
	"github.com/bmh201708/ResearchPilot/internal/model/dto"
	"github.com/bmh201708/ResearchPilot/internal/pkg/response"
	"github.com/bmh201708/ResearchPilot/internal/service"
)

type PaperHandler struct {
	paperService *service.PaperService
}

func NewPaperHandler(paperService *service.PaperService) *PaperHandler {
	return &PaperHandler{paperService: paperService}
}

// Feed GET /papers/feed
func (h *PaperHandler) Feed(c *gin.Context) {
	var req dto.FeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.FailDetail(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	resp, err := h.paperService.Feed(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err, "feed_failed")
		return
	}
	response.OK(c, resp)
}

// Detail GET /papers/:id
func (h *PaperHandler) Detail(c *gin.Context) {
	resp, err := h.paperService.Detail(c.Request.Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err, "paper_detail_failed")
		return
	}
	response.OK(c, resp)
}

// Action POST /papers/:id/action
func (h *PaperHandler) Action(c *gin.Context) {
	var req dto.PaperActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetail(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	if err := h.paperService.RecordAction(middleware.GetUserID(c), c.Param("id"), req.Action); err != nil {
		response.Error(c, err, "paper_action_failed")
		return
	}
	response.OK(c, gin.H{"action": req.Action})
}

// Like POST /papers/:id/like
func (h *PaperHandler) Like(c *gin.Context) {
	liked, err := h.paperService.ToggleLike(middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err, "paper_like_failed")
		return
	}
	response.OK(c, dto.LikeResponse{Liked: liked})
}
