package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmh201708/ResearchPilot/internal/api/middleware"
	"github.com/bmh201708/ResearchPilot/internal/model/dto"
	"github.com/bmh201708/ResearchPilot/internal/pkg/response"
	"github.com/bmh201708/ResearchPilot/internal/service"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List GET /projects/conferences
func (h *ProjectHandler) List(c *gin.Context) {
	deadlines, err := h.projectService.List(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err, "conference_list_failed")
		return
	}
	response.OK(c, gin.H{"conferences": deadlines})
}

// Create POST /projects/conferences
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateConferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetail(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	deadline, err := h.projectService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		response.Error(c, err, "conference_create_failed")
		return
	}
	response.OK(c, gin.H{"conference": deadline})
}

// Update PATCH /projects/conferences/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.UpdateConferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetail(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	deadline, err := h.projectService.Update(middleware.GetUserID(c), c.Param("id"), &req)
	if err != nil {
		response.Error(c, err, "conference_update_failed")
		return
	}
	response.OK(c, gin.H{"conference": deadline})
}

// Delete DELETE /projects/conferences/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectService.Delete(middleware.GetUserID(c), c.Param("id")); err != nil {
		response.Error(c, err, "conference_delete_failed")
		return
	}
	response.OK(c, gin.H{"deleted": true})
}
