package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bmh201708/ResearchPilot/internal/api/middleware"
	"github.com/bmh201708/ResearchPilot/internal/model/dto"
	"github.com/bmh201708/ResearchPilot/internal/pkg/response"
	"github.com/bmh201708/ResearchPilot/internal/service"
)

const maxAvatarBytes = 5 * 1024 * 1024

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userService.GetProfile(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err, "get_profile_failed")
		return
	}
	response.OK(c, gin.H{"user": user})
}

// UpdateProfile PUT /users/me/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetail(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(middleware.GetUserID(c), &req)
	if err != nil {
		response.Error(c, err, "update_profile_failed")
		return
	}
	response.OK(c, gin.H{"user": user})
}

// UploadAvatar POST /users/me/avatar （multipart字段 file）
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.FailDetail(c, http.StatusBadRequest, "invalid_payload", "缺少file字段")
		return
	}
	if fileHeader.Size > maxAvatarBytes {
		response.Fail(c, http.StatusBadRequest, "avatar_too_large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err, "avatar_upload_failed")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.Error(c, err, "avatar_upload_failed")
		return
	}

	url, err := h.userService.UploadAvatar(middleware.GetUserID(c), data, filepath.Ext(fileHeader.Filename))
	if err != nil {
		response.Error(c, err, "avatar_upload_failed")
		return
	}
	response.OK(c, gin.H{"avatarUrl": url})
}

// LikedPapers GET /users/me/liked-papers
func (h *UserHandler) LikedPapers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 10
	}

	resp, err := h.userService.LikedPapers(middleware.GetUserID(c), page, pageSize)
	if err != nil {
		response.Error(c, err, "liked_papers_failed")
		return
	}
	response.OK(c, resp)
}

// Dashboard GET /profile/dashboard
func (h *UserHandler) Dashboard(c *gin.Context) {
	stats, err := h.userService.Dashboard(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err, "dashboard_failed")
		return
	}
	response.OK(c, stats)
}
