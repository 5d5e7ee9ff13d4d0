package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmh201708/ResearchPilot/internal/model/dto"
	"github.com/bmh201708/ResearchPilot/internal/pkg/response"
	"github.com/bmh201708/ResearchPilot/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// WxLogin POST /auth/wx-login
func (h *AuthHandler) WxLogin(c *gin.Context) {
	var req dto.WxLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetail(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	token, user, err := h.authService.WxLogin(c.Request.Context(), req.Code)
	if err != nil {
		response.Error(c, err, "wx_login_failed")
		return
	}
	response.OK(c, dto.AuthResponse{Token: token, User: user})
}

// EmailRegister POST /auth/email-register
func (h *AuthHandler) EmailRegister(c *gin.Context) {
	var req dto.EmailRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetail(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	token, user, err := h.authService.EmailRegister(c.Request.Context(), req.Email, req.Password, req.Nickname)
	if err != nil {
		response.Error(c, err, "register_failed")
		return
	}
	response.OK(c, dto.AuthResponse{Token: token, User: user})
}

// EmailLogin POST /auth/email-login
func (h *AuthHandler) EmailLogin(c *gin.Context) {
	var req dto.EmailLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetail(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	token, user, err := h.authService.EmailLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err, "login_failed")
		return
	}
	response.OK(c, dto.AuthResponse{Token: token, User: user})
}
