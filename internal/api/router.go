package api

import (
	"github.com/gin-gonic/gin"

	"github.com/bmh201708/ResearchPilot/config"
	"github.com/bmh201708/ResearchPilot/internal/api/handler"
	"github.com/bmh201708/ResearchPilot/internal/api/middleware"
)

// Handlers 路由需要的全部处理器
type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Paper     *handler.PaperHandler
	Project   *handler.ProjectHandler
	Comment   *handler.CommentHandler
	Review    *handler.ReviewHandler
	WebSocket *handler.WebSocketHandler
}

// SetupRouter 注册全部路由
func SetupRouter(cfg *config.Config, h *Handlers) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORS(cfg.CORS))

	r.GET("/healthz", handler.Healthz)

	auth := r.Group("/auth")
	{
		auth.POST("/wx-login", h.Auth.WxLogin)
		auth.POST("/email-register", h.Auth.EmailRegister)
		auth.POST("/email-login", h.Auth.EmailLogin)
	}

	authed := r.Group("/", middleware.Auth(cfg.JWT.Secret))
	{
		authed.GET("/users/me", h.User.Me)
		authed.PUT("/users/me/profile", h.User.UpdateProfile)
		authed.POST("/users/me/avatar", h.User.UploadAvatar)
		authed.GET("/users/me/liked-papers", h.User.LikedPapers)
		authed.GET("/profile/dashboard", h.User.Dashboard)

		authed.GET("/projects/conferences", h.Project.List)
		authed.POST("/projects/conferences", h.Project.Create)
		authed.PATCH("/projects/conferences/:id", h.Project.Update)
		authed.DELETE("/projects/conferences/:id", h.Project.Delete)

		authed.GET("/papers/feed", h.Paper.Feed)
		authed.GET("/papers/:id", h.Paper.Detail)
		authed.POST("/papers/:id/action", h.Paper.Action)
		authed.POST("/papers/:id/like", h.Paper.Like)

		authed.GET("/papers/:id/comments", h.Comment.List)
		authed.POST("/papers/:id/comments", h.Comment.Create)
		authed.POST("/papers/:id/comments/:commentId/like", h.Comment.Like)

		authed.POST("/lab/review-simulator/tasks", h.Review.CreateTask)
		authed.GET("/lab/review-simulator/tasks/:taskId", h.Review.GetTask)
		authed.POST("/lab/review-simulator", h.Review.Simulate)

		authed.GET("/ws", h.WebSocket.Serve)
	}

	return r
}
