package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bmh201708/ResearchPilot/internal/pkg/jwt"
	"github.com/bmh201708/ResearchPilot/internal/pkg/response"
)

const UserIDKey = "userID"

// Auth 强制登录中间件，校验 Bearer token 并注入用户ID
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Fail(c, http.StatusUnauthorized, "missing_token")
			c.Abort()
			return
		}

		claims, err := jwt.ParseToken(token, secret)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "invalid_token")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// extractToken 优先取 Authorization 头，WebSocket 场景允许 query 传 token
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}

// GetUserID 从上下文取当前用户ID
func GetUserID(c *gin.Context) string {
	if v, ok := c.Get(UserIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
