package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmh201708/ResearchPilot/internal/pkg/apperr"
)

// OK 200 返回
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Accepted 202 返回（异步任务创建）
func Accepted(c *gin.Context, data interface{}) {
	c.JSON(http.StatusAccepted, data)
}

// Fail 返回 {message, detail?} 错误体，状态码取自业务错误
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// FailDetail 带detail的错误返回
func FailDetail(c *gin.Context, status int, message, detail string) {
	body := gin.H{"message": message}
	if detail != "" {
		body["detail"] = detail
	}
	c.JSON(status, body)
}

// Error 把任意 error 映射为错误返回；非业务错误统一 500 + fallback message
func Error(c *gin.Context, err error, fallbackMessage string) {
	ae := apperr.From(err, fallbackMessage)
	FailDetail(c, ae.Status, ae.Message, ae.Detail)
}
