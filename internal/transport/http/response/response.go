package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hospital-api/internal/apperr"
)

// Body 统一响应 {message, result}
type Body struct {
	Message string `json:"message"`
	Result  any    `json:"result,omitempty"`
}

// LoginBody 登录成功多带一个 access_token
type LoginBody struct {
	Message     string `json:"message"`
	Result      any    `json:"result"`
	AccessToken string `json:"access_token"`
}

// PageBody 用户列表的分页外壳
type PageBody struct {
	Message    string `json:"message"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Total      int64  `json:"total"`
	TotalPages int    `json:"totalPages"`
	Result     any    `json:"result"`
}

func OK(c *gin.Context, message string, result any) {
	c.JSON(http.StatusOK, Body{Message: message, Result: result})
}

func Created(c *gin.Context, message string, result any) {
	c.JSON(http.StatusCreated, Body{Message: message, Result: result})
}

// Fail 把 apperr 映射到状态码；其它错误一律 500，细节只进日志
func Fail(c *gin.Context, l *zap.Logger, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		if ae.Status >= 500 && l != nil {
			l.Error("request failed",
				zap.String("path", c.FullPath()),
				zap.String("message", ae.Message),
				zap.Error(ae.Err),
			)
		}
		c.JSON(ae.Status, Body{Message: ae.Message})
		return
	}
	if l != nil {
		l.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(http.StatusInternalServerError, Body{Message: "Internal server error."})
}
