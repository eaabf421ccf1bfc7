package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hospital-api/internal/core/auth"
	"hospital-api/internal/domain"
	resp "hospital-api/internal/transport/http/response"
)

const ctxUserKey = "currentUser"

func unauthorized(c *gin.Context) {
	// 三种失败原因对外都是同一个 401，不泄露细节
	c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Body{Message: "Unauthorized"})
}

// Authenticate 解 Bearer token 并把 User 挂到请求上下文
func Authenticate(j *auth.JWTer, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			unauthorized(c)
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			unauthorized(c)
			return
		}
		u, err := users.FindByID(claims.UserID)
		if err != nil || u == nil {
			unauthorized(c)
			return
		}
		c.Set(ctxUserKey, u)
		c.Next()
	}
}

// RequireRoles 角色不在集合里也回 401（沿用老接口的约定，不是 403）
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok || !auth.RoleAllowed(u.Role, roles) {
			unauthorized(c)
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*domain.User)
	return u, ok
}
