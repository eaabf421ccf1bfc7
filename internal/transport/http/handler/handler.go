package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	resp "hospital-api/internal/transport/http/response"
)

// parseID 路径参数必须是数字，不是就地回 400
func parseID(c *gin.Context, badMsg string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, resp.Body{Message: badMsg})
		return 0, false
	}
	return uint(id), true
}
