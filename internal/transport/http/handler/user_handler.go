package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hospital-api/internal/service"
	"hospital-api/internal/transport/http/middleware"
	resp "hospital-api/internal/transport/http/response"
)

type UserHandler struct {
	svc *service.UserService
	log *zap.Logger
}

func NewUserHandler(svc *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

func (h *UserHandler) Register(c *gin.Context) {
	var in service.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Body{Message: "Validation error."})
		return
	}
	u, err := h.svc.Register(in)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.Created(c, "Success", u)
}

func (h *UserHandler) Login(c *gin.Context) {
	var in struct {
		Email         string `json:"email"`
		PlainPassword string `json:"plainPassword"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Body{Message: "Validation error"})
		return
	}
	out, err := h.svc.Login(in.Email, in.PlainPassword)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp.LoginBody{
		Message:     "Success",
		Result:      out.User,
		AccessToken: out.AccessToken,
	})
}

func (h *UserHandler) Me(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, resp.Body{Message: "Unauthorized"})
		return
	}
	resp.OK(c, "Success", u)
}

func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	users, total, err := h.svc.List(page, limit)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, resp.PageBody{
		Message:    "success",
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		Result:     users,
	})
}

func (h *UserHandler) ChangeRole(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, resp.Body{Message: "Unauthorized"})
		return
	}
	var in struct {
		UserID uint   `json:"user_id"`
		Role   string `json:"role"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Body{Message: "Validation error"})
		return
	}
	u, err := h.svc.ChangeRole(actor.ID, in.UserID, in.Role)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "successfully changed role", u)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Invalid user ID")
	if !ok {
		return
	}
	var in service.UserUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Body{Message: "Validation error"})
		return
	}
	u, err := h.svc.Update(id, in)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "User updated successfully", u)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Invalid user ID")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "User deleted successfully", nil)
}
