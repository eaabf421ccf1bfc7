package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hospital-api/internal/service"
	resp "hospital-api/internal/transport/http/response"
)

type ReviewHandler struct {
	svc *service.ReviewService
	log *zap.Logger
}

func NewReviewHandler(svc *service.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: log}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var in service.ReviewCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Body{Message: "Missing required fields"})
		return
	}
	r, err := h.svc.Create(in)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.Created(c, "Review created successfully", r)
}

func (h *ReviewHandler) List(c *gin.Context) {
	rs, err := h.svc.List()
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Success", rs)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Invalid review ID")
	if !ok {
		return
	}
	r, err := h.svc.Get(id)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Success", r)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Invalid review ID")
	if !ok {
		return
	}
	var in service.ReviewUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Body{Message: "Missing required fields"})
		return
	}
	r, err := h.svc.Update(id, in)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Review updated", r)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Invalid review ID")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Review deleted", nil)
}
