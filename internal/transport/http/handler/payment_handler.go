package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hospital-api/internal/service"
	resp "hospital-api/internal/transport/http/response"
)

type PaymentHandler struct {
	svc *service.PaymentService
	log *zap.Logger
}

func NewPaymentHandler(svc *service.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{svc: svc, log: log}
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var in service.PaymentCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Body{Message: "Missing required fields"})
		return
	}
	p, err := h.svc.Create(in)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.Created(c, "Payment created", p)
}

func (h *PaymentHandler) List(c *gin.Context) {
	ps, err := h.svc.List()
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Success", ps)
}

func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Invalid payment ID")
	if !ok {
		return
	}
	p, err := h.svc.Get(id)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Success", p)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Invalid payment ID")
	if !ok {
		return
	}
	var in service.PaymentUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Body{Message: "Missing required fields"})
		return
	}
	p, err := h.svc.Update(id, in)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Payment updated", p)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Invalid payment ID")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Payment deleted", nil)
}
