package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hospital-api/internal/service"
	resp "hospital-api/internal/transport/http/response"
)

type AppointmentHandler struct {
	svc *service.AppointmentService
	log *zap.Logger
}

func NewAppointmentHandler(svc *service.AppointmentService, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{svc: svc, log: log}
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var in service.AppointmentCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Body{Message: "Missing required fields"})
		return
	}
	a, err := h.svc.Create(in)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.Created(c, "Appointment created", a)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	as, err := h.svc.List()
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Success", as)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Invalid appointment ID")
	if !ok {
		return
	}
	a, err := h.svc.Get(id)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Success", a)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Invalid appointment ID")
	if !ok {
		return
	}
	var in service.AppointmentUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Body{Message: "Missing required fields"})
		return
	}
	a, err := h.svc.Update(id, in)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Appointment updated", a)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Invalid appointment ID")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Appointment deleted", nil)
}
