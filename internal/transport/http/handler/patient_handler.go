package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hospital-api/internal/service"
	resp "hospital-api/internal/transport/http/response"
)

type PatientHandler struct {
	svc *service.PatientService
	log *zap.Logger
}

func NewPatientHandler(svc *service.PatientService, log *zap.Logger) *PatientHandler {
	return &PatientHandler{svc: svc, log: log}
}

func (h *PatientHandler) Create(c *gin.Context) {
	var in service.PatientCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Body{Message: "Missing required fields"})
		return
	}
	p, err := h.svc.Create(in)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.Created(c, "Patient created successfully", p)
}

func (h *PatientHandler) List(c *gin.Context) {
	ps, err := h.svc.List()
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Success", ps)
}

func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Invalid patient ID")
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

func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Invalid patient ID")
	if !ok {
		return
	}
	var in service.PatientUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Body{Message: "Missing required fields"})
		return
	}
	p, err := h.svc.Update(id, in)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Patient updated", p)
}

func (h *PatientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Invalid patient ID")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Patient deleted", nil)
}
