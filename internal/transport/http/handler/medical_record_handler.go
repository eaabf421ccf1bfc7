package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hospital-api/internal/service"
	resp "hospital-api/internal/transport/http/response"
)

type MedicalRecordHandler struct {
	svc *service.MedicalRecordService
	log *zap.Logger
}

func NewMedicalRecordHandler(svc *service.MedicalRecordService, log *zap.Logger) *MedicalRecordHandler {
	return &MedicalRecordHandler{svc: svc, log: log}
}

func (h *MedicalRecordHandler) Create(c *gin.Context) {
	var in service.MedicalRecordCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Body{Message: "Missing required fields"})
		return
	}
	m, err := h.svc.Create(in)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.Created(c, "Medical record created successfully", m)
}

func (h *MedicalRecordHandler) List(c *gin.Context) {
	ms, err := h.svc.List()
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Success", ms)
}

func (h *MedicalRecordHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Invalid medical record ID")
	if !ok {
		return
	}
	m, err := h.svc.Get(id)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Success", m)
}

func (h *MedicalRecordHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Invalid medical record ID")
	if !ok {
		return
	}
	var in service.MedicalRecordUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Body{Message: "Missing required fields"})
		return
	}
	m, err := h.svc.Update(id, in)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Medical record updated", m)
}

func (h *MedicalRecordHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Invalid medical record ID")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Medical record deleted", nil)
}
