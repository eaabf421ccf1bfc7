package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hospital-api/internal/service"
	resp "hospital-api/internal/transport/http/response"
)

type HospitalHandler struct {
	svc *service.HospitalService
	log *zap.Logger
}

func NewHospitalHandler(svc *service.HospitalService, log *zap.Logger) *HospitalHandler {
	return &HospitalHandler{svc: svc, log: log}
}

func (h *HospitalHandler) Create(c *gin.Context) {
	var in service.HospitalCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Body{Message: "Missing required fields"})
		return
	}
	hp, err := h.svc.Create(in)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.Created(c, "Hospital created", hp)
}

func (h *HospitalHandler) List(c *gin.Context) {
	hs, err := h.svc.List()
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Success", hs)
}

func (h *HospitalHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Invalid hospital ID")
	if !ok {
		return
	}
	hp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Success", hp)
}

func (h *HospitalHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Invalid hospital ID")
	if !ok {
		return
	}
	var in service.HospitalUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Body{Message: "Missing required fields"})
		return
	}
	hp, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Hospital updated", hp)
}

func (h *HospitalHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Invalid hospital ID")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Hospital deleted", nil)
}
