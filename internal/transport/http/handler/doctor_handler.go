package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hospital-api/internal/domain"
	"hospital-api/internal/service"
	resp "hospital-api/internal/transport/http/response"
)

type DoctorHandler struct {
	svc *service.DoctorService
	log *zap.Logger
}

func NewDoctorHandler(svc *service.DoctorService, log *zap.Logger) *DoctorHandler {
	return &DoctorHandler{svc: svc, log: log}
}

// doctorView 列表/详情给前端拼好 fullName
type doctorView struct {
	domain.Doctor
	FullName *string `json:"fullName"`
}

func toDoctorView(d domain.Doctor) doctorView {
	v := doctorView{Doctor: d}
	if d.User != nil {
		name := d.User.Firstname + " " + d.User.Lastname
		v.FullName = &name
	}
	return v
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var in service.DoctorCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Body{Message: "Missing required fields"})
		return
	}
	d, err := h.svc.Create(in)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.Created(c, "Doctor created successfully", d)
}

func (h *DoctorHandler) List(c *gin.Context) {
	ds, err := h.svc.List()
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	views := make([]doctorView, 0, len(ds))
	for _, d := range ds {
		views = append(views, toDoctorView(d))
	}
	resp.OK(c, "Success", views)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Invalid doctor ID")
	if !ok {
		return
	}
	d, err := h.svc.Get(id)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Success", toDoctorView(*d))
}

func (h *DoctorHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Invalid doctor ID")
	if !ok {
		return
	}
	var in service.DoctorUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Body{Message: "Missing required fields"})
		return
	}
	d, err := h.svc.Update(id, in)
	if err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Doctor updated", d)
}

func (h *DoctorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Invalid doctor ID")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		resp.Fail(c, h.log, err)
		return
	}
	resp.OK(c, "Doctor deleted", nil)
}
