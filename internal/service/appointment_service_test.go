package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hospital-api/internal/domain"
)

func TestAppointmentCreateConflict(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := NewAppointmentService(repo)

	first, err := svc.Create(AppointmentCreateInput{
		PatientID: 1, DoctorID: 7, Date: "2026-09-10", Time: "10:00",
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.AppointmentPending, first.Status)

	// 同医生同天同时段：第二个必须 400 且不落库
	_, err = svc.Create(AppointmentCreateInput{
		PatientID: 2, DoctorID: 7, Date: "2026-09-10", Time: "10:00",
	})
	status, msg := statusOf(t, err)
	assert.Equal(t, 400, status)
	assert.Equal(t, "This time is already booked with the doctor", msg)
	assert.Len(t, repo.items, 1)

	// 不同时段不冲突
	_, err = svc.Create(AppointmentCreateInput{
		PatientID: 2, DoctorID: 7, Date: "2026-09-10", Time: "11:00",
	})
	assert.NoError(t, err)
}

func TestAppointmentCancelledSlotDoesNotBlock(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := NewAppointmentService(repo)

	a, err := svc.Create(AppointmentCreateInput{
		PatientID: 1, DoctorID: 7, Date: "2026-09-10", Time: "10:00",
	})
	assert.NoError(t, err)

	cancelled := domain.AppointmentCancelled
	_, err = svc.Update(a.ID, AppointmentUpdateInput{Status: &cancelled})
	assert.NoError(t, err)

	// 已取消的占位不算冲突
	_, err = svc.Create(AppointmentCreateInput{
		PatientID: 2, DoctorID: 7, Date: "2026-09-10", Time: "10:00",
	})
	assert.NoError(t, err)
}

func TestAppointmentUpdateConflictExcludesSelf(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := NewAppointmentService(repo)

	a, _ := svc.Create(AppointmentCreateInput{PatientID: 1, DoctorID: 7, Date: "2026-09-10", Time: "10:00"})
	_, err := svc.Create(AppointmentCreateInput{PatientID: 2, DoctorID: 7, Date: "2026-09-11", Time: "10:00"})
	assert.NoError(t, err)

	// 改到被占的时段要报冲突，且库里这行保持原样
	newDate := "2026-09-11"
	_, err = svc.Update(a.ID, AppointmentUpdateInput{Date: &newDate})
	status, msg := statusOf(t, err)
	assert.Equal(t, 400, status)
	assert.Equal(t, "This new time is already booked", msg)
	stored, err := svc.Get(a.ID)
	assert.NoError(t, err)
	assert.Equal(t, "2026-09-10", stored.Date.Format("2006-01-02"))

	// 改回自己原本的时段不算和自己冲突
	sameDate := "2026-09-10"
	sameTime := "10:00"
	got, err := svc.Update(a.ID, AppointmentUpdateInput{Date: &sameDate, Time: &sameTime})
	assert.NoError(t, err)
	assert.Equal(t, "10:00", got.Time)
}

func TestAppointmentValidation(t *testing.T) {
	svc := NewAppointmentService(newFakeAppointmentRepo())

	_, err := svc.Create(AppointmentCreateInput{DoctorID: 7, Date: "2026-09-10", Time: "10:00"})
	status, _ := statusOf(t, err)
	assert.Equal(t, 400, status)

	_, err = svc.Create(AppointmentCreateInput{PatientID: 1, DoctorID: 7, Date: "not-a-date", Time: "10:00"})
	status, _ = statusOf(t, err)
	assert.Equal(t, 400, status)

	_, err = svc.Get(99)
	status, _ = statusOf(t, err)
	assert.Equal(t, 404, status)
}
