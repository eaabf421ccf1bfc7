package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestDoctor(svc *DoctorService, t *testing.T) uint {
	t.Helper()
	d, err := svc.Create(DoctorCreateInput{
		UserID: 1, Name: "Dr. Gray", Phone: "555", Experience: 8,
		Specialization: "cardiology", Availability: "mon-fri", TimeAvailable: "09:00-17:00",
	})
	assert.NoError(t, err)
	return d.ID
}

func TestDoctorCreateRequiresAllFields(t *testing.T) {
	svc := NewDoctorService(newFakeDoctorRepo())

	_, err := svc.Create(DoctorCreateInput{
		UserID: 1, Name: "Dr. Gray", Phone: "555",
		Specialization: "cardiology", Availability: "mon-fri", TimeAvailable: "09:00-17:00",
	})
	status, msg := statusOf(t, err)
	assert.Equal(t, 400, status)
	assert.Equal(t, "Missing required fields", msg)
}

func TestDoctorSoftDelete(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := NewDoctorService(repo)
	id := newTestDoctor(svc, t)

	assert.NoError(t, svc.Delete(id))

	// 行还在库里，但详情和列表都看不到了
	raw, err := repo.FindByID(id)
	assert.NoError(t, err)
	assert.NotNil(t, raw)
	assert.True(t, raw.IsDeleted)

	_, err = svc.Get(id)
	status, msg := statusOf(t, err)
	assert.Equal(t, 404, status)
	assert.Equal(t, "Doctor not found", msg)

	list, err := svc.List()
	assert.NoError(t, err)
	assert.Empty(t, list)

	// 删过的再删/再改都是 404
	err = svc.Delete(id)
	status, _ = statusOf(t, err)
	assert.Equal(t, 404, status)

	specialty := "neurology"
	_, err = svc.Update(id, DoctorUpdateInput{Specialization: &specialty})
	status, _ = statusOf(t, err)
	assert.Equal(t, 404, status)
}

func TestDoctorPartialUpdate(t *testing.T) {
	svc := NewDoctorService(newFakeDoctorRepo())
	id := newTestDoctor(svc, t)

	hid := uint(3)
	exp := 12
	got, err := svc.Update(id, DoctorUpdateInput{Experience: &exp, HospitalID: &hid})
	assert.NoError(t, err)
	assert.Equal(t, 12, got.Experience)
	if assert.NotNil(t, got.HospitalID) {
		assert.Equal(t, uint(3), *got.HospitalID)
	}
	assert.Equal(t, "Dr. Gray", got.Name)
	assert.Equal(t, "cardiology", got.Specialization)
}
