package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatientCreateRequiresAllFields(t *testing.T) {
	svc := NewPatientService(newFakePatientRepo())

	_, err := svc.Create(PatientCreateInput{UserID: 1, Gender: "F", Phone: "555", Address: "A St"})
	status, msg := statusOf(t, err)
	assert.Equal(t, 400, status)
	assert.Equal(t, "Missing required fields", msg)

	_, err = svc.Create(PatientCreateInput{UserID: 1, DateOfBirth: "1990/01/01", Gender: "F", Phone: "555", Address: "A St"})
	status, _ = statusOf(t, err)
	assert.Equal(t, 400, status)
}

func TestPatientSoftDelete(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewPatientService(repo)

	p, err := svc.Create(PatientCreateInput{
		UserID: 1, DateOfBirth: "1990-01-01", Gender: "F", Phone: "555", Address: "A St",
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(p.ID))

	// 行还在库里，但详情和列表都看不到了
	raw, err := repo.FindByID(p.ID)
	assert.NoError(t, err)
	assert.NotNil(t, raw)
	assert.True(t, raw.IsDeleted)

	_, err = svc.Get(p.ID)
	status, msg := statusOf(t, err)
	assert.Equal(t, 404, status)
	assert.Equal(t, "Patient not found", msg)

	list, err := svc.List()
	assert.NoError(t, err)
	assert.Empty(t, list)

	// 删过的再删/再改都是 404
	err = svc.Delete(p.ID)
	status, _ = statusOf(t, err)
	assert.Equal(t, 404, status)

	phone := "666"
	_, err = svc.Update(p.ID, PatientUpdateInput{Phone: &phone})
	status, _ = statusOf(t, err)
	assert.Equal(t, 404, status)
}

func TestPatientPartialUpdate(t *testing.T) {
	svc := NewPatientService(newFakePatientRepo())
	p, _ := svc.Create(PatientCreateInput{
		UserID: 1, DateOfBirth: "1990-01-01", Gender: "F", Phone: "555", Address: "A St",
	})

	phone := "777"
	got, err := svc.Update(p.ID, PatientUpdateInput{Phone: &phone})
	assert.NoError(t, err)
	assert.Equal(t, "777", got.Phone)
	assert.Equal(t, "A St", got.Address)
	assert.Equal(t, "F", got.Gender)
}
