package repo

import (
	"errors"

	"gorm.io/gorm"

	"hospital-api/internal/domain"
)

type MedicalRecordRepo struct{ db *gorm.DB }

func NewMedicalRecordRepo(db *gorm.DB) *MedicalRecordRepo { return &MedicalRecordRepo{db: db} }

func (r *MedicalRecordRepo) Create(m *domain.MedicalRecord) error { return r.db.Create(m).Error }

func (r *MedicalRecordRepo) FindByID(id uint) (*domain.MedicalRecord, error) {
	var m domain.MedicalRecord
	err := r.db.Preload("Patient").First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &m, err
}

func (r *MedicalRecordRepo) List() ([]domain.MedicalRecord, error) {
	var ms []domain.MedicalRecord
	err := r.db.Preload("Patient").Order("record_date desc").Find(&ms).Error
	return ms, err
}

func (r *MedicalRecordRepo) Update(m *domain.MedicalRecord) error { return r.db.Save(m).Error }

func (r *MedicalRecordRepo) Delete(id uint) error {
	return r.db.Delete(&domain.MedicalRecord{}, "id = ?", id).Error
}
