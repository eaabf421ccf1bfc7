package repo

import (
	"errors"

	"gorm.io/gorm"

	"hospital-api/internal/domain"
)

type PatientRepo struct{ db *gorm.DB }

func NewPatientRepo(db *gorm.DB) *PatientRepo { return &PatientRepo{db: db} }

func (r *PatientRepo) Create(p *domain.Patient) error { return r.db.Create(p).Error }

// FindByID 带软删行一起查出来，软删与否由 service 判断
func (r *PatientRepo) FindByID(id uint) (*domain.Patient, error) {
	var p domain.Patient
	err := r.db.Preload("User").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *PatientRepo) List() ([]domain.Patient, error) {
	var ps []domain.Patient
	err := r.db.Preload("User").Where("is_deleted = ?", false).Find(&ps).Error
	return ps, err
}

func (r *PatientRepo) Update(p *domain.Patient) error { return r.db.Save(p).Error }
