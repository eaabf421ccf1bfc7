package repo

import (
	"errors"

	"gorm.io/gorm"

	"hospital-api/internal/domain"
)

type HospitalRepo struct{ db *gorm.DB }

func NewHospitalRepo(db *gorm.DB) *HospitalRepo { return &HospitalRepo{db: db} }

func (r *HospitalRepo) Create(h *domain.Hospital) error { return r.db.Create(h).Error }

func (r *HospitalRepo) FindByID(id uint) (*domain.Hospital, error) {
	var h domain.Hospital
	err := r.db.Preload("Doctors", "is_deleted = ?", false).First(&h, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &h, err
}

func (r *HospitalRepo) List() ([]domain.Hospital, error) {
	var hs []domain.Hospital
	err := r.db.Preload("Doctors", "is_deleted = ?", false).Find(&hs).Error
	return hs, err
}

func (r *HospitalRepo) Update(h *domain.Hospital) error { return r.db.Save(h).Error }

func (r *HospitalRepo) Delete(id uint) error {
	return r.db.Delete(&domain.Hospital{}, "id = ?", id).Error
}
