package repo

import (
	"errors"

	"gorm.io/gorm"

	"hospital-api/internal/domain"
)

type DoctorRepo struct{ db *gorm.DB }

func NewDoctorRepo(db *gorm.DB) *DoctorRepo { return &DoctorRepo{db: db} }

func (r *DoctorRepo) Create(d *domain.Doctor) error { return r.db.Create(d).Error }

func (r *DoctorRepo) FindByID(id uint) (*domain.Doctor, error) {
	var d domain.Doctor
	err := r.db.Preload("User").Preload("Hospital").First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &d, err
}

func (r *DoctorRepo) List() ([]domain.Doctor, error) {
	var ds []domain.Doctor
	err := r.db.Preload("User").Preload("Hospital").Where("is_deleted = ?", false).Find(&ds).Error
	return ds, err
}

func (r *DoctorRepo) Update(d *domain.Doctor) error { return r.db.Save(d).Error }
