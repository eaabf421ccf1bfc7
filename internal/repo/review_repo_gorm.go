package repo

import (
	"errors"

	"gorm.io/gorm"

	"hospital-api/internal/domain"
)

type ReviewRepo struct{ db *gorm.DB }

func NewReviewRepo(db *gorm.DB) *ReviewRepo { return &ReviewRepo{db: db} }

func (r *ReviewRepo) Create(rv *domain.Review) error { return r.db.Create(rv).Error }

func (r *ReviewRepo) FindByID(id uint) (*domain.Review, error) {
	var rv domain.Review
	err := r.db.Preload("Patient").Preload("Doctor").First(&rv, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rv, err
}

func (r *ReviewRepo) List() ([]domain.Review, error) {
	var rvs []domain.Review
	err := r.db.Preload("Patient").Preload("Doctor").Order("created_at desc").Find(&rvs).Error
	return rvs, err
}

func (r *ReviewRepo) Update(rv *domain.Review) error { return r.db.Save(rv).Error }

func (r *ReviewRepo) Delete(id uint) error {
	return r.db.Delete(&domain.Review{}, "id = ?", id).Error
}
