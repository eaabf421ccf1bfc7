package repo

import (
	"errors"

	"gorm.io/gorm"

	"hospital-api/internal/domain"
)

type PaymentRepo struct{ db *gorm.DB }

func NewPaymentRepo(db *gorm.DB) *PaymentRepo { return &PaymentRepo{db: db} }

func (r *PaymentRepo) Create(p *domain.Payment) error { return r.db.Create(p).Error }

func (r *PaymentRepo) FindByID(id uint) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.
		Preload("Appointment.Patient.User").
		Preload("Appointment.Doctor.User").
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *PaymentRepo) FindByAppointment(appointmentID uint) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.First(&p, "appointment_id = ?", appointmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *PaymentRepo) List() ([]domain.Payment, error) {
	var ps []domain.Payment
	err := r.db.
		Preload("Appointment.Patient.User").
		Preload("Appointment.Doctor.User").
		Find(&ps).Error
	return ps, err
}

func (r *PaymentRepo) Update(p *domain.Payment) error { return r.db.Save(p).Error }

func (r *PaymentRepo) Delete(id uint) error {
	return r.db.Delete(&domain.Payment{}, "id = ?", id).Error
}
