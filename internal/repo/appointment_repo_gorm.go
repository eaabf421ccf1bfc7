package repo

import (
	"errors"

	"gorm.io/gorm"

	"hospital-api/internal/domain"
)

type AppointmentRepo struct{ db *gorm.DB }

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepo { return &AppointmentRepo{db: db} }

// CreateIfSlotFree 探测和写入放同一事务，缩小 check-then-act 的窗口，
// idx_doctor_slot 让探测走索引。
func (r *AppointmentRepo) CreateIfSlotFree(a *domain.Appointment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		err := tx.Model(&domain.Appointment{}).
			Where("doctor_id = ? AND date = ? AND time = ? AND status <> ?",
				a.DoctorID, a.Date, a.Time, domain.AppointmentCancelled).
			Count(&n).Error
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrSlotTaken
		}
		return tx.Create(a).Error
	})
}

// UpdateIfSlotFree 和创建同一个套路：重查和保存放一个事务，排除自己这条
func (r *AppointmentRepo) UpdateIfSlotFree(a *domain.Appointment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		err := tx.Model(&domain.Appointment{}).
			Where("doctor_id = ? AND date = ? AND time = ? AND status <> ? AND id <> ?",
				a.DoctorID, a.Date, a.Time, domain.AppointmentCancelled, a.ID).
			Count(&n).Error
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrSlotTaken
		}
		return tx.Save(a).Error
	})
}

func (r *AppointmentRepo) FindByID(id uint) (*domain.Appointment, error) {
	var a domain.Appointment
	err := r.db.
		Preload("Patient.User").
		Preload("Doctor.User").
		Preload("Doctor.Hospital").
		Preload("Payment").
		First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

func (r *AppointmentRepo) List() ([]domain.Appointment, error) {
	var as []domain.Appointment
	err := r.db.
		Preload("Patient.User").
		Preload("Doctor.User").
		Preload("Doctor.Hospital").
		Preload("Payment").
		Find(&as).Error
	return as, err
}

func (r *AppointmentRepo) Update(a *domain.Appointment) error { return r.db.Save(a).Error }

func (r *AppointmentRepo) Delete(id uint) error {
	return r.db.Delete(&domain.Appointment{}, "id = ?", id).Error
}
