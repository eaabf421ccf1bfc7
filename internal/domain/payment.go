package domain

import "time"

type Payment struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	AppointmentID uint       `gorm:"uniqueIndex;not null" json:"appointmentId"`
	Amount        float64    `gorm:"not null" json:"amount"`
	Method        string     `gorm:"size:32;not null" json:"method"`
	Status        string     `gorm:"size:32;not null" json:"status"`
	PaidAt        *time.Time `json:"paidAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Payment) TableName() string { return "payments" }

type PaymentRepository interface {
	Create(p *Payment) error
	FindByID(id uint) (*Payment, error)
	FindByAppointment(appointmentID uint) (*Payment, error)
	List() ([]Payment, error)
	Update(p *Payment) error
	Delete(id uint) error
}
