package domain

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PatientID uint      `gorm:"index;not null" json:"patientId"`
	DoctorID  uint      `gorm:"index;not null" json:"doctorId"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Review) TableName() string { return "reviews" }

type ReviewRepository interface {
	Create(r *Review) error
	FindByID(id uint) (*Review, error)
	List() ([]Review, error)
	Update(r *Review) error
	Delete(id uint) error
}
