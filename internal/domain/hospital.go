package domain

import "time"

type Hospital struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:191;not null" json:"name"`
	Address   string    `gorm:"size:255;not null" json:"address"`
	Status    string    `gorm:"size:32;not null" json:"status"`
	Services  string    `gorm:"size:255" json:"services"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Doctors []Doctor `gorm:"foreignKey:HospitalID" json:"doctors,omitempty"`
}

func (Hospital) TableName() string { return "hospitals" }

type HospitalRepository interface {
	Create(h *Hospital) error
	FindByID(id uint) (*Hospital, error)
	List() ([]Hospital, error)
	Update(h *Hospital) error
	Delete(id uint) error
}
