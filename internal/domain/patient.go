package domain

import "time"

type Patient struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"uniqueIndex;not null" json:"userId"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"dateOfBirth"`
	Gender      string    `gorm:"size:16;not null" json:"gender"`
	Phone       string    `gorm:"size:32;not null" json:"phone"`
	Address     string    `gorm:"size:255;not null" json:"address"`
	IsDeleted   bool      `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Patient) TableName() string { return "patients" }

type PatientRepository interface {
	Create(p *Patient) error
	// FindByID 不过滤软删，调用方自己判断 IsDeleted
	FindByID(id uint) (*Patient, error)
	List() ([]Patient, error)
	Update(p *Patient) error
}
