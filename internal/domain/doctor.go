package domain

import "time"

type Doctor struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"userId"`
	Name           string    `gorm:"size:128;not null" json:"name"`
	Phone          string    `gorm:"size:32;not null" json:"phone"`
	Experience     int       `gorm:"not null" json:"experience"`
	Specialization string    `gorm:"size:128;not null" json:"specialization"`
	Availability   string    `gorm:"size:128;not null" json:"availability"`
	TimeAvailable  string    `gorm:"size:128;not null" json:"timeAvailable"`
	HospitalID     *uint     `gorm:"index" json:"hospitalId"`
	IsDeleted      bool      `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (Doctor) TableName() string { return "doctors" }

type DoctorRepository interface {
	Create(d *Doctor) error
	FindByID(id uint) (*Doctor, error)
	List() ([]Doctor, error)
	Update(d *Doctor) error
}
