package domain

import "time"

type MedicalRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PatientID   uint      `gorm:"index;not null" json:"patientId"`
	Title       string    `gorm:"size:191;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	RecordDate  time.Time `gorm:"type:date;not null" json:"recordDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (MedicalRecord) TableName() string { return "medical_records" }

type MedicalRecordRepository interface {
	Create(m *MedicalRecord) error
	FindByID(id uint) (*MedicalRecord, error)
	List() ([]MedicalRecord, error)
	Update(m *MedicalRecord) error
	Delete(id uint) error
}
