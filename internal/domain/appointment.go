package domain

import "time"

const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// Appointment 同一医生同一天同一时段最多一条未取消记录，
// (doctor_id, date, time) 建联合索引给冲突探测用
type Appointment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PatientID uint      `gorm:"index;not null" json:"patientId"`
	DoctorID  uint      `gorm:"index:idx_doctor_slot;not null" json:"doctorId"`
	Date      time.Time `gorm:"type:date;index:idx_doctor_slot;not null" json:"date"`
	Time      string    `gorm:"size:16;index:idx_doctor_slot;not null" json:"time"`
	Status    string    `gorm:"size:16;not null;default:pending" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Payment *Payment `gorm:"foreignKey:AppointmentID" json:"payment,omitempty"`
}

func (Appointment) TableName() string { return "appointments" }

type AppointmentRepository interface {
	// CreateIfSlotFree 在同一事务里探测时段冲突再落库，撞上返回 ErrSlotTaken
	CreateIfSlotFree(a *Appointment) error
	FindByID(id uint) (*Appointment, error)
	List() ([]Appointment, error)
	Update(a *Appointment) error
	// UpdateIfSlotFree 换时段时走这里：同一事务里按新时段重查冲突（排除自身）再保存
	UpdateIfSlotFree(a *Appointment) error
	Delete(id uint) error
}
