package domain

import "time"

// 角色枚举，和数据库里存的字符串保持一致
const (
	RoleAdmin   = "ADMIN"
	RoleDoctor  = "DOCTOR"
	RolePatient = "PATIENT"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Firstname    string    `gorm:"size:64;not null" json:"firstname"`
	Lastname     string    `gorm:"size:64;not null" json:"lastname"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:191;not null" json:"-"`
	Role         string    `gorm:"size:16;not null;default:PATIENT" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(u *User) error
	FindByID(id uint) (*User, error)
	FindByEmail(email string) (*User, error)
	List(offset, limit int) ([]User, int64, error)
	Update(u *User) error
	Delete(id uint) error
}
