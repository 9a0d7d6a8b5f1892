package auth

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

type User struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_user_employee"` // profil karyawan, kosong untuk admin murni
	Name       string     `gorm:"type:varchar(255);not null"`
	Email      string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_user_email"`
	Password   string     `gorm:"type:varchar(255);not null"`
	Role       string     `gorm:"type:varchar(20);not null"`
	IsActive   bool       `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (User) TableName() string {
	return "users"
}
