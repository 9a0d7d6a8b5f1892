package user

import (
	"time"

	"github.com/google/uuid"
)

// Account is the admin view of a login row owned by the auth module.
type Account struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID *uuid.UUID `gorm:"column:employee_id;type:uuid"`
	Name       string     `gorm:"column:name"`
	Email      string     `gorm:"column:email"`
	Password   string     `gorm:"column:password"`
	Role       string     `gorm:"column:role"`
	IsActive   bool       `gorm:"column:is_active"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`

	// Relasi ke Employee untuk kode dan nama
	Employee *AccountEmployee `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Account) TableName() string {
	return "users"
}

// AccountEmployee adalah sub-struct untuk join data minimal dari employee
type AccountEmployee struct {
	ID           uuid.UUID `gorm:"primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code"`
	FirstName    string    `gorm:"column:first_name"`
	LastName     string    `gorm:"column:last_name"`
}

func (AccountEmployee) TableName() string {
	return "employees"
}
