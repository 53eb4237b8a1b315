package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee mirrors the employee table
type Employee struct {
	ID        uuid.UUID        `gorm:"column:employee_id;type:uuid;primaryKey"`
	FirstName string           `gorm:"column:first_name;size:100;not null"`
	LastName  string           `gorm:"column:last_name;size:100;not null"`
	Email     string           `gorm:"column:email;size:255;not null"`
	Phone     *string          `gorm:"column:phone;size:25"`
	JobTitle  *string          `gorm:"column:job_title;size:150"`
	Salary    *decimal.Decimal `gorm:"column:salary;type:numeric(18,2)"`
	HireDate  time.Time        `gorm:"column:hire_date;type:date;not null"`
	IsActive  bool             `gorm:"column:is_active;not null"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime:false;not null"`
	UpdatedAt *time.Time       `gorm:"column:updated_at;autoUpdateTime:false"`
}

// TableName overrides the table name
func (Employee) TableName() string {
	return "employee"
}

// BeforeCreate hook to generate UUID if not set
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
