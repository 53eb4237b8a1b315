package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/guildhall/backend-go/internal/database/models"
)

// EmployeeRepository is the gateway for the employee table
type EmployeeRepository = Repository[models.Employee, uuid.UUID]

// NewEmployeeRepository creates a new employee repository instance
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return NewRepository[models.Employee, uuid.UUID](db)
}
