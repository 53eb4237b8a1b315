package dto

import (
	"github.com/google/uuid"

	"github.com/guildhall/backend-go/internal/database/models"
)

// EmployeeDTO is the client-facing employee shape, used for both requests and responses
type EmployeeDTO struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName" binding:"required"`
	LastName  string    `json:"lastName" binding:"required"`
	Email     string    `json:"email" binding:"required"`
	Phone     *string   `json:"phone"`
	JobTitle  *string   `json:"jobTitle"`
	Salary    *Money    `json:"salary"`
	HireDate  Date      `json:"hireDate"`
	IsActive  bool      `json:"isActive"`
}

// FromEmployee projects an employee row to its transfer shape
func FromEmployee(e *models.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Phone:     e.Phone,
		JobTitle:  e.JobTitle,
		Salary:    NewMoney(e.Salary),
		HireDate:  NewDate(e.HireDate),
		IsActive:  e.IsActive,
	}
}

// FromEmployees projects a slice of employee rows
func FromEmployees(employees []models.Employee) []EmployeeDTO {
	out := make([]EmployeeDTO, 0, len(employees))
	for i := range employees {
		out = append(out, FromEmployee(&employees[i]))
	}
	return out
}
