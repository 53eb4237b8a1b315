package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/guildhall/backend-go/internal/database/models"
	"github.com/guildhall/backend-go/internal/database/repository"
	"github.com/guildhall/backend-go/internal/dto"
	applog "github.com/guildhall/backend-go/internal/logger"
)

// EmployeeService defines the interface for employee business logic
type EmployeeService interface {
	List(ctx context.Context) ([]dto.EmployeeDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.EmployeeDTO, error)
	Create(ctx context.Context, employee dto.EmployeeDTO) (*dto.EmployeeDTO, error)
	Update(ctx context.Context, id uuid.UUID, employee dto.EmployeeDTO) (*dto.EmployeeDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
	uow          repository.UnitOfWork
	now          Clock
	logger       *slog.Logger
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(
	employeeRepo repository.EmployeeRepository,
	uow repository.UnitOfWork,
	now Clock,
	logger *slog.Logger,
) EmployeeService {
	if now == nil {
		now = time.Now
	}
	return &employeeService{
		employeeRepo: employeeRepo,
		uow:          uow,
		now:          now,
		logger:       logger,
	}
}

// log prefers the request-scoped logger carried by ctx
func (s *employeeService) log(ctx context.Context) *slog.Logger {
	return applog.FromContext(ctx, s.logger)
}

func (s *employeeService) List(ctx context.Context) ([]dto.EmployeeDTO, error) {
	employees, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		s.log(ctx).Error("❌ [EmployeeService] Failed to list employees", "error", err)
		return nil, err
	}
	return dto.FromEmployees(employees), nil
}

func (s *employeeService) GetByID(ctx context.Context, id uuid.UUID) (*dto.EmployeeDTO, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.log(ctx).Error("❌ [EmployeeService] Failed to fetch employee", "employee_id", id, "error", err)
		return nil, err
	}

	result := dto.FromEmployee(employee)
	return &result, nil
}

// Create always assigns a fresh id. A zero hire date becomes today's UTC date.
func (s *employeeService) Create(ctx context.Context, in dto.EmployeeDTO) (*dto.EmployeeDTO, error) {
	now := s.now().UTC()

	hireDate := dto.NewDate(in.HireDate.Time)
	if hireDate.IsZero() {
		hireDate = dto.NewDate(now)
	}

	employee := &models.Employee{
		ID:        uuid.New(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		JobTitle:  in.JobTitle,
		Salary:    in.Salary.Amount(),
		HireDate:  hireDate.Time,
		IsActive:  in.IsActive,
		CreatedAt: now,
	}

	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		return repos.Employees.Create(ctx, employee)
	})
	if err != nil {
		s.log(ctx).Error("❌ [EmployeeService] Failed to create employee", "error", err)
		return nil, err
	}

	s.log(ctx).Info("✅ [EmployeeService] Employee created", "employee_id", employee.ID)
	result := dto.FromEmployee(employee)
	return &result, nil
}

func (s *employeeService) Update(ctx context.Context, id uuid.UUID, in dto.EmployeeDTO) (*dto.EmployeeDTO, error) {
	var result dto.EmployeeDTO

	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		employee, err := repos.Employees.FindByID(ctx, id)
		if err != nil {
			return err
		}

		updatedAt := s.now().UTC()
		employee.FirstName = in.FirstName
		employee.LastName = in.LastName
		employee.Email = in.Email
		employee.Phone = in.Phone
		employee.JobTitle = in.JobTitle
		employee.Salary = in.Salary.Amount()
		employee.HireDate = dto.NewDate(in.HireDate.Time).Time
		employee.IsActive = in.IsActive
		employee.UpdatedAt = &updatedAt

		if err := repos.Employees.Save(ctx, employee); err != nil {
			return err
		}

		result = dto.FromEmployee(employee)
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.log(ctx).Error("❌ [EmployeeService] Failed to update employee", "employee_id", id, "error", err)
		return nil, err
	}

	s.log(ctx).Info("📝 [EmployeeService] Employee updated", "employee_id", id)
	return &result, nil
}

func (s *employeeService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		employee, err := repos.Employees.FindByID(ctx, id)
		if err != nil {
			return err
		}
		return repos.Employees.Delete(ctx, employee)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEmployeeNotFound
		}
		s.log(ctx).Error("❌ [EmployeeService] Failed to delete employee", "employee_id", id, "error", err)
		return err
	}

	s.log(ctx).Info("🗑️ [EmployeeService] Employee deleted", "employee_id", id)
	return nil
}
