package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/guildhall/backend-go/internal/database/service"
	"github.com/guildhall/backend-go/internal/dto"
	applog "github.com/guildhall/backend-go/internal/logger"
)

// EmployeeHandler handles HTTP requests for employee operations
type EmployeeHandler struct {
	employeeService service.EmployeeService
	logger          *slog.Logger
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		logger:          logger,
	}
}

// ListEmployees handles GET /api/employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.employeeService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, uuid.Nil, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// GetEmployee handles GET /api/employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := h.parseEmployeeID(c)
	if err != nil {
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// CreateEmployee handles POST /api/employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.EmployeeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log(c).Warn("⚠️ [EmployeeHandler] Invalid create employee request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, uuid.Nil, err)
		return
	}

	c.Header("Location", "/api/employees/"+employee.ID.String())
	c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee handles PUT /api/employees/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := h.parseEmployeeID(c)
	if err != nil {
		return
	}

	var req dto.EmployeeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log(c).Warn("⚠️ [EmployeeHandler] Invalid update employee request", "employee_id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleServiceError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /api/employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, err := h.parseEmployeeID(c)
	if err != nil {
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, id, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ==================== Helpers ====================

func (h *EmployeeHandler) log(c *gin.Context) *slog.Logger {
	return applog.FromContext(c.Request.Context(), h.logger)
}

func (h *EmployeeHandler) parseEmployeeID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return uuid.Nil, err
	}
	return id, nil
}

func (h *EmployeeHandler) handleServiceError(c *gin.Context, id uuid.UUID, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Employee with ID %s not found", id)})
	default:
		h.log(c).Error("❌ [EmployeeHandler] Unhandled service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
