package handler_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/guildhall/backend-go/internal/api"
	"github.com/guildhall/backend-go/internal/dto"
	"github.com/guildhall/backend-go/internal/handler"
)

// ==================== MOCK CHARACTER SERVICE ====================

// MockCharacterService implements service.CharacterService for testing
type MockCharacterService struct {
	mock.Mock
}

func (m *MockCharacterService) List(ctx context.Context) ([]dto.CharacterDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CharacterDTO), args.Error(1)
}

func (m *MockCharacterService) GetByID(ctx context.Context, id int) (*dto.CharacterDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CharacterDTO), args.Error(1)
}

func (m *MockCharacterService) CreateWithValidation(ctx context.Context, req dto.CreateCharacterRequest) (*dto.CharacterDTO, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CharacterDTO), args.Error(1)
}

func (m *MockCharacterService) Update(ctx context.Context, id int, character dto.CharacterDTO) (*dto.CharacterDTO, error) {
	args := m.Called(ctx, id, character)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CharacterDTO), args.Error(1)
}

func (m *MockCharacterService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ==================== MOCK EMPLOYEE SERVICE ====================

// MockEmployeeService implements service.EmployeeService for testing
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) List(ctx context.Context) ([]dto.EmployeeDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.EmployeeDTO), args.Error(1)
}

func (m *MockEmployeeService) GetByID(ctx context.Context, id uuid.UUID) (*dto.EmployeeDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EmployeeDTO), args.Error(1)
}

func (m *MockEmployeeService) Create(ctx context.Context, employee dto.EmployeeDTO) (*dto.EmployeeDTO, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EmployeeDTO), args.Error(1)
}

func (m *MockEmployeeService) Update(ctx context.Context, id uuid.UUID, employee dto.EmployeeDTO) (*dto.EmployeeDTO, error) {
	args := m.Called(ctx, id, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EmployeeDTO), args.Error(1)
}

func (m *MockEmployeeService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ==================== ROUTER SETUP ====================

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupRouter(characters *MockCharacterService, employees *MockEmployeeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := testLogger()
	return api.SetupRouter(
		handler.NewCharacterHandler(characters, logger),
		handler.NewEmployeeHandler(employees, logger),
		[]string{"*"},
		logger,
	)
}
