package application

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/shelter-admin/service-shelter-web/internal/domain/employee"
	"github.com/shelter-admin/service-shelter-web/internal/domain/shelter"
	"github.com/shelter-admin/service-shelter-web/internal/events"
)

// ErrInvalidSalary rejects a salary that is not a positive number.
var ErrInvalidSalary = errors.New("invalid salary amount")

// CreateEmployeeRequest is the add-employee form.
type CreateEmployeeRequest struct {
	Name      string  `form:"name" binding:"required"`
	Role      string  `form:"role" binding:"required"`
	Salary    float64 `form:"salary"`
	ShelterID int     `form:"shelter_id"`
}

// CreateShelterRequest is the add-shelter form.
type CreateShelterRequest struct {
	Name     string `form:"name" binding:"required"`
	Location string `form:"location" binding:"required"`
	Capacity int    `form:"capacity"`
}

// ParseSalary accepts a finite number greater than zero.
func ParseSalary(input string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, ErrInvalidSalary
	}
	return v, nil
}

// EmployeeService implements the employee page's use cases.
type EmployeeService struct {
	repo   employee.Repository
	pub    events.Publisher
	logger *zap.Logger
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(repo employee.Repository, pub events.Publisher, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, pub: pub, logger: logger}
}

// ListEmployees returns every employee.
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list employees", zap.Error(err))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// CreateEmployee hires an employee into a shelter and returns the new id.
func (s *EmployeeService) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (int, error) {
	id, err := s.repo.Create(ctx, employee.NewEmployee{
		Name:      req.Name,
		Role:      req.Role,
		Salary:    req.Salary,
		ShelterID: req.ShelterID,
	})
	if err != nil {
		s.logger.Error("failed to create employee", zap.String("name", req.Name), zap.Error(err))
		return 0, fmt.Errorf("failed to create employee: %w", err)
	}

	s.logger.Info("employee created", zap.Int("employee_id", id), zap.Int("shelter_id", req.ShelterID))
	activity(ctx, s.pub, s.logger, events.EmployeeCreated, events.EntityEvent{
		ID:      id,
		Changes: map[string]any{"role": req.Role, "shelter_id": req.ShelterID},
	})
	return id, nil
}

// UpdateSalary validates input and sends the new salary. Blank input is a
// cancel and reports false; invalid input returns ErrInvalidSalary. Neither
// contacts the backend.
func (s *EmployeeService) UpdateSalary(ctx context.Context, id int, input string) (bool, error) {
	if strings.TrimSpace(input) == "" {
		return false, nil
	}
	salary, err := ParseSalary(input)
	if err != nil {
		return false, err
	}
	if err := s.repo.UpdateSalary(ctx, id, salary); err != nil {
		s.logger.Error("failed to update salary", zap.Int("employee_id", id), zap.Error(err))
		return true, fmt.Errorf("failed to update salary: %w", err)
	}

	s.logger.Info("employee salary updated", zap.Int("employee_id", id))
	activity(ctx, s.pub, s.logger, events.EmployeeSalaryUpdated, events.EntityEvent{
		ID:      id,
		Changes: map[string]any{"salary": salary},
	})
	return true, nil
}

// ShelterService implements the shelter page's use cases.
type ShelterService struct {
	repo   shelter.Repository
	pub    events.Publisher
	logger *zap.Logger
}

// NewShelterService creates a new ShelterService.
func NewShelterService(repo shelter.Repository, pub events.Publisher, logger *zap.Logger) *ShelterService {
	return &ShelterService{repo: repo, pub: pub, logger: logger}
}

// ListShelters returns every shelter.
func (s *ShelterService) ListShelters(ctx context.Context) ([]shelter.Shelter, error) {
	shelters, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list shelters", zap.Error(err))
		return nil, fmt.Errorf("failed to list shelters: %w", err)
	}
	return shelters, nil
}

// CreateShelter opens a shelter and returns the new id.
func (s *ShelterService) CreateShelter(ctx context.Context, req CreateShelterRequest) (int, error) {
	id, err := s.repo.Create(ctx, shelter.NewShelter{
		Name:     req.Name,
		Location: req.Location,
		Capacity: req.Capacity,
	})
	if err != nil {
		s.logger.Error("failed to create shelter", zap.String("name", req.Name), zap.Error(err))
		return 0, fmt.Errorf("failed to create shelter: %w", err)
	}

	s.logger.Info("shelter created", zap.Int("shelter_id", id))
	activity(ctx, s.pub, s.logger, events.ShelterCreated, events.EntityEvent{
		ID:      id,
		Changes: map[string]any{"capacity": req.Capacity},
	})
	return id, nil
}

// DeleteShelter removes a shelter. The backend refuses while employees or
// animals still reference it.
func (s *ShelterService) DeleteShelter(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete shelter", zap.Int("shelter_id", id), zap.Error(err))
		return fmt.Errorf("failed to delete shelter: %w", err)
	}

	s.logger.Info("shelter deleted", zap.Int("shelter_id", id))
	activity(ctx, s.pub, s.logger, events.ShelterDeleted, events.EntityEvent{ID: id})
	return nil
}
