package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/app/registry"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	registry *registry.Registry
	logger   zerolog.Logger
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(reg *registry.Registry, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{
		registry: reg,
		logger:   logger.With().Str("service", "department").Logger(),
	}
}

// CreateDepartment adds a new department
func (s *DepartmentService) CreateDepartment(ctx context.Context, name string) (*models.Department, error) {
	if err := requireText("department name", name); err != nil {
		s.logger.Warn().Err(err).Msg("Rejected department")
		return nil, err
	}

	dept, err := s.registry.AddDepartment(name)
	if err != nil {
		s.logger.Warn().Err(err).Str("department", name).Msg("Rejected department")
		return nil, fmt.Errorf("error creating department: %w", err)
	}

	s.logger.Info().Str("department", name).Msg("Department added")
	return dept, nil
}

// GetAllDepartments retrieves all departments in insertion order
func (s *DepartmentService) GetAllDepartments(ctx context.Context) []*models.Department {
	return s.registry.ListDepartments()
}

// GetDepartment retrieves a department and its members by name
func (s *DepartmentService) GetDepartment(ctx context.Context, name string) (*models.Department, error) {
	dept, err := s.registry.Department(name)
	if err != nil {
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return dept, nil
}

// GetCoursesForDepartment retrieves the courses a student of the department can choose from
func (s *DepartmentService) GetCoursesForDepartment(ctx context.Context, name string) ([]*models.Course, error) {
	courses, err := s.registry.ListCoursesForDepartment(name)
	if err != nil {
		return nil, fmt.Errorf("error retrieving department courses: %w", err)
	}
	return courses, nil
}
