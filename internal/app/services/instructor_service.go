package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/app/registry"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
)

// DefaultInstructorAge is used when an instructor is added without an age
const DefaultInstructorAge = 30

// InstructorService defines the interface for instructor-related operations
type InstructorService interface {
	CreateInstructor(ctx context.Context, input CreateInstructorInput) (*models.Instructor, error)
	GetAllInstructors(ctx context.Context) []*models.Instructor
}

// CreateInstructorInput carries the fields of a new instructor
type CreateInstructorInput struct {
	Name           string
	Age            *int
	Subject        string
	Salary         float64
	DepartmentName string
}

// instructorServiceImpl implements the InstructorService interface
type instructorServiceImpl struct {
	registry *registry.Registry
	logger   zerolog.Logger
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(reg *registry.Registry, logger zerolog.Logger) InstructorService {
	return &instructorServiceImpl{
		registry: reg,
		logger:   logger.With().Str("service", "instructor").Logger(),
	}
}

// validate checks the input fields before touching the registry
func (s *instructorServiceImpl) validate(input CreateInstructorInput) error {
	if err := requireText("instructor name", input.Name); err != nil {
		return err
	}
	if err := requireText("subject", input.Subject); err != nil {
		return err
	}
	if input.Salary < 0 {
		return apperrors.NewValidationError("salary cannot be negative")
	}
	return nil
}

// CreateInstructor adds an instructor to an existing department. A blank
// department name is looked up like any other and reported as unknown.
func (s *instructorServiceImpl) CreateInstructor(ctx context.Context, input CreateInstructorInput) (*models.Instructor, error) {
	if err := s.validate(input); err != nil {
		s.logger.Warn().Err(err).Msg("Rejected instructor")
		return nil, err
	}

	age := DefaultInstructorAge
	if input.Age != nil {
		age = *input.Age
	}

	instructor, err := s.registry.AddInstructor(input.Name, age, input.Subject, input.Salary, input.DepartmentName)
	if err != nil {
		s.logger.Warn().Err(err).Str("department", input.DepartmentName).Msg("Rejected instructor")
		return nil, fmt.Errorf("error creating instructor: %w", err)
	}

	s.logger.Info().
		Str("instructor", instructor.Name).
		Str("department", input.DepartmentName).
		Msg("Instructor added")
	return instructor, nil
}

// GetAllInstructors retrieves every instructor in insertion order
func (s *instructorServiceImpl) GetAllInstructors(ctx context.Context) []*models.Instructor {
	return s.registry.Instructors()
}
