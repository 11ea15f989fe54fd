package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/app/registry"
)

// CreateStudentInput carries the fields of a new student
type CreateStudentInput struct {
	Name           string
	Age            int
	DepartmentName string
	Subjects       []string
	FeesPaid       bool
	Attendance     float64
}

// StudentService handles student enrollment
type StudentService struct {
	registry *registry.Registry
	logger   zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(reg *registry.Registry, logger zerolog.Logger) *StudentService {
	return &StudentService{
		registry: reg,
		logger:   logger.With().Str("service", "student").Logger(),
	}
}

// CreateStudent enrolls a student in an existing department. Subjects are
// passed through as chosen; offering only the department's courses is the
// caller's job.
func (s *StudentService) CreateStudent(ctx context.Context, input CreateStudentInput) (*models.Student, error) {
	if err := requireText("student name", input.Name); err != nil {
		s.logger.Warn().Err(err).Msg("Rejected student")
		return nil, err
	}

	student, err := s.registry.AddStudent(input.Name, input.Age, input.DepartmentName, input.Subjects, input.FeesPaid, input.Attendance)
	if err != nil {
		s.logger.Warn().Err(err).Str("department", input.DepartmentName).Msg("Rejected student")
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	s.logger.Info().
		Str("student", student.Name).
		Str("rollNumber", student.RollNumber).
		Str("department", student.Department).
		Msg("Student added")
	return student, nil
}

// GetAllStudents retrieves every student in insertion order
func (s *StudentService) GetAllStudents(ctx context.Context) []*models.Student {
	return s.registry.Students()
}
