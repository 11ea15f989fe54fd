package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/app/registry"
)

// CourseService handles course-related operations
type CourseService struct {
	registry *registry.Registry
	logger   zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(reg *registry.Registry, logger zerolog.Logger) *CourseService {
	return &CourseService{
		registry: reg,
		logger:   logger.With().Str("service", "course").Logger(),
	}
}

// CreateCourse adds a course to an existing department. A blank department
// name is reported as unknown.
func (s *CourseService) CreateCourse(ctx context.Context, name, code, departmentName string) (*models.Course, error) {
	for _, field := range []struct{ label, value string }{
		{"course name", name},
		{"course code", code},
	} {
		if err := requireText(field.label, field.value); err != nil {
			s.logger.Warn().Err(err).Msg("Rejected course")
			return nil, err
		}
	}

	course, err := s.registry.AddCourse(name, code, departmentName)
	if err != nil {
		s.logger.Warn().Err(err).Str("department", departmentName).Msg("Rejected course")
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	s.logger.Info().Str("course", code).Str("department", departmentName).Msg("Course added")
	return course, nil
}

// GetAllCourses retrieves every course in insertion order
func (s *CourseService) GetAllCourses(ctx context.Context) []*models.Course {
	return s.registry.Courses()
}
