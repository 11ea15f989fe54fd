package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/app/models/dto"
	"github.com/yigit/uniregistry/internal/app/registry"
)

// SearchService looks up students and instructors by free text
type SearchService struct {
	registry *registry.Registry
	logger   zerolog.Logger
}

// NewSearchService creates a new search service instance
func NewSearchService(reg *registry.Registry, logger zerolog.Logger) *SearchService {
	return &SearchService{
		registry: reg,
		logger:   logger.With().Str("service", "search").Logger(),
	}
}

// SearchStudents returns the profiles of students matching query by name or roll number
func (s *SearchService) SearchStudents(ctx context.Context, query string) []dto.StudentProfile {
	matches := s.registry.SearchStudents(query)
	s.logger.Debug().Str("query", query).Int("hits", len(matches)).Msg("Student search")

	profiles := make([]dto.StudentProfile, 0, len(matches))
	for _, st := range matches {
		profiles = append(profiles, dto.StudentProfile{StudentResponse: dto.FromStudent(st)})
	}
	return profiles
}

// SearchInstructors returns the profiles of instructors matching query by name or subject
func (s *SearchService) SearchInstructors(ctx context.Context, query string) []dto.InstructorProfile {
	matches := s.registry.SearchInstructors(query)
	s.logger.Debug().Str("query", query).Int("hits", len(matches)).Msg("Instructor search")

	profiles := make([]dto.InstructorProfile, 0, len(matches))
	for _, inst := range matches {
		profiles = append(profiles, s.instructorProfile(inst))
	}
	return profiles
}

func (s *SearchService) instructorProfile(inst *models.Instructor) dto.InstructorProfile {
	profile := dto.InstructorProfile{InstructorResponse: dto.FromInstructor(inst)}
	if dept, ok := s.registry.DepartmentOfInstructor(inst); ok {
		profile.Department = dept
	}
	return profile
}
