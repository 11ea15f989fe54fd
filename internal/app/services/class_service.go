package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/app/repositories"
)

// ClassService manages the class session ledger. Sessions are free text
// and are not checked against the registry.
type ClassService struct {
	repo   *repositories.ClassSessionRepository
	logger zerolog.Logger
}

// NewClassService creates a new class service instance
func NewClassService(repo *repositories.ClassSessionRepository, logger zerolog.Logger) *ClassService {
	return &ClassService{
		repo:   repo,
		logger: logger.With().Str("service", "class").Logger(),
	}
}

// AddClass records a class session
func (s *ClassService) AddClass(ctx context.Context, session *models.ClassSession) *models.ClassSession {
	stored := s.repo.Add(session)
	s.logger.Info().Str("class", stored.Name).Str("id", stored.ID.String()).Msg("Class added")
	return stored
}

// ListClasses returns every class session in insertion order
func (s *ClassService) ListClasses(ctx context.Context) []*models.ClassSession {
	return s.repo.List()
}

// SearchClasses returns class sessions whose name contains query
func (s *ClassService) SearchClasses(ctx context.Context, query string) []*models.ClassSession {
	return s.repo.Search(query)
}
