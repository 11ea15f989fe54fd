package repositories

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/uniregistry/internal/app/models"
)

// ClassSessionRepository is an append-only ledger of class sessions.
// It has no link to the registry's departments, instructors or courses.
type ClassSessionRepository struct {
	mu       sync.RWMutex
	sessions []*models.ClassSession
	now      func() time.Time
}

// NewClassSessionRepository creates an empty class session ledger
func NewClassSessionRepository() *ClassSessionRepository {
	return &ClassSessionRepository{now: time.Now}
}

// Add stores session, assigning its ID and creation time
func (r *ClassSessionRepository) Add(session *models.ClassSession) *models.ClassSession {
	stored := *session
	stored.ID = uuid.New()
	stored.CreatedAt = r.now()

	r.mu.Lock()
	r.sessions = append(r.sessions, &stored)
	r.mu.Unlock()

	return &stored
}

// List returns all sessions in insertion order
func (r *ClassSessionRepository) List() []*models.ClassSession {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*models.ClassSession{}, r.sessions...)
}

// Search returns sessions whose name contains query, ignoring case.
// A blank query matches nothing.
func (r *ClassSessionRepository) Search(query string) []*models.ClassSession {
	q := strings.ToLower(strings.TrimSpace(query))
	results := []*models.ClassSession{}
	if q == "" {
		return results
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sessions {
		if strings.Contains(strings.ToLower(s.Name), q) {
			results = append(results, s)
		}
	}
	return results
}
