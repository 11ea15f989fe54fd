package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/yigit/uniregistry/internal/app/models"
)

// CreateClassRequest represents a class session. Every field is free text.
type CreateClassRequest struct {
	Name       string `json:"name" example:"Intro Lab"`
	Department string `json:"department" example:"CS"`
	Instructor string `json:"instructor" example:"Grace"`
	TimeSlot   string `json:"time" example:"Mon 10:00-12:00"`
}

// ClassResponse represents a stored class session
type ClassResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name" example:"Intro Lab"`
	Department string    `json:"department" example:"CS"`
	Instructor string    `json:"instructor" example:"Grace"`
	TimeSlot   string    `json:"time" example:"Mon 10:00-12:00"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToClassSession converts the request to a ledger record
func (r CreateClassRequest) ToClassSession() *models.ClassSession {
	return &models.ClassSession{
		Name:       r.Name,
		Department: r.Department,
		Instructor: r.Instructor,
		TimeSlot:   r.TimeSlot,
	}
}

// FromClassSession converts a ledger record to its response
func FromClassSession(s *models.ClassSession) ClassResponse {
	return ClassResponse{
		ID:         s.ID,
		Name:       s.Name,
		Department: s.Department,
		Instructor: s.Instructor,
		TimeSlot:   s.TimeSlot,
		CreatedAt:  s.CreatedAt,
	}
}

// FromClassSessions converts a list of ledger records
func FromClassSessions(sessions []*models.ClassSession) []ClassResponse {
	out := make([]ClassResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, FromClassSession(s))
	}
	return out
}
