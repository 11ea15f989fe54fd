package models

import (
	"time"

	"github.com/google/uuid"
)

// ClassSession is a free-text ledger entry. Its department and instructor
// are labels only and do not reference registry entities.
type ClassSession struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name" example:"Intro Lab"`
	Department string    `json:"department" example:"CS"`
	Instructor string    `json:"instructor" example:"Grace"`
	TimeSlot   string    `json:"time" example:"Mon 10:00-12:00"`
	CreatedAt  time.Time `json:"createdAt"`
}
