package registry

import (
	"strings"

	"github.com/yigit/uniregistry/internal/app/models"
)

// SearchStudents returns students whose name contains query or whose roll
// number equals query, ignoring case. A blank query matches nothing.
func (r *Registry) SearchStudents(query string) []*models.Student {
	q := strings.ToLower(strings.TrimSpace(query))
	matches := []*models.Student{}
	if q == "" {
		return matches
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.students {
		if strings.Contains(strings.ToLower(s.Name), q) || strings.ToLower(s.RollNumber) == q {
			matches = append(matches, s)
		}
	}
	return matches
}

// SearchInstructors returns instructors whose name or subject contains
// query, ignoring case. A blank query matches nothing.
func (r *Registry) SearchInstructors(query string) []*models.Instructor {
	q := strings.ToLower(strings.TrimSpace(query))
	matches := []*models.Instructor{}
	if q == "" {
		return matches
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, i := range r.instructors {
		if strings.Contains(strings.ToLower(i.Name), q) || strings.Contains(strings.ToLower(i.Subject), q) {
			matches = append(matches, i)
		}
	}
	return matches
}
