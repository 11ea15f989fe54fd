package services

import (
	"fmt"
	"strings"

	"github.com/yigit/uniregistry/internal/pkg/apperrors"
)

// Services defined in this package:
// - DepartmentService: adds and lists departments and their courses
// - InstructorService: adds and lists instructors
// - CourseService: adds and lists courses
// - StudentService: enrolls and lists students
// - SearchService: free-text lookup of students and instructors
// - ClassService: the free-text class session ledger

// requireText rejects blank values for a required text field
func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", apperrors.ErrEmptyName, field)
	}
	return nil
}
