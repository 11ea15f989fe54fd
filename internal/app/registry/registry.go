// Package registry holds the in-memory store of departments and the
// students, instructors and courses that belong to them.
//
// Every entity lives in a global list and in exactly one department's
// membership list; both are updated together under the registry's write
// lock. Entities are never updated or removed once added.
package registry

import (
	"strings"
	"sync"

	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
)

// maxRollAttempts bounds the redraws made when unique roll numbers are enforced
const maxRollAttempts = 100

// RollNumberSource issues roll numbers for new students
type RollNumberSource interface {
	Next() string
}

// Options configures a Registry
type Options struct {
	// UniqueRollNumbers makes AddStudent redraw until the roll number is unused
	UniqueRollNumbers bool
}

// Registry is the single source of truth for all entities
type Registry struct {
	mu    sync.RWMutex
	rolls RollNumberSource
	opts  Options

	departments []*models.Department
	byName      map[string]*models.Department
	students    []*models.Student
	instructors []*models.Instructor
	courses     []*models.Course
	issuedRolls map[string]struct{}
}

// New creates an empty registry that draws roll numbers from rolls
func New(rolls RollNumberSource, opts Options) *Registry {
	return &Registry{
		rolls:       rolls,
		opts:        opts,
		byName:      make(map[string]*models.Department),
		issuedRolls: make(map[string]struct{}),
	}
}

// AddDepartment creates a department. Names are compared exactly. It returns
// a snapshot, while the other add methods return the stored entity itself;
// those entities are never mutated after the add, so sharing them is safe.
func (r *Registry) AddDepartment(name string) (*models.Department, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return nil, apperrors.NewDuplicateNameError(name)
	}

	dept := models.NewDepartment(name)
	r.departments = append(r.departments, dept)
	r.byName[name] = dept
	return dept.Snapshot(), nil
}

// AddInstructor creates an instructor in the named department
func (r *Registry) AddInstructor(name string, age int, subject string, salary float64, departmentName string) (*models.Instructor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dept, ok := r.byName[departmentName]
	if !ok {
		return nil, apperrors.NewUnknownDepartmentError(departmentName)
	}

	instructor := models.NewInstructor(name, age, subject, salary)
	r.instructors = append(r.instructors, instructor)
	dept.AddInstructor(instructor)
	return instructor, nil
}

// AddCourse creates a course in the named department. No instructor is attached.
func (r *Registry) AddCourse(name, code, departmentName string) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dept, ok := r.byName[departmentName]
	if !ok {
		return nil, apperrors.NewUnknownDepartmentError(departmentName)
	}

	course := models.NewCourse(name, code, nil)
	r.courses = append(r.courses, course)
	dept.AddCourse(course)
	return course, nil
}

// AddStudent creates a student in the named department. subjects are
// expected to come from the department's course names and are not
// checked here.
func (r *Registry) AddStudent(name string, age int, departmentName string, subjects []string, feesPaid bool, attendance float64) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dept, ok := r.byName[departmentName]
	if !ok {
		return nil, apperrors.NewUnknownDepartmentError(departmentName)
	}

	roll, err := r.nextRollNumber()
	if err != nil {
		return nil, err
	}

	student := models.NewStudent(name, age, departmentName, append([]string(nil), subjects...), nil, roll)
	student.FeesPaid = feesPaid
	student.Attendance = attendance

	r.students = append(r.students, student)
	dept.AddStudent(student)
	r.issuedRolls[roll] = struct{}{}
	return student, nil
}

// nextRollNumber draws a roll number. Caller must hold the write lock.
func (r *Registry) nextRollNumber() (string, error) {
	if !r.opts.UniqueRollNumbers {
		return r.rolls.Next(), nil
	}
	for i := 0; i < maxRollAttempts; i++ {
		roll := r.rolls.Next()
		if _, taken := r.issuedRolls[roll]; !taken {
			return roll, nil
		}
	}
	return "", apperrors.ErrRollNumberExhausted
}

// ListDepartments returns snapshots of all departments in insertion order
func (r *Registry) ListDepartments() []*models.Department {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Department, 0, len(r.departments))
	for _, d := range r.departments {
		out = append(out, d.Snapshot())
	}
	return out
}

// Department returns a snapshot of the named department
func (r *Registry) Department(name string) (*models.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dept, ok := r.byName[name]
	if !ok {
		return nil, apperrors.NewUnknownDepartmentError(name)
	}
	return dept.Snapshot(), nil
}

// ListCoursesForDepartment returns the named department's courses in order
func (r *Registry) ListCoursesForDepartment(name string) ([]*models.Course, error) {
	dept, err := r.Department(name)
	if err != nil {
		return nil, err
	}
	if dept.Courses == nil {
		return []*models.Course{}, nil
	}
	return dept.Courses, nil
}

// DepartmentOfInstructor returns the name of the department whose
// membership list holds instructor
func (r *Registry) DepartmentOfInstructor(instructor *models.Instructor) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.departments {
		for _, i := range d.Instructors {
			if i == instructor {
				return d.Name, true
			}
		}
	}
	return "", false
}

// Students returns all students in insertion order
func (r *Registry) Students() []*models.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*models.Student{}, r.students...)
}

// Instructors returns all instructors in insertion order
func (r *Registry) Instructors() []*models.Instructor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*models.Instructor{}, r.instructors...)
}

// Courses returns all courses in insertion order
func (r *Registry) Courses() []*models.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*models.Course{}, r.courses...)
}
