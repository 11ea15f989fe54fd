package models

// Course represents a course offered by a department.
type Course struct {
	Name       string      `json:"name" example:"Algorithms"`
	Code       string      `json:"code" example:"CS101"`
	Instructor *Instructor `json:"-"` // Optional, never set by the registry
	Students   []*Student  `json:"-"`
}

// NewCourse creates a course with an empty student list. instructor may be nil.
func NewCourse(name, code string, instructor *Instructor) *Course {
	return &Course{
		Name:       name,
		Code:       code,
		Instructor: instructor,
		Students:   []*Student{},
	}
}

// AddStudent appends student to the course without any duplicate check
func (c *Course) AddStudent(student *Student) {
	c.Students = append(c.Students, student)
}
