package models

// Department owns the authoritative membership lists of its students,
// instructors and courses
type Department struct {
	Name        string        `json:"name" example:"Computer Science"`
	Students    []*Student    `json:"-"`
	Instructors []*Instructor `json:"-"`
	Courses     []*Course     `json:"-"`
}

// NewDepartment creates a department with empty membership lists
func NewDepartment(name string) *Department {
	return &Department{
		Name:        name,
		Students:    []*Student{},
		Instructors: []*Instructor{},
		Courses:     []*Course{},
	}
}

// AddStudent appends student to the department
func (d *Department) AddStudent(student *Student) {
	d.Students = append(d.Students, student)
}

// AddInstructor appends instructor to the department
func (d *Department) AddInstructor(instructor *Instructor) {
	d.Instructors = append(d.Instructors, instructor)
}

// AddCourse appends course to the department
func (d *Department) AddCourse(course *Course) {
	d.Courses = append(d.Courses, course)
}

// CourseNames returns the names of the department's courses in order
func (d *Department) CourseNames() []string {
	names := make([]string, 0, len(d.Courses))
	for _, c := range d.Courses {
		names = append(names, c.Name)
	}
	return names
}

// Snapshot returns a copy of d whose membership slices can be read
// while the original keeps growing
func (d *Department) Snapshot() *Department {
	return &Department{
		Name:        d.Name,
		Students:    append([]*Student(nil), d.Students...),
		Instructors: append([]*Instructor(nil), d.Instructors...),
		Courses:     append([]*Course(nil), d.Courses...),
	}
}
