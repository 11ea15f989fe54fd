package models

// Instructor is a person who teaches a subject
type Instructor struct {
	PersonInfo
	Subject string    `json:"subject" example:"Physics"`
	Salary  float64   `json:"salary" example:"5000"`
	Courses []*Course `json:"-"` // Courses assigned through AddCourse
}

// NewInstructor creates an instructor with no assigned courses
func NewInstructor(name string, age int, subject string, salary float64) *Instructor {
	return &Instructor{
		PersonInfo: PersonInfo{Name: name, Age: age},
		Subject:    subject,
		Salary:     salary,
		Courses:    []*Course{},
	}
}

// AddCourse appends course to the instructor's courses. Repeated calls add duplicates.
func (i *Instructor) AddCourse(course *Course) {
	i.Courses = append(i.Courses, course)
}
