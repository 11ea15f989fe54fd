package models

// Person is the shared capability of students and instructors
type Person interface {
	GetName() string
	GetAge() int
}

// PersonInfo holds the base attributes embedded by value in Student and Instructor
type PersonInfo struct {
	Name string `json:"name" example:"Ada Lovelace"`
	Age  int    `json:"age" example:"20"`
}

// GetName returns the person's name
func (p PersonInfo) GetName() string {
	return p.Name
}

// GetAge returns the person's age
func (p PersonInfo) GetAge() int {
	return p.Age
}
