package models

// Student is a person enrolled in exactly one department
type Student struct {
	PersonInfo
	RollNumber  string   `json:"rollNumber" example:"S-4821"` // Generated at creation, not guaranteed unique
	Department  string   `json:"department" example:"CS"`     // Denormalized name of the owning department
	Courses     []string `json:"courses"`                     // Course names chosen from the department's list
	Instructors []string `json:"instructors"`
	FeesPaid    bool     `json:"feesPaid"`
	Attendance  float64  `json:"attendance" example:"90"` // Percentage in [0,100]
}

// NewStudent creates a student with fees unpaid and zero attendance.
// Subjects and instructors are stored as given.
func NewStudent(name string, age int, department string, subjects, instructors []string, rollNumber string) *Student {
	if instructors == nil {
		instructors = []string{}
	}
	if subjects == nil {
		subjects = []string{}
	}
	return &Student{
		PersonInfo:  PersonInfo{Name: name, Age: age},
		RollNumber:  rollNumber,
		Department:  department,
		Courses:     subjects,
		Instructors: instructors,
	}
}
