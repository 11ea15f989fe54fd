package dto

import "github.com/yigit/uniregistry/internal/app/models"

// CreateStudentRequest represents student registration data
type CreateStudentRequest struct {
	Name           string   `json:"name" binding:"required,notblank" example:"Ada Lovelace"`
	Age            int      `json:"age" binding:"required,gte=16,lte=100" example:"20"`
	DepartmentName string   `json:"departmentName" example:"CS"`
	Subjects       []string `json:"subjects" example:"Algorithms"`
	FeesPaid       bool     `json:"feesPaid" example:"true"`
	Attendance     float64  `json:"attendance" binding:"gte=0,lte=100" example:"90"`
}

// StudentResponse represents a student profile
type StudentResponse struct {
	Name        string   `json:"name" example:"Ada Lovelace"`
	Age         int      `json:"age" example:"20"`
	RollNumber  string   `json:"rollNumber" example:"S-4821"`
	Department  string   `json:"department" example:"CS"`
	Courses     []string `json:"courses"`
	Instructors []string `json:"instructors"`
	FeesPaid    bool     `json:"feesPaid"`
	Attendance  float64  `json:"attendance" example:"90"`
}

// FromStudent converts a student to its response
func FromStudent(s *models.Student) StudentResponse {
	return StudentResponse{
		Name:        s.Name,
		Age:         s.Age,
		RollNumber:  s.RollNumber,
		Department:  s.Department,
		Courses:     nonNil(s.Courses),
		Instructors: nonNil(s.Instructors),
		FeesPaid:    s.FeesPaid,
		Attendance:  s.Attendance,
	}
}

// FromStudents converts a list of students
func FromStudents(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, FromStudent(s))
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
