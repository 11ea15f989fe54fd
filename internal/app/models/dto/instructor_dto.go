package dto

import "github.com/yigit/uniregistry/internal/app/models"

// CreateInstructorRequest represents instructor creation data.
// Age is optional and defaults to 30.
type CreateInstructorRequest struct {
	Name           string  `json:"name" binding:"required,notblank" example:"Grace Hopper"`
	Age            *int    `json:"age,omitempty" binding:"omitempty,gte=0" example:"30"`
	Subject        string  `json:"subject" binding:"required,notblank" example:"Physics"`
	Salary         float64 `json:"salary" binding:"gte=0" example:"5000"`
	DepartmentName string  `json:"departmentName" example:"CS"`
}

// InstructorResponse represents an instructor
type InstructorResponse struct {
	Name    string           `json:"name" example:"Grace Hopper"`
	Age     int              `json:"age" example:"30"`
	Subject string           `json:"subject" example:"Physics"`
	Salary  float64          `json:"salary" example:"5000"`
	Courses []CourseResponse `json:"courses"`
}

// FromInstructor converts an instructor to its response
func FromInstructor(i *models.Instructor) InstructorResponse {
	return InstructorResponse{
		Name:    i.Name,
		Age:     i.Age,
		Subject: i.Subject,
		Salary:  i.Salary,
		Courses: FromCourses(i.Courses),
	}
}

// FromInstructors converts a list of instructors
func FromInstructors(instructors []*models.Instructor) []InstructorResponse {
	out := make([]InstructorResponse, 0, len(instructors))
	for _, i := range instructors {
		out = append(out, FromInstructor(i))
	}
	return out
}
