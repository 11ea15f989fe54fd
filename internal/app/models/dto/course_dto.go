package dto

import "github.com/yigit/uniregistry/internal/app/models"

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name           string `json:"name" binding:"required,notblank" example:"Algorithms"`
	Code           string `json:"code" binding:"required,notblank" example:"CS101"`
	DepartmentName string `json:"departmentName" example:"CS"`
}

// CourseResponse represents a course
type CourseResponse struct {
	Name string `json:"name" example:"Algorithms"`
	Code string `json:"code" example:"CS101"`
}

// FromCourse converts a course to its response
func FromCourse(c *models.Course) CourseResponse {
	return CourseResponse{Name: c.Name, Code: c.Code}
}

// FromCourses converts a list of courses
func FromCourses(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, FromCourse(c))
	}
	return out
}
