package dto

import "github.com/yigit/uniregistry/internal/app/models"

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Name string `json:"name" example:"Computer Science"`
}

// DepartmentResponse represents a department with membership counts
type DepartmentResponse struct {
	Name            string `json:"name" example:"Computer Science"`
	StudentCount    int    `json:"studentCount" example:"12"`
	InstructorCount int    `json:"instructorCount" example:"3"`
	CourseCount     int    `json:"courseCount" example:"5"`
}

// DepartmentDetailResponse lists every member of a department
type DepartmentDetailResponse struct {
	Name        string               `json:"name" example:"Computer Science"`
	Students    []StudentResponse    `json:"students"`
	Instructors []InstructorResponse `json:"instructors"`
	Courses     []CourseResponse     `json:"courses"`
}

// FromDepartment converts a department to its summary response
func FromDepartment(d *models.Department) DepartmentResponse {
	return DepartmentResponse{
		Name:            d.Name,
		StudentCount:    len(d.Students),
		InstructorCount: len(d.Instructors),
		CourseCount:     len(d.Courses),
	}
}

// FromDepartments converts a list of departments
func FromDepartments(depts []*models.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(depts))
	for _, d := range depts {
		out = append(out, FromDepartment(d))
	}
	return out
}

// FromDepartmentDetail converts a department with all its members
func FromDepartmentDetail(d *models.Department) DepartmentDetailResponse {
	return DepartmentDetailResponse{
		Name:        d.Name,
		Students:    FromStudents(d.Students),
		Instructors: FromInstructors(d.Instructors),
		Courses:     FromCourses(d.Courses),
	}
}
