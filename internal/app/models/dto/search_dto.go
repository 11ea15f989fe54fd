package dto

// StudentProfile is a student search hit
type StudentProfile struct {
	StudentResponse
}

// InstructorProfile is an instructor search hit together with the
// department that lists the instructor
type InstructorProfile struct {
	InstructorResponse
	Department string `json:"department,omitempty" example:"CS"`
}

// SearchResponse wraps the hits of a search request
type SearchResponse struct {
	Query   string      `json:"query" example:"phys"`
	Found   bool        `json:"found"`
	Results interface{} `json:"results"`
}
