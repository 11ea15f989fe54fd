package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/uniregistry/internal/app/models/dto"
	"github.com/yigit/uniregistry/internal/app/services"
	"github.com/yigit/uniregistry/internal/middleware"
)

// InstructorController handles instructor related operations
type InstructorController struct {
	instructorService services.InstructorService
}

// NewInstructorController creates a new instructor controller
func NewInstructorController(instructorService services.InstructorService) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
	}
}

// CreateInstructor adds an instructor to a department
// @Summary Add an instructor
// @Description Adds an instructor to an existing department. Age defaults to 30.
// @Tags instructors
// @Accept json
// @Produce json
// @Param request body dto.CreateInstructorRequest true "Instructor information"
// @Success 201 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /instructors [post]
func (c *InstructorController) CreateInstructor(ctx *gin.Context) {
	var req dto.CreateInstructorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	instructor, err := c.instructorService.CreateInstructor(ctx, services.CreateInstructorInput{
		Name:           req.Name,
		Age:            req.Age,
		Subject:        req.Subject,
		Salary:         req.Salary,
		DepartmentName: req.DepartmentName,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromInstructor(instructor)))
}

// GetAllInstructors lists every instructor
// @Summary List instructors
// @Tags instructors
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size (max 100)"
// @Success 200 {object} dto.APIResponse{data=[]dto.InstructorResponse} "Instructors retrieved successfully"
// @Router /instructors [get]
func (c *InstructorController) GetAllInstructors(ctx *gin.Context) {
	respondList(ctx, dto.FromInstructors(c.instructorService.GetAllInstructors(ctx)))
}
