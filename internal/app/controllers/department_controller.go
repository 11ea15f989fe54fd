package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/uniregistry/internal/app/models/dto"
	"github.com/yigit/uniregistry/internal/app/services"
	"github.com/yigit/uniregistry/internal/middleware"
	"github.com/yigit/uniregistry/internal/pkg/helpers"
)

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService *services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService *services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// CreateDepartment handles department creation
// @Summary Create a new department
// @Description Creates a new department. Names must be unique and non-blank.
// @Tags departments
// @Accept json
// @Produce json
// @Param request body dto.CreateDepartmentRequest true "Department information"
// @Success 201 {object} dto.APIResponse{data=dto.DepartmentResponse} "Department created successfully"
// @Failure 400 {object} dto.ErrorResponse "Empty department name"
// @Failure 409 {object} dto.ErrorResponse "Department already exists"
// @Router /departments [post]
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	department, err := c.departmentService.CreateDepartment(ctx, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromDepartment(department)))
}

// GetAllDepartments retrieves all departments
// @Summary Get all departments
// @Description Retrieves every department in the order it was added
// @Tags departments
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size (max 100)"
// @Success 200 {object} dto.APIResponse{data=[]dto.DepartmentResponse} "Departments retrieved successfully"
// @Router /departments [get]
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	departments := dto.FromDepartments(c.departmentService.GetAllDepartments(ctx))
	respondList(ctx, departments)
}

// GetDepartment retrieves a department with its members
// @Summary Get department by name
// @Description Retrieves a department together with its students, instructors and courses
// @Tags departments
// @Produce json
// @Param name path string true "Department name"
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentDetailResponse} "Department retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{name} [get]
func (c *DepartmentController) GetDepartment(ctx *gin.Context) {
	department, err := c.departmentService.GetDepartment(ctx, ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromDepartmentDetail(department)))
}

// GetDepartmentCourses lists the courses offered by a department
// @Summary List department courses
// @Description Retrieves the courses a student of this department can enroll in
// @Tags departments
// @Produce json
// @Param name path string true "Department name"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{name}/courses [get]
func (c *DepartmentController) GetDepartmentCourses(ctx *gin.Context) {
	courses, err := c.departmentService.GetCoursesForDepartment(ctx, ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondList(ctx, dto.FromCourses(courses))
}

// respondList writes items, paginated when the request asks for a page
func respondList[T any](ctx *gin.Context, items []T) {
	page, info := helpers.Paginate(ctx, items)
	if info == nil {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(page))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(page, *info))
}
