package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/uniregistry/internal/app/models/dto"
	"github.com/yigit/uniregistry/internal/app/services"
	"github.com/yigit/uniregistry/internal/middleware"
)

// ClassController handles the class session ledger
type ClassController struct {
	classService *services.ClassService
}

// NewClassController creates a new class controller
func NewClassController(classService *services.ClassService) *ClassController {
	return &ClassController{classService: classService}
}

// AddClass records a class session
// @Summary Add a class session
// @Description Stores a free-text class record. Department and instructor are labels only.
// @Tags classes
// @Accept json
// @Produce json
// @Param request body dto.CreateClassRequest true "Class session"
// @Success 201 {object} dto.APIResponse{data=dto.ClassResponse} "Class added successfully"
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Router /classes [post]
func (c *ClassController) AddClass(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	stored := c.classService.AddClass(ctx, req.ToClassSession())
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromClassSession(stored)))
}

// ListClasses lists every class session
// @Summary List class sessions
// @Tags classes
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ClassResponse} "Classes retrieved successfully"
// @Router /classes [get]
func (c *ClassController) ListClasses(ctx *gin.Context) {
	respondList(ctx, dto.FromClassSessions(c.classService.ListClasses(ctx)))
}

// SearchClasses finds class sessions by name
// @Summary Search class sessions
// @Tags classes
// @Produce json
// @Param q query string true "Class name fragment"
// @Success 200 {object} dto.APIResponse{data=dto.SearchResponse} "Search completed"
// @Router /classes/search [get]
func (c *ClassController) SearchClasses(ctx *gin.Context) {
	query := strings.TrimSpace(ctx.Query("q"))
	results := dto.FromClassSessions(c.classService.SearchClasses(ctx, query))

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SearchResponse{
		Query:   query,
		Found:   len(results) > 0,
		Results: results,
	}))
}
