package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/uniregistry/internal/app/models/dto"
	"github.com/yigit/uniregistry/internal/app/services"
)

// SearchController exposes student and instructor lookup
type SearchController struct {
	searchService *services.SearchService
}

// NewSearchController creates a new search controller
func NewSearchController(searchService *services.SearchService) *SearchController {
	return &SearchController{searchService: searchService}
}

// SearchStudents finds students by name or roll number
// @Summary Search students
// @Description Matches a case-insensitive substring of the name or the exact roll number
// @Tags search
// @Produce json
// @Param q query string true "Name fragment or roll number"
// @Success 200 {object} dto.APIResponse{data=dto.SearchResponse} "Search completed"
// @Router /search/students [get]
func (c *SearchController) SearchStudents(ctx *gin.Context) {
	query := strings.TrimSpace(ctx.Query("q"))
	profiles := c.searchService.SearchStudents(ctx, query)

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SearchResponse{
		Query:   query,
		Found:   len(profiles) > 0,
		Results: profiles,
	}))
}

// SearchInstructors finds instructors by name or subject
// @Summary Search instructors
// @Description Matches a case-insensitive substring of the name or the subject
// @Tags search
// @Produce json
// @Param q query string true "Name or subject fragment"
// @Success 200 {object} dto.APIResponse{data=dto.SearchResponse} "Search completed"
// @Router /search/instructors [get]
func (c *SearchController) SearchInstructors(ctx *gin.Context) {
	query := strings.TrimSpace(ctx.Query("q"))
	profiles := c.searchService.SearchInstructors(ctx, query)

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SearchResponse{
		Query:   query,
		Found:   len(profiles) > 0,
		Results: profiles,
	}))
}
