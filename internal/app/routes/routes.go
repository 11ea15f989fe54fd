package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/uniregistry/internal/app/controllers"
	"github.com/yigit/uniregistry/internal/app/models/dto"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Department *controllers.DepartmentController
	Instructor *controllers.InstructorController
	Course     *controllers.CourseController
	Student    *controllers.StudentController
	Search     *controllers.SearchController
	Class      *controllers.ClassController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	// API version group
	v1 := router.Group("/api/v1")

	departments := v1.Group("/departments")
	{
		departments.POST("", c.Department.CreateDepartment)
		departments.GET("", c.Department.GetAllDepartments)
		departments.GET("/:name", c.Department.GetDepartment)
		departments.GET("/:name/courses", c.Department.GetDepartmentCourses)
	}

	instructors := v1.Group("/instructors")
	{
		instructors.POST("", c.Instructor.CreateInstructor)
		instructors.GET("", c.Instructor.GetAllInstructors)
	}

	courses := v1.Group("/courses")
	{
		courses.POST("", c.Course.CreateCourse)
		courses.GET("", c.Course.GetAllCourses)
	}

	students := v1.Group("/students")
	{
		students.POST("", c.Student.CreateStudent)
		students.GET("", c.Student.GetAllStudents)
	}

	search := v1.Group("/search")
	{
		search.GET("/students", c.Search.SearchStudents)
		search.GET("/instructors", c.Search.SearchInstructors)
	}

	// Class sessions are a separate ledger with no registry references
	classes := v1.Group("/classes")
	{
		classes.POST("", c.Class.AddClass)
		classes.GET("", c.Class.ListClasses)
		classes.GET("/search", c.Class.SearchClasses)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})
}
