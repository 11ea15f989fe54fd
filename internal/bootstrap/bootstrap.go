package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/yigit/uniregistry/docs" // registers the swagger spec
	appControllers "github.com/yigit/uniregistry/internal/app/controllers"
	appRegistry "github.com/yigit/uniregistry/internal/app/registry"
	appRepos "github.com/yigit/uniregistry/internal/app/repositories"
	appRoutes "github.com/yigit/uniregistry/internal/app/routes"
	appServices "github.com/yigit/uniregistry/internal/app/services"
	"github.com/yigit/uniregistry/internal/config"
	appMiddleware "github.com/yigit/uniregistry/internal/middleware"
	"github.com/yigit/uniregistry/internal/pkg/logger"
	"github.com/yigit/uniregistry/internal/pkg/rollnumber"
	"github.com/yigit/uniregistry/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos *appRepos.Repositories

	DepartmentService *appServices.DepartmentService
	InstructorService appServices.InstructorService // Interface type
	CourseService     *appServices.CourseService
	StudentService    *appServices.StudentService
	SearchService     *appServices.SearchService
	ClassService      *appServices.ClassService

	Controllers appRoutes.Controllers
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.FromSettings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the registry, services and controllers,
// loading demo data when configured to.
func BuildDependencies(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	rolls := rollnumber.NewSeeded(cfg.Registry.RollNumberSeed)
	deps.Repos = appRepos.NewRepositories(rolls, appRegistry.Options{
		UniqueRollNumbers: cfg.Registry.UniqueRollNumbers,
	})

	reg := deps.Repos.Registry
	deps.DepartmentService = appServices.NewDepartmentService(reg, lgr)
	deps.InstructorService = appServices.NewInstructorService(reg, lgr)
	deps.CourseService = appServices.NewCourseService(reg, lgr)
	deps.StudentService = appServices.NewStudentService(reg, lgr)
	deps.SearchService = appServices.NewSearchService(reg, lgr)
	deps.ClassService = appServices.NewClassService(deps.Repos.ClassSessionRepository, lgr)

	deps.Controllers = appRoutes.Controllers{
		Department: appControllers.NewDepartmentController(deps.DepartmentService),
		Instructor: appControllers.NewInstructorController(deps.InstructorService),
		Course:     appControllers.NewCourseController(deps.CourseService),
		Student:    appControllers.NewStudentController(deps.StudentService),
		Search:     appControllers.NewSearchController(deps.SearchService),
		Class:      appControllers.NewClassController(deps.ClassService),
	}

	if cfg.Registry.SeedDemoData {
		err := seed.CreateDefaultData(ctx, seed.Services{
			Departments: deps.DepartmentService,
			Courses:     deps.CourseService,
			Instructors: deps.InstructorService,
			Students:    deps.StudentService,
		}, lgr)
		if err != nil {
			return nil, err
		}
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Info().Str("ginMode", gin.Mode()).Msg("Gin mode set")

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger(logger.Component("http")))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router, deps.Controllers)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
