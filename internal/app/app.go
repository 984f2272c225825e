package app

import (
	"strings"
	"time"

	"github.com/fadilmartias/career-coach/internal/config"
	"github.com/fadilmartias/career-coach/internal/domain/fiber/handler"
	"github.com/fadilmartias/career-coach/internal/logger"
	"github.com/fadilmartias/career-coach/internal/middleware"
	"github.com/fadilmartias/career-coach/internal/repository"
	"github.com/fadilmartias/career-coach/internal/service"
	"github.com/fadilmartias/career-coach/internal/usecase"
	"github.com/fadilmartias/career-coach/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Deps is everything the HTTP application needs from the outside world.
type Deps struct {
	DB       *gorm.DB
	Advisor  service.Advisor
	Sessions fiber.Storage
	Log      *logger.Logger
	App      *config.AppConfig
	Session  *config.SessionConfig

	// AccessLog toggles the per-request access line. Tests turn it off.
	AccessLog bool
}

// New assembles the Fiber application with its middleware stack and routes.
func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      d.App.Name,
		BodyLimit:    8 * 1024 * 1024,
		ErrorHandler: util.HandleError,
	})

	if d.AccessLog {
		app.Use(fiberlogger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     normalizeOrigins(d.App.CORSOrigins),
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !d.App.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return d.App.IsProduction()
		},
	}))
	app.Use(healthcheck.New(healthcheck.Config{
		ReadinessProbe: func(c *fiber.Ctx) bool {
			sqlDB, err := d.DB.DB()
			if err != nil {
				return false
			}
			return sqlDB.PingContext(c.UserContext()) == nil
		},
	}))
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	handler.NewHealthHandler(time.Now()).RegisterRoutes(app)

	users := repository.NewUserRepository(d.DB)
	gate := middleware.NewSessionGate(d.Session, d.Sessions, users, d.Log)

	authUC := usecase.NewAuthUsecase(users, d.Log)
	userUC := usecase.NewUserUsecase(users)
	assessmentUC := usecase.NewAssessmentUsecase(repository.NewAssessmentRepository(d.DB), d.Advisor, d.Log)
	resumeUC := usecase.NewResumeUsecase(repository.NewResumeRepository(d.DB), d.Advisor, d.Log)
	interviewUC := usecase.NewInterviewUsecase(repository.NewInterviewRepository(d.DB), d.Advisor, d.Log)
	careerPathUC := usecase.NewCareerPathUsecase(repository.NewCareerPathRepository(d.DB), d.Advisor, d.Log)
	skillUC := usecase.NewSkillUsecase(repository.NewSkillRepository(d.DB), d.Advisor, d.Log)
	goalUC := usecase.NewGoalUsecase(repository.NewGoalRepository(d.DB))
	recommendationUC := usecase.NewRecommendationUsecase(repository.NewRecommendationRepository(d.DB))

	api := app.Group("/api", middleware.RateLimiter(d.App.RateLimitMax, time.Minute), gate.Resolve())

	handler.NewAuthHandler(authUC, gate).RegisterRoutes(api, middleware.RateLimiter(d.App.AuthRateLimitMax, time.Minute))
	handler.NewUserHandler(authUC, userUC, gate).RegisterRoutes(api)
	handler.NewAssessmentHandler(assessmentUC, gate).RegisterRoutes(api)
	handler.NewResumeHandler(resumeUC, gate).RegisterRoutes(api)
	handler.NewInterviewHandler(interviewUC, gate).RegisterRoutes(api)
	handler.NewCareerPathHandler(careerPathUC, gate).RegisterRoutes(api)
	handler.NewSkillHandler(skillUC, gate).RegisterRoutes(api)
	handler.NewGoalHandler(goalUC, gate).RegisterRoutes(api)
	handler.NewRecommendationHandler(recommendationUC, gate).RegisterRoutes(api)

	api.Use(func(c *fiber.Ctx) error {
		return util.HandleError(c, fiber.ErrNotFound)
	})

	return app
}

func normalizeOrigins(raw string) string {
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ",")
}
