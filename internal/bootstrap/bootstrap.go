package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/lightoncampus/backend/internal/app/controllers"
	appRepos "github.com/lightoncampus/backend/internal/app/repositories"
	appRoutes "github.com/lightoncampus/backend/internal/app/routes"
	appServices "github.com/lightoncampus/backend/internal/app/services"
	"github.com/lightoncampus/backend/internal/config"
	appMiddleware "github.com/lightoncampus/backend/internal/middleware"
	"github.com/lightoncampus/backend/internal/pkg/assist"
	"github.com/lightoncampus/backend/internal/pkg/logger"
	"github.com/lightoncampus/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	FeedService     appServices.FeedService
	CourseService   appServices.CourseService
	ChatService     appServices.ChatService
	ProfileService  appServices.ProfileService
	DonationService appServices.DonationService

	FeedController     *appControllers.FeedController
	CourseController   *appControllers.CourseController
	ChatController     *appControllers.ChatController
	ProfileController  *appControllers.ProfileController
	DonationController *appControllers.DonationController

	IdentityMiddleware *appMiddleware.IdentityMiddleware
	Repos              *appRepos.Repositories
	Assist             *assist.Client
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A .env file is a local convenience; deployed environments set
	// variables directly, so a missing file is not an error.
	_ = godotenv.Load()

	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes repositories, seed data, the AI assist
// client, services, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories()
	seed.Load(deps.Repos, lgr)

	generator := assist.NewGeminiGenerator(assist.ResolveAPIKey(), cfg.AI.Model).
		WithTimeout(cfg.AITimeout())
	if cfg.AI.BaseURL != "" {
		generator = generator.WithBaseURL(cfg.AI.BaseURL)
	}
	deps.Assist = assist.NewClient(generator, logger.WithComponent("assist"))
	if !deps.Assist.Configured() {
		lgr.Warn().Msg("No AI credential configured; assist features will answer with fallback text")
	}

	deps.FeedService = appServices.NewFeedService(
		deps.Repos.FeedRepository,
		deps.Repos.UserRepository,
		deps.Assist,
		cfg.Server.PublicURL,
		lgr,
	)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.UserRepository,
		deps.Assist,
		lgr,
	)
	deps.ChatService = appServices.NewChatService(
		deps.Repos.ChatRepository,
		deps.Repos.UserRepository,
		deps.Assist,
		lgr,
	)
	deps.ProfileService = appServices.NewProfileService(
		deps.Repos.UserRepository,
		deps.CourseService,
		lgr,
	)
	deps.DonationService = appServices.NewDonationService(
		deps.Repos.DonationRepository,
		deps.Repos.UserRepository,
		lgr,
	)

	deps.IdentityMiddleware = appMiddleware.NewIdentityMiddleware(deps.Repos.UserRepository)

	deps.FeedController = appControllers.NewFeedController(deps.FeedService, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, lgr)
	deps.ChatController = appControllers.NewChatController(deps.ChatService, lgr)
	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService, lgr)
	deps.DonationController = appControllers.NewDonationController(deps.DonationService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.FeedController,
		deps.CourseController,
		deps.ChatController,
		deps.ProfileController,
		deps.DonationController,
		deps.IdentityMiddleware,
	)

	return router
}
