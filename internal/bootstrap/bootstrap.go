package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/edufund/scholarhub/docs" // Import generated swagger docs
	appControllers "github.com/edufund/scholarhub/internal/app/controllers"
	appMigrations "github.com/edufund/scholarhub/internal/app/migrations"
	appRepos "github.com/edufund/scholarhub/internal/app/repositories"
	appRoutes "github.com/edufund/scholarhub/internal/app/routes"
	appServices "github.com/edufund/scholarhub/internal/app/services"
	"github.com/edufund/scholarhub/internal/config"
	"github.com/edufund/scholarhub/internal/db"
	appMiddleware "github.com/edufund/scholarhub/internal/middleware"
	pkgAuth "github.com/edufund/scholarhub/internal/pkg/auth"
	"github.com/edufund/scholarhub/internal/pkg/filestorage"
	"github.com/edufund/scholarhub/internal/pkg/helpers"
	"github.com/edufund/scholarhub/internal/pkg/logger"
	"github.com/edufund/scholarhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services              *appServices.Services
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	FileStorage           *filestorage.LocalStorage
	AuthMiddleware        *appMiddleware.AuthMiddleware
	AuthController        *appControllers.AuthController
	StudentController     *appControllers.StudentController
	ApplicationController *appControllers.ApplicationController
	SpotlightController   *appControllers.SpotlightController
	DonationController    *appControllers.DonationController
	HelpInterestCtrl      *appControllers.HelpInterestController
	FeaturedController    *appControllers.FeaturedController
	ActivityLogController *appControllers.ActivityLogController
	FileController        *appControllers.FileController
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Startup still proceeds; a missing default admin can be created by hand
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Signed download URLs are rooted at the public file endpoint
	signer := filestorage.NewURLSigner(cfg.Server.PublicURL+"/api/v1/files", cfg.Storage.SigningSecret)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, signer)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	downloadTTL := int64(helpers.ParseDuration(cfg.Storage.DownloadTTL, 15*time.Minute).Seconds())
	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.FileStorage, downloadTTL)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService)
	deps.ApplicationController = appControllers.NewApplicationController(
		deps.Services.ApplicationService,
		deps.Services.StudentService,
		deps.Services.DocumentService,
	)
	deps.SpotlightController = appControllers.NewSpotlightController(
		deps.Services.SpotlightService,
		deps.Services.StudentService,
		deps.Services.DocumentService,
	)
	deps.DonationController = appControllers.NewDonationController(deps.Services.DonationService)
	deps.HelpInterestCtrl = appControllers.NewHelpInterestController(deps.Services.HelpInterestService)
	deps.FeaturedController = appControllers.NewFeaturedController(deps.Services.FeaturedService)
	deps.ActivityLogController = appControllers.NewActivityLogController(deps.Services.ActivityLogService)
	deps.FileController = appControllers.NewFileController(deps.FileStorage)

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.ApplicationController,
		deps.SpotlightController,
		deps.DonationController,
		deps.HelpInterestCtrl,
		deps.FeaturedController,
		deps.ActivityLogController,
		deps.FileController,
		deps.AuthMiddleware,
	)

	// Health endpoints
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
