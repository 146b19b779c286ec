package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"health-monitor-api/config"
	"health-monitor-api/internal/delivery/graphql"
	deliveryHttp "health-monitor-api/internal/delivery/http"
	"health-monitor-api/internal/delivery/http/handler"
	"health-monitor-api/internal/delivery/http/middleware"
	"health-monitor-api/internal/infrastructure/cache"
	"health-monitor-api/internal/infrastructure/database"
	"health-monitor-api/internal/infrastructure/messaging"
	"health-monitor-api/internal/infrastructure/ml"
	"health-monitor-api/internal/repository"
	"health-monitor-api/internal/service"
	"health-monitor-api/internal/usecase"
	"health-monitor-api/pkg/jwt"
	"health-monitor-api/pkg/validator"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Publisher   messaging.Publisher
	RateLimiter *middleware.RateLimiter
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.App)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if cfg.DB.Migrate {
		if err := database.RunMigrations(db); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logrus.Info("Migrations applied")
	}

	// Redis only backs the tip cache, so the API keeps serving without it
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logrus.Warnf("Redis unavailable, tip cache disabled: %v", err)
	} else {
		app.RedisClient = redisClient
		logrus.Info("Redis connected successfully")
	}

	ctx := context.Background()

	predictor, err := newPredictor(ctx, cfg.Model)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to initialize predictor: %w", err)
	}

	publisher, err := newPublisher(ctx, cfg.Publisher)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to initialize alert publisher: %w", err)
	}
	app.Publisher = publisher

	app.Server = app.initializeServer(cfg, db, predictor)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func newPredictor(ctx context.Context, cfg config.ModelConfig) (ml.Predictor, error) {
	if cfg.Backend == "remote" {
		if cfg.RemoteURL == "" {
			return nil, fmt.Errorf("MODEL_REMOTE_URL is required for the remote backend")
		}
		logrus.Infof("Using remote model %s at %s", cfg.RemoteName, cfg.RemoteURL)
		return ml.NewRemotePredictor(cfg.RemoteURL, cfg.RemoteName), nil
	}

	var source ml.ArtifactSource
	switch cfg.Source {
	case "s3":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}
		source = ml.NewS3Source(s3.NewFromConfig(awsCfg), cfg.S3Bucket, cfg.S3Prefix)
		logrus.Infof("Loading model from s3://%s/%s", cfg.S3Bucket, cfg.S3Prefix)
	default:
		source = ml.NewFileSource(cfg.Dir)
		logrus.Infof("Loading model from %s", cfg.Dir)
	}

	return ml.NewLoader(source, ml.LoaderConfig{
		Topology: cfg.Topology,
		Weights:  cfg.Weights,
		Cache:    cfg.Cache,
	}, logrus.StandardLogger()), nil
}

func newPublisher(ctx context.Context, cfg config.PublisherConfig) (messaging.Publisher, error) {
	switch cfg.Driver {
	case "kafka":
		if len(cfg.KafkaBrokers) == 0 {
			return nil, fmt.Errorf("KAFKA_BROKERS is required for the kafka publisher")
		}
		return messaging.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic), nil
	case "sqs":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}
		return messaging.NewSQSPublisher(ctx, sqs.NewFromConfig(awsCfg), cfg.SQSQueueName)
	default:
		return messaging.NewNoopPublisher(), nil
	}
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(cfg *config.Config, db *gorm.DB, predictor ml.Predictor) *http.Server {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	vitalRepo := repository.NewVitalRepository(db)
	dailyVitalRepo := repository.NewDailyVitalRepository(db)
	tipRepo := repository.NewTipRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	tipCache := service.NewNoopTipCache()
	if app.RedisClient != nil {
		tipCache = service.NewTipCache(app.RedisClient, cfg.Redis.TipTTL, log)
	}

	// Initialize usecases
	userUsecase := usecase.NewUserUsecase(log, customValidator, userRepo, auditService)
	vitalUsecase := usecase.NewVitalUsecase(log, customValidator, vitalRepo, userRepo, auditService)
	dailyVitalUsecase := usecase.NewDailyVitalUsecase(log, customValidator, dailyVitalRepo, userRepo, auditService)
	tipUsecase := usecase.NewTipUsecase(log, customValidator, tipRepo, tipCache, auditService)
	alertUsecase := usecase.NewAlertUsecase(log, customValidator, alertRepo, userRepo, app.Publisher, auditService)
	authUsecase := usecase.NewAuthUsecase(log, userRepo, jwtService, auditService)
	predictionUsecase := usecase.NewPredictionUsecase(log, userRepo, vitalRepo, predictor, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)
	exportUsecase := usecase.NewExportUsecase(log, dailyVitalRepo)

	// Initialize GraphQL
	resolver := graphql.NewResolver(
		log,
		userUsecase,
		vitalUsecase,
		dailyVitalUsecase,
		tipUsecase,
		alertUsecase,
		authUsecase,
		predictionUsecase,
		graphql.SessionConfig{Expiry: jwtService.GetExpiry(), Secure: jwtService.CookieSecure()},
	)
	schema, err := graphql.NewSchema(resolver)
	if err != nil {
		logrus.Fatalf("Failed to parse GraphQL schema: %v", err)
	}
	graphqlHandler := graphql.NewHandler(schema, log, cfg.App.IsDevelopment())

	// Initialize handlers
	healthChecks := map[string]handler.Pinger{
		"database": handler.PingFunc(func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}),
	}
	if app.RedisClient != nil {
		healthChecks["redis"] = handler.PingFunc(func(ctx context.Context) error {
			return app.RedisClient.Ping(ctx).Err()
		})
	}
	healthHandler := handler.NewHealthHandler(healthChecks)
	exportHandler := handler.NewExportHandler(exportUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.HTTP.AllowedOrigins)
	app.RateLimiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)

	// Initialize router
	router := deliveryHttp.NewRouter(
		graphqlHandler,
		healthHandler,
		exportHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		app.RateLimiter,
		cfg.App.Env,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, publisher)
func (app *App) Close() {
	if app.RateLimiter != nil {
		app.RateLimiter.Stop()
	}

	if app.Publisher != nil {
		if err := app.Publisher.Close(); err != nil {
			logrus.Warnf("Failed to close alert publisher: %v", err)
		}
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
