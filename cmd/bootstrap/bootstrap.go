package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"charity-care-portal/config"
	deliveryHttp "charity-care-portal/internal/delivery/http"
	"charity-care-portal/internal/delivery/http/handler"
	"charity-care-portal/internal/delivery/http/middleware"
	"charity-care-portal/internal/infrastructure/cache"
	"charity-care-portal/internal/repository"
	"charity-care-portal/internal/service"
	"charity-care-portal/internal/usecase"
	"charity-care-portal/pkg/apiclient"
	"charity-care-portal/pkg/jwt"
	"charity-care-portal/pkg/validator"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(args []string) (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig(args)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log := setupLogger(cfg.Log)
	app.Log = log
	log.Info("Configuration loaded successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	app.Server = initializeServer(cfg, log, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.Session)
	audit := service.NewAuditService(log)
	guard := service.NewRouteGuard(service.DefaultRoutes())
	selector := service.NewViewSelector(guard)

	// Visitor state
	sessionRepo := repository.NewSessionRepository(redisClient, cfg.Session.TTL)
	visitorRepo := repository.NewVisitorRepository(redisClient)
	prefRepo := repository.NewPreferenceRepository(redisClient)
	formRepo := repository.NewFormStateRepository(redisClient)

	// Backend client; a rejected credential ends the session
	terminator := usecase.NewSessionTerminator(log, sessionRepo, visitorRepo, audit)
	client := apiclient.NewClient(cfg.API, terminator, log)

	// Backend repositories
	authRepo := repository.NewAuthRepository(client, validator.NewValidator())
	userRepo := repository.NewUserRepository(client)
	doctorRepo := repository.NewDoctorRepository(client)
	charityRepo := repository.NewCharityRepository(client)
	patientRepo := repository.NewPatientRepository(client)
	appointmentRepo := repository.NewAppointmentRepository(client)
	assistanceRepo := repository.NewAssistanceRepository(client)
	donationRepo := repository.NewDonationRepository(client)
	notificationRepo := repository.NewNotificationRepository(client)
	chatbotRepo := repository.NewChatbotRepository(client)

	// Initialize usecases
	layoutUsecase := usecase.NewLayoutUsecase(log, prefRepo, visitorRepo, selector, audit)
	authUsecase := usecase.NewAuthUsecase(log, authRepo, sessionRepo, visitorRepo, formRepo, audit)
	preferenceUsecase := usecase.NewPreferenceUsecase(log, prefRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(log, selector, appointmentRepo, assistanceRepo, donationRepo, patientRepo, userRepo)
	directoryUsecase := usecase.NewDirectoryUsecase(log, doctorRepo, charityRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, doctorRepo, formRepo, visitorRepo, audit)
	assistanceUsecase := usecase.NewAssistanceUsecase(log, assistanceRepo, formRepo, visitorRepo, audit)
	donationUsecase := usecase.NewDonationUsecase(log, donationRepo, assistanceRepo, formRepo, visitorRepo, audit)
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, visitorRepo, audit)
	notificationUsecase := usecase.NewNotificationUsecase(log, notificationRepo, prefRepo, visitorRepo)
	userUsecase := usecase.NewUserUsecase(log, userRepo, patientRepo, appointmentRepo, assistanceRepo, donationRepo)
	profileUsecase := usecase.NewProfileUsecase(log, authRepo, userRepo, formRepo, visitorRepo, audit)
	chatbotUsecase := usecase.NewChatbotUsecase(log, chatbotRepo, formRepo)

	// Initialize handlers
	renderer := handler.NewRenderer(layoutUsecase, log)
	handlers := deliveryHttp.Handlers{
		Page:         handler.NewPageHandler(renderer, dashboardUsecase),
		Auth:         handler.NewAuthHandler(renderer, authUsecase),
		Preference:   handler.NewPreferenceHandler(renderer, preferenceUsecase),
		Directory:    handler.NewDirectoryHandler(renderer, directoryUsecase),
		Appointment:  handler.NewAppointmentHandler(renderer, appointmentUsecase, directoryUsecase),
		Assistance:   handler.NewAssistanceHandler(renderer, assistanceUsecase),
		Donation:     handler.NewDonationHandler(renderer, donationUsecase),
		Patient:      handler.NewPatientHandler(renderer, patientUsecase),
		Notification: handler.NewNotificationHandler(renderer, notificationUsecase),
		User:         handler.NewUserHandler(renderer, userUsecase),
		Profile:      handler.NewProfileHandler(renderer, profileUsecase, chatbotUsecase),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessionRepo, log)
	guardMiddleware := middleware.NewGuardMiddleware(guard, visitorRepo, http.HandlerFunc(handlers.Page.NotFound), log)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS)

	// Initialize router
	router := deliveryHttp.NewRouter(handlers, authMiddleware, guardMiddleware, loggingMiddleware, corsMiddleware)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s, backend: %s", app.Config.App.Env, app.Config.API.BaseURL)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close releases the Redis connection pool
func (app *App) Close() {
	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			app.Log.Warnf("Failed to close Redis client: %+v", err)
		}
	}
}
