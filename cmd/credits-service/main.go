package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/config"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/database"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/health"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/logger"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/middleware"
	natspkg "github.com/swarajreddy10/bg-removal-server/internal/pkg/nats"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/server"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/webhook"
	"github.com/swarajreddy10/bg-removal-server/services/payments"
	paymentsGateway "github.com/swarajreddy10/bg-removal-server/services/payments/gateway"
	paymentsHandler "github.com/swarajreddy10/bg-removal-server/services/payments/handler"
	paymentsHTTP "github.com/swarajreddy10/bg-removal-server/services/payments/handler/http"
	paymentsRepo "github.com/swarajreddy10/bg-removal-server/services/payments/repository"
	paymentsUC "github.com/swarajreddy10/bg-removal-server/services/payments/usecase"
	usersHandler "github.com/swarajreddy10/bg-removal-server/services/users/handler"
	usersHTTP "github.com/swarajreddy10/bg-removal-server/services/users/handler/http"
	usersRepo "github.com/swarajreddy10/bg-removal-server/services/users/repository"
	usersUC "github.com/swarajreddy10/bg-removal-server/services/users/usecase"
)

func main() {
	appName := "credits-service"
	configs := config.InitConfig(".env")

	// Initialize logger
	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS (optional)
	var eventsGW payments.EventsGW
	if configs.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(configs.NATS.URL)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		defer natsClient.Close()
		eventsGW = paymentsGateway.NewEventsGateway(natsClient)
	} else {
		zapLogger.Warn("NATS URL absent, credit events disabled")
	}

	// Initialize identity webhook verifier
	verifier, err := webhook.NewVerifier(configs.Identity.WebhookSecret)
	if err != nil {
		zapLogger.Fatal("Failed to create webhook verifier", logger.Err(err))
	}

	// Initialize repositories
	userRepo := usersRepo.NewUserRepo(configs, postgresClient.GetDB(), redisClient)
	paymentRepo := paymentsRepo.NewPaymentRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize payment gateways from configuration
	gateways := paymentsGateway.NewGatewayRegistry(configs)

	// Initialize usecases
	userUC := usersUC.NewUserUC(userRepo, configs)
	paymentUC := paymentsUC.NewPaymentUC(configs, paymentRepo, gateways, eventsGW)

	// Initialize handlers
	userHandler := usersHTTP.NewUserHandler(userUC, verifier)
	paymentHandler := paymentsHTTP.NewPaymentHandler(paymentUC)

	usersH := usersHandler.NewHandler(userHandler, configs)
	paymentsH := paymentsHandler.NewHandler(paymentHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	usersH.RegisterRoutes(e)
	paymentsH.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
