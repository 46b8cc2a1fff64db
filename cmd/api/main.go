// @title Career Counsel API
// @version 1.0
// @description Backend for the career counselling assessment: questionnaire flow, submission and results.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"career-counsel/internal/adapter"
	"career-counsel/internal/adapter/counselor"
	"career-counsel/internal/cache"
	"career-counsel/internal/config"
	"career-counsel/internal/database"
	"career-counsel/internal/domain"
	"career-counsel/internal/handler"
	"career-counsel/internal/logger"
	"career-counsel/internal/metrics"
	"career-counsel/internal/middleware"
	"career-counsel/internal/questionbank"
	"career-counsel/internal/repository"
	"career-counsel/internal/service"
	"career-counsel/internal/visitor"

	_ "career-counsel/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	startCtx, cancelStart := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStart()

	redisClient, err := cache.NewRedisClient(startCtx, cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	bank, err := questionbank.Load()
	if err != nil {
		appLogger.Fatal("Failed to load question bank", zap.Error(err))
	}
	appLogger.Info("Question bank loaded", zap.Int("questions", bank.Count()))

	client := counselor.NewClient(cfg.Counselor.BaseURL, counselor.WithTimeout(cfg.Counselor.Timeout))

	// The submission ledger is optional.
	var db *sqlx.DB
	var ledger domain.SubmissionRepository
	if cfg.DB.Enabled {
		db, err = database.NewSQLXOracleDB(cfg.GetDSN())
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		ledger = repository.NewSQLXSubmissionRepository(db)
	} else {
		appLogger.Info("Submission ledger disabled")
	}

	storage := service.NewBrowserStorage(cacheAdapter, cfg.Storage.TTL)
	submissionService := service.NewSubmissionService(client, storage, ledger)
	assessmentService := service.NewAssessmentService(
		bank,
		service.NewFlowStore(cacheAdapter, cfg.Assessment.StateTTL),
		submissionService,
		cfg.Assessment.SeedDefaultAnswers,
	)
	resultsService := service.NewResultsService(client, storage)

	handlers := handler.Handlers{
		Assessment: handler.NewAssessmentHandler(assessmentService),
		Results:    handler.NewResultsHandler(resultsService),
		College:    handler.NewCollegeHandler(),
	}
	if db != nil {
		handlers.Health = handler.NewHealthHandler(cacheAdapter, db)
	} else {
		handlers.Health = handler.NewHealthHandler(cacheAdapter, nil)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept",
		AllowCredentials: cfg.Server.AllowOrigins != "*",
		MaxAge:           300,
	}))

	metrics.RegisterRoutes(app)
	app.Get("/swagger/*", swagger.HandlerDefault)

	issuer := visitor.NewIssuer(cfg.Visitor.Secret, cfg.Visitor.TTL)
	handler.RegisterRoutes(app, handlers, middleware.Visitor(issuer, cfg.Visitor))

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
