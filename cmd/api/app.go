package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/SurajNaik1502/TPC/docs"
	"github.com/SurajNaik1502/TPC/internal/adapter/api/controller"
	"github.com/SurajNaik1502/TPC/internal/adapter/api/route"
	"github.com/SurajNaik1502/TPC/internal/adapter/repository"
	"github.com/SurajNaik1502/TPC/internal/infrastructure/database"
	"github.com/SurajNaik1502/TPC/pkg/broker"
	"github.com/SurajNaik1502/TPC/pkg/gemini"
	"github.com/SurajNaik1502/TPC/pkg/logger"
	"github.com/SurajNaik1502/TPC/pkg/realtime"
)

// App holds the application and its dependencies
type App struct {
	router    *gin.Engine
	db        *pgxpool.Pool
	hub       *realtime.Hub
	publisher broker.Publisher
	log       logger.Logger
}

// NewApp wires the application: database, migrations, repositories,
// the realtime hub, the AI relay client and the HTTP routes.
func NewApp() (*App, error) {
	log := logger.NewLogger()

	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	if err := database.RunMigrations(); err != nil {
		db.Close()
		return nil, err
	}

	// Repositories
	chatRepo := repository.NewChatRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	webhookRepo := repository.NewWebhookRepository(db)
	jobRepo := repository.NewJobRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)

	// Realtime fan-out and the optional broker bridge
	hub := realtime.NewHub(log)
	publisher, err := broker.NewAMQPPublisherFromEnv(log)
	if err != nil {
		log.Error("error connecting to message broker, bridge disabled", "error", err)
		publisher = nil
	}

	ai := gemini.NewClientFromEnv(log)

	// Controllers
	chatController := controller.NewChatController(chatRepo, profileRepo, hub, log)
	chatbotController := controller.NewChatbotController(ai, log)
	resumeController := controller.NewResumeController(ai, log)
	webhookController := controller.NewWebhookController(webhookRepo, ai, hub, nilablePublisher(publisher), log)
	jobController := controller.NewJobController(jobRepo)
	trainingController := controller.NewTrainingController(trainingRepo)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	api := router.Group("/api/v1")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterChatRoutes(api, chatController)
	route.RegisterFunctionRoutes(api, chatbotController, resumeController, webhookController)
	route.RegisterJobRoutes(api, jobController)
	route.RegisterTrainingRoutes(api, trainingController)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &App{
		router:    router,
		db:        db,
		hub:       hub,
		publisher: nilablePublisher(publisher),
		log:       log,
	}, nil
}

// Start runs the HTTP server on SERVER_PORT (default 8080)
func (a *App) Start() error {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	a.log.Info("server starting", "port", port)
	return a.router.Run(":" + port)
}

// GetRouter returns the application router
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close releases the application resources
func (a *App) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.Error("error closing broker connection", "error", err)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
}

// corsMiddleware mirrors the permissive policy the web client expects
func corsMiddleware() gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "apikey", "x-client-info"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	return cors.New(config)
}

// nilablePublisher keeps a nil *AMQPPublisher from becoming a non-nil
// Publisher interface value.
func nilablePublisher(p *broker.AMQPPublisher) broker.Publisher {
	if p == nil {
		return nil
	}
	return p
}
