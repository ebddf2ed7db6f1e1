package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"literacy-service/internal/config"
	"literacy-service/internal/db"
	"literacy-service/internal/event"
	"literacy-service/internal/handlers"
	"literacy-service/internal/llm"
	"literacy-service/internal/repository"
	"literacy-service/internal/service"
	"literacy-service/internal/tts"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	gin.SetMode(cfg.GinMode)

	db.InitMongo(cfg.MongoURI)
	defer db.Disconnect()
	database := db.Client.Database(cfg.MongoDatabase)

	var publisher *event.Publisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	} else {
		log.Println("Redis not configured, leaderboard reads go straight to MongoDB")
	}

	loc := cfg.Location()

	// Repositories
	userRepo := repository.NewUserRepository(database)
	attemptRepo := repository.NewAttemptRepository(database)
	quizLogRepo := repository.NewQuizLogRepository(database)
	challengeRepo := repository.NewChallengeRepository(database)
	leaderboardRepo := repository.NewLeaderboardRepository(database, cache)

	// Gateways
	generator := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	speech := tts.NewClient(cfg.TTSBaseURL, cfg.TTSAPIKey, cfg.TTSModel, cfg.TTSVoice)

	// Services
	userService := service.NewUserService(userRepo, leaderboardRepo, publisher, loc)
	authService := service.NewAuthService(userService, publisher)
	challengeService := service.NewChallengeService(challengeRepo, generator, loc)
	statsService := service.NewStatsService(attemptRepo, quizLogRepo, loc)
	submissionService := service.NewSubmissionService(challengeService, userService, attemptRepo, quizLogRepo, loc)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	challengeHandler := handlers.NewChallengeHandler(challengeService, submissionService, userService)
	userHandler := handlers.NewUserHandler(userService, statsService)
	leaderboardHandler := handlers.NewLeaderboardHandler(userService)
	teacherHandler := handlers.NewTeacherHandler(userService, statsService)
	ttsHandler := handlers.NewTTSHandler(speech)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	publicAuth := r.Group("/public/literacy/auth")
	{
		publicAuth.POST("/signup", authHandler.Signup)
		publicAuth.POST("/login", authHandler.Login)
	}

	r.GET("/public/literacy/leaderboard", leaderboardHandler.Leaderboard)

	protected := r.Group("/protected/literacy")
	protected.Use(handlers.AuthRequired())
	{
		protected.GET("/challenge/:category", func(c *gin.Context) {
			challengeHandler.GetChallenge(c)
			publisher.Publish(event.ChallengeServed, gin.H{
				"user_id":  c.GetString("userID"),
				"category": c.Param("category"),
			})
		})
		protected.POST("/challenge/:category/submit", func(c *gin.Context) {
			challengeHandler.Submit(c)
			publisher.Publish(event.ChallengeSubmitted, gin.H{
				"user_id":  c.GetString("userID"),
				"category": c.Param("category"),
			})
		})

		protected.GET("/me", userHandler.Me)
		protected.GET("/me/records", userHandler.Records)
		protected.GET("/me/daily", userHandler.Daily)
		protected.POST("/treasure/draw", userHandler.DrawTreasure)

		protected.POST("/tts", ttsHandler.Speak)

		teacher := protected.Group("/teacher")
		teacher.Use(handlers.TeacherOnly())
		{
			teacher.GET("/students", teacherHandler.Students)
			teacher.GET("/students/:id/logs", teacherHandler.StudentLogs)
		}
	}

	log.Printf("literacy-service listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
