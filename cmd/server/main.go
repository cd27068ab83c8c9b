package main

import (
	"github.com/gin-gonic/gin"

	"github.com/yukikurage/member-care-api/internal/config"
	"github.com/yukikurage/member-care-api/internal/database"
	"github.com/yukikurage/member-care-api/internal/handlers"
	"github.com/yukikurage/member-care-api/internal/logging"
	"github.com/yukikurage/member-care-api/internal/middleware"
	"github.com/yukikurage/member-care-api/internal/repository"
	"github.com/yukikurage/member-care-api/internal/services"
	"github.com/yukikurage/member-care-api/internal/validation"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logging.NewLogger(cfg.AppName, cfg.Env)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Register JSON tag names so binding errors report API field names
	validation.Init()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.WithError(err).Fatal("Failed to add indexes")
	}

	db := database.GetDB()

	// Wire repositories
	memberRepo := repository.NewMemberRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	followUpRepo := repository.NewFollowUpRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Wire services
	memberService := services.NewMemberService(memberRepo)
	taskService := services.NewTaskService(taskRepo)
	followUpService := services.NewFollowUpService(followUpRepo)
	statsService := services.NewStatsService(memberRepo, taskRepo, followUpRepo)
	authService := services.NewAuthService(userRepo)

	// Wire handlers
	memberHandler := handlers.NewMemberHandler(memberService, log)
	taskHandler := handlers.NewTaskHandler(taskService, log)
	followUpHandler := handlers.NewFollowUpHandler(followUpService, log)
	statsHandler := handlers.NewStatsHandler(statsService, log)
	authHandler := handlers.NewAuthHandler(authService, log)

	verifier := middleware.NewTokenVerifier(cfg.AuthSecret, userRepo)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Member Care API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.GET("/me", middleware.RequireAuth(verifier), authHandler.Me)
		}

		// Member routes (protected)
		members := api.Group("/members")
		members.Use(middleware.RequireAuth(verifier))
		{
			members.GET("", memberHandler.ListMembers)
			members.GET("/recent", memberHandler.RecentMembers)
			members.POST("", memberHandler.CreateMember)
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.DELETE("/:id", memberHandler.DeleteMember)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth(verifier))
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/pending", taskHandler.PendingTasks)
			tasks.GET("/member/:memberId", taskHandler.TasksByMember)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.POST("/:id/complete", taskHandler.CompleteTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Follow-up routes (protected)
		followUps := api.Group("/followups")
		followUps.Use(middleware.RequireAuth(verifier))
		{
			followUps.GET("", followUpHandler.ListFollowUps)
			followUps.GET("/member/:memberId", followUpHandler.FollowUpsByMember)
			followUps.POST("", followUpHandler.CreateFollowUp)
			followUps.GET("/:id", followUpHandler.GetFollowUp)
			followUps.PUT("/:id", followUpHandler.UpdateFollowUp)
			followUps.POST("/:id/complete", followUpHandler.CompleteFollowUp)
			followUps.DELETE("/:id", followUpHandler.DeleteFollowUp)
		}

		// Dashboard routes (protected)
		stats := api.Group("")
		stats.Use(middleware.RequireAuth(verifier))
		{
			stats.GET("/stats", statsHandler.GetStats)
			stats.GET("/analytics", statsHandler.GetAnalytics)
		}
	}

	// Start server
	log.WithField("port", cfg.Port).Info("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
