package main

import (
	"context"
	"os"
	"time"

	"github.com/dkovacs/codeshare/internal/api/handlers"
	"github.com/dkovacs/codeshare/internal/api/middleware"
	"github.com/dkovacs/codeshare/internal/auth"
	"github.com/dkovacs/codeshare/internal/config"
	"github.com/dkovacs/codeshare/internal/crypto"
	"github.com/dkovacs/codeshare/internal/database"
	"github.com/dkovacs/codeshare/internal/logger"
	"github.com/dkovacs/codeshare/internal/models"
	"github.com/dkovacs/codeshare/internal/realtime"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load(config.Overrides{})
	if err != nil {
		logger.Errorf("Failed to load config: %v", err)
		os.Exit(1)
	}

	if cfg.Debug {
		logger.SetLevel(logger.LevelDebug)
	}

	// Set Gin mode
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open database
	logger.Infof("Opening database: %s", cfg.DatabasePath)
	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		logger.Errorf("Failed to open database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Initialize JWT manager
	jwtManager, err := crypto.NewJWTManager(cfg.MasterSecret, cfg.AccessTokenTTL)
	if err != nil {
		logger.Errorf("Failed to create JWT manager: %v", err)
		os.Exit(1)
	}

	// Google sign-in is optional; without credentials only already-issued
	// tokens keep working.
	var google auth.GoogleVerifier
	if cfg.GoogleClientID != "" {
		google, err = auth.NewGoogleVerifier(context.Background(), cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
		if err != nil {
			logger.Errorf("Failed to set up Google sign-in: %v", err)
			os.Exit(1)
		}
	} else {
		logger.Warnf("GOOGLE_CLIENT_ID not set - Google sign-in disabled")
	}

	sessions := auth.NewSessionManager(models.New(db.DB), cfg.RefreshTokenTTL)

	// Periodic cleanup of expired refresh sessions
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := sessions.Sweep(context.Background()); err != nil {
				logger.Warnf("Failed to sweep expired sessions: %v", err)
			}
		}
	}()

	// Initialize the realtime gateway
	logger.Infof("Initializing Socket.IO server...")
	gateway := realtime.NewSocketIOServer(db.DB, jwtManager)
	defer gateway.Close()

	// Create Gin router
	router := gin.Default()

	// CORS middleware
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Logging middleware
	router.Use(middleware.LoggingMiddleware())

	// Root endpoint - returns plain text for client validation
	router.GET("/", func(c *gin.Context) {
		c.String(200, "Welcome to CodeShare Server!")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db.DB, jwtManager, sessions, google, cfg.AccessTokenTTL)
	userHandler := handlers.NewUserHandler(db.DB)
	projectHandler := handlers.NewProjectHandler(db.DB)
	folderHandler := handlers.NewFolderHandler(db.DB)
	documentHandler := handlers.NewDocumentHandler(db.DB)
	grantHandler := handlers.NewGrantHandler(db.DB)
	invitationHandler := handlers.NewInvitationHandler(db.DB)
	chatHandler := handlers.NewChatHandler(db.DB)

	// Public routes (no auth required)
	v1 := router.Group("/v1")
	{
		v1.POST("/auth/google", authHandler.GoogleLogin)
		v1.POST("/auth/refresh", authHandler.Refresh)
		v1.POST("/auth/logout", authHandler.Logout)
	}

	// Protected routes (auth required)
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(jwtManager))
	{
		// Auth
		protected.POST("/auth/logout-all", authHandler.LogoutAll)

		// User
		protected.GET("/user", userHandler.GetProfile)
		protected.PUT("/user", userHandler.UpdateProfile)

		// Projects
		protected.GET("/projects", projectHandler.List)
		protected.POST("/projects", projectHandler.Create)
		protected.GET("/projects/:id", projectHandler.Get)
		protected.PUT("/projects/:id", projectHandler.Update)
		protected.DELETE("/projects/:id", projectHandler.Delete)
		protected.GET("/projects/:id/members", projectHandler.ListMembers)
		protected.POST("/projects/:id/members", projectHandler.AddMember)
		protected.DELETE("/projects/:id/members/:userId", projectHandler.RemoveMember)

		// Folders
		protected.POST("/folders", folderHandler.Create)
		protected.GET("/projects/:id/folders", folderHandler.List)
		protected.PUT("/folders/:id", folderHandler.Rename)
		protected.DELETE("/folders/:id", folderHandler.Delete)
		protected.PUT("/folders/:id/grants", grantHandler.UpsertFolderGrant)
		protected.DELETE("/folders/:id/grants/:userId", grantHandler.DeleteFolderGrant)

		// Documents
		protected.POST("/documents", documentHandler.Create)
		protected.GET("/projects/:id/documents", documentHandler.List)
		protected.GET("/documents/:id", documentHandler.Get)
		protected.PUT("/documents/:id", documentHandler.Update)
		protected.PUT("/documents/:id/content", documentHandler.UpdateContent)
		protected.DELETE("/documents/:id", documentHandler.Delete)
		protected.GET("/documents/:id/permissions", documentHandler.Permissions)
		protected.PUT("/documents/:id/grants", grantHandler.UpsertDocumentGrant)
		protected.DELETE("/documents/:id/grants/:userId", grantHandler.DeleteDocumentGrant)

		// Invitations
		protected.POST("/projects/:id/invitations", invitationHandler.Create)
		protected.GET("/projects/:id/invitations", invitationHandler.ListByProject)
		protected.GET("/invitations", invitationHandler.ListMine)
		protected.POST("/invitations/:token/accept", invitationHandler.Accept)
		protected.POST("/invitations/:token/decline", invitationHandler.Decline)

		// Chat history
		protected.GET("/projects/:id/chat", chatHandler.History)
	}

	// Mount Socket.IO endpoint (accessible without auth for handshake)
	// Auth will be checked after connection is established
	router.Any("/v1/realtime", gateway.HandleSocketIO())
	router.Any("/v1/realtime/*any", gateway.HandleSocketIO())

	// Start HTTP server
	logger.Infof("CodeShare Server starting on http://localhost%s", cfg.Addr)
	logger.Infof("Database: %s", cfg.DatabasePath)

	if err := router.Run(cfg.Addr); err != nil {
		logger.Errorf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
