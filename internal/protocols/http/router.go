package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hridaya423/bookify/internal/core"
	"github.com/hridaya423/bookify/pkg/config"
)

// Server manages the HTTP REST API
type Server struct {
	router       *gin.Engine
	config       *config.Config
	authSvc      core.AuthService
	bookSvc      core.BookService
	statsSvc     core.StatsService
	seriesSvc    core.SeriesService
	settingsSvc  core.SettingsService
	recommendSvc core.RecommendationService
}

// NewServer creates a new HTTP server with all handlers
func NewServer(
	cfg *config.Config,
	authSvc core.AuthService,
	bookSvc core.BookService,
	statsSvc core.StatsService,
	seriesSvc core.SeriesService,
	settingsSvc core.SettingsService,
	recommendSvc core.RecommendationService,
) *Server {
	// Set Gin to release mode by default
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(requestLogger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	s := &Server{
		router:       router,
		config:       cfg,
		authSvc:      authSvc,
		bookSvc:      bookSvc,
		statsSvc:     statsSvc,
		seriesSvc:    seriesSvc,
		settingsSvc:  settingsSvc,
		recommendSvc: recommendSvc,
	}

	s.setupRoutes()
	return s
}

// setupRoutes registers all HTTP routes
func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.healthCheck)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		// Auth routes (public); login is rate limited per client IP
		auth := v1.Group("/auth")
		{
			auth.POST("/register", s.register)
			auth.POST("/login", LoginRateLimitMiddleware(), s.login)
		}

		// Everything below operates on the caller's own library
		protected := v1.Group("", AuthMiddleware(s.authSvc))
		{
			protected.GET("/books", s.listBooks)
			protected.POST("/books", s.createBook)
			protected.GET("/books/search", s.searchBooks)
			protected.GET("/books/:id", s.getBook)
			protected.PUT("/books/:id", s.updateBook)
			protected.DELETE("/books/:id", s.deleteBook)
			protected.PATCH("/books/:id/status", s.updateBookStatus)
			protected.POST("/books/:id/progress", s.logProgress)

			protected.GET("/stats", s.getStatistics)

			protected.GET("/series/search", s.searchSeries)
			protected.GET("/series/:name/missing", s.findMissingBooks)

			protected.GET("/settings", s.getSettings)
			protected.PUT("/settings", s.updateSettings)

			protected.GET("/recommendations", s.getRecommendations)
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// Router returns the gin router (for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// healthCheck returns server health status
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}
