package http

import (
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/hridaya423/bookify/internal/core"
	"github.com/hridaya423/bookify/pkg/logger"
	"github.com/hridaya423/bookify/pkg/models"
)

// AuthMiddleware validates JWT token and sets user context
func AuthMiddleware(authSvc core.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "invalid authorization format"})
			c.Abort()
			return
		}

		token := parts[1]

		// Validate token
		user, err := authSvc.ValidateToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(401, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		// Store user ID and full user in context
		c.Set("user_id", user.ID)
		c.Set("user", user)
		c.Next()
	}
}

// GetUserID extracts user ID from gin context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok
}

// GetUser retrieves the full authenticated user from the context
func GetUser(c *gin.Context) (*models.User, bool) {
	user, exists := c.Get("user")
	if !exists {
		return nil, false
	}

	u, ok := user.(*models.User)
	return u, ok
}

// loginLimiters holds one token bucket per client IP. Entries are
// never evicted; login traffic is tiny for a personal server.
type loginLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func (l *loginLimiters) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.limiters[ip]
	if !ok {
		// 5 attempts per minute with a burst of 5
		lim = rate.NewLimiter(rate.Every(12*time.Second), 5)
		l.limiters[ip] = lim
	}
	return lim
}

var loginRate = &loginLimiters{limiters: map[string]*rate.Limiter{}}

// LoginRateLimitMiddleware throttles credential guessing per client IP
func LoginRateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !loginRate.get(c.ClientIP()).Allow() {
			c.JSON(429, gin.H{"error": "too many login attempts, try again later"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// requestLogger logs each request through the app logger
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := int(time.Since(start).Milliseconds())
		logger.HTTP(c.Request.Method, path, c.Writer.Status(), latency)
	}
}
