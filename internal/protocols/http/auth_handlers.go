package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hridaya423/bookify/pkg/models"
)

// register handles user registration
func (s *Server) register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.APIResponse{
			Success:   false,
			Error:     "invalid request body",
			Timestamp: time.Now(),
		})
		return
	}

	// Validate request
	if req.Username == "" || req.Password == "" {
		c.JSON(400, models.APIResponse{
			Success:   false,
			Error:     "username and password are required",
			Timestamp: time.Now(),
		})
		return
	}

	// Register user
	user, err := s.authSvc.Register(c.Request.Context(), req)
	if err != nil {
		c.JSON(400, models.APIResponse{
			Success:   false,
			Error:     err.Error(),
			Timestamp: time.Now(),
		})
		return
	}

	c.JSON(201, models.APIResponse{
		Success:   true,
		Message:   "User registered successfully",
		Data:      gin.H{"user": user},
		Timestamp: time.Now(),
	})
}

// login handles user authentication
func (s *Server) login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.APIResponse{
			Success:   false,
			Error:     "invalid request body",
			Timestamp: time.Now(),
		})
		return
	}

	// Validate request
	if req.Username == "" || req.Password == "" {
		c.JSON(400, models.APIResponse{
			Success:   false,
			Error:     "username and password are required",
			Timestamp: time.Now(),
		})
		return
	}

	// Login user
	resp, err := s.authSvc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(401, models.APIResponse{
			Success:   false,
			Error:     "invalid credentials",
			Timestamp: time.Now(),
		})
		return
	}

	c.JSON(200, models.APIResponse{
		Success:   true,
		Message:   "Login successful",
		Data:      resp,
		Timestamp: time.Now(),
	})
}
