package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hridaya423/bookify/pkg/models"
)

// getSettings returns the caller's preferences
func (s *Server) getSettings(c *gin.Context) {
	userID, _ := GetUserID(c)

	settings, err := s.settingsSvc.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, 500, err)
		return
	}

	c.JSON(200, models.APIResponse{
		Success:   true,
		Data:      gin.H{"settings": settings},
		Timestamp: time.Now(),
	})
}

// updateSettings upserts the caller's preferences
func (s *Server) updateSettings(c *gin.Context) {
	userID, _ := GetUserID(c)

	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.APIResponse{
			Success:   false,
			Error:     "invalid request body",
			Timestamp: time.Now(),
		})
		return
	}

	settings, err := s.settingsSvc.Update(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, 400, err)
		return
	}
	s.statsSvc.Invalidate(c.Request.Context(), userID)

	c.JSON(200, models.APIResponse{
		Success:   true,
		Message:   "Settings saved successfully",
		Data:      gin.H{"settings": settings},
		Timestamp: time.Now(),
	})
}
