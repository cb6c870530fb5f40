package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hridaya423/bookify/pkg/models"
)

// getStatistics returns the caller's full reading statistics
func (s *Server) getStatistics(c *gin.Context) {
	userID, _ := GetUserID(c)

	stats, err := s.statsSvc.GetStatistics(c.Request.Context(), userID)
	if err != nil {
		respondError(c, 500, err)
		return
	}

	c.JSON(200, models.APIResponse{
		Success:   true,
		Data:      stats,
		Timestamp: time.Now(),
	})
}

// getRecommendations returns AI book suggestions
func (s *Server) getRecommendations(c *gin.Context) {
	userID, _ := GetUserID(c)

	count, _ := strconv.Atoi(c.DefaultQuery("count", "5"))

	recs, err := s.recommendSvc.GetRecommendations(c.Request.Context(), userID, count)
	if err != nil {
		respondError(c, 502, err)
		return
	}

	c.JSON(200, models.APIResponse{
		Success:   true,
		Data:      gin.H{"recommendations": recs},
		Timestamp: time.Now(),
	})
}
