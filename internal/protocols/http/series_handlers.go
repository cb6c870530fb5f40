package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hridaya423/bookify/pkg/models"
)

// searchSeries groups external search results into series entries
func (s *Server) searchSeries(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(400, models.APIResponse{
			Success:   false,
			Error:     "query parameter q is required",
			Timestamp: time.Now(),
		})
		return
	}

	results, err := s.seriesSvc.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, 502, err)
		return
	}

	c.JSON(200, models.APIResponse{
		Success:   true,
		Data:      gin.H{"series": results},
		Timestamp: time.Now(),
	})
}

// findMissingBooks suggests unowned volumes for one owned series
func (s *Server) findMissingBooks(c *gin.Context) {
	userID, _ := GetUserID(c)

	missing, err := s.seriesSvc.FindMissing(c.Request.Context(), userID, c.Param("name"))
	if err != nil {
		respondError(c, 502, err)
		return
	}

	c.JSON(200, models.APIResponse{
		Success:   true,
		Data:      gin.H{"missing": missing},
		Timestamp: time.Now(),
	})
}
