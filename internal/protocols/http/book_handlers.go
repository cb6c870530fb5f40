package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hridaya423/bookify/pkg/models"
)

// respondError writes the envelope with the right status for typed
// application errors.
func respondError(c *gin.Context, fallbackStatus int, err error) {
	status := fallbackStatus
	message := err.Error()

	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.StatusCode != 0 {
		status = appErr.StatusCode
		message = appErr.Message
	}
	switch {
	case errors.Is(err, models.ErrUpstreamRateLimited):
		status = 429
	case errors.Is(err, models.ErrUpstreamAuth), errors.Is(err, models.ErrUpstreamUnavailable), errors.Is(err, models.ErrUpstream):
		status = 502
	}

	c.JSON(status, models.APIResponse{
		Success:   false,
		Error:     message,
		Timestamp: time.Now(),
	})
}

// createBook adds a book to the caller's library
func (s *Server) createBook(c *gin.Context) {
	userID, _ := GetUserID(c)

	var req models.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.APIResponse{
			Success:   false,
			Error:     "invalid request body",
			Timestamp: time.Now(),
		})
		return
	}

	book, err := s.bookSvc.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, 400, err)
		return
	}
	s.statsSvc.Invalidate(c.Request.Context(), userID)

	c.JSON(201, models.APIResponse{
		Success:   true,
		Message:   "Book added successfully",
		Data:      gin.H{"book": book},
		Timestamp: time.Now(),
	})
}

// listBooks returns a page of the caller's library
func (s *Server) listBooks(c *gin.Context) {
	userID, _ := GetUserID(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	status := c.Query("status")

	resp, err := s.bookSvc.List(c.Request.Context(), userID, status, limit, offset)
	if err != nil {
		respondError(c, 400, err)
		return
	}

	c.JSON(200, models.APIResponse{
		Success:   true,
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// getBook returns a single book
func (s *Server) getBook(c *gin.Context) {
	userID, _ := GetUserID(c)

	book, err := s.bookSvc.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, 404, err)
		return
	}

	c.JSON(200, models.APIResponse{
		Success:   true,
		Data:      gin.H{"book": book},
		Timestamp: time.Now(),
	})
}

// updateBook applies a partial update
func (s *Server) updateBook(c *gin.Context) {
	userID, _ := GetUserID(c)

	var req models.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.APIResponse{
			Success:   false,
			Error:     "invalid request body",
			Timestamp: time.Now(),
		})
		return
	}

	book, err := s.bookSvc.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, 400, err)
		return
	}
	s.statsSvc.Invalidate(c.Request.Context(), userID)

	c.JSON(200, models.APIResponse{
		Success:   true,
		Message:   "Book updated successfully",
		Data:      gin.H{"book": book},
		Timestamp: time.Now(),
	})
}

// updateBookStatus moves a book between shelves
func (s *Server) updateBookStatus(c *gin.Context) {
	userID, _ := GetUserID(c)

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.APIResponse{
			Success:   false,
			Error:     "invalid request body",
			Timestamp: time.Now(),
		})
		return
	}

	book, err := s.bookSvc.UpdateStatus(c.Request.Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, 400, err)
		return
	}
	s.statsSvc.Invalidate(c.Request.Context(), userID)

	c.JSON(200, models.APIResponse{
		Success:   true,
		Message:   "Status updated successfully",
		Data:      gin.H{"book": book},
		Timestamp: time.Now(),
	})
}

// logProgress records pages read for one day
func (s *Server) logProgress(c *gin.Context) {
	userID, _ := GetUserID(c)

	var req models.LogProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.APIResponse{
			Success:   false,
			Error:     "invalid request body",
			Timestamp: time.Now(),
		})
		return
	}

	resp, err := s.bookSvc.LogProgress(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, 400, err)
		return
	}
	s.statsSvc.Invalidate(c.Request.Context(), userID)

	c.JSON(200, models.APIResponse{
		Success:   true,
		Message:   "Progress logged successfully",
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// searchBooks fuzzy-searches the caller's library
func (s *Server) searchBooks(c *gin.Context) {
	userID, _ := GetUserID(c)

	books, err := s.bookSvc.SearchLibrary(c.Request.Context(), userID, c.Query("q"))
	if err != nil {
		respondError(c, 500, err)
		return
	}

	c.JSON(200, models.APIResponse{
		Success:   true,
		Data:      gin.H{"books": books},
		Timestamp: time.Now(),
	})
}

// deleteBook removes a book from the library
func (s *Server) deleteBook(c *gin.Context) {
	userID, _ := GetUserID(c)

	if err := s.bookSvc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, 404, err)
		return
	}
	s.statsSvc.Invalidate(c.Request.Context(), userID)

	c.JSON(200, models.APIResponse{
		Success:   true,
		Message:   "Book deleted successfully",
		Timestamp: time.Now(),
	})
}
