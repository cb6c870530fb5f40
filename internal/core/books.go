// Package core - Book Business Logic
// Library management: shelf status transitions, reading progress, and
// title search.
package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/hridaya423/bookify/internal/repository"
	"github.com/hridaya423/bookify/internal/series"
	"github.com/hridaya423/bookify/pkg/models"
	"github.com/hridaya423/bookify/pkg/utils"
)

// SeriesDetector is the optional AI-assisted series detection
// collaborator. Book creation falls back to the title-pattern
// heuristic whenever it is absent or errors.
type SeriesDetector interface {
	IsEnabled() bool
	DetectSeries(ctx context.Context, title string) (models.SeriesSignal, error)
}

// BookService defines library operations
type BookService interface {
	Create(ctx context.Context, userID string, req models.CreateBookRequest) (*models.Book, error)
	GetByID(ctx context.Context, userID, id string) (*models.Book, error)
	List(ctx context.Context, userID, status string, limit, offset int) (*models.BookListResponse, error)
	Update(ctx context.Context, userID, id string, req models.UpdateBookRequest) (*models.Book, error)
	UpdateStatus(ctx context.Context, userID, id, status string) (*models.Book, error)
	LogProgress(ctx context.Context, userID, bookID string, req models.LogProgressRequest) (*models.ProgressResponse, error)
	SearchLibrary(ctx context.Context, userID, query string) ([]models.Book, error)
	Delete(ctx context.Context, userID, id string) error
}

type bookService struct {
	bookRepo    repository.BookRepository
	readingRepo repository.DailyReadingRepository
	detector    SeriesDetector
}

// NewBookService creates a new book service. detector may be nil.
func NewBookService(bookRepo repository.BookRepository, readingRepo repository.DailyReadingRepository, detector SeriesDetector) BookService {
	return &bookService{
		bookRepo:    bookRepo,
		readingRepo: readingRepo,
		detector:    detector,
	}
}

// Create adds a book to the user's library
func (s *bookService) Create(ctx context.Context, userID string, req models.CreateBookRequest) (*models.Book, error) {
	if err := utils.ValidateBookTitle(req.Title); err != nil {
		return nil, err
	}
	if err := utils.ValidateAuthor(req.Author); err != nil {
		return nil, err
	}
	if req.Status == "" {
		req.Status = string(models.BookStatusPlanned)
	}
	if !models.IsValidBookStatus(req.Status) {
		return nil, fmt.Errorf("invalid status: must be one of [planned, current, past]")
	}

	book := &models.Book{
		ID:             uuid.New().String(),
		UserID:         userID,
		Title:          strings.TrimSpace(req.Title),
		Author:         strings.TrimSpace(req.Author),
		Genres:         req.Genres,
		Status:         models.BookStatus(req.Status),
		CoverURL:       req.CoverURL,
		TotalPages:     req.TotalPages,
		IsPartOfSeries: req.IsPartOfSeries,
		SeriesName:     req.SeriesName,
		SeriesOrder:    req.SeriesOrder,
		SeriesTotal:    req.SeriesTotal,
		DateAdded:      time.Now(),
	}
	if book.Genres == nil {
		book.Genres = []string{}
	}
	if book.Status == models.BookStatusPast {
		now := time.Now()
		book.DateCompleted = &now
	}

	// Fill in series attributes the caller did not supply.
	if !book.IsPartOfSeries && book.SeriesName == "" {
		signal := s.detectSeries(ctx, book.Title)
		if signal.SeriesName != "" {
			book.IsPartOfSeries = true
			book.SeriesName = signal.SeriesName
			book.SeriesOrder = signal.Order
		}
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return book, nil
}

// detectSeries tries the AI detector first, then the pure heuristic
func (s *bookService) detectSeries(ctx context.Context, title string) models.SeriesSignal {
	if s.detector != nil && s.detector.IsEnabled() {
		if signal, err := s.detector.DetectSeries(ctx, title); err == nil && signal.SeriesName != "" {
			return signal
		}
	}
	return series.ExtractSeriesSignal(title)
}

// GetByID retrieves one of the user's books
func (s *bookService) GetByID(ctx context.Context, userID, id string) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("book not found: %w", err)
	}
	return book, nil
}

// List retrieves the library with pagination and optional status filter
func (s *bookService) List(ctx context.Context, userID, status string, limit, offset int) (*models.BookListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	if status != "" && !models.IsValidBookStatus(status) {
		return nil, fmt.Errorf("invalid status filter: %s", status)
	}

	books, total, err := s.bookRepo.List(ctx, userID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	if books == nil {
		books = []models.Book{}
	}

	return &models.BookListResponse{
		Data:    books,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+len(books) < total,
	}, nil
}

// Update applies a partial update to a book's attributes. Shelf
// status changes go through UpdateStatus so the transition rules
// cannot be bypassed.
func (s *bookService) Update(ctx context.Context, userID, id string, req models.UpdateBookRequest) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("book not found: %w", err)
	}

	if req.Title != nil {
		if err := utils.ValidateBookTitle(*req.Title); err != nil {
			return nil, err
		}
		book.Title = strings.TrimSpace(*req.Title)
	}
	if req.Author != nil {
		if err := utils.ValidateAuthor(*req.Author); err != nil {
			return nil, err
		}
		book.Author = strings.TrimSpace(*req.Author)
	}
	if req.Genres != nil {
		book.Genres = req.Genres
	}
	if req.Favorite != nil {
		book.Favorite = *req.Favorite
	}
	if req.CoverURL != nil {
		book.CoverURL = *req.CoverURL
	}
	if req.TotalPages != nil {
		book.TotalPages = req.TotalPages
		// Keep the clamp invariant when the page count shrinks.
		if book.CurrentPage != nil && *book.CurrentPage > *req.TotalPages {
			book.CurrentPage = req.TotalPages
		}
	}
	if req.IsPartOfSeries != nil {
		book.IsPartOfSeries = *req.IsPartOfSeries
	}
	if req.SeriesName != nil {
		book.SeriesName = *req.SeriesName
	}
	if req.SeriesOrder != nil {
		book.SeriesOrder = req.SeriesOrder
	}
	if req.SeriesTotal != nil {
		book.SeriesTotal = req.SeriesTotal
	}

	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return book, nil
}

// UpdateStatus moves a book between shelf states.
// Transition rules:
//   - to past: date_completed is set to now unless already set, so
//     re-entering past keeps the original completion date
//   - away from past: date_completed is cleared, so goal progress and
//     pace never count a book that is no longer finished
func (s *bookService) UpdateStatus(ctx context.Context, userID, id, status string) (*models.Book, error) {
	if !models.IsValidBookStatus(status) {
		return nil, fmt.Errorf("invalid status: must be one of [planned, current, past]")
	}

	book, err := s.bookRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("book not found: %w", err)
	}

	newStatus := models.BookStatus(status)
	switch {
	case newStatus == models.BookStatusPast:
		if book.DateCompleted == nil {
			now := time.Now()
			book.DateCompleted = &now
		}
	case book.Status == models.BookStatusPast:
		book.DateCompleted = nil
	}
	book.Status = newStatus

	if err := s.bookRepo.UpdateStatus(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to update book status: %w", err)
	}
	return book, nil
}

// LogProgress records pages read for one day and advances the book's
// current page. The daily entry replaces any earlier value for that
// day; current_page increments by the logged pages and clamps to
// total_pages. Both writes commit in a single transaction.
func (s *bookService) LogProgress(ctx context.Context, userID, bookID string, req models.LogProgressRequest) (*models.ProgressResponse, error) {
	if req.PagesRead < 0 {
		return nil, fmt.Errorf("pages_read must not be negative")
	}

	day := utils.DayUTC(time.Now())
	if req.Date != "" {
		parsed, err := utils.ParseDay(req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		day = parsed
	}

	entry := &models.DailyReadingEntry{
		UserID:    userID,
		BookID:    bookID,
		Date:      day,
		PagesRead: req.PagesRead,
	}

	var book *models.Book
	err := s.bookRepo.WithTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.readingRepo.UpsertTx(ctx, tx, entry); err != nil {
			return err
		}
		updated, err := s.bookRepo.ApplyProgressTx(ctx, tx, userID, bookID, req.PagesRead)
		if err != nil {
			return err
		}
		book = updated
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to log progress: %w", err)
	}

	return &models.ProgressResponse{Book: *book, Entry: *entry}, nil
}

// SearchLibrary fuzzy-matches the user's books by title and author
func (s *bookService) SearchLibrary(ctx context.Context, userID, query string) ([]models.Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Book{}, nil
	}

	books, err := s.bookRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to search library: %w", err)
	}

	type ranked struct {
		book models.Book
		dist int
	}
	var matches []ranked
	for _, b := range books {
		target := b.Title + " " + b.Author
		rank := fuzzy.RankMatchNormalizedFold(query, target)
		if rank < 0 {
			continue
		}
		matches = append(matches, ranked{book: b, dist: rank})
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].dist < matches[j].dist })

	out := make([]models.Book, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.book)
	}
	return out, nil
}

// Delete removes a book and its reading log
func (s *bookService) Delete(ctx context.Context, userID, id string) error {
	if err := s.bookRepo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return nil
}
