package models

import (
	"strings"
	"time"
)

// BookStatus represents valid book shelf states
type BookStatus string

const (
	BookStatusPlanned BookStatus = "planned"
	BookStatusCurrent BookStatus = "current"
	BookStatusPast    BookStatus = "past"
)

// Book represents a book owned by a user - matches schema.sql
type Book struct {
	ID              string     `json:"id" db:"id"`
	UserID          string     `json:"user_id" db:"user_id"`
	Title           string     `json:"title" db:"title"`
	Author          string     `json:"author" db:"author"`
	Genres          []string   `json:"genres" db:"genres"`
	Status          BookStatus `json:"status" db:"status"` // planned, current, past
	Favorite        bool       `json:"favorite" db:"favorite"`
	CoverURL        string     `json:"cover_url,omitempty" db:"cover_url"`
	TotalPages      *int       `json:"total_pages,omitempty" db:"total_pages"`
	CurrentPage     *int       `json:"current_page,omitempty" db:"current_page"`
	IsPartOfSeries  bool       `json:"is_part_of_series" db:"is_part_of_series"`
	SeriesName      string     `json:"series_name,omitempty" db:"series_name"`
	SeriesOrder     *float64   `json:"series_order,omitempty" db:"series_order"`
	SeriesTotal     *int       `json:"series_total_books,omitempty" db:"series_total_books"`
	DateAdded       time.Time  `json:"date_added" db:"date_added"`
	DateCompleted   *time.Time `json:"date_completed,omitempty" db:"date_completed"`
}

// CreateBookRequest represents a request to add a book to the library
type CreateBookRequest struct {
	Title          string   `json:"title" validate:"required"`
	Author         string   `json:"author" validate:"required"`
	Genres         []string `json:"genres"`
	Status         string   `json:"status" validate:"omitempty,oneof=planned current past"`
	CoverURL       string   `json:"cover_url"`
	TotalPages     *int     `json:"total_pages"`
	IsPartOfSeries bool     `json:"is_part_of_series"`
	SeriesName     string   `json:"series_name"`
	SeriesOrder    *float64 `json:"series_order"`
	SeriesTotal    *int     `json:"series_total_books"`
}

// UpdateBookRequest represents a partial book update
type UpdateBookRequest struct {
	Title          *string   `json:"title"`
	Author         *string   `json:"author"`
	Genres         []string  `json:"genres"`
	Favorite       *bool     `json:"favorite"`
	CoverURL       *string   `json:"cover_url"`
	TotalPages     *int      `json:"total_pages"`
	IsPartOfSeries *bool     `json:"is_part_of_series"`
	SeriesName     *string   `json:"series_name"`
	SeriesOrder    *float64  `json:"series_order"`
	SeriesTotal    *int      `json:"series_total_books"`
}

// UpdateStatusRequest moves a book between shelf states
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=planned current past"`
}

// BookListResponse represents paginated library results
type BookListResponse struct {
	Data    []Book `json:"data"`
	Total   int    `json:"total"`
	Limit   int    `json:"limit"`
	Offset  int    `json:"offset"`
	HasMore bool   `json:"has_more"`
}

// IsValidBookStatus validates status against schema constraints
func IsValidBookStatus(status string) bool {
	switch BookStatus(status) {
	case BookStatusPlanned, BookStatusCurrent, BookStatusPast:
		return true
	default:
		return false
	}
}

// PrimaryGenre returns the first genre label, or empty string
func (b *Book) PrimaryGenre() string {
	if len(b.Genres) == 0 {
		return ""
	}
	return b.Genres[0]
}

// HasSeries reports whether the book carries usable series attributes
func (b *Book) HasSeries() bool {
	return b.IsPartOfSeries && strings.TrimSpace(b.SeriesName) != ""
}
