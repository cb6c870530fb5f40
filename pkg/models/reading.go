package models

import "time"

// DailyReadingEntry represents one day of reading for a book.
// Unique per (user_id, book_id, date); re-logging the same day replaces
// the stored value rather than accumulating.
type DailyReadingEntry struct {
	UserID    string    `json:"user_id" db:"user_id"`
	BookID    string    `json:"book_id" db:"book_id"`
	Date      time.Time `json:"date" db:"date"` // calendar day, stored at UTC midnight
	PagesRead int       `json:"pages_read" db:"pages_read"`
}

// LogProgressRequest records pages read for a book on a given day
type LogProgressRequest struct {
	PagesRead int    `json:"pages_read" validate:"required,min=0"`
	Date      string `json:"date"` // YYYY-MM-DD, defaults to today (UTC)
}

// ProgressResponse reports the book state after a progress update
type ProgressResponse struct {
	Book  Book              `json:"book"`
	Entry DailyReadingEntry `json:"entry"`
}
