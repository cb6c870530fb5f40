package core

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hridaya423/bookify/pkg/models"
)

// In-memory repositories for service tests. No locking: each test
// owns its fake.

type fakeBookRepo struct {
	books map[string]*models.Book
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: map[string]*models.Book{}}
}

func (r *fakeBookRepo) Create(_ context.Context, book *models.Book) error {
	cp := *book
	r.books[book.ID] = &cp
	return nil
}

func (r *fakeBookRepo) GetByID(_ context.Context, userID, id string) (*models.Book, error) {
	b, ok := r.books[id]
	if !ok || b.UserID != userID {
		return nil, models.NewHTTPError(models.ErrCodeNotFound, "book not found", 404, nil)
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookRepo) List(_ context.Context, userID string, status string, limit, offset int) ([]models.Book, int, error) {
	var all []models.Book
	for _, b := range r.books {
		if b.UserID != userID {
			continue
		}
		if status != "" && string(b.Status) != status {
			continue
		}
		all = append(all, *b)
	}
	total := len(all)
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}

func (r *fakeBookRepo) ListAll(_ context.Context, userID string) ([]models.Book, error) {
	var all []models.Book
	for _, b := range r.books {
		if b.UserID == userID {
			all = append(all, *b)
		}
	}
	return all, nil
}

func (r *fakeBookRepo) Update(_ context.Context, book *models.Book) error {
	if _, ok := r.books[book.ID]; !ok {
		return models.NewHTTPError(models.ErrCodeNotFound, "book not found", 404, nil)
	}
	cp := *book
	r.books[book.ID] = &cp
	return nil
}

func (r *fakeBookRepo) UpdateStatus(_ context.Context, book *models.Book) error {
	stored, ok := r.books[book.ID]
	if !ok {
		return models.NewHTTPError(models.ErrCodeNotFound, "book not found", 404, nil)
	}
	stored.Status = book.Status
	stored.DateCompleted = book.DateCompleted
	return nil
}

func (r *fakeBookRepo) Delete(_ context.Context, userID, id string) error {
	b, ok := r.books[id]
	if !ok || b.UserID != userID {
		return models.NewHTTPError(models.ErrCodeNotFound, "book not found", 404, nil)
	}
	delete(r.books, id)
	return nil
}

func (r *fakeBookRepo) WithTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

func (r *fakeBookRepo) ApplyProgressTx(_ context.Context, _ pgx.Tx, userID, bookID string, pagesRead int) (*models.Book, error) {
	b, ok := r.books[bookID]
	if !ok || b.UserID != userID {
		return nil, models.NewHTTPError(models.ErrCodeNotFound, "book not found", 404, nil)
	}
	current := 0
	if b.CurrentPage != nil {
		current = *b.CurrentPage
	}
	current += pagesRead
	if b.TotalPages != nil && current > *b.TotalPages {
		current = *b.TotalPages
	}
	b.CurrentPage = &current
	cp := *b
	return &cp, nil
}

type fakeReadingRepo struct {
	entries map[string]models.DailyReadingEntry // userID|bookID|date
}

func newFakeReadingRepo() *fakeReadingRepo {
	return &fakeReadingRepo{entries: map[string]models.DailyReadingEntry{}}
}

func entryKey(e *models.DailyReadingEntry) string {
	return e.UserID + "|" + e.BookID + "|" + e.Date.Format("2006-01-02")
}

func (r *fakeReadingRepo) UpsertTx(_ context.Context, _ pgx.Tx, entry *models.DailyReadingEntry) error {
	r.entries[entryKey(entry)] = *entry
	return nil
}

func (r *fakeReadingRepo) ListByUser(_ context.Context, userID string) ([]models.DailyReadingEntry, error) {
	var out []models.DailyReadingEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeReadingRepo) ListByBook(_ context.Context, userID, bookID string) ([]models.DailyReadingEntry, error) {
	var out []models.DailyReadingEntry
	for _, e := range r.entries {
		if e.UserID == userID && e.BookID == bookID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeSettingsRepo struct {
	settings map[string]*models.UserSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: map[string]*models.UserSettings{}}
}

func (r *fakeSettingsRepo) Get(_ context.Context, userID string) (*models.UserSettings, error) {
	if s, ok := r.settings[userID]; ok {
		cp := *s
		return &cp, nil
	}
	return &models.UserSettings{UserID: userID, FavoriteGenres: []string{}}, nil
}

func (r *fakeSettingsRepo) Upsert(_ context.Context, settings *models.UserSettings) error {
	cp := *settings
	cp.UpdatedAt = time.Now()
	r.settings[settings.UserID] = &cp
	return nil
}

type fakeSearcher struct {
	results []models.RawBookRecord
	err     error
	queries []string
}

func (s *fakeSearcher) Search(_ context.Context, query string) ([]models.RawBookRecord, error) {
	s.queries = append(s.queries, query)
	return s.results, s.err
}

func (s *fakeSearcher) SearchByAuthor(_ context.Context, author string) ([]models.RawBookRecord, error) {
	s.queries = append(s.queries, "inauthor:"+author)
	return s.results, s.err
}
