package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hridaya423/bookify/internal/ai"
	"github.com/hridaya423/bookify/internal/cache"
	"github.com/hridaya423/bookify/pkg/models"
)

func TestStatsServiceComputesFromSnapshot(t *testing.T) {
	bookRepo := newFakeBookRepo()
	readingRepo := newFakeReadingRepo()
	settingsRepo := newFakeSettingsRepo()

	completed := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)
	bookRepo.books["b1"] = &models.Book{
		ID: "b1", UserID: testUser, Title: "Dune", Author: "Frank Herbert",
		Status: models.BookStatusPast, DateCompleted: &completed,
	}
	bookRepo.books["b2"] = &models.Book{
		ID: "b2", UserID: testUser, Title: "The Hobbit", Author: "J.R.R. Tolkien",
		Status: models.BookStatusCurrent,
	}

	svc := NewStatsService(bookRepo, readingRepo, settingsRepo, cache.NoopJSONCache{}, time.Minute)
	result, err := svc.GetStatistics(context.Background(), testUser)

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalBooks)
	assert.Equal(t, 1, result.CompletedBooks)
	assert.Equal(t, 1, result.CurrentBooks)
	assert.Equal(t, 50, result.CompletionRate)
}

func TestStatsServiceEmptyLibrary(t *testing.T) {
	svc := NewStatsService(newFakeBookRepo(), newFakeReadingRepo(), newFakeSettingsRepo(), cache.NoopJSONCache{}, time.Minute)

	result, err := svc.GetStatistics(context.Background(), testUser)

	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalBooks)
	assert.Equal(t, 0, result.CompletionRate)
}

func TestSeriesServiceSearch(t *testing.T) {
	searcher := &fakeSearcher{results: []models.RawBookRecord{
		{Title: "Mistborn: The Final Empire", Authors: []string{"Brandon Sanderson"}},
		{Title: "Mistborn: The Well of Ascension", Authors: []string{"Brandon Sanderson"}},
	}}
	svc := NewSeriesService(newFakeBookRepo(), searcher)

	results, err := svc.Search(context.Background(), "mistborn")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Mistborn", results[0].SeriesName)

	results, err = svc.Search(context.Background(), "  ")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSeriesServiceSearchPropagatesUpstreamError(t *testing.T) {
	searcher := &fakeSearcher{err: models.ErrUpstreamRateLimited}
	svc := NewSeriesService(newFakeBookRepo(), searcher)

	_, err := svc.Search(context.Background(), "mistborn")

	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrUpstreamRateLimited))
}

func TestSeriesServiceFindMissing(t *testing.T) {
	bookRepo := newFakeBookRepo()
	bookRepo.books["b1"] = &models.Book{
		ID: "b1", UserID: testUser,
		Title: "Mistborn: The Final Empire", Author: "Brandon Sanderson",
		IsPartOfSeries: true, SeriesName: "Mistborn",
	}
	searcher := &fakeSearcher{results: []models.RawBookRecord{
		{Title: "Mistborn: The Final Empire", Authors: []string{"Brandon Sanderson"}, PublishedDate: "2006"},
		{Title: "Mistborn: The Hero of Ages", Authors: []string{"Brandon Sanderson"}, PublishedDate: "2008"},
	}}
	svc := NewSeriesService(bookRepo, searcher)

	missing, err := svc.FindMissing(context.Background(), testUser, "Mistborn")

	require.NoError(t, err)
	assert.Equal(t, []string{"Mistborn: The Hero of Ages"}, missing)
	require.NotEmpty(t, searcher.queries)
	assert.Equal(t, "inauthor:Brandon Sanderson", searcher.queries[0])
}

func TestSeriesServiceFindMissingUnknownSeries(t *testing.T) {
	searcher := &fakeSearcher{}
	svc := NewSeriesService(newFakeBookRepo(), searcher)

	missing, err := svc.FindMissing(context.Background(), testUser, "Nonexistent")

	require.NoError(t, err)
	assert.Empty(t, missing)
	// No owned volumes means no external call.
	assert.Empty(t, searcher.queries)
}

func TestSettingsServiceUpdate(t *testing.T) {
	settingsRepo := newFakeSettingsRepo()
	svc := NewSettingsService(settingsRepo)

	goal := 24
	updated, err := svc.Update(context.Background(), testUser, models.UpdateSettingsRequest{
		FavoriteGenres: []string{"Fantasy", "Sci-Fi"},
		ReadingGoal:    &goal,
	})
	require.NoError(t, err)
	assert.Equal(t, 24, updated.ReadingGoal)

	// Partial update keeps the other field.
	loaded, err := svc.Update(context.Background(), testUser, models.UpdateSettingsRequest{
		FavoriteGenres: []string{"Horror"},
	})
	require.NoError(t, err)
	assert.Equal(t, 24, loaded.ReadingGoal)
	assert.Equal(t, []string{"Horror"}, loaded.FavoriteGenres)

	negative := -1
	_, err = svc.Update(context.Background(), testUser, models.UpdateSettingsRequest{ReadingGoal: &negative})
	assert.Error(t, err)
}

func TestSettingsServiceDefaults(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	settings, err := svc.Get(context.Background(), testUser)

	require.NoError(t, err)
	assert.Equal(t, 0, settings.ReadingGoal)
	assert.Empty(t, settings.FavoriteGenres)
}

type fakeRecommender struct {
	enabled bool
	recs    []ai.Recommendation
	genres  []string
	recent  []models.Book
}

func (f *fakeRecommender) IsEnabled() bool { return f.enabled }

func (f *fakeRecommender) Recommend(_ context.Context, genres []string, recent []models.Book, _ int) ([]ai.Recommendation, error) {
	f.genres = genres
	f.recent = recent
	return f.recs, nil
}

func TestRecommendationServiceDisabled(t *testing.T) {
	svc := NewRecommendationService(newFakeBookRepo(), newFakeSettingsRepo(), &fakeRecommender{enabled: false})

	_, err := svc.GetRecommendations(context.Background(), testUser, 5)

	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 503, appErr.StatusCode)
}

func TestRecommendationServiceBuildsProfile(t *testing.T) {
	bookRepo := newFakeBookRepo()
	settingsRepo := newFakeSettingsRepo()
	settingsRepo.settings[testUser] = &models.UserSettings{
		UserID: testUser, FavoriteGenres: []string{"Fantasy"}, ReadingGoal: 12,
	}

	oldDate := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	newDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	bookRepo.books["b1"] = &models.Book{
		ID: "b1", UserID: testUser, Title: "Old Read", Author: "A",
		Status: models.BookStatusPast, DateCompleted: &oldDate,
	}
	bookRepo.books["b2"] = &models.Book{
		ID: "b2", UserID: testUser, Title: "New Read", Author: "B",
		Status: models.BookStatusPast, DateCompleted: &newDate,
	}
	bookRepo.books["b3"] = &models.Book{
		ID: "b3", UserID: testUser, Title: "Unfinished", Author: "C",
		Status: models.BookStatusCurrent,
	}

	rec := &fakeRecommender{enabled: true, recs: []ai.Recommendation{{Title: "Elantris", Author: "Brandon Sanderson"}}}
	svc := NewRecommendationService(bookRepo, settingsRepo, rec)

	recs, err := svc.GetRecommendations(context.Background(), testUser, 5)

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, []string{"Fantasy"}, rec.genres)
	require.Len(t, rec.recent, 2)
	// Most recently finished first; unfinished books stay out.
	assert.Equal(t, "New Read", rec.recent[0].Title)
	assert.Equal(t, "Old Read", rec.recent[1].Title)
}
