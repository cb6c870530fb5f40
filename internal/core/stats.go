package core

import (
	"context"
	"fmt"
	"time"

	"github.com/hridaya423/bookify/internal/cache"
	"github.com/hridaya423/bookify/internal/repository"
	"github.com/hridaya423/bookify/internal/stats"
	"github.com/hridaya423/bookify/pkg/models"
)

// StatsService computes reading statistics over a full library
// snapshot. Results are cached per user; mutating operations call
// Invalidate.
type StatsService interface {
	GetStatistics(ctx context.Context, userID string) (*models.ReadingStatistics, error)
	Invalidate(ctx context.Context, userID string)
}

type statsService struct {
	bookRepo     repository.BookRepository
	readingRepo  repository.DailyReadingRepository
	settingsRepo repository.UserSettingsRepository
	cache        cache.JSONCache
	cacheTTL     time.Duration
}

// NewStatsService creates a new statistics service
func NewStatsService(
	bookRepo repository.BookRepository,
	readingRepo repository.DailyReadingRepository,
	settingsRepo repository.UserSettingsRepository,
	jsonCache cache.JSONCache,
	cacheTTL time.Duration,
) StatsService {
	if jsonCache == nil {
		jsonCache = cache.NoopJSONCache{}
	}
	return &statsService{
		bookRepo:     bookRepo,
		readingRepo:  readingRepo,
		settingsRepo: settingsRepo,
		cache:        jsonCache,
		cacheTTL:     cacheTTL,
	}
}

func statsCacheKey(userID string) string {
	return "stats:" + userID
}

// GetStatistics returns the user's statistics, from cache when fresh
func (s *statsService) GetStatistics(ctx context.Context, userID string) (*models.ReadingStatistics, error) {
	var cached models.ReadingStatistics
	if hit, err := s.cache.GetJSON(ctx, statsCacheKey(userID), &cached); err == nil && hit {
		return &cached, nil
	}

	books, err := s.bookRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load library: %w", err)
	}
	entries, err := s.readingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reading log: %w", err)
	}
	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	result := stats.Compute(books, entries, *settings, time.Now())

	// Cache failures are not user-visible.
	_ = s.cache.SetJSON(ctx, statsCacheKey(userID), result, s.cacheTTL)
	return &result, nil
}

// Invalidate drops the cached statistics after a library mutation
func (s *statsService) Invalidate(ctx context.Context, userID string) {
	_ = s.cache.Delete(ctx, statsCacheKey(userID))
}
