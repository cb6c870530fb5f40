package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/hridaya423/bookify/internal/ai"
	"github.com/hridaya423/bookify/internal/repository"
	"github.com/hridaya423/bookify/pkg/models"
)

// recentBookLimit bounds how much reading history goes into the prompt
const recentBookLimit = 10

// Recommender is the generation collaborator behind RecommendationService
type Recommender interface {
	IsEnabled() bool
	Recommend(ctx context.Context, favoriteGenres []string, recentBooks []models.Book, count int) ([]ai.Recommendation, error)
}

// RecommendationService suggests books from the user's taste profile
type RecommendationService interface {
	GetRecommendations(ctx context.Context, userID string, count int) ([]ai.Recommendation, error)
}

type recommendationService struct {
	bookRepo     repository.BookRepository
	settingsRepo repository.UserSettingsRepository
	recommender  Recommender
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(
	bookRepo repository.BookRepository,
	settingsRepo repository.UserSettingsRepository,
	recommender Recommender,
) RecommendationService {
	return &recommendationService{
		bookRepo:     bookRepo,
		settingsRepo: settingsRepo,
		recommender:  recommender,
	}
}

// GetRecommendations builds a taste profile from settings and the
// most recently finished books, then asks the generation model.
func (s *recommendationService) GetRecommendations(ctx context.Context, userID string, count int) ([]ai.Recommendation, error) {
	if s.recommender == nil || !s.recommender.IsEnabled() {
		return nil, models.NewHTTPError(models.ErrCodeServiceUnavailable, "recommendations are not configured", 503, nil)
	}
	if count <= 0 || count > 10 {
		count = 5
	}

	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	books, err := s.bookRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load library: %w", err)
	}

	var finished []models.Book
	for _, b := range books {
		if b.Status == models.BookStatusPast {
			finished = append(finished, b)
		}
	}
	sort.SliceStable(finished, func(i, j int) bool {
		di, dj := finished[i].DateCompleted, finished[j].DateCompleted
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.After(*dj)
		}
	})
	if len(finished) > recentBookLimit {
		finished = finished[:recentBookLimit]
	}

	recs, err := s.recommender.Recommend(ctx, settings.FavoriteGenres, finished, count)
	if err != nil {
		return nil, fmt.Errorf("recommendation request failed: %w", err)
	}
	return recs, nil
}
