package core

import (
	"context"
	"fmt"

	"github.com/hridaya423/bookify/internal/repository"
	"github.com/hridaya423/bookify/pkg/models"
)

// SettingsService manages per-user preferences
type SettingsService interface {
	Get(ctx context.Context, userID string) (*models.UserSettings, error)
	Update(ctx context.Context, userID string, req models.UpdateSettingsRequest) (*models.UserSettings, error)
}

type settingsService struct {
	settingsRepo repository.UserSettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.UserSettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

// Get returns the user's settings, defaults when never saved
func (s *settingsService) Get(ctx context.Context, userID string) (*models.UserSettings, error) {
	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// Update applies a partial settings update and persists the result
func (s *settingsService) Update(ctx context.Context, userID string, req models.UpdateSettingsRequest) (*models.UserSettings, error) {
	if req.ReadingGoal != nil && *req.ReadingGoal < 0 {
		return nil, fmt.Errorf("reading_goal must not be negative")
	}

	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if req.FavoriteGenres != nil {
		settings.FavoriteGenres = req.FavoriteGenres
	}
	if req.ReadingGoal != nil {
		settings.ReadingGoal = *req.ReadingGoal
	}
	settings.UserID = userID

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings, nil
}
