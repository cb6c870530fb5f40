package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hridaya423/bookify/pkg/models"
)

// UserSettingsRepository handles per-user preferences. Rows are
// created lazily: Get falls back to defaults for users who never
// saved settings.
type UserSettingsRepository interface {
	Get(ctx context.Context, userID string) (*models.UserSettings, error)
	Upsert(ctx context.Context, settings *models.UserSettings) error
}

type userSettingsRepository struct {
	pool *pgxpool.Pool
}

// NewUserSettingsRepository creates a new PostgreSQL settings repository
func NewUserSettingsRepository(pool *pgxpool.Pool) UserSettingsRepository {
	return &userSettingsRepository{pool: pool}
}

// Get returns the user's settings, or in-memory defaults when no row
// exists yet.
func (r *userSettingsRepository) Get(ctx context.Context, userID string) (*models.UserSettings, error) {
	query := `
		SELECT user_id, favorite_genres, reading_goal, created_at, updated_at
		FROM user_settings
		WHERE user_id = $1
	`
	settings := &models.UserSettings{}

	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.FavoriteGenres,
		&settings.ReadingGoal,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return &models.UserSettings{
			UserID:         userID,
			FavoriteGenres: []string{},
			ReadingGoal:    0,
		}, nil
	}
	if err != nil {
		return nil, mapDBError(err, "get_user_settings")
	}
	return settings, nil
}

// Upsert writes the full settings row, inserting on first save
func (r *userSettingsRepository) Upsert(ctx context.Context, settings *models.UserSettings) error {
	query := `
		INSERT INTO user_settings (user_id, favorite_genres, reading_goal, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id)
		DO UPDATE SET favorite_genres = EXCLUDED.favorite_genres,
			reading_goal = EXCLUDED.reading_goal,
			updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		settings.UserID,
		settings.FavoriteGenres,
		settings.ReadingGoal,
	).Scan(&settings.CreatedAt, &settings.UpdatedAt)

	if err != nil {
		return mapDBError(err, "upsert_user_settings")
	}
	return nil
}
