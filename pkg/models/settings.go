package models

import "time"

// UserSettings represents per-user preferences - matches schema.sql.
// Created lazily on first access.
type UserSettings struct {
	UserID         string    `json:"user_id" db:"user_id"`
	FavoriteGenres []string  `json:"favorite_genres" db:"favorite_genres"` // user-entry order, not ranked
	ReadingGoal    int       `json:"reading_goal" db:"reading_goal"`       // books per calendar year
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// UpdateSettingsRequest upserts user settings
type UpdateSettingsRequest struct {
	FavoriteGenres []string `json:"favorite_genres"`
	ReadingGoal    *int     `json:"reading_goal" validate:"omitempty,min=0"`
}
