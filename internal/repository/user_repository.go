package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hridaya423/bookify/pkg/models"
)

// UserRepository handles user data persistence
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, COALESCE($4, CURRENT_TIMESTAMP))
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.CreatedAt,
	).Scan(&user.CreatedAt)

	if err != nil {
		return mapDBError(err, "create_user")
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	user := &models.User{}

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, models.NewHTTPError(models.ErrCodeNotFound, "user not found", 404, err)
	}
	if err != nil {
		return nil, mapDBError(err, "get_user_by_id")
	}
	return user, nil
}

// GetByUsername retrieves a user by username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`
	user := &models.User{}

	err := r.pool.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, models.NewHTTPError(models.ErrCodeNotFound, "user not found", 404, err)
	}
	if err != nil {
		return nil, mapDBError(err, "get_user_by_username")
	}
	return user, nil
}

// UsernameExists checks if a username is already taken
func (r *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`
	var exists bool

	err := r.pool.QueryRow(ctx, query, username).Scan(&exists)
	if err != nil {
		return false, mapDBError(err, "check_username_exists")
	}
	return exists, nil
}

// Delete removes a user and, via FK cascade, their library
func (r *userRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM users WHERE id = $1
		RETURNING id
	`
	var deletedID string

	err := r.pool.QueryRow(ctx, query, id).Scan(&deletedID)
	if err == pgx.ErrNoRows {
		return models.NewHTTPError(models.ErrCodeNotFound, "user not found", 404, err)
	}
	if err != nil {
		return mapDBError(err, "delete_user")
	}
	return nil
}

// mapDBError maps database errors to API error responses
func mapDBError(err error, operation string) error {
	if err == pgx.ErrNoRows {
		return models.NewHTTPError(models.ErrCodeNotFound, "resource not found", 404, err)
	}

	if pgErr, ok := err.(*pgconn.PgError); ok {
		switch pgErr.Code {
		case "23505": // unique_violation
			if operation == "create_user" {
				return models.NewHTTPError(models.ErrCodeConflict, "username already exists", 409, err)
			}
			return models.NewHTTPError(models.ErrCodeConflict, "resource already exists", 409, err)
		case "23503": // foreign_key_violation
			return models.NewHTTPError(models.ErrCodeBadRequest, "invalid relationship", 400, err)
		case "22P02": // invalid_text_representation
			return models.NewHTTPError(models.ErrCodeBadRequest, "invalid input format", 400, err)
		}
	}

	return models.NewHTTPError(models.ErrCodeInternal, "database error during "+operation, 500, err)
}
