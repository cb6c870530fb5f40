package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hridaya423/bookify/pkg/models"
)

// DailyReadingRepository handles the per-day reading log. The log is
// keyed by (user_id, book_id, date): re-logging a day replaces the
// stored value, it never accumulates.
type DailyReadingRepository interface {
	UpsertTx(ctx context.Context, tx pgx.Tx, entry *models.DailyReadingEntry) error
	ListByUser(ctx context.Context, userID string) ([]models.DailyReadingEntry, error)
	ListByBook(ctx context.Context, userID, bookID string) ([]models.DailyReadingEntry, error)
}

type dailyReadingRepository struct {
	pool *pgxpool.Pool
}

// NewDailyReadingRepository creates a new PostgreSQL reading-log repository
func NewDailyReadingRepository(pool *pgxpool.Pool) DailyReadingRepository {
	return &dailyReadingRepository{pool: pool}
}

// UpsertTx writes one day's entry inside the caller's transaction so
// it commits together with the book's current_page update.
func (r *dailyReadingRepository) UpsertTx(ctx context.Context, tx pgx.Tx, entry *models.DailyReadingEntry) error {
	query := `
		INSERT INTO daily_reading (user_id, book_id, date, pages_read)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, book_id, date)
		DO UPDATE SET pages_read = EXCLUDED.pages_read
	`

	_, err := tx.Exec(ctx, query,
		entry.UserID,
		entry.BookID,
		entry.Date,
		entry.PagesRead,
	)
	if err != nil {
		return mapDBError(err, "upsert_daily_reading")
	}
	return nil
}

// ListByUser returns the user's full reading log, oldest first, as a
// snapshot for streak and monthly computations.
func (r *dailyReadingRepository) ListByUser(ctx context.Context, userID string) ([]models.DailyReadingEntry, error) {
	query := `
		SELECT user_id, book_id, date, pages_read
		FROM daily_reading
		WHERE user_id = $1
		ORDER BY date, book_id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapDBError(err, "list_daily_reading")
	}
	defer rows.Close()

	return collectEntries(rows)
}

// ListByBook returns the log for a single book, oldest first
func (r *dailyReadingRepository) ListByBook(ctx context.Context, userID, bookID string) ([]models.DailyReadingEntry, error) {
	query := `
		SELECT user_id, book_id, date, pages_read
		FROM daily_reading
		WHERE user_id = $1 AND book_id = $2
		ORDER BY date
	`

	rows, err := r.pool.Query(ctx, query, userID, bookID)
	if err != nil {
		return nil, mapDBError(err, "list_daily_reading_by_book")
	}
	defer rows.Close()

	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]models.DailyReadingEntry, error) {
	var entries []models.DailyReadingEntry
	for rows.Next() {
		var e models.DailyReadingEntry
		if err := rows.Scan(&e.UserID, &e.BookID, &e.Date, &e.PagesRead); err != nil {
			return nil, mapDBError(err, "scan_daily_reading")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapDBError(err, "iterate_daily_reading")
	}
	return entries, nil
}
