package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hridaya423/bookify/pkg/models"
)

const bookColumns = `id, user_id, title, author, genres, status, favorite, cover_url,
		total_pages, current_page, is_part_of_series, series_name, series_order,
		series_total_books, date_added, date_completed`

// BookRepository handles book persistence. All reads and writes are
// scoped to a single user; cross-user access is a not-found, never a
// leak.
type BookRepository interface {
	Create(ctx context.Context, book *models.Book) error
	GetByID(ctx context.Context, userID, id string) (*models.Book, error)
	List(ctx context.Context, userID string, status string, limit, offset int) ([]models.Book, int, error)
	ListAll(ctx context.Context, userID string) ([]models.Book, error)
	Update(ctx context.Context, book *models.Book) error
	UpdateStatus(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, userID, id string) error

	// Transaction support
	WithTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error
	ApplyProgressTx(ctx context.Context, tx pgx.Tx, userID, bookID string, pagesRead int) (*models.Book, error)
}

type bookRepository struct {
	pool *pgxpool.Pool
}

// NewBookRepository creates a new PostgreSQL book repository
func NewBookRepository(pool *pgxpool.Pool) BookRepository {
	return &bookRepository{pool: pool}
}

// Create inserts a new book into the user's library
func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	query := `
		INSERT INTO books (id, user_id, title, author, genres, status, favorite, cover_url,
			total_pages, current_page, is_part_of_series, series_name, series_order,
			series_total_books, date_added)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, COALESCE($15, CURRENT_TIMESTAMP))
		RETURNING date_added
	`

	err := r.pool.QueryRow(ctx, query,
		book.ID,
		book.UserID,
		book.Title,
		book.Author,
		book.Genres,
		string(book.Status),
		book.Favorite,
		book.CoverURL,
		book.TotalPages,
		book.CurrentPage,
		book.IsPartOfSeries,
		book.SeriesName,
		book.SeriesOrder,
		book.SeriesTotal,
		book.DateAdded,
	).Scan(&book.DateAdded)

	if err != nil {
		return mapDBError(err, "create_book")
	}
	return nil
}

// GetByID retrieves one of the user's books
func (r *bookRepository) GetByID(ctx context.Context, userID, id string) (*models.Book, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM books
		WHERE id = $1 AND user_id = $2
	`, bookColumns)

	book, err := scanBook(r.pool.QueryRow(ctx, query, id, userID))
	if err == pgx.ErrNoRows {
		return nil, models.NewHTTPError(models.ErrCodeNotFound, "book not found", 404, err)
	}
	if err != nil {
		return nil, mapDBError(err, "get_book_by_id")
	}
	return book, nil
}

// List returns a page of the user's library, optionally filtered by
// shelf status, newest first.
func (r *bookRepository) List(ctx context.Context, userID string, status string, limit, offset int) ([]models.Book, int, error) {
	where := "WHERE user_id = $1"
	args := []interface{}{userID}
	if status != "" {
		where += " AND status = $2"
		args = append(args, status)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM books " + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, mapDBError(err, "count_books")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM books
		%s
		ORDER BY date_added DESC, id
		LIMIT $%d OFFSET $%d
	`, bookColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapDBError(err, "list_books")
	}
	defer rows.Close()

	books, err := collectBooks(rows)
	if err != nil {
		return nil, 0, mapDBError(err, "list_books")
	}
	return books, total, nil
}

// ListAll returns the user's entire library in one snapshot for the
// statistics engine.
func (r *bookRepository) ListAll(ctx context.Context, userID string) ([]models.Book, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM books
		WHERE user_id = $1
		ORDER BY date_added DESC, id
	`, bookColumns)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapDBError(err, "list_all_books")
	}
	defer rows.Close()

	books, err := collectBooks(rows)
	if err != nil {
		return nil, mapDBError(err, "list_all_books")
	}
	return books, nil
}

// Update persists the full mutable attribute set of a book
func (r *bookRepository) Update(ctx context.Context, book *models.Book) error {
	query := `
		UPDATE books
		SET title = $3, author = $4, genres = $5, favorite = $6, cover_url = $7,
			total_pages = $8, current_page = $9, is_part_of_series = $10,
			series_name = $11, series_order = $12, series_total_books = $13
		WHERE id = $1 AND user_id = $2
		RETURNING id
	`
	var updatedID string

	err := r.pool.QueryRow(ctx, query,
		book.ID,
		book.UserID,
		book.Title,
		book.Author,
		book.Genres,
		book.Favorite,
		book.CoverURL,
		book.TotalPages,
		book.CurrentPage,
		book.IsPartOfSeries,
		book.SeriesName,
		book.SeriesOrder,
		book.SeriesTotal,
	).Scan(&updatedID)

	if err == pgx.ErrNoRows {
		return models.NewHTTPError(models.ErrCodeNotFound, "book not found", 404, err)
	}
	if err != nil {
		return mapDBError(err, "update_book")
	}
	return nil
}

// UpdateStatus writes the shelf status together with date_completed,
// which the transition rules derive from the old and new status.
func (r *bookRepository) UpdateStatus(ctx context.Context, book *models.Book) error {
	query := `
		UPDATE books
		SET status = $3, date_completed = $4
		WHERE id = $1 AND user_id = $2
		RETURNING id
	`
	var updatedID string

	err := r.pool.QueryRow(ctx, query,
		book.ID,
		book.UserID,
		string(book.Status),
		book.DateCompleted,
	).Scan(&updatedID)

	if err == pgx.ErrNoRows {
		return models.NewHTTPError(models.ErrCodeNotFound, "book not found", 404, err)
	}
	if err != nil {
		return mapDBError(err, "update_book_status")
	}
	return nil
}

// Delete removes a book and its daily reading log (FK cascade)
func (r *bookRepository) Delete(ctx context.Context, userID, id string) error {
	query := `
		DELETE FROM books WHERE id = $1 AND user_id = $2
		RETURNING id
	`
	var deletedID string

	err := r.pool.QueryRow(ctx, query, id, userID).Scan(&deletedID)
	if err == pgx.ErrNoRows {
		return models.NewHTTPError(models.ErrCodeNotFound, "book not found", 404, err)
	}
	if err != nil {
		return mapDBError(err, "delete_book")
	}
	return nil
}

// WithTransaction executes a function within a database transaction
func (r *bookRepository) WithTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapDBError(err, "begin_transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback(ctx)
		return err
	}

	return tx.Commit(ctx)
}

// ApplyProgressTx advances current_page by pagesRead inside the
// caller's transaction, clamping to total_pages when set. Pairs with
// DailyReadingRepository.UpsertTx so the log entry and the derived
// page position commit or roll back together.
func (r *bookRepository) ApplyProgressTx(ctx context.Context, tx pgx.Tx, userID, bookID string, pagesRead int) (*models.Book, error) {
	query := fmt.Sprintf(`
		UPDATE books
		SET current_page = CASE
			WHEN total_pages IS NOT NULL THEN LEAST(COALESCE(current_page, 0) + $3, total_pages)
			ELSE COALESCE(current_page, 0) + $3
		END
		WHERE id = $1 AND user_id = $2
		RETURNING %s
	`, bookColumns)

	book, err := scanBook(tx.QueryRow(ctx, query, bookID, userID, pagesRead))
	if err == pgx.ErrNoRows {
		return nil, models.NewHTTPError(models.ErrCodeNotFound, "book not found", 404, err)
	}
	if err != nil {
		return nil, mapDBError(err, "apply_progress")
	}
	return book, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBook(row rowScanner) (*models.Book, error) {
	book := &models.Book{}
	var statusStr string

	err := row.Scan(
		&book.ID,
		&book.UserID,
		&book.Title,
		&book.Author,
		&book.Genres,
		&statusStr,
		&book.Favorite,
		&book.CoverURL,
		&book.TotalPages,
		&book.CurrentPage,
		&book.IsPartOfSeries,
		&book.SeriesName,
		&book.SeriesOrder,
		&book.SeriesTotal,
		&book.DateAdded,
		&book.DateCompleted,
	)
	if err != nil {
		return nil, err
	}

	book.Status = models.BookStatus(strings.TrimSpace(statusStr))
	return book, nil
}

func collectBooks(rows pgx.Rows) ([]models.Book, error) {
	var books []models.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *book)
	}
	return books, rows.Err()
}
