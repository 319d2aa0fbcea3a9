package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore-catalog/internal/domains/book"
	"bookstore-catalog/pkg/cache"
	"bookstore-catalog/pkg/database"
)

// postgresRepository implements book.Repository with pgx and a
// read-through cache on by-isbn lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	bookCacheKeyPrefix      = "book:"
	bookAuthorListKeyPrefix = "books:author:"
	cacheTTL                = 15 * time.Minute
)

func bookCacheKey(isbn string) string {
	return bookCacheKeyPrefix + isbn
}

const bookColumns = `isbn, title, description, image, author_id, author_name, author_image`

func scanBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	err := row.Scan(
		&b.ISBN,
		&b.Title,
		&b.Description,
		&b.Image,
		&b.Author.ID,
		&b.Author.Name,
		&b.Author.Image,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) GetByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	cacheKey := bookCacheKey(isbn)

	var cached book.Book
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + bookColumns + ` FROM books WHERE isbn = $1`

	b, err := scanBook(r.pool.QueryRow(ctx, query, isbn))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.NotFoundError(isbn)
		}
		return nil, fmt.Errorf("failed to get book by isbn: %w", err)
	}

	// Cache failures are non-fatal.
	_ = r.cache.Set(ctx, cacheKey, b, cacheTTL)

	return b, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY isbn`
	return r.queryBooks(ctx, query)
}

func (r *postgresRepository) GetByAuthor(ctx context.Context, authorID int64) ([]book.Book, error) {
	cacheKey := bookAuthorListKeyPrefix + strconv.FormatInt(authorID, 10)

	var cached []book.Book
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `SELECT ` + bookColumns + ` FROM books WHERE author_id = $1 ORDER BY isbn`
	books, err := r.queryBooks(ctx, query, authorID)
	if err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, cacheKey, books, cacheTTL)

	return books, nil
}

func (r *postgresRepository) queryBooks(ctx context.Context, query string, args ...interface{}) ([]book.Book, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) Exists(ctx context.Context, isbn string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1)`, isbn).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}

	return exists, nil
}

// Upsert inserts or replaces the whole row. The author re-check and the
// upsert run in one transaction so a concurrent author delete between
// the service's resolution and this write cannot persist a reference to
// a row that was never there.
func (r *postgresRepository) Upsert(ctx context.Context, b *book.Book) (*book.Book, error) {
	saved, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*book.Book, error) {
		var authorExists bool
		err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, b.Author.ID).Scan(&authorExists)
		if err != nil {
			return nil, fmt.Errorf("failed to re-check author: %w", err)
		}
		if !authorExists {
			return nil, book.MissingAuthorError(b.Author.ID)
		}

		query := `
            INSERT INTO books (isbn, title, description, image, author_id, author_name, author_image)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
            ON CONFLICT (isbn) DO UPDATE SET
                title = EXCLUDED.title,
                description = EXCLUDED.description,
                image = EXCLUDED.image,
                author_id = EXCLUDED.author_id,
                author_name = EXCLUDED.author_name,
                author_image = EXCLUDED.author_image
            RETURNING ` + bookColumns

		return scanBook(tx.QueryRow(
			ctx,
			query,
			b.ISBN,
			b.Title,
			b.Description,
			b.Image,
			b.Author.ID,
			b.Author.Name,
			b.Author.Image,
		))
	})
	if err != nil {
		return nil, err
	}

	r.invalidateBookCache(ctx, b.ISBN)

	return saved, nil
}

// Save replaces an existing row without touching the authors table: a
// patched book keeps its snapshot even after the author was deleted.
func (r *postgresRepository) Save(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        UPDATE books
        SET title = $2, description = $3, image = $4,
            author_id = $5, author_name = $6, author_image = $7
        WHERE isbn = $1
        RETURNING ` + bookColumns

	saved, err := scanBook(r.pool.QueryRow(
		ctx,
		query,
		b.ISBN,
		b.Title,
		b.Description,
		b.Image,
		b.Author.ID,
		b.Author.Name,
		b.Author.Image,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.NotFoundError(b.ISBN)
		}
		return nil, fmt.Errorf("failed to save book: %w", err)
	}

	r.invalidateBookCache(ctx, b.ISBN)

	return saved, nil
}

func (r *postgresRepository) Delete(ctx context.Context, isbn string) error {
	// Idempotent: zero affected rows is still success.
	if _, err := r.pool.Exec(ctx, `DELETE FROM books WHERE isbn = $1`, isbn); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	_ = r.cache.Delete(ctx, bookCacheKey(isbn))
	_ = r.cache.DeletePattern(ctx, bookAuthorListKeyPrefix+"*")

	return nil
}

// invalidateBookCache drops the by-isbn entry and every cached author
// list. An upsert can move a book between authors, so the previous
// author's list is stale too.
func (r *postgresRepository) invalidateBookCache(ctx context.Context, isbn string) {
	_ = r.cache.Delete(ctx, bookCacheKey(isbn))
	_ = r.cache.DeletePattern(ctx, bookAuthorListKeyPrefix+"*")
}
