package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore-catalog/internal/domains/author"
	"bookstore-catalog/pkg/cache"
)

// postgresRepository implements author.Repository with pgx and a
// read-through cache on single-row lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	authorCacheKeyPrefix = "author:"
	cacheTTL             = 15 * time.Minute
)

func authorCacheKey(id int64) string {
	return authorCacheKeyPrefix + strconv.FormatInt(id, 10)
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, age, description, image)
        VALUES ($1, $2, $3, $4)
        RETURNING id, name, age, description, image
    `

	var created author.Author
	err := r.pool.QueryRow(
		ctx,
		query,
		a.Name,
		a.Age,
		a.Description,
		a.Image,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Age,
		&created.Description,
		&created.Image,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	cacheKey := authorCacheKey(id)

	var a author.Author
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `
        SELECT id, name, age, description, image
        FROM authors
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.Age,
		&a.Description,
		&a.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.NotFoundError(id)
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	// Cache failures are non-fatal.
	_ = r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return &a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	query := `
        SELECT id, name, age, description, image
        FROM authors
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Age, &a.Description, &a.Image); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) Save(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET name = $1, age = $2, description = $3, image = $4
        WHERE id = $5
        RETURNING id, name, age, description, image
    `

	var updated author.Author
	err := r.pool.QueryRow(
		ctx,
		query,
		a.Name,
		a.Age,
		a.Description,
		a.Image,
		a.ID,
	).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Age,
		&updated.Description,
		&updated.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.NotFoundError(a.ID)
		}
		return nil, fmt.Errorf("failed to save author: %w", err)
	}

	_ = r.cache.Delete(ctx, authorCacheKey(a.ID))

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	// Idempotent: zero affected rows is still success.
	if _, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	_ = r.cache.Delete(ctx, authorCacheKey(id))

	return nil
}

func (r *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}

	return exists, nil
}
