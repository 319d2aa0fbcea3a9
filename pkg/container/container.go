package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookstore-catalog/internal/config"
	infracache "bookstore-catalog/internal/infrastructure/cache"
	"bookstore-catalog/internal/infrastructure/database"
	"bookstore-catalog/pkg/cache"

	"bookstore-catalog/internal/domains/author"
	authorHandler "bookstore-catalog/internal/domains/author/handler"
	authorRepo "bookstore-catalog/internal/domains/author/repository"
	authorService "bookstore-catalog/internal/domains/author/service"
	"bookstore-catalog/internal/domains/book"
	bookHandler "bookstore-catalog/internal/domains/book/handler"
	bookRepo "bookstore-catalog/internal/domains/book/repository"
	bookService "bookstore-catalog/internal/domains/book/service"
)

// Container is the root of the dependency graph. Initialization order:
// config, infrastructure, repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	AuthorRepo author.Repository
	BookRepo   book.Repository

	AuthorService author.Service
	BookService   book.Service

	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infracache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis is a read-through cache only; a failed connection degrades
	// to uncached reads instead of aborting startup.
	if rc, ok := redisCache.(*infracache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("redis connection failed, running without cache hits")
		}
	}
	c.Cache = redisCache

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Str("environment", cfg.App.Environment).Msg("container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool, c.Cache)
	c.BookRepo = bookRepo.NewPostgresRepository(pool, c.Cache)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)

	// The book service takes the author repository for referential
	// checks on upsert.
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
}

// Cleanup releases resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close database pool")
		}
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infracache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close redis")
			}
		}
	}
}
