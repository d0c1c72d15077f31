package repomanager

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophgate/internal/dbx"
	"github.com/dmitrijs2005/gophgate/internal/logging"
	"github.com/dmitrijs2005/gophgate/internal/server/migrations"
	"github.com/dmitrijs2005/gophgate/internal/server/models"
	"github.com/dmitrijs2005/gophgate/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLRepositoryManager vends SQL-backed repositories for postgres or sqlite.
type SQLRepositoryManager struct {
	db       *sql.DB
	dialect  dbx.Dialect
	cache    users.Cache
	cacheTTL time.Duration
	logger   logging.Logger
	cached   *users.CachedRepository
}

type Option func(*SQLRepositoryManager)

// WithUserCache puts a read-through cache in front of Users().FindByID.
func WithUserCache(c users.Cache, ttl time.Duration) Option {
	return func(m *SQLRepositoryManager) {
		m.cache = c
		m.cacheTTL = ttl
	}
}

// WithLogger sets the logger used for cache failures.
func WithLogger(l logging.Logger) Option {
	return func(m *SQLRepositoryManager) {
		m.logger = l
	}
}

// NewSQLRepositoryManager constructs a manager for the given driver name.
func NewSQLRepositoryManager(db *sql.DB, driver string, opts ...Option) (*SQLRepositoryManager, error) {
	dialect, err := dbx.DialectFor(driver)
	if err != nil {
		return nil, err
	}
	m := &SQLRepositoryManager{db: db, dialect: dialect, logger: logging.NewNop()}
	for _, o := range opts {
		o(m)
	}
	if m.cache != nil {
		m.cached = users.NewCachedRepository(users.NewSQLRepository(db, dialect), m.cache, m.cacheTTL, m.logger)
	}
	return m, nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(db *sql.DB, opts ...Option) (*SQLRepositoryManager, error) {
	return NewSQLRepositoryManager(db, dbx.DriverPostgres, opts...)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// migrateMu guards goose's package-level configuration.
var migrateMu sync.Mutex

func (m *SQLRepositoryManager) RunMigrations(ctx context.Context) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.dialect.GooseDialect()); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

func (m *SQLRepositoryManager) Users() users.Repository {
	if m.cached != nil {
		return m.cached
	}
	return users.NewSQLRepository(m.db, m.dialect)
}

// WithinTx binds an uncached repository to a transaction. Users written
// inside fn get their cache version bumped after a successful commit.
func (m *SQLRepositoryManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error {
	var touched []string

	err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := &trackingRepository{Repository: users.NewSQLRepository(tx, m.dialect), touched: &touched}
		return fn(ctx, repo)
	})
	if err != nil {
		return err
	}

	if m.cached != nil {
		for _, id := range touched {
			// Invalidate logs its own failures.
			_ = m.cached.Invalidate(ctx, id)
		}
	}
	return nil
}

// trackingRepository records the ids of users modified in a transaction.
type trackingRepository struct {
	users.Repository
	touched *[]string
}

func (r *trackingRepository) ConditionalUpdateStatus(ctx context.Context, id string, expected, next models.Status, reason *string) (*models.User, error) {
	*r.touched = append(*r.touched, id)
	return r.Repository.ConditionalUpdateStatus(ctx, id, expected, next, reason)
}

func (r *trackingRepository) SetActive(ctx context.Context, id string, active bool) error {
	*r.touched = append(*r.touched, id)
	return r.Repository.SetActive(ctx, id, active)
}
