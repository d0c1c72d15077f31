// Package server initializes and runs the gophgate application: it opens
// storage, runs migrations, builds the user service, and serves it over
// HTTP and gRPC until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/gophgate/internal/dbx"
	"github.com/dmitrijs2005/gophgate/internal/logging"
	"github.com/dmitrijs2005/gophgate/internal/server/auth"
	"github.com/dmitrijs2005/gophgate/internal/server/cache"
	"github.com/dmitrijs2005/gophgate/internal/server/config"
	"github.com/dmitrijs2005/gophgate/internal/server/metrics"
	"github.com/dmitrijs2005/gophgate/internal/server/models"
	"github.com/dmitrijs2005/gophgate/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophgate/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	gs "github.com/dmitrijs2005/gophgate/internal/server/grpc"
	hs "github.com/dmitrijs2005/gophgate/internal/server/http"
)

// userCachePrefix namespaces cached users in Redis.
const userCachePrefix = "gophgate:user:"

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	cache       *cache.RedisCache
	registry    *prometheus.Registry
	metrics     *metrics.Metrics
	userService *services.UserService
}

// NewApp opens the database (and Redis, when configured), applies
// migrations and builds the services. Close releases what NewApp opened.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, err := logging.New(logging.Config{Level: c.LogLevel, Format: c.LogFormat}, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	app := &App{config: c, logger: logger}

	if err := app.init(ctx); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

func (app *App) init(ctx context.Context) error {
	c := app.config

	db, err := OpenDatabase(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	app.db = db

	opts := []repomanager.Option{repomanager.WithLogger(app.logger)}
	if c.RedisURL != "" {
		rc, err := cache.NewRedisCacheFromURL(ctx, c.RedisURL, userCachePrefix)
		if err != nil {
			return fmt.Errorf("redis init error: %w", err)
		}
		app.cache = rc
		opts = append(opts, repomanager.WithUserCache(rc, c.UserCacheTTL))
	}

	rm, err := repomanager.NewSQLRepositoryManager(db, c.DatabaseDriver, opts...)
	if err != nil {
		return fmt.Errorf("repository init error: %w", err)
	}

	if err := rm.RunMigrations(ctx); err != nil {
		return fmt.Errorf("migrations error: %w", err)
	}

	tokens, err := auth.NewTokenService(auth.TokenConfig{
		Secret:    []byte(c.SecretKey),
		TTL:       c.AccessTokenValidityDuration,
		Algorithm: c.SigningAlgorithm,
		Issuer:    c.TokenIssuer,
	})
	if err != nil {
		return fmt.Errorf("token service init error: %w", err)
	}

	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	app.metrics = metrics.New(app.registry)

	app.userService, err = services.NewUserService(rm, tokens, c, app.logger, app.metrics)
	if err != nil {
		return fmt.Errorf("user service init error: %w", err)
	}

	if c.AdminEmail != "" {
		if _, _, err := app.EnsureAdmin(ctx, c.AdminEmail, c.AdminPassword); err != nil {
			return err
		}
	}

	return nil
}

// OpenDatabase opens and pings a database/sql handle. SQLite is limited to
// a single connection because it allows only one writer at a time.
func OpenDatabase(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == dbx.DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureAdmin creates the admin account if email is not registered yet.
func (app *App) EnsureAdmin(ctx context.Context, email, password string) (*models.User, bool, error) {
	user, created, err := app.userService.EnsureAdmin(ctx, email, password)
	if err != nil {
		return nil, false, fmt.Errorf("admin bootstrap error: %w", err)
	}
	if created {
		app.logger.Info(ctx, "admin account created", "user_id", user.ID, "email", user.Email)
	}
	return user, created, nil
}

// Close releases the database and cache connections.
func (app *App) Close() error {
	var errs []error
	if app.cache != nil {
		errs = append(errs, app.cache.Close())
	}
	if app.db != nil {
		errs = append(errs, app.db.Close())
	}
	return errors.Join(errs...)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.GRPCAddr, app.logger, app.userService)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := hs.NewHTTPServer(app.config.HTTPAddr, app.logger, app.userService, app.metrics, app.registry)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves HTTP and gRPC until ctx is cancelled, a signal arrives or
// either server fails, then closes the app.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.Close(); err != nil {
		app.logger.Error(ctx, "close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
