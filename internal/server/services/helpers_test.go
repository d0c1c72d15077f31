package services

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophgate/internal/dbx"
	"github.com/dmitrijs2005/gophgate/internal/logging"
	"github.com/dmitrijs2005/gophgate/internal/server/auth"
	"github.com/dmitrijs2005/gophgate/internal/server/config"
	"github.com/dmitrijs2005/gophgate/internal/server/metrics"
	"github.com/dmitrijs2005/gophgate/internal/server/models"
	"github.com/dmitrijs2005/gophgate/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophgate/internal/server/repositories/users"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

type fixture struct {
	svc     *UserService
	rm      repomanager.RepositoryManager
	tokens  *auth.TokenService
	metrics *metrics.Metrics
}

type fixtureOption func(*config.Config, *auth.TokenConfig)

func withRequireActive() fixtureOption {
	return func(c *config.Config, _ *auth.TokenConfig) { c.RequireActiveAccount = true }
}

func withClock(now func() time.Time) fixtureOption {
	return func(_ *config.Config, tc *auth.TokenConfig) { tc.Now = now }
}

func newFixture(t *testing.T, rm repomanager.RepositoryManager, opts ...fixtureOption) *fixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = testSecret
	cfg.BcryptCost = bcrypt.MinCost

	tc := auth.TokenConfig{
		Secret:    []byte(cfg.SecretKey),
		TTL:       cfg.AccessTokenValidityDuration,
		Algorithm: cfg.SigningAlgorithm,
		Issuer:    cfg.TokenIssuer,
	}
	for _, o := range opts {
		o(cfg, &tc)
	}

	tokens, err := auth.NewTokenService(tc)
	require.NoError(t, err)

	m := metrics.New(prometheus.NewRegistry())
	svc, err := NewUserService(rm, tokens, cfg, logging.NewNop(), m)
	require.NoError(t, err)

	return &fixture{svc: svc, rm: rm, tokens: tokens, metrics: m}
}

func newMemoryFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()
	return newFixture(t, repomanager.NewMemoryRepositoryManager(), opts...)
}

func newSQLiteFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()

	db, err := sql.Open(dbx.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "svc.db")+"?_pragma=busy_timeout(5000)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	rm, err := repomanager.NewSQLRepositoryManager(db, dbx.DriverSQLite)
	require.NoError(t, err)
	require.NoError(t, rm.RunMigrations(context.Background()))

	return newFixture(t, rm, opts...)
}

// register creates a user and fails the test on error.
func (f *fixture) register(t *testing.T, email string) *models.User {
	t.Helper()
	u, err := f.svc.Register(context.Background(), email, "password123", nil)
	require.NoError(t, err)
	return u
}

func (f *fixture) admin(t *testing.T) *models.User {
	t.Helper()
	u, _, err := f.svc.EnsureAdmin(context.Background(), "admin@example.com", "admin-password")
	require.NoError(t, err)
	return u
}

var errStoreDown = errors.New("store down")

// brokenRepo fails every call with errStoreDown.
type brokenRepo struct{}

func (brokenRepo) FindByID(context.Context, string) (*models.User, error) { return nil, errStoreDown }
func (brokenRepo) FindByEmail(context.Context, string) (*models.User, error) {
	return nil, errStoreDown
}
func (brokenRepo) Insert(context.Context, *models.User) (*models.User, error) {
	return nil, errStoreDown
}
func (brokenRepo) ConditionalUpdateStatus(context.Context, string, models.Status, models.Status, *string) (*models.User, error) {
	return nil, errStoreDown
}
func (brokenRepo) ListByStatus(context.Context, models.Status, int, int) ([]*models.User, error) {
	return nil, errStoreDown
}
func (brokenRepo) CountByStatus(context.Context, models.Status) (int, error) { return 0, errStoreDown }
func (brokenRepo) SetActive(context.Context, string, bool) error            { return errStoreDown }

type brokenManager struct{}

func (brokenManager) RunMigrations(context.Context) error { return nil }
func (brokenManager) Users() users.Repository              { return brokenRepo{} }
func (brokenManager) WithinTx(ctx context.Context, fn func(context.Context, users.Repository) error) error {
	return fn(ctx, brokenRepo{})
}
