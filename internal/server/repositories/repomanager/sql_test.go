package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophgate/internal/common"
	"github.com/dmitrijs2005/gophgate/internal/dbx"
	"github.com/dmitrijs2005/gophgate/internal/server/models"
	"github.com/dmitrijs2005/gophgate/internal/server/repositories/users"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestNewPostgresRepositoryManager_ReturnsInterface(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m, err := NewPostgresRepositoryManager(db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var _ RepositoryManager = m
	var _ RepositoryManager = NewMemoryRepositoryManager()
}

func TestNewSQLRepositoryManager_UnknownDriver(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	if _, err := NewSQLRepositoryManager(db, "mysql"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestUsers_CacheOption(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m, err := NewPostgresRepositoryManager(db)
	require.NoError(t, err)
	_, ok := m.Users().(*users.SQLRepository)
	assert.True(t, ok)

	m, err = NewPostgresRepositoryManager(db, WithUserCache(&recordingCache{}, time.Minute))
	require.NoError(t, err)
	_, ok = m.Users().(*users.CachedRepository)
	assert.True(t, ok)
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m, _ := NewPostgresRepositoryManager(db)
	if err := m.RunMigrations(context.Background()); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m, _ := NewPostgresRepositoryManager(db)
	if err := m.RunMigrations(context.Background()); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}

type recordingCache struct {
	bumped []string
}

func (c *recordingCache) Get(context.Context, string) ([]byte, error) {
	return nil, common.ErrNotFound
}
func (c *recordingCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (c *recordingCache) Incr(_ context.Context, key string, _ time.Duration) (int64, error) {
	c.bumped = append(c.bumped, key)
	return int64(len(c.bumped)), nil
}

func newSQLiteManager(t *testing.T, opts ...Option) *SQLRepositoryManager {
	t.Helper()
	db, err := sql.Open(dbx.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	m, err := NewSQLRepositoryManager(db, dbx.DriverSQLite, opts...)
	require.NoError(t, err)
	require.NoError(t, m.RunMigrations(context.Background()))
	return m
}

func insertPending(t *testing.T, repo users.Repository) *models.User {
	t.Helper()
	u, err := repo.Insert(context.Background(), &models.User{
		ID: uuid.NewString(), Email: uuid.NewString() + "@example.com", PasswordHash: "h",
		Role: models.RoleUser, Status: models.StatusPending, IsActive: true,
	})
	require.NoError(t, err)
	return u
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	m := newSQLiteManager(t)
	ctx := context.Background()
	u := insertPending(t, m.Users())

	boom := errors.New("boom")
	err := m.WithinTx(ctx, func(ctx context.Context, repo users.Repository) error {
		if _, err := repo.ConditionalUpdateStatus(ctx, u.ID, models.StatusPending, models.StatusApproved, nil); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := m.Users().FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestWithinTx_InvalidatesCacheAfterCommit(t *testing.T) {
	rc := &recordingCache{}
	m := newSQLiteManager(t, WithUserCache(rc, time.Minute))
	ctx := context.Background()
	u := insertPending(t, m.Users())

	err := m.WithinTx(ctx, func(ctx context.Context, repo users.Repository) error {
		_, err := repo.ConditionalUpdateStatus(ctx, u.ID, models.StatusPending, models.StatusApproved, nil)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"v:" + u.ID}, rc.bumped)
}

func TestMemoryRepositoryManager(t *testing.T) {
	m := NewMemoryRepositoryManager()
	ctx := context.Background()
	require.NoError(t, m.RunMigrations(ctx))

	u := insertPending(t, m.Users())
	err := m.WithinTx(ctx, func(ctx context.Context, repo users.Repository) error {
		return repo.SetActive(ctx, u.ID, false)
	})
	require.NoError(t, err)

	got, err := m.Users().FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}
