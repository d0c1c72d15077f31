package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophgate/internal/logging"
	"github.com/dmitrijs2005/gophgate/internal/server/auth"
	"github.com/dmitrijs2005/gophgate/internal/server/config"
	"github.com/dmitrijs2005/gophgate/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophgate/internal/server/services"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAdminEmail    = "root@example.com"
	testAdminPassword = "root-password"
)

// newTestService builds a UserService over in-memory storage with a
// bootstrap admin.
func newTestService(t *testing.T) *services.UserService {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "grpc-test-secret"
	cfg.BcryptCost = bcrypt.MinCost

	tokens, err := auth.NewTokenService(auth.TokenConfig{
		Secret:    []byte(cfg.SecretKey),
		TTL:       cfg.AccessTokenValidityDuration,
		Algorithm: cfg.SigningAlgorithm,
	})
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}

	us, err := services.NewUserService(repomanager.NewMemoryRepositoryManager(), tokens, cfg, logging.NewNop(), nil)
	if err != nil {
		t.Fatalf("NewUserService error: %v", err)
	}
	if _, _, err := us.EnsureAdmin(context.Background(), testAdminEmail, testAdminPassword); err != nil {
		t.Fatalf("EnsureAdmin error: %v", err)
	}
	return us
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv, err := NewGRPCServer("127.0.0.1:0", logging.NewNop(), newTestService(t))
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv, err := NewGRPCServer("127.0.0.1:99999", logging.NewNop(), newTestService(t))
	if err != nil {
		t.Fatalf("NewGRPCServer error (constructor should not fail here): %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error for invalid port, got nil")
	}
}
