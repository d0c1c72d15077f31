package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophgate/internal/common"
	"github.com/dmitrijs2005/gophgate/internal/server/metrics"
	"github.com/dmitrijs2005/gophgate/internal/server/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	f := newMemoryFixture(t)
	u := f.register(t, "carol@example.com")

	tok, err := f.svc.Login(context.Background(), "Carol@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "bearer", tok.TokenType)
	assert.Equal(t, f.tokens.TTL(), tok.ExpiresIn)

	claims, err := f.tokens.Verify(tok.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.Subject)
	assert.Equal(t, "carol@example.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.LoginsTotal.WithLabelValues(metrics.ResultSuccess)))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newMemoryFixture(t)
	f.register(t, "dave@example.com")

	tests := []struct {
		name, email, password string
	}{
		{"wrong password", "dave@example.com", "password124"},
		{"unknown email", "nobody@example.com", "password123"},
		{"empty password", "dave@example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Login(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, common.ErrInvalidCredentials)
			assert.Equal(t, "invalid email or password", err.Error())
		})
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(f.metrics.LoginsTotal.WithLabelValues(metrics.ResultFailure)))
}

func TestLogin_NotGatedOnStatusOrActiveFlag(t *testing.T) {
	f := newMemoryFixture(t)
	ctx := context.Background()

	rejected := f.register(t, "rejected@example.com")
	_, err := f.svc.Reject(ctx, rejected.ID, models.StatusRejected, nil)
	require.NoError(t, err)

	disabled := f.register(t, "disabled@example.com")
	_, err = f.svc.SetActive(ctx, disabled.ID, false)
	require.NoError(t, err)

	for _, email := range []string{"rejected@example.com", "disabled@example.com"} {
		_, err := f.svc.Login(ctx, email, "password123")
		assert.NoError(t, err, email)
	}
}

func TestLogin_StoreFailure(t *testing.T) {
	f := newFixture(t, brokenManager{})

	_, err := f.svc.Login(context.Background(), "x@example.com", "password123")
	assert.ErrorIs(t, err, common.ErrInternal)
	assert.NotErrorIs(t, err, common.ErrInvalidCredentials)
}
