// Package auth implements the credential store (bcrypt password hashing)
// and the token service that issues and verifies signed access tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophgate/internal/common"
	"github.com/dmitrijs2005/gophgate/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultAlgorithm is used when TokenConfig.Algorithm is empty.
const DefaultAlgorithm = "HS256"

var supportedMethods = map[string]*jwt.SigningMethodHMAC{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// Claims is the payload of an access token.
type Claims struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenConfig configures a TokenService.
//
// Fields:
//   - Secret: HMAC key. Must not be empty.
//   - TTL: access token lifetime.
//   - Algorithm: one of HS256, HS384, HS512. The verifier accepts only this one.
//   - Issuer: optional "iss" claim, checked on verification when set.
//   - Now: clock override for tests.
type TokenConfig struct {
	Secret    []byte
	TTL       time.Duration
	Algorithm string
	Issuer    string
	Now       func() time.Time
}

// TokenService issues and verifies access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	method *jwt.SigningMethodHMAC
	issuer string
	now    func() time.Time
}

// NewTokenService validates cfg and builds a TokenService.
func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if len(cfg.Secret) == 0 {
		return nil, common.ErrEmptySecret
	}

	alg := cfg.Algorithm
	if alg == "" {
		alg = DefaultAlgorithm
	}
	method, ok := supportedMethods[alg]
	if !ok {
		return nil, fmt.Errorf("%q: %w", alg, common.ErrUnsupportedAlgorithm)
	}

	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", cfg.TTL)
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &TokenService{
		secret: cfg.Secret,
		ttl:    cfg.TTL,
		method: method,
		issuer: cfg.Issuer,
		now:    now,
	}, nil
}

// TTL returns the configured token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for the given subject that expires after the configured TTL.
func (s *TokenService) Issue(subjectID, email string, role models.Role) (string, error) {
	now := s.now()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subjectID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses tokenString and returns its claims.
//
// It fails with common.ErrTokenExpired, common.ErrTokenMalformed or
// common.ErrTokenInvalidSubject.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method != s.method {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrTokenMalformed, err)
	}
	if !token.Valid {
		return nil, common.ErrTokenMalformed
	}

	if _, err := models.ParseRole(string(claims.Role)); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrTokenMalformed, err)
	}

	if claims.Subject == "" {
		return nil, common.ErrTokenInvalidSubject
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, common.ErrTokenInvalidSubject
	}

	return claims, nil
}
