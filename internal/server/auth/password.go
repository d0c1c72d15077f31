package auth

import (
	"github.com/dmitrijs2005/gophgate/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt hash of plain. The salt is embedded in the
// returned string. Costs outside bcrypt's range fall back to the default.
func HashPassword(plain string, cost int) (string, error) {
	if plain == "" {
		return "", common.ErrEmptyPassword
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// VerifyPassword reports whether plain matches hash. A malformed hash
// yields false.
func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
