package services

import (
	"github.com/dmitrijs2005/gophgate/internal/common"
	"github.com/dmitrijs2005/gophgate/internal/server/models"
)

// RequireRole passes user through when it has exactly the given role.
func RequireRole(user *models.User, role models.Role) (*models.User, error) {
	if user == nil {
		return nil, common.ErrUnauthenticated
	}
	if user.Role != role {
		return nil, common.ErrForbidden
	}
	return user, nil
}
