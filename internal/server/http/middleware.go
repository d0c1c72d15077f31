package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophgate/internal/common"
	"github.com/dmitrijs2005/gophgate/internal/server/models"
	"github.com/dmitrijs2005/gophgate/internal/server/services"
	"github.com/gofiber/fiber/v2"
)

const userLocalsKey = "gophgate.user"

// observe records request count and latency by route pattern.
func (s *HTTPServer) observe(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	if s.metrics == nil {
		return err
	}

	status := c.Response().StatusCode()
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
	}

	route := c.Route().Path
	s.metrics.HTTPRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
	s.metrics.HTTPRequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
	return err
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// authenticate resolves the bearer token and stores the user in Locals.
func (s *HTTPServer) authenticate(c *fiber.Ctx) error {
	token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return writeError(c, common.ErrUnauthenticated)
	}

	user, err := s.users.Resolve(c.UserContext(), token)
	if err != nil {
		return writeError(c, err)
	}

	c.Locals(userLocalsKey, user)
	return c.Next()
}

func requireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := services.RequireRole(currentUser(c), role); err != nil {
			return writeError(c, err)
		}
		return c.Next()
	}
}

func currentUser(c *fiber.Ctx) *models.User {
	u, _ := c.Locals(userLocalsKey).(*models.User)
	return u
}
