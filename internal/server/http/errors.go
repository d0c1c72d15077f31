package http

import (
	"errors"

	"github.com/dmitrijs2005/gophgate/internal/common"
	"github.com/gofiber/fiber/v2"
)

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Detail string `json:"detail"`
}

type errorMapping struct {
	err    error
	status int
	detail string
}

// errorMappings is checked in order; the first errors.Is match wins.
var errorMappings = []errorMapping{
	{common.ErrInvalidCredentials, fiber.StatusUnauthorized, "Invalid email or password"},
	{common.ErrUnauthenticated, fiber.StatusUnauthorized, "Could not validate credentials"},
	{common.ErrForbidden, fiber.StatusForbidden, "Admin privileges required"},
	{common.ErrInactiveAccount, fiber.StatusForbidden, "Inactive user"},
	{common.ErrEmailTaken, fiber.StatusConflict, "Email already registered"},
	{common.ErrWeakPassword, fiber.StatusBadRequest, "Password must be at least 8 characters"},
	{common.ErrInvalidState, fiber.StatusBadRequest, "User status is not PENDING"},
	{common.ErrInvalidStatus, fiber.StatusBadRequest, "Invalid status for rejection"},
	{common.ErrNotFound, fiber.StatusNotFound, "User not found"},
}

// statusFor maps a service error to an HTTP status and a client-safe
// message. Unknown errors become 500 "internal error".
func statusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.detail
		}
	}
	if errors.Is(err, common.ErrInvalidInput) {
		return fiber.StatusBadRequest, err.Error()
	}
	return fiber.StatusInternalServerError, common.ErrInternal.Error()
}

func writeError(c *fiber.Ctx, err error) error {
	status, detail := statusFor(err)
	if status == fiber.StatusUnauthorized {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	}
	return c.Status(status).JSON(errorResponse{Detail: detail})
}

// errorHandler renders errors that escape handlers, such as unknown routes
// or recovered panics.
func (s *HTTPServer) errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(errorResponse{Detail: fe.Message})
	}
	s.logger.Error(c.UserContext(), "unhandled request error", "path", c.Path(), "error", err)
	return writeError(c, err)
}
