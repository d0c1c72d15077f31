package http

import (
	"fmt"

	"github.com/dmitrijs2005/gophgate/internal/common"
	"github.com/dmitrijs2005/gophgate/internal/server/models"
	"github.com/gofiber/fiber/v2"
)

type validatable interface {
	Validate() error
}

// bind decodes the JSON body into req and validates it.
func bind(c *fiber.Ctx, req validatable) error {
	if err := c.BodyParser(req); err != nil {
		return fmt.Errorf("%w: malformed body", common.ErrInvalidInput)
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}
	return nil
}

func (s *HTTPServer) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *HTTPServer) register(c *fiber.Ctx) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return writeError(c, err)
	}

	user, err := s.users.Register(c.UserContext(), req.Email, req.Password, req.FullName)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newUserResponse(user))
}

func (s *HTTPServer) login(c *fiber.Ctx) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return writeError(c, err)
	}

	tok, err := s.users.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(tokenResponse{
		AccessToken: tok.Token,
		TokenType:   tok.TokenType,
		ExpiresIn:   int64(tok.ExpiresIn.Seconds()),
	})
}

func (s *HTTPServer) me(c *fiber.Ctx) error {
	return c.JSON(newUserResponse(currentUser(c)))
}

func (s *HTTPServer) myStatus(c *fiber.Ctx) error {
	u := currentUser(c)
	return c.JSON(statusResponse{Status: string(u.Status), RejectionReason: u.RejectionReason})
}

func (s *HTTPServer) listUsers(c *fiber.Ctx) error {
	page, err := s.users.ListUsers(c.UserContext(),
		c.Query("status", string(models.StatusPending)),
		c.QueryInt("page", 1),
		c.QueryInt("page_size", 20))
	if err != nil {
		return writeError(c, err)
	}

	items := make([]userResponse, 0, len(page.Users))
	for _, u := range page.Users {
		items = append(items, newUserResponse(u))
	}
	return c.JSON(userListResponse{Items: items, Total: page.Total, Page: page.Page, PageSize: page.PageSize})
}

func (s *HTTPServer) approve(c *fiber.Ctx) error {
	user, err := s.users.Approve(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	s.logger.Info(c.UserContext(), "user approved", "user_id", user.ID, "admin_id", currentUser(c).ID)
	return c.JSON(newUserResponse(user))
}

// reject takes {status, rejection_reason} from the JSON body, or from the
// query string when the body is empty.
func (s *HTTPServer) reject(c *fiber.Ctx) error {
	var req rejectRequest
	if len(c.Body()) == 0 {
		req.Status = c.Query("status")
		if reason, ok := c.Queries()["rejection_reason"]; ok {
			req.RejectionReason = &reason
		}
		if err := req.Validate(); err != nil {
			return writeError(c, fmt.Errorf("%w: %v", common.ErrInvalidInput, err))
		}
	} else if err := bind(c, &req); err != nil {
		return writeError(c, err)
	}

	user, err := s.users.Reject(c.UserContext(), c.Params("id"), models.Status(req.Status), req.RejectionReason)
	if err != nil {
		return writeError(c, err)
	}
	s.logger.Info(c.UserContext(), "user rejected", "user_id", user.ID, "admin_id", currentUser(c).ID)
	return c.JSON(newUserResponse(user))
}

func (s *HTTPServer) setActive(c *fiber.Ctx) error {
	var req setActiveRequest
	if err := bind(c, &req); err != nil {
		return writeError(c, err)
	}

	user, err := s.users.SetActive(c.UserContext(), c.Params("id"), *req.Active)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(newUserResponse(user))
}
