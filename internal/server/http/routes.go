package http

import (
	"github.com/dmitrijs2005/gophgate/internal/server/models"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *HTTPServer) setupRoutes() {
	s.app.Use(recover.New())
	s.app.Use(s.observe)

	s.app.Get("/health", s.health)
	if s.gatherer != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	api := s.app.Group("/api/v1")

	api.Post("/auth/register", s.register)
	api.Post("/auth/login", s.login)

	me := api.Group("/me", s.authenticate)
	me.Get("", s.me)
	me.Get("/status", s.myStatus)

	admin := api.Group("/admin", s.authenticate, requireRole(models.RoleAdmin))
	admin.Get("/users", s.listUsers)
	admin.Post("/users/:id/approve", s.approve)
	admin.Post("/users/:id/reject", s.reject)
	admin.Post("/users/:id/active", s.setActive)
}
