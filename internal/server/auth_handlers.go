package server

import (
	"devconnector/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/users.
func (s *Server) Register(c *fiber.Ctx) error {
	var in service.RegisterInput
	if err := parseBody(c, &in); err != nil {
		return s.respondError(c, err)
	}

	token, err := s.authService.Register(c.UserContext(), in)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"token": token})
}

// Login handles POST /api/auth.
func (s *Server) Login(c *fiber.Ctx) error {
	var in service.LoginInput
	if err := parseBody(c, &in); err != nil {
		return s.respondError(c, err)
	}

	token, err := s.authService.Login(c.UserContext(), in)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"token": token})
}

// CurrentUser handles GET /api/auth.
func (s *Server) CurrentUser(c *fiber.Ctx) error {
	user, err := s.authService.CurrentUser(c.UserContext(), currentUserID(c))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(user)
}
