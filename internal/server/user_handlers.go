package server

import (
	"github.com/techTenzen/VTalk/internal/middleware"
	"github.com/techTenzen/VTalk/internal/models"
	"github.com/techTenzen/VTalk/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateUser handles POST /api/users. Registration is idempotent per email:
// a known address returns the existing account with a fresh token.
func (s *Server) CreateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req service.CreateUserInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, created, err := s.userService.CreateOrFetch(ctx, req)
	if err != nil {
		return respondServiceError(c, err)
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "failed to issue session token", "error", err)
		return respondServiceError(c, models.NewInternalError(err))
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{
		"user":    user,
		"token":   token,
		"created": created,
	})
}

// GetUser handles GET /api/users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}
