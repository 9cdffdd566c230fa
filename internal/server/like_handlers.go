package server

import (
	"context"

	"github.com/techTenzen/VTalk/internal/models"

	"github.com/gofiber/fiber/v2"
)

type toggleRequest struct {
	UserID uint `json:"user_id"`
	PostID uint `json:"post_id"`
}

// ToggleLike handles POST /api/likes. A request that creates the like
// answers 201 {"liked": true}; repeating it removes the like and answers
// 200 {"liked": false}.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	return s.handleToggle(c, s.postService.ToggleLike)
}

// ToggleMediaLike handles POST /api/media-likes with the same toggle
// semantics as ToggleLike, tracked separately from regular likes.
func (s *Server) ToggleMediaLike(c *fiber.Ctx) error {
	return s.handleToggle(c, s.postService.ToggleMediaLike)
}

func (s *Server) handleToggle(c *fiber.Ctx, toggle func(context.Context, uint, uint) (bool, error)) error {
	var req toggleRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	liked, err := toggle(c.UserContext(), req.UserID, req.PostID)
	if err != nil {
		return respondServiceError(c, err)
	}

	status := fiber.StatusOK
	if liked {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"liked": liked})
}
