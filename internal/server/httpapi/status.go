package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dvelasco/recetario/internal/common"
)

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// serviceError maps the sentinel error taxonomy onto HTTP statuses.
// Unrecognized errors are logged with their detail and answered with a
// generic 500 so internals never leak to clients.
func (s *Server) serviceError(c *fiber.Ctx, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, common.ErrDuplicate):
		return errorJSON(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		return errorJSON(c, fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, common.ErrForbidden):
		return errorJSON(c, fiber.StatusForbidden, "you do not have permission to modify this resource")
	case errors.Is(err, common.ErrValidation):
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	default:
		s.logger.Error(c.UserContext(), "internal error", "op", op, "error", err.Error())
		return errorJSON(c, fiber.StatusInternalServerError, "internal server error")
	}
}
