package httpapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dvelasco/recetario/internal/common"
)

// userIDKey is the request-local slot the middleware binds the verified
// user id to. Handlers read it back through requesterID.
const userIDKey = "userID"

// requireAuth verifies the Authorization header and binds the token subject
// to the request. A missing or mis-shaped header and an expired token both
// yield 401; any other verification failure yields 403 so callers cannot
// distinguish forgery from other defects.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return errorJSON(c, fiber.StatusUnauthorized, common.ErrMissingToken.Error())
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return errorJSON(c, fiber.StatusUnauthorized, "access denied: token missing or malformed")
	}

	subject, err := s.codec.Verify(token)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrTokenExpired):
			return errorJSON(c, fiber.StatusUnauthorized, "token expired")
		case errors.Is(err, common.ErrMissingSubject):
			return errorJSON(c, fiber.StatusUnauthorized, "access denied: token missing or malformed")
		default:
			return errorJSON(c, fiber.StatusForbidden, "invalid token")
		}
	}

	c.Locals(userIDKey, subject)
	return c.Next()
}

// requesterID returns the user id bound by requireAuth, or "" on routes
// that did not pass through it.
func requesterID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
