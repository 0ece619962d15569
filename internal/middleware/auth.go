package middleware

import (
	"context"
	"strings"

	"devconnector/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// LegacyTokenHeader is the header older clients send the bare token in.
const LegacyTokenHeader = "x-auth-token"

// TokenParser validates a token and returns the user id it was issued for.
type TokenParser interface {
	ParseToken(token string) (uint, error)
}

// AuthRequired rejects requests without a valid token and stores the user id
// in Locals("userID") and the request context.
func AuthRequired(parser TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			observability.AuthFailures.WithLabelValues("missing_token").Inc()
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"msg": "No token, authorization denied",
			})
		}

		userID, err := parser.ParseToken(token)
		if err != nil {
			observability.AuthFailures.WithLabelValues("invalid_token").Inc()
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"msg": "Token is not valid",
			})
		}

		c.Locals("userID", userID)
		c.SetUserContext(context.WithValue(c.UserContext(), observability.UserIDKey, userID))
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return strings.TrimSpace(c.Get(LegacyTokenHeader))
}
