package server

import (
	"errors"
	"strconv"

	"devconnector/internal/models"
	"devconnector/internal/observability"
	"devconnector/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps an error to the HTTP status it is reported with.
func statusFor(err error) int {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case models.CodeValidation, models.CodeConflict, models.CodeBadRequest:
		return fiber.StatusBadRequest
	case models.CodeUnauthorized:
		return fiber.StatusUnauthorized
	case models.CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes err as a JSON error body. The cause of a 500 is logged,
// never returned.
func (s *Server) respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		observability.Logger.ErrorContext(c.UserContext(), "request failed",
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error(),
		)
	}
	return models.RespondWithError(c, status, err)
}

// parseID extracts a route parameter as a positive id. Anything else is
// reported as notFound, since no document can have that id.
func parseID(c *fiber.Ctx, param, notFound string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewNotFoundError(notFound)
	}
	return uint(id), nil
}

// parseBody decodes the JSON body into dst and validates it.
// An empty body decodes to the zero value so that validation reports every field.
func parseBody(c *fiber.Ctx, dst any) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(dst); err != nil {
			return models.NewValidationError("Invalid request body")
		}
	}
	return validation.Struct(dst)
}

// currentUserID returns the id stored by the auth middleware.
func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}
