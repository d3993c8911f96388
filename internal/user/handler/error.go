package handler

import (
	"errors"
	"log"

	autherror "github.com/andersevenrud/userbase/internal/errors"
	"github.com/gofiber/fiber/v2"
)

// respondError maps domain errors to structured responses. Anything outside
// the taxonomy is an infrastructure failure: logged here, surfaced as a
// generic 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, autherror.ErrAuthenticationFailed):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": autherror.ErrUnauthorized.Error()})
	case errors.Is(err, autherror.ErrTokenNotFound), errors.Is(err, autherror.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": autherror.ErrNotFound.Error()})
	case errors.Is(err, autherror.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": autherror.ErrConflict.Error()})
	default:
		log.Printf("error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
