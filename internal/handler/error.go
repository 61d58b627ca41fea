package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every error as a JSON body with a
// machine-readable reason, defaulting to 500 for non-fiber errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
