package handlers

import (
	"errors"

	"cinema-catalog/internal/crud"

	"github.com/gofiber/fiber/v2"
)

// respondCrudError turns an engine not-found into an empty 404; anything
// else bubbles up to the app-level error handler as a server fault.
func respondCrudError(c *fiber.Ctx, err error) error {
	if errors.Is(err, crud.ErrNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return err
}
