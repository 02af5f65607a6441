package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// HeaderTotalCount carries the total record count for a list endpoint,
// computed over the same predicate before pagination is applied.
const HeaderTotalCount = "x-total-count"

// FieldError is one input constraint violation, reported per field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ListResponse writes an array body plus the total-count header.
func ListResponse(c *fiber.Ctx, items interface{}, total int64) error {
	c.Set(HeaderTotalCount, strconv.FormatInt(total, 10))
	return c.Status(fiber.StatusOK).JSON(items)
}

// CreatedResponse writes 201 with a Location header for the new resource.
func CreatedResponse(c *fiber.Ctx, location string, body interface{}) error {
	c.Set(fiber.HeaderLocation, location)
	return c.Status(fiber.StatusCreated).JSON(body)
}

// ValidationFailedResponse writes 400 with the structured field errors.
func ValidationFailedResponse(c *fiber.Ctx, errs []FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
}

// BadRequestResponse writes 400 with a single unstructured message.
func BadRequestResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"errors": []FieldError{{Message: message}},
	})
}
