package utils

import (
	"fmt"
	"strconv"
	"time"

	"cinema-catalog/internal/crud"

	"github.com/gofiber/fiber/v2"
)

// ParseIDParam reads the :id path parameter as an unsigned integer.
func ParseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id parameter")
	}
	return uint(id), nil
}

// ParsePagination reads pageNumber/recordsPerPage query parameters,
// falling back to defaults and clamping via the pagination policy.
func ParsePagination(c *fiber.Ctx) crud.Pagination {
	pageNumber, _ := strconv.Atoi(c.Query("pageNumber", strconv.Itoa(crud.DefaultPageNumber)))
	recordsPerPage, _ := strconv.Atoi(c.Query("recordsPerPage", strconv.Itoa(crud.DefaultRecordsPerPage)))
	return crud.NewPagination(pageNumber, recordsPerPage)
}

// ParseDate accepts a date-only value, or a full RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
