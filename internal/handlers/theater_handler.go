package handlers

import (
	"fmt"

	"cinema-catalog/internal/crud"
	"cinema-catalog/internal/database"
	"cinema-catalog/internal/models"
	"cinema-catalog/internal/services"
	"cinema-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// TheaterCreateRequest carries the flattened coordinate pair; the write
// mapper folds it back into the entity's location value.
type TheaterCreateRequest struct {
	Name      string  `json:"name" validate:"required,max=80"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

type TheaterHandler struct {
	resource *crud.Resource[models.MovieTheater, TheaterCreateRequest, services.TheaterRead]
	logger   *logrus.Logger
}

func NewTheaterHandler(db *database.Database, cacheStore crud.CacheStore, logger *logrus.Logger) *TheaterHandler {
	return &TheaterHandler{
		resource: &crud.Resource[models.MovieTheater, TheaterCreateRequest, services.TheaterRead]{
			DB:       db,
			Cache:    cacheStore,
			CacheTag: "movieTheaters",
			OrderBy:  "name",
			MapNew: func(req TheaterCreateRequest) models.MovieTheater {
				return models.MovieTheater{
					Name: req.Name,
					Location: models.Point{
						Latitude:  req.Latitude,
						Longitude: req.Longitude,
					},
				}
			},
			Project: func(t *models.MovieTheater) services.TheaterRead {
				return services.TheaterRead{
					ID:        t.ID,
					Name:      t.Name,
					Latitude:  t.Location.Latitude,
					Longitude: t.Location.Longitude,
				}
			},
			GetID:  func(t *models.MovieTheater) uint { return t.ID },
			SetID:  func(t *models.MovieTheater, id uint) { t.ID = id },
			Logger: logger,
		},
		logger: logger,
	}
}

// List godoc
// @Summary List movie theaters
// @Tags movietheaters
// @Produce json
// @Param pageNumber query int false "Page number" default(1)
// @Param recordsPerPage query int false "Records per page (max 50)" default(10)
// @Success 200 {array} services.TheaterRead
// @Header 200 {string} x-total-count "Total record count"
// @Router /movietheaters [get]
func (h *TheaterHandler) List(c *fiber.Ctx) error {
	theaters, total, err := h.resource.List(c.Context(), utils.ParsePagination(c))
	if err != nil {
		return err
	}
	return utils.ListResponse(c, theaters, total)
}

// Get godoc
// @Summary Get movie theater by ID
// @Tags movietheaters
// @Produce json
// @Param id path int true "Theater ID"
// @Success 200 {object} services.TheaterRead
// @Failure 404 "Not found"
// @Router /movietheaters/{id} [get]
func (h *TheaterHandler) Get(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	theater, err := h.resource.Get(c.Context(), id)
	if err != nil {
		return respondCrudError(c, err)
	}
	return c.JSON(theater)
}

// Create godoc
// @Summary Create a movie theater
// @Tags movietheaters
// @Accept json
// @Produce json
// @Param theater body TheaterCreateRequest true "Theater"
// @Success 201 {object} services.TheaterRead
// @Failure 400 "Validation errors"
// @Router /movietheaters [post]
func (h *TheaterHandler) Create(c *fiber.Ctx) error {
	var req TheaterCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.ValidationFailedResponse(c, errs)
	}

	theater, id, err := h.resource.Create(c.Context(), req)
	if err != nil {
		return err
	}
	return utils.CreatedResponse(c, fmt.Sprintf("/api/movietheaters/%d", id), theater)
}

// Update godoc
// @Summary Replace a movie theater
// @Tags movietheaters
// @Accept json
// @Param id path int true "Theater ID"
// @Param theater body TheaterCreateRequest true "Theater"
// @Success 204 "Updated"
// @Failure 404 "Not found"
// @Router /movietheaters/{id} [put]
func (h *TheaterHandler) Update(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req TheaterCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.ValidationFailedResponse(c, errs)
	}

	if err := h.resource.Update(c.Context(), id, req); err != nil {
		return respondCrudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary Delete a movie theater
// @Tags movietheaters
// @Param id path int true "Theater ID"
// @Success 204 "Deleted"
// @Failure 404 "Not found"
// @Router /movietheaters/{id} [delete]
func (h *TheaterHandler) Delete(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.resource.Delete(c.Context(), id); err != nil {
		return respondCrudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
