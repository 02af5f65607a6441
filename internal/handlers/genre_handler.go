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

type GenreCreateRequest struct {
	Name string `json:"name" validate:"required,max=50,firstupper"`
}

type GenreHandler struct {
	resource *crud.Resource[models.Genre, GenreCreateRequest, services.GenreRead]
	logger   *logrus.Logger
}

func NewGenreHandler(db *database.Database, cacheStore crud.CacheStore, logger *logrus.Logger) *GenreHandler {
	return &GenreHandler{
		resource: &crud.Resource[models.Genre, GenreCreateRequest, services.GenreRead]{
			DB:       db,
			Cache:    cacheStore,
			CacheTag: "genres",
			OrderBy:  "name",
			MapNew: func(req GenreCreateRequest) models.Genre {
				return models.Genre{Name: req.Name}
			},
			Project: func(g *models.Genre) services.GenreRead {
				return services.GenreRead{ID: g.ID, Name: g.Name}
			},
			GetID:  func(g *models.Genre) uint { return g.ID },
			SetID:  func(g *models.Genre, id uint) { g.ID = id },
			Logger: logger,
		},
		logger: logger,
	}
}

// List godoc
// @Summary List genres
// @Tags genres
// @Produce json
// @Param pageNumber query int false "Page number" default(1)
// @Param recordsPerPage query int false "Records per page (max 50)" default(10)
// @Success 200 {array} services.GenreRead
// @Header 200 {string} x-total-count "Total record count"
// @Router /genres [get]
func (h *GenreHandler) List(c *fiber.Ctx) error {
	genres, total, err := h.resource.List(c.Context(), utils.ParsePagination(c))
	if err != nil {
		return err
	}
	return utils.ListResponse(c, genres, total)
}

// ListAll godoc
// @Summary List all genres without pagination
// @Tags genres
// @Produce json
// @Success 200 {array} services.GenreRead
// @Router /genres/all [get]
func (h *GenreHandler) ListAll(c *fiber.Ctx) error {
	genres, err := h.resource.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(genres)
}

// Get godoc
// @Summary Get genre by ID
// @Tags genres
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} services.GenreRead
// @Failure 404 "Not found"
// @Router /genres/{id} [get]
func (h *GenreHandler) Get(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	genre, err := h.resource.Get(c.Context(), id)
	if err != nil {
		return respondCrudError(c, err)
	}
	return c.JSON(genre)
}

// Create godoc
// @Summary Create a genre
// @Tags genres
// @Accept json
// @Produce json
// @Param genre body GenreCreateRequest true "Genre"
// @Success 201 {object} services.GenreRead
// @Failure 400 "Validation errors"
// @Router /genres [post]
func (h *GenreHandler) Create(c *fiber.Ctx) error {
	var req GenreCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.ValidationFailedResponse(c, errs)
	}

	genre, id, err := h.resource.Create(c.Context(), req)
	if err != nil {
		return err
	}
	return utils.CreatedResponse(c, fmt.Sprintf("/api/genres/%d", id), genre)
}

// Update godoc
// @Summary Replace a genre
// @Tags genres
// @Accept json
// @Param id path int true "Genre ID"
// @Param genre body GenreCreateRequest true "Genre"
// @Success 204 "Updated"
// @Failure 404 "Not found"
// @Router /genres/{id} [put]
func (h *GenreHandler) Update(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req GenreCreateRequest
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
// @Summary Delete a genre
// @Tags genres
// @Param id path int true "Genre ID"
// @Success 204 "Deleted"
// @Failure 404 "Not found"
// @Router /genres/{id} [delete]
func (h *GenreHandler) Delete(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.resource.Delete(c.Context(), id); err != nil {
		return respondCrudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
