package handlers

import (
	"fmt"
	"time"

	"cinema-catalog/internal/crud"
	"cinema-catalog/internal/database"
	"cinema-catalog/internal/models"
	"cinema-catalog/internal/services"
	"cinema-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const actorsContainer = "actors"

type ActorRead struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Picture     string    `json:"picture,omitempty"`
}

type ActorCreateRequest struct {
	Name        string    `json:"name" validate:"required,max=50"`
	DateOfBirth time.Time `json:"dateOfBirth"`
}

type ActorHandler struct {
	db       *database.Database
	resource *crud.Resource[models.Actor, ActorCreateRequest, ActorRead]
	storage  services.FileStorage
	logger   *logrus.Logger
}

func NewActorHandler(db *database.Database, cacheStore crud.CacheStore,
	storage services.FileStorage, logger *logrus.Logger) *ActorHandler {
	return &ActorHandler{
		db: db,
		resource: &crud.Resource[models.Actor, ActorCreateRequest, ActorRead]{
			DB:       db,
			Cache:    cacheStore,
			CacheTag: "actors",
			OrderBy:  "name",
			MapNew: func(req ActorCreateRequest) models.Actor {
				return models.Actor{Name: req.Name, DateOfBirth: req.DateOfBirth}
			},
			Project: func(a *models.Actor) ActorRead {
				return ActorRead{
					ID:          a.ID,
					Name:        a.Name,
					DateOfBirth: a.DateOfBirth,
					Picture:     a.Picture,
				}
			},
			GetID:     func(a *models.Actor) uint { return a.ID },
			SetID:     func(a *models.Actor, id uint) { a.ID = id },
			FileURL:   func(a *models.Actor) string { return a.Picture },
			Files:     storage,
			Container: actorsContainer,
			Logger:    logger,
		},
		storage: storage,
		logger:  logger,
	}
}

// parseActorForm reads the multipart fields shared by create and update.
func parseActorForm(c *fiber.Ctx) (ActorCreateRequest, error) {
	req := ActorCreateRequest{Name: c.FormValue("name")}

	if raw := c.FormValue("dateOfBirth"); raw != "" {
		dob, err := utils.ParseDate(raw)
		if err != nil {
			return req, fmt.Errorf("invalid dateOfBirth")
		}
		req.DateOfBirth = dob
	}
	return req, nil
}

// List godoc
// @Summary List actors
// @Tags actors
// @Produce json
// @Param pageNumber query int false "Page number" default(1)
// @Param recordsPerPage query int false "Records per page (max 50)" default(10)
// @Success 200 {array} ActorRead
// @Header 200 {string} x-total-count "Total record count"
// @Router /actors [get]
func (h *ActorHandler) List(c *fiber.Ctx) error {
	actors, total, err := h.resource.List(c.Context(), utils.ParsePagination(c))
	if err != nil {
		return err
	}
	return utils.ListResponse(c, actors, total)
}

// Get godoc
// @Summary Get actor by ID
// @Tags actors
// @Produce json
// @Param id path int true "Actor ID"
// @Success 200 {object} ActorRead
// @Failure 404 "Not found"
// @Router /actors/{id} [get]
func (h *ActorHandler) Get(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	actor, err := h.resource.Get(c.Context(), id)
	if err != nil {
		return respondCrudError(c, err)
	}
	return c.JSON(actor)
}

// SearchByName godoc
// @Summary Search actors by name, shaped for cast selection
// @Tags actors
// @Produce json
// @Param name path string true "Name fragment"
// @Success 200 {array} services.CastMemberRead
// @Router /actors/searchByName/{name} [get]
func (h *ActorHandler) SearchByName(c *fiber.Ctx) error {
	name := c.Params("name")

	var actors []models.Actor
	err := h.db.WithContext(c.Context()).
		Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").
		Order("name ASC").
		Find(&actors).Error
	if err != nil {
		return err
	}

	results := make([]services.CastMemberRead, 0, len(actors))
	for _, a := range actors {
		results = append(results, services.CastMemberRead{
			ID:      a.ID,
			Name:    a.Name,
			Picture: a.Picture,
		})
	}
	return c.JSON(results)
}

// Create godoc
// @Summary Create an actor
// @Tags actors
// @Accept mpfd
// @Produce json
// @Param name formData string true "Name"
// @Param dateOfBirth formData string false "Date of birth (YYYY-MM-DD)"
// @Param picture formData file false "Picture"
// @Success 201 {object} ActorRead
// @Failure 400 "Validation errors"
// @Router /actors [post]
func (h *ActorHandler) Create(c *fiber.Ctx) error {
	req, err := parseActorForm(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.ValidationFailedResponse(c, errs)
	}

	picture, _ := c.FormFile("picture")

	actor, id, err := h.resource.CreateWith(c.Context(), req, func(a *models.Actor) error {
		if picture == nil {
			return nil
		}
		url, err := h.storage.SaveFile(c.Context(), actorsContainer, picture)
		if err != nil {
			return err
		}
		a.Picture = url
		return nil
	})
	if err != nil {
		return err
	}
	return utils.CreatedResponse(c, fmt.Sprintf("/api/actors/%d", id), actor)
}

// Update godoc
// @Summary Replace an actor
// @Tags actors
// @Accept mpfd
// @Param id path int true "Actor ID"
// @Success 204 "Updated"
// @Failure 404 "Not found"
// @Router /actors/{id} [put]
func (h *ActorHandler) Update(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	req, err := parseActorForm(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.ValidationFailedResponse(c, errs)
	}

	picture, _ := c.FormFile("picture")

	err = h.resource.UpdateWith(c.Context(), id, req, func(stored, replacement *models.Actor) error {
		replacement.Picture = stored.Picture
		if picture == nil {
			return nil
		}
		url, err := h.storage.SaveEditedFile(c.Context(), stored.Picture, actorsContainer, picture)
		if err != nil {
			return err
		}
		replacement.Picture = url
		return nil
	})
	if err != nil {
		return respondCrudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary Delete an actor
// @Tags actors
// @Param id path int true "Actor ID"
// @Success 204 "Deleted"
// @Failure 404 "Not found"
// @Router /actors/{id} [delete]
func (h *ActorHandler) Delete(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.resource.Delete(c.Context(), id); err != nil {
		return respondCrudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
