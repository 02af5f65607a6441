package handlers

import (
	"cinema-catalog/internal/middleware"
	"cinema-catalog/internal/services"
	"cinema-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type RatingRequest struct {
	MovieID uint `json:"movieId" validate:"required"`
	Rate    int  `json:"rate" validate:"required,min=1,max=5"`
}

type RatingHandler struct {
	service services.MovieService
}

func NewRatingHandler(service services.MovieService) *RatingHandler {
	return &RatingHandler{service: service}
}

// Rate godoc
// @Summary Create or overwrite the caller's rating for a movie
// @Tags ratings
// @Accept json
// @Param rating body RatingRequest true "Rating"
// @Success 204 "Rated"
// @Failure 400 "Validation errors"
// @Failure 404 "Movie not found"
// @Security BearerAuth
// @Router /ratings [post]
func (h *RatingHandler) Rate(c *fiber.Ctx) error {
	var req RatingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.ValidationFailedResponse(c, errs)
	}

	err := h.service.Rate(c.Context(), req.MovieID, middleware.CallerID(c), req.Rate)
	if err != nil {
		return respondCrudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
