package handlers

import (
	"encoding/json"
	"fmt"

	"cinema-catalog/internal/middleware"
	"cinema-catalog/internal/repository"
	"cinema-catalog/internal/services"
	"cinema-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{service: service, logger: logger}
}

// parseMovieForm reads the multipart fields shared by create and update.
// The scalar fields arrive as plain form values, the three collections as
// JSON-encoded form values.
func parseMovieForm(c *fiber.Ctx) (services.MovieInput, error) {
	input := services.MovieInput{
		Title:   c.FormValue("title"),
		Trailer: c.FormValue("trailer"),
	}

	if raw := c.FormValue("releaseDate"); raw != "" {
		date, err := utils.ParseDate(raw)
		if err != nil {
			return input, fmt.Errorf("invalid releaseDate")
		}
		input.ReleaseDate = date
	}

	if raw := c.FormValue("genresIds"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.GenresIds); err != nil {
			return input, fmt.Errorf("invalid genresIds")
		}
	}
	if raw := c.FormValue("movieTheatersIds"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.MovieTheatersIds); err != nil {
			return input, fmt.Errorf("invalid movieTheatersIds")
		}
	}
	if raw := c.FormValue("actors"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Actors); err != nil {
			return input, fmt.Errorf("invalid actors")
		}
	}

	return input, nil
}

// Get godoc
// @Summary Movie detail with genres, theaters, ordered cast and ratings
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} services.MovieDetails
// @Failure 404 "Not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) Get(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	details, err := h.service.Detail(c.Context(), id, middleware.CallerID(c))
	if err != nil {
		return respondCrudError(c, err)
	}
	return c.JSON(details)
}

// Home godoc
// @Summary Landing page movie lists
// @Tags movies
// @Produce json
// @Success 200 {object} services.HomePage
// @Router /movies/home [get]
func (h *MovieHandler) Home(c *fiber.Ctx) error {
	page, err := h.service.Home(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// Filter godoc
// @Summary Filter movies by title, genre and showing status
// @Tags movies
// @Produce json
// @Param title query string false "Title fragment"
// @Param genreId query int false "Genre ID"
// @Param isNowShowing query bool false "Only movies with screenings"
// @Param isUpcomingMovie query bool false "Only future releases"
// @Param pageNumber query int false "Page number" default(1)
// @Param recordsPerPage query int false "Records per page (max 50)" default(10)
// @Success 200 {array} services.MovieRead
// @Header 200 {string} x-total-count "Total record count"
// @Router /movies/filter [get]
func (h *MovieHandler) Filter(c *fiber.Ctx) error {
	filter := repository.MovieFilter{
		Title:           c.Query("title"),
		GenreID:         uint(c.QueryInt("genreId")),
		IsNowShowing:    c.QueryBool("isNowShowing"),
		IsUpcomingMovie: c.QueryBool("isUpcomingMovie"),
	}

	movies, total, err := h.service.Filter(c.Context(), filter, utils.ParsePagination(c))
	if err != nil {
		return err
	}
	return utils.ListResponse(c, movies, total)
}

// PostGet godoc
// @Summary Options for the movie creation form
// @Tags movies
// @Produce json
// @Success 200 {object} services.MoviePostGetOptions
// @Router /movies/postget [get]
func (h *MovieHandler) PostGet(c *fiber.Ctx) error {
	options, err := h.service.PostGetOptions(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(options)
}

// PutGet godoc
// @Summary Options for the movie edit form, partitioned by selection
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} services.MoviePutGetOptions
// @Failure 404 "Not found"
// @Router /movies/putget/{id} [get]
func (h *MovieHandler) PutGet(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	options, err := h.service.PutGetOptions(c.Context(), id)
	if err != nil {
		return respondCrudError(c, err)
	}
	return c.JSON(options)
}

// Create godoc
// @Summary Create a movie with its genre, theater and cast links
// @Tags movies
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param trailer formData string false "Trailer URL"
// @Param releaseDate formData string false "Release date (YYYY-MM-DD)"
// @Param genresIds formData string false "JSON array of genre IDs"
// @Param movieTheatersIds formData string false "JSON array of theater IDs"
// @Param actors formData string false "JSON array of {id, characterName}"
// @Param poster formData file false "Poster"
// @Success 201 {object} services.MovieRead
// @Failure 400 "Validation errors"
// @Router /movies [post]
func (h *MovieHandler) Create(c *fiber.Ctx) error {
	input, err := parseMovieForm(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationFailedResponse(c, errs)
	}

	poster, _ := c.FormFile("poster")

	movie, id, err := h.service.Create(c.Context(), input, poster)
	if err != nil {
		return err
	}
	return utils.CreatedResponse(c, fmt.Sprintf("/api/movies/%d", id), movie)
}

// Update godoc
// @Summary Replace a movie and rebuild its links
// @Tags movies
// @Accept mpfd
// @Param id path int true "Movie ID"
// @Success 204 "Updated"
// @Failure 404 "Not found"
// @Router /movies/{id} [put]
func (h *MovieHandler) Update(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	input, err := parseMovieForm(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationFailedResponse(c, errs)
	}

	poster, _ := c.FormFile("poster")

	if err := h.service.Update(c.Context(), id, input, poster); err != nil {
		return respondCrudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary Delete a movie and its links and ratings
// @Tags movies
// @Param id path int true "Movie ID"
// @Success 204 "Deleted"
// @Failure 404 "Not found"
// @Router /movies/{id} [delete]
func (h *MovieHandler) Delete(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondCrudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
