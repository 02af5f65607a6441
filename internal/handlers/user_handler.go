package handlers

import (
	"errors"

	"cinema-catalog/internal/services"
	"cinema-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type AdminRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UserHandler struct {
	service services.UserService
}

func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register godoc
// @Summary Register a new account and return a token
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body UserCredentials true "Credentials"
// @Success 200 {object} services.AuthToken
// @Failure 400 "Validation errors or email taken"
// @Router /users/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req UserCredentials
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.ValidationFailedResponse(c, errs)
	}

	token, err := h.service.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return utils.ValidationFailedResponse(c, []utils.FieldError{
				{Field: "email", Message: err.Error()},
			})
		}
		return err
	}
	return c.JSON(token)
}

// Login godoc
// @Summary Exchange credentials for a token
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body UserCredentials true "Credentials"
// @Success 200 {object} services.AuthToken
// @Failure 400 "Login is incorrect"
// @Router /users/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req UserCredentials
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.ValidationFailedResponse(c, errs)
	}

	token, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrLoginIncorrect) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return err
	}
	return c.JSON(token)
}

// CreateAdmin godoc
// @Summary Grant the admin role to a user
// @Tags users
// @Accept json
// @Param request body AdminRequest true "Target user"
// @Success 204 "Granted"
// @Failure 404 "User not found"
// @Security BearerAuth
// @Router /users/createAdmin [post]
func (h *UserHandler) CreateAdmin(c *fiber.Ctx) error {
	return h.setAdmin(c, true)
}

// RemoveAdmin godoc
// @Summary Revoke the admin role from a user
// @Tags users
// @Accept json
// @Param request body AdminRequest true "Target user"
// @Success 204 "Revoked"
// @Failure 404 "User not found"
// @Security BearerAuth
// @Router /users/removeAdmin [post]
func (h *UserHandler) RemoveAdmin(c *fiber.Ctx) error {
	return h.setAdmin(c, false)
}

func (h *UserHandler) setAdmin(c *fiber.Ctx, isAdmin bool) error {
	var req AdminRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.ValidationFailedResponse(c, errs)
	}

	if err := h.service.SetAdmin(c.Context(), req.Email, isAdmin); err != nil {
		return respondCrudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary List accounts, paginated
// @Tags users
// @Produce json
// @Param pageNumber query int false "Page number" default(1)
// @Param recordsPerPage query int false "Records per page (max 50)" default(10)
// @Success 200 {array} services.UserRead
// @Header 200 {string} x-total-count "Total record count"
// @Security BearerAuth
// @Router /users/usersAndAdminsList [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, total, err := h.service.List(c.Context(), utils.ParsePagination(c))
	if err != nil {
		return err
	}
	return utils.ListResponse(c, users, total)
}
