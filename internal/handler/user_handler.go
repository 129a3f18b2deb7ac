package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"billun/internal/auth"
	apperrors "billun/internal/errors"
	"billun/internal/schema"
	"billun/internal/service"
)

// UserHandler bundles user account handlers.
type UserHandler struct {
	svc     service.UserService
	authSvc service.AuthService
	schemas *schema.Validator
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService, authSvc service.AuthService, schemas *schema.Validator) *UserHandler {
	return &UserHandler{svc: svc, authSvc: authSvc, schemas: schemas}
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// Me godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	claims, ok := c.Get(auth.ContextKey).(*auth.Claims)
	if !ok {
		return respondError(c, apperrors.ErrInvalidToken)
	}
	user, err := h.authSvc.CurrentUser(c.Request().Context(), claims.Subject)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// CreateUser godoc
// @Summary Create user
// @Description Without a password a temporary one is generated and mailed to the user.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body UserRequest true "User payload"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req UserRequest
	if err := decodeBody(c, h.schemas, schema.UserCreate, &req); err != nil {
		return respondError(c, err)
	}
	created, err := h.svc.CreateUser(c.Request().Context(), req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateUser godoc
// @Summary Update user
// @Description Only the supplied fields are changed.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param user body UserRequest true "Fields to change"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req UserRequest
	if err := decodeBody(c, h.schemas, schema.UserUpdate, &req); err != nil {
		return respondError(c, err)
	}
	updated, err := h.svc.UpdateUser(c.Request().Context(), id, req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteUser godoc
// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.svc.DeleteUser(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "user deleted"})
}
