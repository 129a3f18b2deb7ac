package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"billun/internal/auth"
	apperrors "billun/internal/errors"
	"billun/internal/schema"
	"billun/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	schemas     *schema.Validator
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, schemas *schema.Validator) *AuthHandler {
	return &AuthHandler{authService: authService, schemas: schemas}
}

// Token godoc
// @Summary Issue an access token
// @Description OAuth2 password flow. The username is the account email.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /auth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrMalformedBody)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   auth.TokenType,
	})
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body UserRequest true "Registration data"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req UserRequest
	if err := decodeBody(c, h.schemas, schema.UserRegister, &req); err != nil {
		return respondError(c, err)
	}

	user, err := h.authService.Register(c.Request().Context(), req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// CreateAdmin godoc
// @Summary Create an administrator
// @Description The role in the payload is ignored.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body UserRequest true "Administrator data"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/create-admin [post]
func (h *AuthHandler) CreateAdmin(c echo.Context) error {
	var req UserRequest
	if err := decodeBody(c, h.schemas, schema.UserRegister, &req); err != nil {
		return respondError(c, err)
	}

	user, err := h.authService.CreateAdmin(c.Request().Context(), req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
