package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"billun/internal/schema"
	"billun/internal/service"
)

// ContactHandler handles the public contact endpoints.
type ContactHandler struct {
	svc     service.ContactService
	schemas *schema.Validator
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(svc service.ContactService, schemas *schema.Validator) *ContactHandler {
	return &ContactHandler{svc: svc, schemas: schemas}
}

// Contact godoc
// @Summary Send a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /contact [post]
func (h *ContactHandler) Contact(c echo.Context) error {
	fields := map[string]interface{}{}
	// the body is optional and never rejected
	_ = c.Bind(&fields)
	h.svc.ReceiveMessage(c.Request().Context(), fields)
	return c.JSON(http.StatusOK, MessageResponse{Message: "Message reçu"})
}

// SendAPKLink godoc
// @Summary Mail the mobile application link
// @Tags contact
// @Accept json
// @Produce json
// @Param request body APKLinkRequest true "Recipient and link"
// @Success 200 {object} MessageResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /contact/send-apk-link [post]
func (h *ContactHandler) SendAPKLink(c echo.Context) error {
	var req APKLinkRequest
	if err := decodeBody(c, h.schemas, schema.ContactAPKLink, &req); err != nil {
		return respondError(c, err)
	}
	if err := h.svc.SendAPKLink(c.Request().Context(), req.Email, req.APKLink); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "APK link sent"})
}
