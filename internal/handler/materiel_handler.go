package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"billun/internal/model"
	"billun/internal/schema"
	"billun/internal/service"
)

// MaterielHandler handles equipment endpoints.
type MaterielHandler struct {
	svc     service.MaterielService
	schemas *schema.Validator
}

// NewMaterielHandler creates a new materiel handler.
func NewMaterielHandler(svc service.MaterielService, schemas *schema.Validator) *MaterielHandler {
	return &MaterielHandler{svc: svc, schemas: schemas}
}

// MaterielCreatedResponse echoes the stored record with a creation flag.
type MaterielCreatedResponse struct {
	model.Materiel
	Created bool `json:"created"`
}

// CountResponse holds a single count.
type CountResponse struct {
	Count int64 `json:"count"`
}

// EventsResponse tells polling clients when data last changed.
type EventsResponse struct {
	LastUpdate time.Time `json:"last_update"`
	Status     string    `json:"status"`
}

// ListMateriels godoc
// @Summary List materiels
// @Tags materiels
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Materiel
// @Router /materiels [get]
func (h *MaterielHandler) ListMateriels(c echo.Context) error {
	materiels, err := h.svc.ListMateriels(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, materiels)
}

// CountMateriels godoc
// @Summary Count materiels
// @Tags materiels
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CountResponse
// @Router /materiels/count [get]
func (h *MaterielHandler) CountMateriels(c echo.Context) error {
	count, err := h.svc.CountMateriels(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, CountResponse{Count: count})
}

// Events godoc
// @Summary Last data change
// @Description Polling endpoint. Status is always "updated".
// @Tags materiels
// @Produce json
// @Security BearerAuth
// @Success 200 {object} EventsResponse
// @Router /materiels/events [get]
func (h *MaterielHandler) Events(c echo.Context) error {
	return c.JSON(http.StatusOK, EventsResponse{
		LastUpdate: h.svc.LastUpdate(c.Request().Context()),
		Status:     "updated",
	})
}

// GetMateriel godoc
// @Summary Get materiel by id
// @Tags materiels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Materiel ID"
// @Success 200 {object} model.Materiel
// @Failure 404 {object} errors.ErrorResponse
// @Router /materiels/{id} [get]
func (h *MaterielHandler) GetMateriel(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	materiel, err := h.svc.GetMateriel(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, materiel)
}

// CreateMateriel godoc
// @Summary Create materiel
// @Tags materiels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param materiel body MaterielRequest true "Materiel payload"
// @Success 200 {object} MaterielCreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /materiels [post]
func (h *MaterielHandler) CreateMateriel(c echo.Context) error {
	var req MaterielRequest
	if err := decodeBody(c, h.schemas, schema.MaterielCreate, &req); err != nil {
		return respondError(c, err)
	}
	in, err := req.toInput()
	if err != nil {
		return respondError(c, err)
	}
	created, err := h.svc.CreateMateriel(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MaterielCreatedResponse{Materiel: *created, Created: true})
}

// UpdateMateriel godoc
// @Summary Update materiel
// @Description Only the supplied fields are changed.
// @Tags materiels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Materiel ID"
// @Param materiel body MaterielRequest true "Fields to change"
// @Success 200 {object} model.Materiel
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /materiels/{id} [put]
func (h *MaterielHandler) UpdateMateriel(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req MaterielRequest
	if err := decodeBody(c, h.schemas, schema.MaterielUpdate, &req); err != nil {
		return respondError(c, err)
	}
	in, err := req.toInput()
	if err != nil {
		return respondError(c, err)
	}
	updated, err := h.svc.UpdateMateriel(c.Request().Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteMateriel godoc
// @Summary Delete materiel
// @Description Anomalies of the materiel are kept.
// @Tags materiels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Materiel ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /materiels/{id} [delete]
func (h *MaterielHandler) DeleteMateriel(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.svc.DeleteMateriel(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "materiel deleted"})
}
