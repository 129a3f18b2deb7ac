package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"billun/internal/schema"
	"billun/internal/service"
)

// AnomalieHandler handles anomaly report endpoints.
type AnomalieHandler struct {
	svc     service.AnomalieService
	schemas *schema.Validator
}

// NewAnomalieHandler creates a new anomalie handler.
func NewAnomalieHandler(svc service.AnomalieService, schemas *schema.Validator) *AnomalieHandler {
	return &AnomalieHandler{svc: svc, schemas: schemas}
}

// ListAnomalies godoc
// @Summary List anomalies
// @Description Most recent reports first.
// @Tags anomalies
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Anomalie
// @Router /anomalies [get]
func (h *AnomalieHandler) ListAnomalies(c echo.Context) error {
	anomalies, err := h.svc.ListAnomalies(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, anomalies)
}

// GetAnomalie godoc
// @Summary Get anomalie by id
// @Tags anomalies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Anomalie ID"
// @Success 200 {object} model.Anomalie
// @Failure 404 {object} errors.ErrorResponse
// @Router /anomalies/{id} [get]
func (h *AnomalieHandler) GetAnomalie(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	anomalie, err := h.svc.GetAnomalie(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, anomalie)
}

// CreateAnomalie godoc
// @Summary Report an anomalie
// @Tags anomalies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param anomalie body AnomalieRequest true "Anomalie payload"
// @Success 201 {object} model.Anomalie
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /anomalies [post]
func (h *AnomalieHandler) CreateAnomalie(c echo.Context) error {
	var req AnomalieRequest
	if err := decodeBody(c, h.schemas, schema.AnomalieCreate, &req); err != nil {
		return respondError(c, err)
	}
	in, err := req.toInput()
	if err != nil {
		return respondError(c, err)
	}
	created, err := h.svc.CreateAnomalie(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateAnomalie godoc
// @Summary Update anomalie
// @Description Only the supplied fields are changed.
// @Tags anomalies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Anomalie ID"
// @Param anomalie body AnomalieRequest true "Fields to change"
// @Success 200 {object} model.Anomalie
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /anomalies/{id} [put]
func (h *AnomalieHandler) UpdateAnomalie(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req AnomalieRequest
	if err := decodeBody(c, h.schemas, schema.AnomalieUpdate, &req); err != nil {
		return respondError(c, err)
	}
	in, err := req.toInput()
	if err != nil {
		return respondError(c, err)
	}
	updated, err := h.svc.UpdateAnomalie(c.Request().Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteAnomalie godoc
// @Summary Delete anomalie
// @Tags anomalies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Anomalie ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /anomalies/{id} [delete]
func (h *AnomalieHandler) DeleteAnomalie(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.svc.DeleteAnomalie(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "anomalie deleted"})
}
