package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"billun/internal/service"
)

// StatsHandler exposes dashboard aggregates.
type StatsHandler struct {
	svc service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Overview godoc
// @Summary Fleet totals
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Overview
// @Router /stats [get]
func (h *StatsHandler) Overview(c echo.Context) error {
	overview, err := h.svc.Overview(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, overview)
}

// Users godoc
// @Summary User counts by role
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.UserBreakdown
// @Router /stats/users [get]
func (h *StatsHandler) Users(c echo.Context) error {
	breakdown, err := h.svc.UserBreakdown(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, breakdown)
}
