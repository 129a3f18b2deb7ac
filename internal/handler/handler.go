package handler

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"

	apperrors "billun/internal/errors"
	"billun/internal/logger"
	"billun/internal/schema"
)

// MessageResponse is returned by endpoints that only acknowledge an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondError converts a domain error into the JSON error body.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= 500 {
		logger.FromContext(c.Request().Context()).WithError(err).Error("request failed")
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// parseID reads the :id path parameter.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.ErrInvalidID
	}
	return uint(id), nil
}

// decodeBody checks the raw body against schemaID, decodes it into dst and runs
// struct validation. An empty body is treated as an empty object.
func decodeBody(c echo.Context, schemas *schema.Validator, schemaID string, dst interface{}) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperrors.ErrMalformedBody
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	if err := schemas.Validate(schemaID, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return apperrors.ErrMalformedBody
	}
	return c.Validate(dst)
}

// parseDate accepts RFC 3339 timestamps, plain YYYY-MM-DD dates and date-times
// without an offset, which are read as UTC.
func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02"} {
		if t, err := time.Parse(layout, *value); err == nil {
			return &t, nil
		}
	}
	return nil, apperrors.NewValidationError(field, "must be an ISO 8601 date or date-time")
}
