package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
)

func TestFromContext_DefaultsWithoutLogger(t *testing.T) {
	entry := FromContext(context.Background())
	assert.NotNil(t, entry)
	assert.Empty(t, entry.Data)
}

func TestContextWithRequestID(t *testing.T) {
	ctx, entry := ContextWithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", entry.Data[requestIDLoggerKey])
	assert.Equal(t, "req-1", FromContext(ctx).Data[requestIDLoggerKey])

	ctx = ContextWithIdentity(ctx, "alice@example.com")
	got := FromContext(ctx)
	assert.Equal(t, "req-1", got.Data[requestIDLoggerKey])
	assert.Equal(t, "alice@example.com", got.Data[identityLoggerKey])
}

func TestContextWithRequestID_GeneratesID(t *testing.T) {
	_, entry := ContextWithRequestID(context.Background(), "")
	assert.NotEmpty(t, entry.Data[requestIDLoggerKey])
}

func TestMiddleware_UsesEchoRequestID(t *testing.T) {
	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(Middleware())

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen, _ = FromContext(c.Request().Context()).Data[requestIDLoggerKey].(string)
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), seen)
}
