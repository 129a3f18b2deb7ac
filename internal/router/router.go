package router

import (
	"net/http"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"billun/internal/auth"
	apperrors "billun/internal/errors"
	"billun/internal/handler"
	"billun/internal/logger"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	healthHandler *handler.HealthHandler,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	materielHandler *handler.MaterielHandler,
	anomalieHandler *handler.AnomalieHandler,
	statsHandler *handler.StatsHandler,
	contactHandler *handler.ContactHandler,
) {
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(logger.Middleware())
	e.Use(logger.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = NewCustomValidator()
	e.JSONSerializer = JSONSerializer{}

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/token", authHandler.Token)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/create-admin", authHandler.CreateAdmin)
	e.POST("/contact", contactHandler.Contact)
	e.POST("/contact/send-apk-link", contactHandler.SendAPKLink)

	// Secured routes (require JWT authentication)
	jwtMiddleware := JWTMiddleware(jwtService)

	users := e.Group("/users", jwtMiddleware)
	users.GET("", userHandler.ListUsers)
	users.POST("", userHandler.CreateUser)
	users.GET("/me", userHandler.Me)
	users.GET("/:id", userHandler.GetUser)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)

	materiels := e.Group("/materiels", jwtMiddleware)
	materiels.GET("", materielHandler.ListMateriels)
	materiels.POST("", materielHandler.CreateMateriel)
	materiels.GET("/count", materielHandler.CountMateriels)
	materiels.GET("/events", materielHandler.Events)
	materiels.GET("/:id", materielHandler.GetMateriel)
	materiels.PUT("/:id", materielHandler.UpdateMateriel)
	materiels.DELETE("/:id", materielHandler.DeleteMateriel)

	anomalies := e.Group("/anomalies", jwtMiddleware)
	anomalies.GET("", anomalieHandler.ListAnomalies)
	anomalies.POST("", anomalieHandler.CreateAnomalie)
	anomalies.GET("/:id", anomalieHandler.GetAnomalie)
	anomalies.PUT("/:id", anomalieHandler.UpdateAnomalie)
	anomalies.DELETE("/:id", anomalieHandler.DeleteAnomalie)

	stats := e.Group("/stats", jwtMiddleware)
	stats.GET("", statsHandler.Overview)
	stats.GET("/users", statsHandler.Users)
}

// JWTMiddleware validates the bearer token with jwtService and stores the
// *auth.Claims under auth.ContextKey. Every failure is reported as 401.
func JWTMiddleware(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  auth.ContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		SuccessHandler: func(c echo.Context) {
			if claims, ok := c.Get(auth.ContextKey).(*auth.Claims); ok {
				ctx := logger.ContextWithIdentity(c.Request().Context(), claims.Subject)
				c.SetRequest(c.Request().WithContext(ctx))
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.FromContext(c.Request().Context()).WithError(err).Debug("bearer token rejected")
			resp := apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken).ToErrorResponse()
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return echo.NewHTTPError(http.StatusUnauthorized, resp)
		},
	})
}
