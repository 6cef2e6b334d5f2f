package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(LoggerMiddleware)

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     s.corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	e.GET("/health", s.healthHandler)

	api := e.Group("/api")

	// Score and plan pipeline
	api.GET("/health-score", s.healthScorePingHandler)
	api.POST("/health-score", s.healthScoreHandler)
	api.POST("/health-plans", s.healthPlansHandler)
	api.POST("/plan-activities", s.planActivitiesHandler)
	api.POST("/groq/generate-plan", s.quickPlansHandler)

	// Unified onboarding flow
	api.POST("/generate-complete-plan", s.completePlanHandler)
	api.POST("/generate-schedule", s.scheduleHandler)

	// Supporting endpoints
	api.POST("/groq/audio-process", s.audioProcessHandler)
	api.GET("/user/profile", s.userProfileHandler)
	api.GET("/system-health", s.systemHealthHandler)

	return e
}

// LoggerMiddleware tags every request with an ID and a child logger carrying
// it, then logs the request line.
func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Response().Header().Set("X-Request-ID", requestID)

		logger := log.With().Str("request_id", requestID).Logger()
		c.Set("logger", &logger)

		logger.Info().
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Msg("request")

		return next(c)
	}
}
