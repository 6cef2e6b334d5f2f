package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"careplan-backend/internal/genai"
	"careplan-backend/internal/pipeline"
)

// stageError maps pipeline errors onto HTTP responses. Input problems are
// the caller's fault (400), quota exhaustion gets its own status (429), and
// everything else is a provider failure (500). Content-level generation
// problems never reach this function; the pipeline absorbs them.
func stageError(c echo.Context, action string, err error) error {
	switch {
	case errors.Is(err, pipeline.ErrInvalidInput), errors.Is(err, pipeline.ErrPlanNotFound):
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
	case errors.Is(err, genai.ErrQuotaExceeded):
		return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
			"success": false,
			"error":   "Groq quota exceeded. Please check your billing details.",
			"details": "You have exceeded your current usage limit. Please upgrade your plan or wait for quota reset.",
		})
	default:
		log.Error().Err(err).Str("action", action).Msg("generation stage failed")
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Failed to " + action,
			"details": err.Error(),
		})
	}
}

func bindError(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"error":   "invalid request body",
	})
}

// healthScorePingHandler answers the GET probe some clients send before
// posting real data.
func (s *Server) healthScorePingHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"message":   "Health score endpoint is working",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"method":    http.MethodGet,
	})
}

func (s *Server) healthScoreHandler(c echo.Context) error {
	var req pipeline.ScoreRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}

	result, err := s.pipeline.ComputeScore(c.Request().Context(), req)
	if err != nil {
		return stageError(c, "generate health score", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":         true,
		"healthScore":     result.HealthScore,
		"analysis":        result.Analysis,
		"recommendations": result.Recommendations,
	})
}

func (s *Server) healthPlansHandler(c echo.Context) error {
	var req pipeline.PlansRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}

	plans, err := s.pipeline.ComputePlans(c.Request().Context(), req)
	if err != nil {
		return stageError(c, "generate health plans", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"plans":   plans,
	})
}

func (s *Server) planActivitiesHandler(c echo.Context) error {
	var req pipeline.ActivitiesRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}

	activities, err := s.pipeline.ComputePlanActivities(c.Request().Context(), req)
	if err != nil {
		return stageError(c, "generate activities", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"activities": activities,
	})
}

func (s *Server) quickPlansHandler(c echo.Context) error {
	var req pipeline.QuickPlansRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}

	plans, err := s.pipeline.ComputeQuickPlans(c.Request().Context(), req)
	if err != nil {
		return stageError(c, "generate plans", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"plans":   plans,
		"meta": map[string]interface{}{
			"model":     "groq-" + genai.GroqModelFast,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func (s *Server) completePlanHandler(c echo.Context) error {
	var req pipeline.CompletePlanRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}

	plans, err := s.pipeline.ComputeCompletePlan(c.Request().Context(), req)
	if err != nil {
		return stageError(c, "generate complete plan", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"step":    "plans_ready",
		"plans":   plans,
	})
}

func (s *Server) scheduleHandler(c echo.Context) error {
	var req pipeline.ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}

	result, err := s.pipeline.ComputeSchedule(c.Request().Context(), req)
	if err != nil {
		return stageError(c, "generate schedule", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":     true,
		"schedule":    result.Entries,
		"plan":        result.Plan.Label(),
		"generatedAt": time.Now().UTC().Format(time.RFC3339),
	})
}

// audioProcessHandler accepts a voice recording and returns its transcript.
// Actual speech-to-text is not hooked up yet, so the transcript is canned.
func (s *Server) audioProcessHandler(c echo.Context) error {
	file, err := c.FormFile("audio")
	if err != nil || file == nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "No audio file provided",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"transcript": "This is a mock transcript of your voice input. In production, this would be processed by a speech-to-text service.",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

// userProfileHandler serves a canned profile for clients developed against
// this backend before a real profile store exists.
func (s *Server) userProfileHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"profile": map[string]interface{}{
			"id":             "user_123",
			"name":           "Test User",
			"email":          "test@example.com",
			"age":            30,
			"gender":         "Male",
			"health_goals":   []string{"Weight Loss", "Better Sleep"},
			"activity_level": "Moderate",
		},
	})
}
