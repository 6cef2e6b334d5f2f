/*
Package pipeline implements the multi-stage plan generation flow: health
score, plan sets, weekly activities and the daily schedule.

Failure handling is deliberately asymmetric. Transport-level failures
(provider unreachable, quota exhausted, missing API key) propagate to the
caller as errors. Content-level failures (unparseable model output, output
that breaks a stage's contract) never propagate: the stage logs a warning,
records the event and returns a canned fallback value, so a flaky model can
degrade answer quality but cannot break the client flow.
*/
package pipeline

import (
	"errors"

	"github.com/rs/zerolog/log"

	"careplan-backend/internal/genai"
	"careplan-backend/internal/metrics"
)

// ErrInvalidInput reports a request missing required fields. Stages return
// it before any generation call is made.
var ErrInvalidInput = errors.New("invalid input")

// ErrPlanNotFound reports a schedule request whose selectedPlanId is not in
// the provided plan details.
var ErrPlanNotFound = errors.New("selected plan not found in provided plan details")

// Stage names used for logging and metrics.
const (
	StageScore        = "health_score"
	StagePlans        = "health_plans"
	StageActivities   = "plan_activities"
	StageQuickPlans   = "quick_plans"
	StageCompletePlan = "complete_plan"
	StageSchedule     = "schedule"
)

// Pipeline binds each generation stage to its provider client.
type Pipeline struct {
	groq   genai.Client
	gemini genai.Client
	stats  *metrics.Recorder
}

// New wires the pipeline. Score, plan and activity stages use groq; the
// schedule stage uses gemini. stats may be nil.
func New(groq, gemini genai.Client, stats *metrics.Recorder) *Pipeline {
	return &Pipeline{groq: groq, gemini: gemini, stats: stats}
}

// fallback logs and records a content-level failure before the stage
// substitutes its canned value.
func (p *Pipeline) fallback(stage string, err error) {
	log.Warn().Err(err).Str("stage", stage).Msg("substituting fallback for unusable generation output")
	p.stats.RecordFallback(stage, err.Error())
}
