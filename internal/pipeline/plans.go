package pipeline

import (
	"context"
	"fmt"
	"strings"

	"careplan-backend/internal/extract"
	"careplan-backend/internal/genai"
)

// PlansRequest is the input of the classic three-plan stage. It carries the
// score stage's output forward along with the original profile.
type PlansRequest struct {
	UserProfile     *UserProfile   `json:"userProfile"`
	HealthScore     int            `json:"healthScore"`
	Analysis        string         `json:"analysis"`
	Recommendations []string       `json:"recommendations"`
	UserInput       string         `json:"userInput"`
	UploadedFiles   []UploadedFile `json:"uploadedFiles"`
	VoiceTranscript string         `json:"voiceTranscript"`
}

// CompletePlanRequest is the input of the unified onboarding plan stage.
type CompletePlanRequest struct {
	PrimaryGoal    string          `json:"primaryGoal"`
	OnboardingData *OnboardingData `json:"onboardingData"`
	UserProfile    *UserProfile    `json:"userProfile"`
}

// ComputePlans runs the three-plan stage against the fast model. The result
// always holds exactly three plans covering the three difficulty levels;
// output breaking that contract is replaced with the fallback set.
func (p *Pipeline) ComputePlans(ctx context.Context, req PlansRequest) ([]Plan, error) {
	if req.UserProfile == nil {
		return nil, fmt.Errorf("%w: userProfile is required", ErrInvalidInput)
	}
	if req.Analysis == "" || len(req.Recommendations) == 0 {
		return nil, fmt.Errorf("%w: health score analysis and recommendations are required", ErrInvalidInput)
	}
	p.stats.RecordRequest(StagePlans)

	raw, err := p.groq.Generate(ctx, genai.Request{
		SystemPrompt: planSystemPrompt,
		UserPrompt:   buildPlanPrompt(req),
		Model:        genai.GroqModelFast,
		MaxTokens:    2000,
		Temperature:  0.8,
	})
	if err != nil {
		return nil, err
	}
	return p.decodePlanSet(StagePlans, raw), nil
}

// ComputeCompletePlan runs the unified plan stage against the deep model.
// Same output contract as ComputePlans.
func (p *Pipeline) ComputeCompletePlan(ctx context.Context, req CompletePlanRequest) ([]Plan, error) {
	if req.PrimaryGoal == "" || req.OnboardingData == nil || req.UserProfile == nil {
		return nil, fmt.Errorf("%w: missing required data for plan generation", ErrInvalidInput)
	}
	p.stats.RecordRequest(StageCompletePlan)

	raw, err := p.groq.Generate(ctx, genai.Request{
		SystemPrompt: completePlanSystemPrompt,
		UserPrompt:   buildCompletePlanPrompt(req),
		Model:        genai.GroqModelDeep,
		MaxTokens:    4000,
		Temperature:  0.8,
	})
	if err != nil {
		return nil, err
	}
	return p.decodePlanSet(StageCompletePlan, raw), nil
}

// decodePlanSet parses and validates a generated plan set, substituting the
// fallback set when the output is unusable.
func (p *Pipeline) decodePlanSet(stage, raw string) []Plan {
	var parsed PlanDetails
	if err := extract.ExtractInto(raw, &parsed); err != nil {
		p.fallback(stage, err)
		return planSetFallback()
	}
	if err := validatePlanSet(parsed.Plans); err != nil {
		p.fallback(stage, err)
		return planSetFallback()
	}
	return parsed.Plans
}

// validatePlanSet enforces the plan set contract: exactly three plans, one
// per difficulty level, each with an id and a usable label.
func validatePlanSet(plans []Plan) error {
	if len(plans) != PlanSetSize {
		return fmt.Errorf("expected %d plans, got %d", PlanSetSize, len(plans))
	}
	seen := make(map[string]bool, PlanSetSize)
	for i, plan := range plans {
		if plan.ID == "" {
			return fmt.Errorf("plan %d has no id", i+1)
		}
		if plan.Label() == "" {
			return fmt.Errorf("plan %q has no name or title", plan.ID)
		}
		level := normalizeDifficulty(plan.Difficulty)
		if level == "" {
			return fmt.Errorf("plan %q has unknown difficulty %q", plan.ID, plan.Difficulty)
		}
		if seen[level] {
			return fmt.Errorf("duplicate difficulty %q in plan set", level)
		}
		seen[level] = true
	}
	return nil
}

func normalizeDifficulty(d string) string {
	switch strings.ToLower(strings.TrimSpace(d)) {
	case "beginner":
		return DifficultyBeginner
	case "intermediate":
		return DifficultyIntermediate
	case "advanced":
		return DifficultyAdvanced
	}
	return ""
}
