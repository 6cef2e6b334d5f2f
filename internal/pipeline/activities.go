package pipeline

import (
	"context"
	"fmt"

	"careplan-backend/internal/extract"
	"careplan-backend/internal/genai"
)

// ActivitiesRequest is the input of the weekly activity stage.
type ActivitiesRequest struct {
	SelectedPlan *Plan        `json:"selectedPlan"`
	UserProfile  *UserProfile `json:"userProfile"`
}

// QuickPlansRequest is the input of the lightweight plan proxy. Prompt text
// is passed through to the model verbatim; an empty prompt gets a default.
type QuickPlansRequest struct {
	Prompt      string       `json:"prompt"`
	UserProfile *UserProfile `json:"userProfile"`
}

type weeklyActivities struct {
	Activities []WeeklyActivity `json:"activities"`
}

type quickPlanSet struct {
	Plans []QuickPlan `json:"plans"`
}

// ComputePlanActivities expands a selected plan into week-by-week activity
// blocks. Unusable output is replaced with a single gentle starter activity.
func (p *Pipeline) ComputePlanActivities(ctx context.Context, req ActivitiesRequest) ([]WeeklyActivity, error) {
	if req.SelectedPlan == nil || req.UserProfile == nil {
		return nil, fmt.Errorf("%w: selectedPlan and userProfile are required", ErrInvalidInput)
	}
	p.stats.RecordRequest(StageActivities)

	raw, err := p.groq.Generate(ctx, genai.Request{
		SystemPrompt: activitySystemPrompt,
		UserPrompt:   buildActivityPrompt(req),
		Model:        genai.GroqModelFast,
		MaxTokens:    3000,
		Temperature:  0.7,
	})
	if err != nil {
		return nil, err
	}

	var parsed weeklyActivities
	if err := extract.ExtractInto(raw, &parsed); err != nil {
		p.fallback(StageActivities, err)
		return activitiesFallback(), nil
	}
	if len(parsed.Activities) == 0 {
		p.fallback(StageActivities, fmt.Errorf("empty activities list"))
		return activitiesFallback(), nil
	}
	return parsed.Activities, nil
}

// ComputeQuickPlans runs the caller-driven plan proxy. The caller owns the
// prompt; only the response structure is enforced here.
func (p *Pipeline) ComputeQuickPlans(ctx context.Context, req QuickPlansRequest) ([]QuickPlan, error) {
	if req.UserProfile == nil {
		return nil, fmt.Errorf("%w: userProfile is required", ErrInvalidInput)
	}
	p.stats.RecordRequest(StageQuickPlans)

	raw, err := p.groq.Generate(ctx, genai.Request{
		SystemPrompt: quickPlanSystemPrompt,
		UserPrompt:   orDefault(req.Prompt, defaultQuickPlanPrompt),
		Model:        genai.GroqModelFast,
		MaxTokens:    2000,
		Temperature:  0.8,
	})
	if err != nil {
		return nil, err
	}

	var parsed quickPlanSet
	if err := extract.ExtractInto(raw, &parsed); err != nil {
		p.fallback(StageQuickPlans, err)
		return quickPlansFallback(), nil
	}
	if len(parsed.Plans) == 0 {
		p.fallback(StageQuickPlans, fmt.Errorf("no plans in response"))
		return quickPlansFallback(), nil
	}
	return parsed.Plans, nil
}
