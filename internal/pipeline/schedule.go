package pipeline

import (
	"context"
	"fmt"
	"sort"
	"time"

	"careplan-backend/internal/extract"
	"careplan-backend/internal/genai"
)

// ScheduleRequest is the input of the daily schedule stage. All four fields
// are required; SelectedPlanID must reference a plan inside PlanDetails.
type ScheduleRequest struct {
	SelectedPlanID string          `json:"selectedPlanId"`
	PlanDetails    *PlanDetails    `json:"planDetails"`
	OnboardingData *OnboardingData `json:"onboardingData"`
	UserProfile    *UserProfile    `json:"userProfile"`
}

// ScheduleResult pairs the generated day with the plan it was built from.
type ScheduleResult struct {
	Entries []ScheduleEntry
	Plan    Plan
}

type dailySchedule struct {
	DailySchedule []ScheduleEntry `json:"dailySchedule"`
}

// ComputeSchedule runs the schedule stage against Gemini. The returned
// entries are sorted by time of day and every timestamp is HH:MM; output
// breaking the schedule contract is replaced with a default day built from
// the user's stated times.
func (p *Pipeline) ComputeSchedule(ctx context.Context, req ScheduleRequest) (ScheduleResult, error) {
	if req.SelectedPlanID == "" || req.PlanDetails == nil || req.OnboardingData == nil || req.UserProfile == nil {
		return ScheduleResult{}, fmt.Errorf("%w: missing required data for schedule generation", ErrInvalidInput)
	}

	var selected *Plan
	for i := range req.PlanDetails.Plans {
		if req.PlanDetails.Plans[i].ID == req.SelectedPlanID {
			selected = &req.PlanDetails.Plans[i]
			break
		}
	}
	if selected == nil {
		return ScheduleResult{}, ErrPlanNotFound
	}
	p.stats.RecordRequest(StageSchedule)

	raw, err := p.gemini.Generate(ctx, genai.Request{
		UserPrompt:  buildSchedulePrompt(*selected, *req.OnboardingData),
		Model:       genai.GeminiModelFlash,
		MaxTokens:   8192,
		Temperature: 0.7,
	})
	if err != nil {
		return ScheduleResult{}, err
	}

	var parsed dailySchedule
	if err := extract.ExtractInto(raw, &parsed); err != nil {
		p.fallback(StageSchedule, err)
		return ScheduleResult{Entries: scheduleFallback(*req.OnboardingData), Plan: *selected}, nil
	}
	if err := validateSchedule(parsed.DailySchedule); err != nil {
		p.fallback(StageSchedule, err)
		return ScheduleResult{Entries: scheduleFallback(*req.OnboardingData), Plan: *selected}, nil
	}

	entries := parsed.DailySchedule
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})
	return ScheduleResult{Entries: entries, Plan: *selected}, nil
}

// validateSchedule enforces the schedule contract: at least one entry, every
// timestamp a valid HH:MM, non-negative calories, and no two physical
// activities sharing a timestamp.
func validateSchedule(entries []ScheduleEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("empty schedule")
	}
	physicalAt := make(map[string]bool)
	for i, e := range entries {
		if _, err := time.Parse("15:04", e.Time); err != nil {
			return fmt.Errorf("entry %d has invalid time %q", i+1, e.Time)
		}
		if e.Activity == "" {
			return fmt.Errorf("entry %d at %s has no activity", i+1, e.Time)
		}
		if e.Calories < 0 {
			return fmt.Errorf("entry %d at %s has negative calories", i+1, e.Time)
		}
		if isPhysicalCategory(e.Category) {
			if physicalAt[e.Time] {
				return fmt.Errorf("two physical activities scheduled at %s", e.Time)
			}
			physicalAt[e.Time] = true
		}
	}
	return nil
}
