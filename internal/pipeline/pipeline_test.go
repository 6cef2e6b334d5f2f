package pipeline

import (
	"context"
	"errors"
	"testing"

	"careplan-backend/internal/genai"
	"careplan-backend/internal/metrics"
)

// stubClient returns a fixed reply or error and records how it was called.
type stubClient struct {
	reply   string
	err     error
	calls   int
	lastReq genai.Request
}

func (s *stubClient) Generate(_ context.Context, req genai.Request) (string, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestPipeline(groq, gemini *stubClient) *Pipeline {
	return New(groq, gemini, metrics.NewRecorder())
}

func validProfile() *UserProfile {
	return &UserProfile{ID: "user_123", Age: 30, Gender: "Male"}
}

func validPlanSetJSON() string {
	return `{"plans":[
		{"id":"plan_1","title":"Easy Start","description":"d","duration":"4 weeks","difficulty":"Beginner","focusAreas":["Sleep"]},
		{"id":"plan_2","title":"Middle Road","description":"d","duration":"8 weeks","difficulty":"Intermediate","focusAreas":["Cardio"]},
		{"id":"plan_3","title":"All In","description":"d","duration":"12 weeks","difficulty":"Advanced","focusAreas":["HIIT"]}
	]}`
}

func TestComputeScoreParsesModelOutput(t *testing.T) {
	groq := &stubClient{reply: `Here is your assessment:
{"healthScore":82,"analysis":"Solid overall condition","recommendations":["Keep exercising","Sleep more"]}`}
	p := newTestPipeline(groq, &stubClient{})

	got, err := p.ComputeScore(context.Background(), ScoreRequest{UserProfile: validProfile()})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.HealthScore != 82 {
		t.Errorf("expected score 82, got %d", got.HealthScore)
	}
	if len(got.Recommendations) != 2 {
		t.Errorf("expected 2 recommendations, got %d", len(got.Recommendations))
	}
	if groq.lastReq.Model != genai.GroqModelFast {
		t.Errorf("expected fast model, got %q", groq.lastReq.Model)
	}
}

func TestComputeScoreFallbackOnGarbage(t *testing.T) {
	groq := &stubClient{reply: "I am sorry, I cannot produce JSON today."}
	p := newTestPipeline(groq, &stubClient{})

	got, err := p.ComputeScore(context.Background(), ScoreRequest{UserProfile: validProfile()})
	if err != nil {
		t.Fatalf("garbage output must not surface as an error, got %v", err)
	}
	if got.HealthScore != 75 {
		t.Errorf("expected fallback score 75, got %d", got.HealthScore)
	}
	if got.Analysis == "" || len(got.Recommendations) == 0 {
		t.Error("fallback must carry analysis and recommendations")
	}
}

func TestComputeScoreOutOfRangeFallsBack(t *testing.T) {
	groq := &stubClient{reply: `{"healthScore":250,"analysis":"a","recommendations":["r"]}`}
	p := newTestPipeline(groq, &stubClient{})

	got, err := p.ComputeScore(context.Background(), ScoreRequest{UserProfile: validProfile()})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.HealthScore != 75 {
		t.Errorf("expected fallback score 75, got %d", got.HealthScore)
	}
}

func TestComputeScoreTransportErrorPropagates(t *testing.T) {
	groq := &stubClient{err: genai.ErrUnavailable}
	p := newTestPipeline(groq, &stubClient{})

	_, err := p.ComputeScore(context.Background(), ScoreRequest{UserProfile: validProfile()})
	if !errors.Is(err, genai.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestComputeScoreRejectsMissingProfile(t *testing.T) {
	groq := &stubClient{reply: "{}"}
	p := newTestPipeline(groq, &stubClient{})

	_, err := p.ComputeScore(context.Background(), ScoreRequest{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if groq.calls != 0 {
		t.Errorf("validation failure must not reach the provider, got %d calls", groq.calls)
	}
}

func TestComputePlansValidSet(t *testing.T) {
	groq := &stubClient{reply: validPlanSetJSON()}
	p := newTestPipeline(groq, &stubClient{})

	plans, err := p.ComputePlans(context.Background(), PlansRequest{
		UserProfile:     validProfile(),
		HealthScore:     70,
		Analysis:        "ok",
		Recommendations: []string{"r"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}
	if plans[0].Title != "Easy Start" {
		t.Errorf("expected generated plan, got %q", plans[0].Title)
	}
}

func TestComputePlansDuplicateDifficultyFallsBack(t *testing.T) {
	groq := &stubClient{reply: `{"plans":[
		{"id":"p1","title":"A","difficulty":"Beginner"},
		{"id":"p2","title":"B","difficulty":"Beginner"},
		{"id":"p3","title":"C","difficulty":"Advanced"}
	]}`}
	p := newTestPipeline(groq, &stubClient{})

	plans, err := p.ComputePlans(context.Background(), PlansRequest{
		UserProfile:     validProfile(),
		HealthScore:     70,
		Analysis:        "ok",
		Recommendations: []string{"r"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if plans[0].Title != "Beginner Wellness Journey" {
		t.Errorf("expected fallback plan set, got %q", plans[0].Title)
	}
	if len(plans) != 3 {
		t.Errorf("fallback set must hold 3 plans, got %d", len(plans))
	}
}

func TestComputeCompletePlanRequiresAllFields(t *testing.T) {
	groq := &stubClient{reply: validPlanSetJSON()}
	p := newTestPipeline(groq, &stubClient{})

	_, err := p.ComputeCompletePlan(context.Background(), CompletePlanRequest{
		PrimaryGoal: "Weight Loss",
		UserProfile: validProfile(),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if groq.calls != 0 {
		t.Errorf("validation failure must not reach the provider, got %d calls", groq.calls)
	}
}

func TestComputeCompletePlanUsesDeepModel(t *testing.T) {
	groq := &stubClient{reply: validPlanSetJSON()}
	p := newTestPipeline(groq, &stubClient{})

	_, err := p.ComputeCompletePlan(context.Background(), CompletePlanRequest{
		PrimaryGoal:    "Weight Loss",
		OnboardingData: &OnboardingData{Age: 30},
		UserProfile:    validProfile(),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if groq.lastReq.Model != genai.GroqModelDeep {
		t.Errorf("expected deep model, got %q", groq.lastReq.Model)
	}
}

func TestComputePlanActivitiesFallbackOnGarbage(t *testing.T) {
	groq := &stubClient{reply: "not json at all"}
	p := newTestPipeline(groq, &stubClient{})

	activities, err := p.ComputePlanActivities(context.Background(), ActivitiesRequest{
		SelectedPlan: &Plan{ID: "plan_1", Title: "Easy Start", Difficulty: "Beginner"},
		UserProfile:  validProfile(),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(activities) != 1 || activities[0].Activities[0].Name != "Morning Stretch" {
		t.Errorf("expected fallback starter activity, got %+v", activities)
	}
}

func TestComputeQuickPlansDefaultPrompt(t *testing.T) {
	groq := &stubClient{reply: `{"plans":[{"id":"plan_1","title":"T","description":"d","activities":[]}]}`}
	p := newTestPipeline(groq, &stubClient{})

	plans, err := p.ComputeQuickPlans(context.Background(), QuickPlansRequest{UserProfile: validProfile()})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(plans))
	}
	if groq.lastReq.UserPrompt != defaultQuickPlanPrompt {
		t.Errorf("expected default prompt, got %q", groq.lastReq.UserPrompt)
	}
}

func scheduleRequest(planID string) ScheduleRequest {
	return ScheduleRequest{
		SelectedPlanID: planID,
		PlanDetails: &PlanDetails{Plans: []Plan{
			{ID: "plan_1", Name: "Foundation", Difficulty: "Beginner"},
			{ID: "plan_2", Name: "Progressive", Difficulty: "Intermediate"},
		}},
		OnboardingData: &OnboardingData{WakeUpTime: "05:30", SleepTime: "21:30"},
		UserProfile:    validProfile(),
	}
}

func TestComputeScheduleSortsByTime(t *testing.T) {
	gemini := &stubClient{reply: `{"dailySchedule":[
		{"time":"19:00","category":"meal","activity":"Dinner","details":"d","duration":"45 min","calories":500},
		{"time":"06:00","category":"morning_routine","activity":"Wake Up","details":"d","duration":"10 min","calories":0},
		{"time":"12:30","category":"meal","activity":"Lunch","details":"d","duration":"45 min","calories":550}
	]}`}
	p := newTestPipeline(&stubClient{}, gemini)

	got, err := p.ComputeSchedule(context.Background(), scheduleRequest("plan_2"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Plan.Name != "Progressive" {
		t.Errorf("expected selected plan in result, got %q", got.Plan.Name)
	}
	times := []string{got.Entries[0].Time, got.Entries[1].Time, got.Entries[2].Time}
	if times[0] != "06:00" || times[1] != "12:30" || times[2] != "19:00" {
		t.Errorf("expected entries sorted by time, got %v", times)
	}
}

func TestComputeScheduleUnknownPlan(t *testing.T) {
	gemini := &stubClient{reply: "{}"}
	p := newTestPipeline(&stubClient{}, gemini)

	_, err := p.ComputeSchedule(context.Background(), scheduleRequest("plan_99"))
	if !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
	if gemini.calls != 0 {
		t.Errorf("unknown plan must fail before any generation call, got %d calls", gemini.calls)
	}
}

func TestComputeScheduleInvalidTimeFallsBack(t *testing.T) {
	gemini := &stubClient{reply: `{"dailySchedule":[
		{"time":"6am","category":"workout","activity":"Run","details":"d","duration":"30 min","calories":300}
	]}`}
	p := newTestPipeline(&stubClient{}, gemini)

	got, err := p.ComputeSchedule(context.Background(), scheduleRequest("plan_1"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	// Fallback reuses the user's stated wake-up time.
	if got.Entries[0].Time != "05:30" {
		t.Errorf("expected fallback built from user times, got %q", got.Entries[0].Time)
	}
}

func TestComputeSchedulePhysicalConflictFallsBack(t *testing.T) {
	gemini := &stubClient{reply: `{"dailySchedule":[
		{"time":"18:00","category":"workout","activity":"Weights","details":"d","duration":"45 min","calories":300},
		{"time":"18:00","category":"cardio","activity":"Run","details":"d","duration":"30 min","calories":250}
	]}`}
	p := newTestPipeline(&stubClient{}, gemini)

	got, err := p.ComputeSchedule(context.Background(), scheduleRequest("plan_1"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Entries[0].Activity == "Weights" {
		t.Error("expected fallback schedule, got the conflicting generated one")
	}
}

func TestComputeScheduleMissingFields(t *testing.T) {
	p := newTestPipeline(&stubClient{}, &stubClient{})

	req := scheduleRequest("plan_1")
	req.OnboardingData = nil
	_, err := p.ComputeSchedule(context.Background(), req)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
