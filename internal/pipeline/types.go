package pipeline

import "strings"

/* =================================================================================
							DTOs (Data Transfer Objects)
=================================================================================*/

// UserProfile carries the demographic and medical attributes the caller
// supplies on every stage call. It is never persisted.
type UserProfile struct {
	ID                 string   `json:"id,omitempty"`
	Age                int      `json:"age,omitempty"`
	Gender             string   `json:"gender,omitempty"`
	HeightCm           float64  `json:"height_cm,omitempty"`
	HeightFeet         string   `json:"height_feet,omitempty"`
	WeightKg           float64  `json:"weight_kg,omitempty"`
	WeightLb           float64  `json:"weight_lb,omitempty"`
	BloodGroup         string   `json:"blood_group,omitempty"`
	ChronicConditions  []string `json:"chronic_conditions,omitempty"`
	Medications        []string `json:"medications,omitempty"`
	HealthGoals        []string `json:"health_goals,omitempty"`
	DietType           string   `json:"diet_type,omitempty"`
	WorkoutTime        string   `json:"workout_time,omitempty"`
	SleepTime          string   `json:"sleep_time,omitempty"`
	WakeUpTime         string   `json:"wake_up_time,omitempty"`
	ActivityLevel      string   `json:"activity_level,omitempty"`
	SleepHours         float64  `json:"sleep_hours,omitempty"`
	StressLevel        string   `json:"stress_level,omitempty"`
	WaterIntakeLiters  float64  `json:"water_intake_liters,omitempty"`
	Smoking            string   `json:"smoking,omitempty"`
	AlcoholConsumption string   `json:"alcohol_consumption,omitempty"`
	BMI                float64  `json:"bmi,omitempty"`
	BloodPressure      string   `json:"blood_pressure,omitempty"`
	HeartRate          int      `json:"heart_rate,omitempty"`
}

// OnboardingData captures the scheduling preferences collected during
// onboarding; only the plan and schedule stages consume it.
type OnboardingData struct {
	FullName           string   `json:"fullName,omitempty"`
	Age                int      `json:"age,omitempty"`
	Gender             string   `json:"gender,omitempty"`
	HeightCm           float64  `json:"heightCm,omitempty"`
	WeightKg           float64  `json:"weightKg,omitempty"`
	BloodGroup         string   `json:"bloodGroup,omitempty"`
	WakeUpTime         string   `json:"wakeUpTime,omitempty"`
	SleepTime          string   `json:"sleepTime,omitempty"`
	WorkStart          string   `json:"workStart,omitempty"`
	WorkEnd            string   `json:"workEnd,omitempty"`
	BreakfastTime      string   `json:"breakfastTime,omitempty"`
	LunchTime          string   `json:"lunchTime,omitempty"`
	DinnerTime         string   `json:"dinnerTime,omitempty"`
	WorkoutTime        string   `json:"workoutTime,omitempty"`
	WorkoutType        string   `json:"workoutType,omitempty"`
	DietType           string   `json:"dietType,omitempty"`
	RoutineFlexibility string   `json:"routineFlexibility,omitempty"`
	ChronicConditions  []string `json:"chronicConditions,omitempty"`
	Medications        []string `json:"medications,omitempty"`
	Allergies          []string `json:"allergies,omitempty"`
	HealthGoals        []string `json:"healthGoals,omitempty"`
}

// UploadedFile is a caller-provided document excerpt folded into the score
// prompt.
type UploadedFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// ScoreResult is the score stage's output entity.
type ScoreResult struct {
	HealthScore     int      `json:"healthScore"`
	Analysis        string   `json:"analysis"`
	Recommendations []string `json:"recommendations"`
}

// Macros is a percentage split that should sum to roughly 100.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

// ScheduleConstraints describes the windows a plan leaves open around the
// user's work day.
type ScheduleConstraints struct {
	WorkoutWindows     []string `json:"workoutWindows,omitempty"`
	MealPrepComplexity string   `json:"mealPrepComplexity,omitempty"`
	RecoveryTime       string   `json:"recoveryTime,omitempty"`
}

// Plan is the union of the two plan shapes the generation stages produce:
// the lightweight shape (title/estimatedCalories/equipment/benefits) and the
// unified-onboarding shape (name/calorieTarget/macros/timeline/impacts).
type Plan struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name,omitempty"`
	Title               string               `json:"title,omitempty"`
	Description         string               `json:"description"`
	Duration            string               `json:"duration"`
	Difficulty          string               `json:"difficulty"`
	FocusAreas          []string             `json:"focusAreas"`
	CalorieTarget       int                  `json:"calorieTarget,omitempty"`
	EstimatedCalories   int                  `json:"estimatedCalories,omitempty"`
	Macros              *Macros              `json:"macros,omitempty"`
	WorkoutFrequency    string               `json:"workoutFrequency,omitempty"`
	WorkoutStyle        string               `json:"workoutStyle,omitempty"`
	Equipment           []string             `json:"equipment,omitempty"`
	Benefits            []string             `json:"benefits,omitempty"`
	Timeline            map[string]string    `json:"timeline,omitempty"`
	Impacts             map[string]string    `json:"impacts,omitempty"`
	ScheduleConstraints *ScheduleConstraints `json:"scheduleConstraints,omitempty"`
}

// Label returns whichever of name/title the generator filled in.
func (p Plan) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Title
}

// PlanDetails is the plan set a caller hands back to the schedule stage.
type PlanDetails struct {
	Plans []Plan `json:"plans"`
}

// Difficulty levels a plan set must cover, one each.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// PlanSetSize is a generation contract, not a convention: every plan set has
// exactly one plan per difficulty level.
const PlanSetSize = 3

// ScheduleEntry is one time-boxed block of the daily schedule.
type ScheduleEntry struct {
	Time     string `json:"time"`
	Category string `json:"category"`
	Activity string `json:"activity"`
	Details  string `json:"details"`
	Duration string `json:"duration"`
	Calories int    `json:"calories"`
}

// QuickActivity is a single item of the lightweight plan proxy.
type QuickActivity struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Time  string `json:"time"`
}

// QuickPlan is the shape returned by the Groq plan proxy endpoint.
type QuickPlan struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Activities  []QuickActivity `json:"activities"`
}

// ActivityDetail is one exercise inside a weekly activity block.
type ActivityDetail struct {
	Name         string   `json:"name"`
	Duration     string   `json:"duration"`
	Instructions string   `json:"instructions"`
	Equipment    []string `json:"equipment,omitempty"`
	Difficulty   string   `json:"difficulty,omitempty"`
	Calories     int      `json:"calories,omitempty"`
}

// WeeklyActivity groups the activities generated for one day of a plan week.
type WeeklyActivity struct {
	Week       int              `json:"week"`
	Day        int              `json:"day"`
	Activities []ActivityDetail `json:"activities"`
}

// physicalCategories are mutually exclusive on the daily schedule: two of
// these cannot share a timestamp.
var physicalCategories = map[string]bool{
	"workout":  true,
	"exercise": true,
	"cardio":   true,
	"yoga":     true,
	"strength": true,
}

func isPhysicalCategory(category string) bool {
	return physicalCategories[strings.ToLower(strings.TrimSpace(category))]
}
