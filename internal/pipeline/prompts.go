package pipeline

// This file stores the prompts for the generation stages.
// The templates use fmt.Sprintf placeholders; the build* functions below fill
// them from request data, substituting "Not provided" style defaults so the
// model never sees empty fields.

import (
	"encoding/json"
	"fmt"
	"strings"
)

// scoreSystemPrompt defines the AI's role for health score assessment.
const scoreSystemPrompt = `You are a professional health assessment AI. Provide accurate, helpful health analysis based on user data. Always respond in valid JSON format.`

const scorePromptTemplate = `
You are a professional health assessment AI. Analyze the following comprehensive user data and provide an accurate health score (0-100) with detailed analysis.

CRITICAL: Base your assessment on actual medical and health data provided. Consider all factors including age, lifestyle, medical conditions, and user-specific inputs.

User Profile:
%s

Additional User Input: %s
Voice Transcript: %s
Uploaded Files Content: %s

SCORING CRITERIA:
- 90-100: Excellent health with optimal lifestyle
- 80-89: Good health with minor improvements needed
- 70-79: Average health with moderate improvements needed
- 60-69: Below average health requiring attention
- 50-59: Poor health requiring significant changes
- Below 50: Critical health issues requiring immediate attention

Provide a detailed, medically-informed response in this EXACT JSON format:
{
  "healthScore": [number between 0-100],
  "analysis": "[Detailed analysis of current health status, specific to user's data and conditions]",
  "recommendations": ["[Specific, actionable recommendation 1]", "[Specific, actionable recommendation 2]", "[Specific, actionable recommendation 3]"]
}
`

// planSystemPrompt defines the AI's role for the three-plan stage.
const planSystemPrompt = `You are a professional health plan generation AI. Create personalized, practical, and achievable health plans based on user data. Always respond in valid JSON format.`

const planPromptTemplate = `
You are a health plan generation AI. Based on the following user data and health analysis, create 3 personalized health plans.

User Profile:
%s

Health Score: %d/100
Health Analysis: %s
Recommendations: %s

User Input: %s
Voice Transcript: %s
Uploaded Files: %s

Create 3 different health plans with varying difficulty levels and focus areas:

1. A beginner-friendly plan (focus on building habits)
2. An intermediate plan (balanced approach)
3. An advanced plan (intensive and comprehensive)

Each plan should include:
- Title (descriptive and motivating)
- Description (what the plan involves)
- Duration (e.g., "4 weeks", "8 weeks", "12 weeks")
- Difficulty level (Beginner/Intermediate/Advanced)
- Focus areas (3-5 key areas like "Weight Loss", "Muscle Building", "Cardio", "Flexibility", "Nutrition")
- Estimated calories burned per session
- Equipment needed (list of equipment or "No equipment needed")
- Key benefits (3-5 specific benefits)

Respond in JSON format:
{
  "plans": [
    {
      "id": "plan_1",
      "title": "Plan Title",
      "description": "Detailed description of the plan",
      "duration": "4 weeks",
      "difficulty": "Beginner",
      "focusAreas": ["area1", "area2", "area3"],
      "estimatedCalories": 300,
      "equipment": ["equipment1", "equipment2"],
      "benefits": ["benefit1", "benefit2", "benefit3"]
    }
  ]
}
`

// activitySystemPrompt defines the AI's role for the weekly activity stage.
const activitySystemPrompt = `You are a professional fitness activity generation AI. Create detailed, safe, and effective activities based on the selected plan and user profile. Always respond in valid JSON format.`

const activityPromptTemplate = `
You are a fitness activity generation AI. Create detailed weekly activities for the selected health plan.

Selected Plan:
- Title: %s
- Description: %s
- Duration: %s
- Difficulty: %s
- Focus Areas: %s
- Equipment: %s

User Profile:
%s

Create detailed activities for each week of the plan. Each activity should include:
- Activity name
- Duration
- Instructions
- Equipment needed
- Difficulty level
- Calories burned (estimated)

Respond in JSON format:
{
  "activities": [
    {
      "week": 1,
      "day": 1,
      "activities": [
        {
          "name": "Activity Name",
          "duration": "30 minutes",
          "instructions": "Detailed step-by-step instructions",
          "equipment": ["equipment1", "equipment2"],
          "difficulty": "Beginner",
          "calories": 200
        }
      ]
    }
  ]
}
`

// quickPlanSystemPrompt is the full instruction for the lightweight plan
// proxy; the caller supplies the user prompt verbatim.
const quickPlanSystemPrompt = `You are a health and wellness AI assistant. Generate 3 personalized health plans based on user data. Each plan should be practical, achievable, and tailored to the user's profile.

CRITICAL: You MUST respond ONLY with valid JSON in this exact format:
{
  "plans": [
    {
      "id": "plan_1",
      "title": "Plan Title",
      "description": "Plan description",
      "activities": [
        {"id": "a1", "label": "Activity Name", "time": "08:30"},
        {"id": "a2", "label": "Activity Name", "time": "09:00"}
      ]
    }
  ]
}

Do not include any text before or after the JSON. Only return the JSON object.`

// defaultQuickPlanPrompt stands in when the caller sends no prompt text.
const defaultQuickPlanPrompt = "Generate 3 personalized health plans for me"

// completePlanSystemPrompt defines the AI's role for the unified plan stage.
const completePlanSystemPrompt = `You are a fitness planning expert. Generate 3 DISTINCT plans with different approaches. Return ONLY valid JSON.`

const completePlanPromptTemplate = `You are a fitness planning AI. Generate 3 distinct health plans based on user's goal and profile.

PRIMARY GOAL: %s

ONBOARDING DATA:
- Name: %s
- Age: %d
- Gender: %s
- Height: %s cm
- Weight: %s kg
- Blood Group: %s

SCHEDULE:
- Wake Up: %s
- Sleep: %s
- Work: %s - %s
- Breakfast: %s
- Lunch: %s
- Dinner: %s
- Workout Time: %s

HEALTH:
- Chronic Conditions: %s
- Medications: %s
- Allergies: %s

PREFERENCES:
- Diet Type: %s
- Workout Type: %s
- Routine Flexibility: %s

HEALTH GOALS: %s

Generate 3 plans with DIFFERENT approaches:

PLAN 1 (BEGINNER): Gentle, foundational approach
PLAN 2 (INTERMEDIATE): Balanced, progressive approach
PLAN 3 (ADVANCED): Intensive, results-focused approach

For each plan provide:
1. Creative goal-specific name (e.g., "Diabetes Reversal Foundation", "Ultimate Weight Gainer Pro")
2. Description (100 words)
3. Duration (4-6 weeks / 8-10 weeks / 12+ weeks)
4. Difficulty level
5. Daily calorie target
6. Macro split (protein/carbs/fats percentages)
7. Workout frequency (days per week)
8. Workout style based on user preference: %s
9. Key focus areas (5 items)
10. Expected outcomes timeline (week1-2, week3-4, month2, month3)
11. Impact analysis (primary goal, energy, physical, mental, sleep)
12. Schedule constraints (workout windows, meal prep complexity, recovery time)

CRITICAL REQUIREMENTS:
- If workout type is YOGA: focus on yoga asanas, pranayama, flexibility
- If workout type is GYM: focus on strength training, weights, machines
- If workout type is HOME: focus on bodyweight exercises, minimal equipment
- If workout type is CARDIO: focus on running, cycling, HIIT
- Respect work schedule: %s - %s = NO physical activities
- During work hours, only suggest: focus techniques, posture corrections, breathing exercises
- Respect dietary restrictions: %s
- Account for allergies: %s
- Consider chronic conditions for exercise modifications

Return ONLY valid JSON:
{
  "plans": [
    {
      "id": "plan_1",
      "name": "Creative Plan Name",
      "description": "...",
      "duration": "4-6 weeks",
      "difficulty": "Beginner",
      "calorieTarget": 1800,
      "macros": {"protein": 30, "carbs": 40, "fats": 30},
      "workoutFrequency": "3 days/week",
      "workoutStyle": "%s",
      "focusAreas": ["area1", "area2", "area3", "area4", "area5"],
      "timeline": {"week1-2": "...", "week3-4": "...", "month2": "...", "month3": "..."},
      "impacts": {"primaryGoal": "...", "energy": "...", "physical": "...", "mental": "...", "sleep": "..."},
      "scheduleConstraints": {"workoutWindows": ["06:00-07:30", "18:00-20:00"], "mealPrepComplexity": "medium", "recoveryTime": "8 hours sleep minimum"}
    }
  ]
}`

const schedulePromptTemplate = `You are a schedule optimization AI. Generate a HYPER-PERSONALIZED daily schedule based on the selected plan and user's exact timings.

SELECTED PLAN:
%s

USER'S EXACT SCHEDULE:
- Wake Up: %s
- Breakfast: %s
- Work Start: %s
- Lunch: %s
- Work End: %s
- Workout: %s
- Dinner: %s
- Sleep: %s

WORKOUT TYPE: %s
DIET TYPE: %s
ALLERGIES: %s

CRITICAL PERSONALIZATION RULES:
1. USE EXACT USER TIMES - do not suggest different times
2. DURING WORK HOURS (%s - %s):
   - NO physical workouts
   - Only suggest: desk stretches, breathing exercises, posture tips, water reminders, eye exercises
   - Keep suggestions under 5 minutes
3. WORKOUT STYLE (%s):
   - If YOGA: Only yoga asanas, pranayama, meditation, flexibility work
   - If GYM: Only gym exercises with weights, machines, strength training
   - If HOME: Only bodyweight exercises, resistance bands, minimal equipment
   - If CARDIO: Only running, cycling, HIIT, jumping exercises
4. MEALS:
   - Follow %s strictly
   - Avoid %s
   - Match calorie target: %s
   - Match macro split: %sP / %sC / %sF
5. DIFFICULTY ADAPTATION:
   - %s level exercises only
   - Scale intensity appropriately

Generate COMPLETE daily schedule from wake to sleep with:
- Exact timestamps (use user's times)
- Specific activities (no generic placeholders)
- Detailed exercise lists (with sets/reps)
- Specific meal plans (with ingredients and portions)
- Calorie and macro breakdown for each meal

Return ONLY valid JSON:
{
  "dailySchedule": [
    {
      "time": "%s",
      "category": "morning_routine",
      "activity": "Wake Up & Hydration",
      "details": "Drink 500ml water, light stretching (5 min)",
      "duration": "10 min",
      "calories": 0
    }
  ]
}`

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func joinOrDefault(items []string, def string) string {
	if len(items) == 0 {
		return def
	}
	return strings.Join(items, ", ")
}

func numOrDefault(v float64, def string) string {
	if v == 0 {
		return def
	}
	return fmt.Sprintf("%g", v)
}

// profileSummary renders the shared "User Profile" block for the score, plan
// and activity prompts.
func profileSummary(p UserProfile, full bool) string {
	height := numOrDefault(p.HeightCm, orDefault(p.HeightFeet, "Not provided"))
	weight := numOrDefault(p.WeightKg, numOrDefault(p.WeightLb, "Not provided"))

	var b strings.Builder
	fmt.Fprintf(&b, "- Age: %s\n", numOrDefault(float64(p.Age), "Not provided"))
	fmt.Fprintf(&b, "- Gender: %s\n", orDefault(p.Gender, "Not provided"))
	fmt.Fprintf(&b, "- Height: %s\n", height)
	fmt.Fprintf(&b, "- Weight: %s\n", weight)
	fmt.Fprintf(&b, "- Blood Group: %s\n", orDefault(p.BloodGroup, "Not provided"))
	fmt.Fprintf(&b, "- Chronic Conditions: %s\n", joinOrDefault(p.ChronicConditions, "None"))
	fmt.Fprintf(&b, "- Medications: %s\n", joinOrDefault(p.Medications, "None"))
	fmt.Fprintf(&b, "- Health Goals: %s\n", joinOrDefault(p.HealthGoals, "Not specified"))
	fmt.Fprintf(&b, "- Diet Type: %s\n", orDefault(p.DietType, "Not specified"))
	fmt.Fprintf(&b, "- Workout Time: %s\n", orDefault(p.WorkoutTime, "Not specified"))
	fmt.Fprintf(&b, "- Sleep Time: %s\n", orDefault(p.SleepTime, "Not specified"))
	fmt.Fprintf(&b, "- Wake Up Time: %s", orDefault(p.WakeUpTime, "Not specified"))
	if !full {
		return b.String()
	}
	fmt.Fprintf(&b, "\n- Activity Level: %s\n", orDefault(p.ActivityLevel, "Not provided"))
	fmt.Fprintf(&b, "- Sleep Hours: %s\n", numOrDefault(p.SleepHours, "Not provided"))
	fmt.Fprintf(&b, "- Stress Level: %s\n", orDefault(p.StressLevel, "Not provided"))
	fmt.Fprintf(&b, "- Water Intake: %s\n", numOrDefault(p.WaterIntakeLiters, "Not provided"))
	fmt.Fprintf(&b, "- Smoking: %s\n", orDefault(p.Smoking, "Not provided"))
	fmt.Fprintf(&b, "- Alcohol Consumption: %s\n", orDefault(p.AlcoholConsumption, "Not provided"))
	fmt.Fprintf(&b, "- BMI: %s\n", numOrDefault(p.BMI, "Not provided"))
	fmt.Fprintf(&b, "- Blood Pressure: %s\n", orDefault(p.BloodPressure, "Not provided"))
	fmt.Fprintf(&b, "- Heart Rate: %s", numOrDefault(float64(p.HeartRate), "Not provided"))
	return b.String()
}

func uploadedFilesContent(files []UploadedFile) string {
	if len(files) == 0 {
		return "None"
	}
	parts := make([]string, 0, len(files))
	for _, f := range files {
		content := f.Content
		if len(content) > 500 {
			content = content[:500] + "..."
		}
		parts = append(parts, fmt.Sprintf("%s: %s", f.Name, content))
	}
	return strings.Join(parts, "\n\n")
}

func uploadedFileNames(files []UploadedFile) string {
	if len(files) == 0 {
		return "None"
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return strings.Join(names, ", ")
}

func buildScorePrompt(req ScoreRequest) string {
	return fmt.Sprintf(scorePromptTemplate,
		profileSummary(*req.UserProfile, true),
		orDefault(req.UserInput, "None"),
		orDefault(req.VoiceTranscript, "None"),
		uploadedFilesContent(req.UploadedFiles),
	)
}

func buildPlanPrompt(req PlansRequest) string {
	return fmt.Sprintf(planPromptTemplate,
		profileSummary(*req.UserProfile, false),
		req.HealthScore,
		req.Analysis,
		joinOrDefault(req.Recommendations, "None"),
		orDefault(req.UserInput, "None"),
		orDefault(req.VoiceTranscript, "None"),
		uploadedFileNames(req.UploadedFiles),
	)
}

func buildActivityPrompt(req ActivitiesRequest) string {
	return fmt.Sprintf(activityPromptTemplate,
		req.SelectedPlan.Label(),
		req.SelectedPlan.Description,
		req.SelectedPlan.Duration,
		req.SelectedPlan.Difficulty,
		joinOrDefault(req.SelectedPlan.FocusAreas, "General fitness"),
		joinOrDefault(req.SelectedPlan.Equipment, "No equipment needed"),
		profileSummary(*req.UserProfile, false),
	)
}

func buildCompletePlanPrompt(req CompletePlanRequest) string {
	o := *req.OnboardingData
	workoutType := orDefault(o.WorkoutType, "General")
	workStart := orDefault(o.WorkStart, "09:00")
	workEnd := orDefault(o.WorkEnd, "17:00")
	dietType := orDefault(o.DietType, "Balanced")
	allergies := joinOrDefault(o.Allergies, "None")

	return fmt.Sprintf(completePlanPromptTemplate,
		req.PrimaryGoal,
		orDefault(o.FullName, "User"),
		o.Age,
		orDefault(o.Gender, "Not specified"),
		numOrDefault(o.HeightCm, "Not specified"),
		numOrDefault(o.WeightKg, "Not specified"),
		orDefault(o.BloodGroup, "Not specified"),
		orDefault(o.WakeUpTime, "06:00"),
		orDefault(o.SleepTime, "22:00"),
		workStart, workEnd,
		orDefault(o.BreakfastTime, "08:00"),
		orDefault(o.LunchTime, "13:00"),
		orDefault(o.DinnerTime, "19:00"),
		orDefault(o.WorkoutTime, "Morning"),
		joinOrDefault(o.ChronicConditions, "None"),
		joinOrDefault(o.Medications, "None"),
		allergies,
		dietType,
		workoutType,
		orDefault(o.RoutineFlexibility, "Moderate"),
		joinOrDefault(o.HealthGoals, "General wellness"),
		workoutType,
		workStart, workEnd,
		dietType,
		allergies,
		workoutType,
	)
}

func buildSchedulePrompt(plan Plan, o OnboardingData) string {
	planJSON, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		planJSON = []byte("{}")
	}

	calorieTarget := "N/A"
	if plan.CalorieTarget > 0 {
		calorieTarget = fmt.Sprintf("%d", plan.CalorieTarget)
	} else if plan.EstimatedCalories > 0 {
		calorieTarget = fmt.Sprintf("%d", plan.EstimatedCalories)
	}

	protein, carbs, fats := "N/A", "N/A", "N/A"
	if plan.Macros != nil {
		protein = fmt.Sprintf("%d", plan.Macros.Protein)
		carbs = fmt.Sprintf("%d", plan.Macros.Carbs)
		fats = fmt.Sprintf("%d", plan.Macros.Fats)
	}

	workStart := orDefault(o.WorkStart, "09:00")
	workEnd := orDefault(o.WorkEnd, "17:00")
	workoutType := orDefault(o.WorkoutType, "General")
	dietType := orDefault(o.DietType, "Balanced")
	wakeUp := orDefault(o.WakeUpTime, "06:00")

	return fmt.Sprintf(schedulePromptTemplate,
		string(planJSON),
		wakeUp,
		orDefault(o.BreakfastTime, "08:00"),
		workStart,
		orDefault(o.LunchTime, "13:00"),
		workEnd,
		orDefault(o.WorkoutTime, "18:00"),
		orDefault(o.DinnerTime, "19:00"),
		orDefault(o.SleepTime, "22:00"),
		workoutType,
		dietType,
		joinOrDefault(o.Allergies, "None"),
		workStart, workEnd,
		workoutType,
		dietType,
		joinOrDefault(o.Allergies, "None"),
		calorieTarget,
		protein, carbs, fats,
		orDefault(plan.Difficulty, "Beginner"),
		wakeUp,
	)
}
