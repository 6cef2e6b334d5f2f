package pipeline

// Canned stage outputs. When a model replies with something unparseable or
// contract-breaking, the stage returns one of these instead of an error so
// the client flow never stalls on bad generation output. Transport failures
// do NOT reach this file; those propagate as errors.

func scoreFallback() ScoreResult {
	return ScoreResult{
		HealthScore: 75,
		Analysis:    "Based on your profile, you have a good foundation for health. Continue maintaining your current habits and consider the recommendations provided.",
		Recommendations: []string{
			"Maintain regular exercise routine",
			"Ensure adequate sleep (7-9 hours)",
			"Stay hydrated throughout the day",
			"Eat a balanced diet with fruits and vegetables",
			"Manage stress through relaxation techniques",
		},
	}
}

func planSetFallback() []Plan {
	return []Plan{
		{
			ID:                "plan_1",
			Title:             "Beginner Wellness Journey",
			Description:       "A gentle introduction to healthy living with focus on building sustainable habits.",
			Duration:          "4 weeks",
			Difficulty:        DifficultyBeginner,
			FocusAreas:        []string{"Basic Fitness", "Nutrition", "Sleep"},
			EstimatedCalories: 200,
			Equipment:         []string{"No equipment needed"},
			Benefits:          []string{"Build healthy habits", "Improve energy levels", "Better sleep quality"},
		},
		{
			ID:                "plan_2",
			Title:             "Balanced Health Program",
			Description:       "A comprehensive approach combining exercise, nutrition, and wellness practices.",
			Duration:          "8 weeks",
			Difficulty:        DifficultyIntermediate,
			FocusAreas:        []string{"Cardio", "Strength Training", "Nutrition", "Stress Management"},
			EstimatedCalories: 400,
			Equipment:         []string{"Dumbbells", "Yoga mat"},
			Benefits:          []string{"Improved fitness", "Better nutrition", "Reduced stress", "Weight management"},
		},
		{
			ID:                "plan_3",
			Title:             "Advanced Transformation",
			Description:       "An intensive program for those ready to commit to significant health improvements.",
			Duration:          "12 weeks",
			Difficulty:        DifficultyAdvanced,
			FocusAreas:        []string{"High-Intensity Training", "Precision Nutrition", "Recovery", "Mental Health"},
			EstimatedCalories: 600,
			Equipment:         []string{"Full gym access", "Heart rate monitor", "Foam roller"},
			Benefits:          []string{"Maximum fitness gains", "Optimal nutrition", "Peak performance", "Complete transformation"},
		},
	}
}

func activitiesFallback() []WeeklyActivity {
	return []WeeklyActivity{
		{
			Week: 1,
			Day:  1,
			Activities: []ActivityDetail{
				{
					Name:         "Morning Stretch",
					Duration:     "15 minutes",
					Instructions: "Start with gentle stretching exercises to warm up your body",
					Equipment:    []string{"Yoga mat"},
					Difficulty:   DifficultyBeginner,
					Calories:     50,
				},
			},
		},
	}
}

func quickPlansFallback() []QuickPlan {
	return []QuickPlan{
		{
			ID:          "plan_1",
			Title:       "Morning Wellness Routine",
			Description: "Start your day with energy and focus",
			Activities: []QuickActivity{
				{ID: "a1", Label: "Morning Wake-up Routine", Time: "08:30"},
				{ID: "a2", Label: "Healthy Breakfast", Time: "09:00"},
				{ID: "a3", Label: "Focused Work Session", Time: "09:45"},
			},
		},
		{
			ID:          "plan_2",
			Title:       "Afternoon Productivity",
			Description: "Maximize your afternoon potential",
			Activities: []QuickActivity{
				{ID: "b1", Label: "Lunch Break", Time: "12:30"},
				{ID: "b2", Label: "Quick Exercise", Time: "13:15"},
				{ID: "b3", Label: "Deep Work Session", Time: "14:00"},
			},
		},
		{
			ID:          "plan_3",
			Title:       "Evening Wind-down",
			Description: "Relax and prepare for tomorrow",
			Activities: []QuickActivity{
				{ID: "c1", Label: "Dinner Preparation", Time: "18:30"},
				{ID: "c2", Label: "Relaxation Time", Time: "19:30"},
				{ID: "c3", Label: "Bedtime Routine", Time: "21:00"},
			},
		},
	}
}

// scheduleFallback builds a default full day from the user's stated times so
// the canned schedule still lines up with their routine.
func scheduleFallback(o OnboardingData) []ScheduleEntry {
	return []ScheduleEntry{
		{
			Time:     orDefault(o.WakeUpTime, "06:00"),
			Category: "morning_routine",
			Activity: "Wake Up & Hydration",
			Details:  "Drink 500ml water, light stretching (5 min)",
			Duration: "10 min",
			Calories: 0,
		},
		{
			Time:     orDefault(o.BreakfastTime, "08:00"),
			Category: "meal",
			Activity: "Breakfast",
			Details:  "Balanced breakfast with protein, whole grains and fruit",
			Duration: "30 min",
			Calories: 400,
		},
		{
			Time:     orDefault(o.WorkStart, "09:00"),
			Category: "work",
			Activity: "Work Session",
			Details:  "Focused work. Take a posture check and water break every hour",
			Duration: "4 hours",
			Calories: 0,
		},
		{
			Time:     orDefault(o.LunchTime, "13:00"),
			Category: "meal",
			Activity: "Lunch",
			Details:  "Balanced lunch with lean protein and vegetables",
			Duration: "45 min",
			Calories: 550,
		},
		{
			Time:     orDefault(o.WorkoutTime, "18:00"),
			Category: "workout",
			Activity: "Workout Session",
			Details:  "Moderate full-body session matched to your plan difficulty",
			Duration: "45 min",
			Calories: 300,
		},
		{
			Time:     orDefault(o.DinnerTime, "19:00"),
			Category: "meal",
			Activity: "Dinner",
			Details:  "Light dinner with vegetables and lean protein",
			Duration: "45 min",
			Calories: 500,
		},
		{
			Time:     orDefault(o.SleepTime, "22:00"),
			Category: "sleep",
			Activity: "Wind Down & Sleep",
			Details:  "Screen-free wind down, then lights out",
			Duration: "30 min",
			Calories: 0,
		},
	}
}
