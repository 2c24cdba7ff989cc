// Package energy implements the energy-expenditure formulas that convert
// user biometrics into a daily calorie target, plus the derived display
// metrics shown alongside a plan.
package energy

import "nutriplan/internal/models"

// Activity multipliers applied to BMR to estimate total daily expenditure
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary: 1.2,
	models.ActivityModerate:  1.55,
	models.ActivityActive:    1.9,
}

// Goal adjustments applied to maintenance calories
var goalAdjustments = map[models.Goal]float64{
	models.GoalLose:     0.85,
	models.GoalGain:     1.15,
	models.GoalMaintain: 1.0,
}

// BasalMetabolicRate calculates BMR using the Mifflin-St Jeor equation.
// Weight is in kilograms, height in centimetres. For gender categories other
// than male or female the intercept is the midpoint of the two equations.
func BasalMetabolicRate(weightKg, heightCm float64, age int, gender models.Gender) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case models.GenderMale:
		return base + 5
	case models.GenderFemale:
		return base - 161
	default:
		return base - 78
	}
}

// DailyCalorieTarget scales BMR by the activity multiplier and applies the
// health-goal adjustment (15% deficit for losing, 15% surplus for gaining).
func DailyCalorieTarget(bmr float64, activity models.ActivityLevel, goal models.Goal) float64 {
	multiplier, ok := activityMultipliers[activity]
	if !ok {
		multiplier = activityMultipliers[models.ActivitySedentary]
	}
	maintenance := bmr * multiplier

	adjustment, ok := goalAdjustments[goal]
	if !ok {
		adjustment = 1.0
	}
	return maintenance * adjustment
}

// Targets holds the derived display metrics for a daily calorie budget
type Targets struct {
	BMR           float64 `json:"bmr"`
	DailyCalories float64 `json:"daily_calories"`
	ProteinGrams  float64 `json:"protein_grams"`
	CarbGrams     float64 `json:"carb_grams"`
	FatGrams      float64 `json:"fat_grams"`
	WaterML       float64 `json:"water_ml"`
}

// DeriveTargets computes the presentation metrics shown with a plan: a
// 15/60/25 protein/carb/fat split (4 kcal per gram of protein and carbs,
// 9 kcal per gram of fat) and a water intake of 30 ml per kg of body weight.
func DeriveTargets(bmr, dailyCalories, weightKg float64) Targets {
	return Targets{
		BMR:           bmr,
		DailyCalories: dailyCalories,
		ProteinGrams:  dailyCalories * 0.15 / 4,
		CarbGrams:     dailyCalories * 0.60 / 4,
		FatGrams:      dailyCalories * 0.25 / 9,
		WaterML:       weightKg * 30,
	}
}
