package models

import "fmt"

// Gender represents the gender category used by the energy formulas
type Gender string

const (
	// Gender categories
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// ActivityLevel represents how physically active the user is
type ActivityLevel string

const (
	// Activity levels
	ActivitySedentary ActivityLevel = "Sedentary"
	ActivityModerate  ActivityLevel = "Moderate"
	ActivityActive    ActivityLevel = "Active"
)

// Goal represents the user's weight goal
type Goal string

const (
	// Health goals
	GoalMaintain Goal = "Maintain Weight"
	GoalLose     Goal = "Lose Weight"
	GoalGain     Goal = "Gain Weight"
)

// BudgetLevel represents the price ceiling applied to the catalog
type BudgetLevel string

const (
	// Budget levels
	BudgetLow    BudgetLevel = "Low"
	BudgetMedium BudgetLevel = "Medium"
	BudgetHigh   BudgetLevel = "High"
)

// PlanRequest carries everything needed to generate a daily diet plan
type PlanRequest struct {
	Name               string        `json:"name"`
	WeightKg           float64       `json:"weight_kg"`
	HeightCm           float64       `json:"height_cm"`
	Age                int           `json:"age"`
	Gender             Gender        `json:"gender"`
	ActivityLevel      ActivityLevel `json:"activity_level"`
	DietaryPreference  DietClass     `json:"dietary_preference"`
	Allergies          []string      `json:"allergies"`
	Goal               Goal          `json:"goal"`
	BudgetLevel        BudgetLevel   `json:"budget_level"`
	RegionalPreference string        `json:"regional_preference"`
}

// ValidatePlanRequest validates a plan request before it reaches the planner
func ValidatePlanRequest(req *PlanRequest) error {
	if req.WeightKg <= 0 {
		return fmt.Errorf("weight must be greater than 0")
	}
	if req.HeightCm <= 0 {
		return fmt.Errorf("height must be greater than 0")
	}
	if req.Age < 1 || req.Age > 120 {
		return fmt.Errorf("age must be between 1 and 120")
	}
	switch req.Gender {
	case GenderMale, GenderFemale, GenderOther:
	default:
		return fmt.Errorf("unknown gender category %q", req.Gender)
	}
	switch req.ActivityLevel {
	case ActivitySedentary, ActivityModerate, ActivityActive:
	default:
		return fmt.Errorf("unknown activity level %q", req.ActivityLevel)
	}
	switch req.DietaryPreference {
	case DietVegan, DietVegetarian, DietOmnivore:
	default:
		return fmt.Errorf("unknown dietary preference %q", req.DietaryPreference)
	}
	switch req.Goal {
	case GoalMaintain, GoalLose, GoalGain:
	default:
		return fmt.Errorf("unknown health goal %q", req.Goal)
	}
	switch req.BudgetLevel {
	case BudgetLow, BudgetMedium, BudgetHigh:
	default:
		return fmt.Errorf("unknown budget level %q", req.BudgetLevel)
	}
	return nil
}
