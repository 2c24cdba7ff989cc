package planner

import (
	"errors"
	"math/rand"
	"strings"

	"nutriplan/internal/catalog"
	"nutriplan/internal/models"
)

// ErrNoEligibleFoods is returned when the diet, allergy and budget
// constraints eliminate the entire catalog. Callers should tell the user to
// relax constraints rather than treat this as a server fault.
var ErrNoEligibleFoods = errors.New("no foods satisfy the dietary, allergy and budget constraints")

// slotFraction assigns a fraction of the daily calories to a named slot
type slotFraction struct {
	Slot     string
	Fraction float64
}

// Meal calorie distributions by age bracket. Fractions sum to 1.0.
var (
	// Teenagers get a heavier breakfast and two snacks
	teenDistribution = []slotFraction{
		{"Breakfast", 0.25},
		{"Lunch", 0.30},
		{"Dinner", 0.25},
		{"Snack 1", 0.10},
		{"Snack 2", 0.10},
	}
	// Seniors get smaller, more frequent meals
	seniorDistribution = []slotFraction{
		{"Breakfast", 0.20},
		{"Morning Snack", 0.10},
		{"Lunch", 0.25},
		{"Afternoon Snack", 0.10},
		{"Dinner", 0.25},
		{"Evening Snack", 0.10},
	}
	// Adults follow the regional pattern of a heavier lunch and a
	// substantial evening snack
	adultDistribution = []slotFraction{
		{"Breakfast", 0.20},
		{"Lunch", 0.35},
		{"Evening Snack", 0.15},
		{"Dinner", 0.30},
	}
)

// distributionForAge selects the slot distribution for an age bracket
func distributionForAge(age int) []slotFraction {
	switch {
	case age < 18:
		return teenDistribution
	case age > 65:
		return seniorDistribution
	default:
		return adultDistribution
	}
}

// MealTypeForSlot maps a slot name to the coarse meal-type tag used for
// catalog sub-filtering. Anything that is not a named main meal is a snack.
func MealTypeForSlot(slot string) models.MealType {
	switch {
	case strings.Contains(slot, "Breakfast"):
		return models.MealBreakfast
	case strings.Contains(slot, "Lunch"):
		return models.MealLunch
	case strings.Contains(slot, "Dinner"):
		return models.MealDinner
	default:
		return models.MealSnack
	}
}

// GeneratePlan builds a full day's diet plan: it filters the catalog once,
// partitions the daily calories across the age bracket's meal slots and
// composes each slot independently. The catalog slice is only read, so
// concurrent plan generations need no synchronization.
func GeneratePlan(rng *rand.Rand, foods []models.FoodItem, req *models.PlanRequest, dailyCalories float64) (*models.DietPlan, error) {
	return GeneratePlanWithObserver(rng, foods, req, dailyCalories, nil)
}

// GeneratePlanWithObserver is GeneratePlan with a per-slot callback, used to
// stream meals to a client as they are composed. A nil observe is allowed.
func GeneratePlanWithObserver(rng *rand.Rand, foods []models.FoodItem, req *models.PlanRequest, dailyCalories float64, observe func(models.MealResult)) (*models.DietPlan, error) {
	eligible := catalog.Filter(foods, catalog.Criteria{
		Diet:      req.DietaryPreference,
		Allergies: req.Allergies,
		Budget:    req.BudgetLevel,
	})
	if len(eligible) == 0 {
		return nil, ErrNoEligibleFoods
	}

	plan := models.NewDietPlan()
	for _, sf := range distributionForAge(req.Age) {
		target := models.MealTarget{
			Slot:     sf.Slot,
			Calories: dailyCalories * sf.Fraction,
			MealType: MealTypeForSlot(sf.Slot),
		}
		meal := ComposeMeal(rng, eligible, target, req.Age, req.ActivityLevel, req.RegionalPreference)
		plan.AddMeal(meal)
		if observe != nil {
			observe(meal)
		}
	}
	return plan, nil
}
