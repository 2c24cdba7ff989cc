// Package catalog manages the read-only food catalog: CSV ingestion, sqlite
// persistence and the dietary/allergen/budget filtering applied before meal
// composition.
package catalog

import "nutriplan/internal/models"

// Budget ceilings in catalog currency per 100 units
const (
	LowBudgetCeiling    = 15.0
	MediumBudgetCeiling = 25.0
)

// Criteria describes the constraints applied when narrowing the catalog.
// Filtering with the same criteria is a pure, order-independent predicate
// over the items.
type Criteria struct {
	Diet      models.DietClass   `json:"diet"`
	Allergies []string           `json:"allergies"`
	Budget    models.BudgetLevel `json:"budget"`
}

// Filter returns the catalog items that satisfy all criteria. An empty
// result is a valid outcome; deciding what to do about it belongs to the
// caller.
func Filter(foods []models.FoodItem, c Criteria) []models.FoodItem {
	filtered := make([]models.FoodItem, 0, len(foods))
	for _, food := range foods {
		if !food.AllowedFor(c.Diet) {
			continue
		}
		if containsAllergen(&food, c.Allergies) {
			continue
		}
		if !withinBudget(&food, c.Budget) {
			continue
		}
		filtered = append(filtered, food)
	}
	return filtered
}

func containsAllergen(food *models.FoodItem, allergies []string) bool {
	for _, allergen := range allergies {
		if food.HasAllergen(allergen) {
			return true
		}
	}
	return false
}

// withinBudget checks the price ceiling for a budget level. Items without
// price data always pass.
func withinBudget(food *models.FoodItem, budget models.BudgetLevel) bool {
	if food.Price == nil {
		return true
	}
	switch budget {
	case models.BudgetLow:
		return *food.Price <= LowBudgetCeiling
	case models.BudgetMedium:
		return *food.Price <= MediumBudgetCeiling
	default:
		return true
	}
}
