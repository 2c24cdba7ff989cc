package models

import (
	"time"

	"github.com/google/uuid"
)

// underTargetRatio is the fraction of the slot target below which a meal is
// reported as under target.
const underTargetRatio = 0.9

// MealTarget describes one meal slot to be filled: its display name, the
// calories assigned to it and the coarse meal type used for catalog
// sub-filtering.
type MealTarget struct {
	Slot     string   `json:"slot"`
	Calories float64  `json:"calories"`
	MealType MealType `json:"meal_type"`
}

// SelectedFoodEntry is a chosen food scaled to its portion. All values are
// derived from the catalog row at selection time and never patched
// afterwards; a different portion means a recomputed entry.
type SelectedFoodEntry struct {
	Food     string  `json:"food"`
	Category string  `json:"category"`
	Portion  float64 `json:"portion"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Cost     float64 `json:"cost"`
}

// MealResult is the outcome of composing a single meal slot. Aggregates
// equal the sums over Foods within floating tolerance.
type MealResult struct {
	Slot           string              `json:"slot"`
	TargetCalories float64             `json:"target_calories"`
	Foods          []SelectedFoodEntry `json:"foods"`
	Calories       float64             `json:"calories"`
	Protein        float64             `json:"protein"`
	Carbs          float64             `json:"carbs"`
	Fats           float64             `json:"fats"`
	Cost           float64             `json:"cost"`
}

// UnderTarget reports whether the meal fell materially short of its calorie
// target. Under-target meals are valid results, not errors; callers use this
// to warn the user.
func (m *MealResult) UnderTarget() bool {
	return m.Calories < m.TargetCalories*underTargetRatio
}

// DietPlan is a full day's plan: one MealResult per slot, in slot order,
// plus the summed cost. Built fresh per request and immutable once returned.
type DietPlan struct {
	ID        string                `json:"id"`
	CreatedAt time.Time             `json:"created_at"`
	SlotOrder []string              `json:"slot_order"`
	Meals     map[string]MealResult `json:"meals"`
	TotalCost float64               `json:"total_cost"`
}

// NewDietPlan creates an empty plan ready to receive meal results
func NewDietPlan() *DietPlan {
	return &DietPlan{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Meals:     make(map[string]MealResult),
	}
}

// AddMeal appends a composed meal in slot order and accumulates cost
func (p *DietPlan) AddMeal(meal MealResult) {
	p.SlotOrder = append(p.SlotOrder, meal.Slot)
	p.Meals[meal.Slot] = meal
	p.TotalCost += meal.Cost
}
