// Package report renders a diet plan into the plain-text format offered for
// download. The layout is human-oriented; no byte-level compatibility is
// promised.
package report

import (
	"fmt"
	"strings"

	"nutriplan/internal/advice"
	"nutriplan/internal/energy"
	"nutriplan/internal/models"
)

// Render produces the downloadable plan document
func Render(req *models.PlanRequest, targets energy.Targets, plan *models.DietPlan, guidance advice.Guidance) string {
	var b strings.Builder

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "you"
	}
	fmt.Fprintf(&b, "Personalized Health & Fitness Plan for %s\n\n", name)
	fmt.Fprintf(&b, "BMR: %.0f calories\n", targets.BMR)
	fmt.Fprintf(&b, "Daily Calorie Needs: %.0f calories\n", targets.DailyCalories)
	fmt.Fprintf(&b, "Protein Target: %.0fg\n", targets.ProteinGrams)
	fmt.Fprintf(&b, "Water Intake: %.0fml\n", targets.WaterML)
	fmt.Fprintf(&b, "Budget Level: %s\n", req.BudgetLevel)
	fmt.Fprintf(&b, "Estimated Daily Food Cost: ₹%.0f\n\n", plan.TotalCost)

	b.WriteString("=== Diet Plan ===\n")
	for _, slot := range plan.SlotOrder {
		meal := plan.Meals[slot]
		fmt.Fprintf(&b, "\n%s (%.0f of %.0f calories", slot, meal.Calories, meal.TargetCalories)
		if meal.UnderTarget() {
			b.WriteString(", under target")
		}
		b.WriteString("):\n")
		for _, food := range meal.Foods {
			fmt.Fprintf(&b, "- %s: %.0fg (%.0f calories) (₹%.0f)\n", food.Food, food.Portion, food.Calories, food.Cost)
		}
		if len(meal.Foods) == 0 {
			b.WriteString("- no suitable foods found for this slot\n")
		}
	}

	b.WriteString("\n=== Exercise Plan ===\n")
	b.WriteString(advice.Render(guidance))

	return b.String()
}
