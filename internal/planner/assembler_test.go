package planner

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"nutriplan/internal/catalog"
	"nutriplan/internal/models"
)

func planRequest() *models.PlanRequest {
	return &models.PlanRequest{
		Name:               "Asha",
		WeightKg:           70,
		HeightCm:           170,
		Age:                30,
		Gender:             models.GenderFemale,
		ActivityLevel:      models.ActivityModerate,
		DietaryPreference:  models.DietVegetarian,
		Allergies:          nil,
		Goal:               models.GoalMaintain,
		BudgetLevel:        models.BudgetMedium,
		RegionalPreference: "Indian",
	}
}

func TestDistributionForAgeBrackets(t *testing.T) {
	cases := []struct {
		age       int
		wantSlots int
	}{
		{10, 5},
		{40, 4},
		{70, 6},
	}
	for _, tc := range cases {
		dist := distributionForAge(tc.age)
		if len(dist) != tc.wantSlots {
			t.Errorf("age %d: %d slots, want %d", tc.age, len(dist), tc.wantSlots)
		}

		sum := 0.0
		for _, sf := range dist {
			sum += sf.Fraction
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("age %d: fractions sum to %v, want 1.0", tc.age, sum)
		}
	}
}

func TestMealTypeForSlot(t *testing.T) {
	cases := map[string]models.MealType{
		"Breakfast":       models.MealBreakfast,
		"Lunch":           models.MealLunch,
		"Dinner":          models.MealDinner,
		"Snack 1":         models.MealSnack,
		"Morning Snack":   models.MealSnack,
		"Afternoon Snack": models.MealSnack,
		"Evening Snack":   models.MealSnack,
	}
	for slot, want := range cases {
		if got := MealTypeForSlot(slot); got != want {
			t.Errorf("MealTypeForSlot(%q) = %v, want %v", slot, got, want)
		}
	}
}

func TestGeneratePlan(t *testing.T) {
	foods := catalog.Default()
	req := planRequest()
	const dailyCalories = 2000.0

	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		plan, err := GeneratePlan(rng, foods, req, dailyCalories)
		if err != nil {
			t.Fatalf("seed %d: GeneratePlan() error: %v", seed, err)
		}

		if len(plan.SlotOrder) != 4 {
			t.Fatalf("seed %d: adult plan has %d slots, want 4", seed, len(plan.SlotOrder))
		}
		if plan.ID == "" {
			t.Error("plan has no ID")
		}

		var cost, calorieBudget float64
		for _, slot := range plan.SlotOrder {
			meal, ok := plan.Meals[slot]
			if !ok {
				t.Fatalf("seed %d: slot %q missing from meals map", seed, slot)
			}
			if meal.Calories > meal.TargetCalories*overshootRatio+1e-9 {
				t.Errorf("seed %d: slot %q overshoots target", seed, slot)
			}
			cost += meal.Cost
			calorieBudget += meal.TargetCalories
		}

		if math.Abs(plan.TotalCost-cost) > 1e-6 {
			t.Errorf("seed %d: total cost %v != meal sum %v", seed, plan.TotalCost, cost)
		}
		if math.Abs(calorieBudget-dailyCalories) > 1e-6 {
			t.Errorf("seed %d: slot targets sum to %v, want %v", seed, calorieBudget, dailyCalories)
		}

		// Vegetarian plan must never contain non-vegetarian foods
		byName := make(map[string]models.FoodItem)
		for _, f := range foods {
			byName[f.Name] = f
		}
		for _, slot := range plan.SlotOrder {
			for _, entry := range plan.Meals[slot].Foods {
				if food, ok := byName[entry.Food]; ok && food.DietClass == models.DietOmnivore {
					t.Errorf("seed %d: non-vegetarian food %q in vegetarian plan", seed, entry.Food)
				}
			}
		}
	}
}

func TestGeneratePlanSlotCountsByAge(t *testing.T) {
	foods := catalog.Default()
	cases := []struct {
		age       int
		wantSlots int
	}{
		{10, 5},
		{40, 4},
		{70, 6},
	}
	for _, tc := range cases {
		req := planRequest()
		req.Age = tc.age

		plan, err := GeneratePlan(rand.New(rand.NewSource(11)), foods, req, 1800)
		if err != nil {
			t.Fatalf("age %d: GeneratePlan() error: %v", tc.age, err)
		}
		if len(plan.SlotOrder) != tc.wantSlots {
			t.Errorf("age %d: %d slots, want %d", tc.age, len(plan.SlotOrder), tc.wantSlots)
		}
	}
}

func TestGeneratePlanNoEligibleFoods(t *testing.T) {
	req := planRequest()

	// Nothing in the catalog at all
	_, err := GeneratePlan(rand.New(rand.NewSource(1)), nil, req, 2000)
	if !errors.Is(err, ErrNoEligibleFoods) {
		t.Fatalf("empty catalog: got %v, want ErrNoEligibleFoods", err)
	}

	// An allergy that matches every row
	foods := []models.FoodItem{
		{Name: "Curd", DietClass: models.DietVegetarian, Allergens: models.StringSlice{"Dairy"}, Category: "Dairy", Calories: 60},
		{Name: "Lassi", DietClass: models.DietVegetarian, Allergens: models.StringSlice{"Dairy"}, Category: "Beverages", Calories: 75},
	}
	req.Allergies = []string{"Dairy"}
	_, err = GeneratePlan(rand.New(rand.NewSource(1)), foods, req, 2000)
	if !errors.Is(err, ErrNoEligibleFoods) {
		t.Fatalf("all-excluding allergy: got %v, want ErrNoEligibleFoods", err)
	}
}

func TestGeneratePlanWithObserverStreamsEverySlot(t *testing.T) {
	var streamed []string
	plan, err := GeneratePlanWithObserver(rand.New(rand.NewSource(5)), catalog.Default(), planRequest(), 2000,
		func(meal models.MealResult) {
			streamed = append(streamed, meal.Slot)
		})
	if err != nil {
		t.Fatalf("GeneratePlanWithObserver() error: %v", err)
	}

	if len(streamed) != len(plan.SlotOrder) {
		t.Fatalf("observed %d slots, want %d", len(streamed), len(plan.SlotOrder))
	}
	for i, slot := range plan.SlotOrder {
		if streamed[i] != slot {
			t.Errorf("slot %d streamed as %q, want %q", i, streamed[i], slot)
		}
	}
}
