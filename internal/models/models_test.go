package models

import "testing"

func TestFoodItemHasAllergen(t *testing.T) {
	item := FoodItem{Name: "Paneer Bhurji", Allergens: StringSlice{"Dairy"}}

	if !item.HasAllergen("dairy") {
		t.Error("allergen match should be case-insensitive")
	}
	if item.HasAllergen("Nuts") {
		t.Error("unexpected allergen match")
	}
}

func TestFoodItemAllowedFor(t *testing.T) {
	vegan := FoodItem{DietClass: DietVegan}
	vegetarian := FoodItem{DietClass: DietVegetarian}
	omnivore := FoodItem{DietClass: DietOmnivore}

	if !vegan.AllowedFor(DietVegan) || vegetarian.AllowedFor(DietVegan) || omnivore.AllowedFor(DietVegan) {
		t.Error("vegan preference must keep only vegan foods")
	}
	if !vegan.AllowedFor(DietVegetarian) || !vegetarian.AllowedFor(DietVegetarian) || omnivore.AllowedFor(DietVegetarian) {
		t.Error("vegetarian preference must keep vegan and vegetarian foods")
	}
	if !omnivore.AllowedFor(DietOmnivore) {
		t.Error("omnivore preference must keep everything")
	}
}

func TestValidateFoodItem(t *testing.T) {
	bad := -1.0
	cases := []struct {
		name string
		item FoodItem
		ok   bool
	}{
		{"valid", FoodItem{Name: "Poha", Calories: 130}, true},
		{"no name", FoodItem{Calories: 130}, false},
		{"negative calories", FoodItem{Name: "X", Calories: -1}, false},
		{"negative price", FoodItem{Name: "X", Price: &bad}, false},
	}
	for _, tc := range cases {
		err := ValidateFoodItem(&tc.item)
		if (err == nil) != tc.ok {
			t.Errorf("%s: ValidateFoodItem() = %v, want ok=%v", tc.name, err, tc.ok)
		}
	}
}

func TestValidatePlanRequest(t *testing.T) {
	valid := PlanRequest{
		WeightKg:          70,
		HeightCm:          170,
		Age:               30,
		Gender:            GenderMale,
		ActivityLevel:     ActivityModerate,
		DietaryPreference: DietVegetarian,
		Goal:              GoalMaintain,
		BudgetLevel:       BudgetMedium,
	}
	if err := ValidatePlanRequest(&valid); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	mutations := []func(*PlanRequest){
		func(r *PlanRequest) { r.WeightKg = 0 },
		func(r *PlanRequest) { r.HeightCm = -1 },
		func(r *PlanRequest) { r.Age = 0 },
		func(r *PlanRequest) { r.Age = 121 },
		func(r *PlanRequest) { r.Gender = "Unknown" },
		func(r *PlanRequest) { r.ActivityLevel = "Couch" },
		func(r *PlanRequest) { r.DietaryPreference = "Carnivore" },
		func(r *PlanRequest) { r.Goal = "Bulk" },
		func(r *PlanRequest) { r.BudgetLevel = "Free" },
	}
	for i, mutate := range mutations {
		req := valid
		mutate(&req)
		if err := ValidatePlanRequest(&req); err == nil {
			t.Errorf("mutation %d: invalid request accepted", i)
		}
	}
}

func TestMealResultUnderTarget(t *testing.T) {
	meal := MealResult{TargetCalories: 500, Calories: 420}
	if !meal.UnderTarget() {
		t.Error("420 of 500 calories should report under target")
	}

	meal.Calories = 460
	if meal.UnderTarget() {
		t.Error("460 of 500 calories should not report under target")
	}
}

func TestDietPlanAddMeal(t *testing.T) {
	plan := NewDietPlan()
	if plan.ID == "" {
		t.Fatal("plan has no ID")
	}

	plan.AddMeal(MealResult{Slot: "Breakfast", Cost: 20})
	plan.AddMeal(MealResult{Slot: "Lunch", Cost: 35})

	if len(plan.SlotOrder) != 2 || plan.SlotOrder[0] != "Breakfast" || plan.SlotOrder[1] != "Lunch" {
		t.Errorf("slot order = %v", plan.SlotOrder)
	}
	if plan.TotalCost != 55 {
		t.Errorf("total cost = %v, want 55", plan.TotalCost)
	}
	if _, ok := plan.Meals["Lunch"]; !ok {
		t.Error("lunch missing from meals map")
	}
}

func TestStringSliceRoundTrip(t *testing.T) {
	tags := StringSlice{"Dairy", "Nuts"}
	value, err := tags.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}

	var restored StringSlice
	if err := restored.Scan(value); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(restored) != 2 || restored[0] != "Dairy" || restored[1] != "Nuts" {
		t.Errorf("round trip produced %v", restored)
	}

	var empty StringSlice
	if err := empty.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Scan(nil) produced %v", empty)
	}
}
