package catalog

import (
	"reflect"
	"testing"

	"nutriplan/internal/models"
)

func testFoods() []models.FoodItem {
	cheap, mid, expensive := 10.0, 20.0, 40.0
	return []models.FoodItem{
		{Name: "Dal Tadka", DietClass: models.DietVegan, Allergens: models.StringSlice{}, Category: "Legumes", Calories: 120, Price: &cheap},
		{Name: "Paneer Bhurji", DietClass: models.DietVegetarian, Allergens: models.StringSlice{"Dairy"}, Category: "Dairy", Calories: 265, Price: &expensive},
		{Name: "Curd", DietClass: models.DietVegetarian, Allergens: models.StringSlice{"Dairy"}, Category: "Dairy", Calories: 60, Price: &cheap},
		{Name: "Chicken Curry", DietClass: models.DietOmnivore, Allergens: models.StringSlice{}, Category: "Curries", Calories: 190, Price: &mid},
		{Name: "Peanut Chikki", DietClass: models.DietVegan, Allergens: models.StringSlice{"Nuts"}, Category: "Sweets", Calories: 490, Price: &mid},
		{Name: "Sprouts Salad", DietClass: models.DietVegan, Allergens: models.StringSlice{}, Category: "Salads", Calories: 100},
	}
}

func names(foods []models.FoodItem) []string {
	out := make([]string, len(foods))
	for i, f := range foods {
		out[i] = f.Name
	}
	return out
}

func TestFilterDietSubsets(t *testing.T) {
	foods := testFoods()
	criteria := Criteria{Budget: models.BudgetHigh}

	criteria.Diet = models.DietVegan
	vegan := Filter(foods, criteria)
	criteria.Diet = models.DietVegetarian
	vegetarian := Filter(foods, criteria)
	criteria.Diet = models.DietOmnivore
	all := Filter(foods, criteria)

	if len(vegan) >= len(vegetarian) || len(vegetarian) >= len(all) {
		t.Fatalf("expected strict subset sizes, got %d vegan, %d vegetarian, %d all",
			len(vegan), len(vegetarian), len(all))
	}

	inVegetarian := make(map[string]bool)
	for _, f := range vegetarian {
		inVegetarian[f.Name] = true
	}
	for _, f := range vegan {
		if !inVegetarian[f.Name] {
			t.Errorf("vegan item %q missing from vegetarian output", f.Name)
		}
	}
	if len(all) != len(foods) {
		t.Errorf("omnivore filter dropped items: got %d, want %d", len(all), len(foods))
	}
}

func TestFilterAllergensCaseInsensitive(t *testing.T) {
	criteria := Criteria{
		Diet:      models.DietOmnivore,
		Allergies: []string{"dairy", "NUTS"},
		Budget:    models.BudgetHigh,
	}
	filtered := Filter(testFoods(), criteria)

	for _, f := range filtered {
		if f.HasAllergen("Dairy") || f.HasAllergen("Nuts") {
			t.Errorf("item %q with excluded allergen survived the filter", f.Name)
		}
	}
	if len(filtered) != 3 {
		t.Errorf("got %d items, want 3: %v", len(filtered), names(filtered))
	}
}

func TestFilterBudget(t *testing.T) {
	foods := testFoods()

	low := Filter(foods, Criteria{Diet: models.DietOmnivore, Budget: models.BudgetLow})
	for _, f := range low {
		if f.Price != nil && *f.Price > LowBudgetCeiling {
			t.Errorf("low budget kept %q at price %v", f.Name, *f.Price)
		}
	}

	// Items without price data always pass
	for _, budget := range []models.BudgetLevel{models.BudgetLow, models.BudgetMedium, models.BudgetHigh} {
		found := false
		for _, f := range Filter(foods, Criteria{Diet: models.DietOmnivore, Budget: budget}) {
			if f.Name == "Sprouts Salad" {
				found = true
			}
		}
		if !found {
			t.Errorf("priceless item dropped under %s budget", budget)
		}
	}

	high := Filter(foods, Criteria{Diet: models.DietOmnivore, Budget: models.BudgetHigh})
	if len(high) != len(foods) {
		t.Errorf("high budget dropped items: got %d, want %d", len(high), len(foods))
	}
}

func TestFilterIdempotent(t *testing.T) {
	criteria := Criteria{
		Diet:      models.DietVegetarian,
		Allergies: []string{"Nuts"},
		Budget:    models.BudgetMedium,
	}

	once := Filter(testFoods(), criteria)
	twice := Filter(once, criteria)

	if !reflect.DeepEqual(names(once), names(twice)) {
		t.Errorf("filtering is not idempotent: %v vs %v", names(once), names(twice))
	}
}

func TestFilterCanEmpty(t *testing.T) {
	criteria := Criteria{
		Diet:      models.DietVegan,
		Allergies: []string{"Nuts"},
		Budget:    models.BudgetLow,
	}
	foods := []models.FoodItem{
		{Name: "Peanut Chikki", DietClass: models.DietVegan, Allergens: models.StringSlice{"Nuts"}},
		{Name: "Chicken Curry", DietClass: models.DietOmnivore, Allergens: models.StringSlice{}},
	}

	filtered := Filter(foods, criteria)
	if len(filtered) != 0 {
		t.Errorf("expected empty result, got %v", names(filtered))
	}
}
