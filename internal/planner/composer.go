// Package planner implements the core of the system: the constrained-random
// meal composer and the plan assembler that drives it once per meal slot.
package planner

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"nutriplan/internal/models"
)

// Selection thresholds for the sampling loop. Tuned against the default
// catalog; change with care.
const (
	// maxAttempts bounds the sampling loop so composition always terminates
	maxAttempts = 50
	// basePortion is the catalog reference portion in grams/millilitres
	basePortion = 100.0
	// minPortion is the smallest serving worth putting on a plate
	minPortion = 10.0
	// overshootRatio caps cumulative calories relative to the slot target
	overshootRatio = 1.1
	// successCalorieRatio is the fraction of the target that counts as filled
	successCalorieRatio = 0.9
	// minFoodsPerMeal is required before stopping on calories alone
	minFoodsPerMeal = 3
	// maxFoodsPerMeal keeps meals simple enough to actually cook
	maxFoodsPerMeal = 5
)

// NewRand returns an entropy-seeded random source for production use. Tests
// construct their own seeded sources.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// candidate pairs a catalog item with its regional-preference flag
type candidate struct {
	food      *models.FoodItem
	preferred bool
}

// portionFactorForAge scales servings down for the young and the old
func portionFactorForAge(age int) float64 {
	switch {
	case age < 18:
		return 0.8
	case age > 65:
		return 0.9
	default:
		return 1.0
	}
}

// ComposeMeal fills one meal slot from the candidate foods using a bounded
// random-sampling loop. The result is best-effort: a sparse or
// over-constrained candidate set yields an under-target meal, never an
// error. Sampling draws from rng, so callers control determinism.
func ComposeMeal(rng *rand.Rand, foods []models.FoodItem, target models.MealTarget, age int, activity models.ActivityLevel, regional string) models.MealResult {
	result := models.MealResult{
		Slot:           target.Slot,
		TargetCalories: target.Calories,
		Foods:          []models.SelectedFoodEntry{},
	}

	pool := subFilterByMealType(foods, target.MealType)
	keywords := keywordsForRegion(regional)
	ranked := rankCandidates(pool, activity, keywords)
	if len(ranked) == 0 {
		return result
	}
	// A front-biased draw only makes sense when the ranking carries signal
	biased := len(keywords) > 0 || activity == models.ActivityActive

	usedCategories := make(map[string]bool)
	ageFactor := portionFactorForAge(age)

	for attempts := 0; attempts < maxAttempts && result.Calories < target.Calories; attempts++ {
		food := draw(rng, ranked, usedCategories, len(result.Foods), biased).food

		// Portion that closes the remaining calorie gap, never above the
		// catalog reference portion
		remaining := target.Calories - result.Calories
		portion := basePortion
		if food.Calories > 0 {
			portion = math.Min(basePortion, remaining/food.Calories*basePortion)
		}
		portion *= ageFactor

		if portion < minPortion {
			continue
		}

		ratio := portion / basePortion
		calories := food.Calories * ratio
		if result.Calories+calories > target.Calories*overshootRatio {
			continue
		}

		cost := 0.0
		if food.Price != nil {
			cost = *food.Price * ratio
		}
		entry := models.SelectedFoodEntry{
			Food:     food.Name,
			Category: food.Category,
			Portion:  portion,
			Calories: calories,
			Protein:  food.Protein * ratio,
			Carbs:    food.Carbs * ratio,
			Fats:     food.Fats * ratio,
			Cost:     cost,
		}

		result.Foods = append(result.Foods, entry)
		result.Calories += entry.Calories
		result.Protein += entry.Protein
		result.Carbs += entry.Carbs
		result.Fats += entry.Fats
		result.Cost += entry.Cost
		usedCategories[food.Category] = true

		if (result.Calories >= target.Calories*successCalorieRatio && len(result.Foods) >= minFoodsPerMeal) ||
			len(result.Foods) >= maxFoodsPerMeal {
			break
		}
	}

	return result
}

// subFilterByMealType narrows the pool to foods tagged for the slot's meal
// type. An empty sub-filter falls back to the full pool: composition always
// attempts selection from something.
func subFilterByMealType(foods []models.FoodItem, mealType models.MealType) []models.FoodItem {
	matched := make([]models.FoodItem, 0, len(foods))
	for _, food := range foods {
		if food.MatchesMealType(mealType) {
			matched = append(matched, food)
		}
	}
	if len(matched) == 0 {
		return foods
	}
	return matched
}

// rankCandidates produces the selection order: regionally preferred items
// first, then descending protein for active users. The sort is stable so
// equal-rank items keep their catalog order.
func rankCandidates(foods []models.FoodItem, activity models.ActivityLevel, keywords []string) []candidate {
	ranked := make([]candidate, len(foods))
	for i := range foods {
		ranked[i] = candidate{
			food:      &foods[i],
			preferred: len(keywords) > 0 && matchesRegion(foods[i].Name, keywords),
		}
	}

	byProtein := activity == models.ActivityActive
	if len(keywords) > 0 {
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].preferred != ranked[j].preferred {
				return ranked[i].preferred
			}
			if byProtein {
				return ranked[i].food.Protein > ranked[j].food.Protein
			}
			return false
		})
	} else if byProtein {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].food.Protein > ranked[j].food.Protein
		})
	}
	return ranked
}

// draw samples one candidate. While the meal is still small it prefers
// categories not yet represented; with a biased ranking it takes the smaller
// of two uniform indices, which favours the front of the ranked list while
// staying random.
func draw(rng *rand.Rand, ranked []candidate, used map[string]bool, chosen int, biased bool) candidate {
	pool := ranked
	if chosen < maxFoodsPerMeal {
		fresh := make([]candidate, 0, len(ranked))
		for _, c := range ranked {
			if !used[c.food.Category] {
				fresh = append(fresh, c)
			}
		}
		if len(fresh) > 0 {
			pool = fresh
		}
	}

	idx := rng.Intn(len(pool))
	if biased {
		if second := rng.Intn(len(pool)); second < idx {
			idx = second
		}
	}
	return pool[idx]
}
