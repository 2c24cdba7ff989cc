package catalog

import (
	"fmt"
	"log"

	"github.com/jinzhu/gorm"

	"nutriplan/internal/models"
)

// Migrate creates the foods table
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.FoodItem{}).Error
}

// Seed inserts items into an empty foods table. A populated table is left
// untouched so a curated database survives restarts.
func Seed(db *gorm.DB, items []models.FoodItem) error {
	var count int64
	if err := db.Model(&models.FoodItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count foods: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			log.Printf("Failed to seed food %q: %v", items[i].Name, err)
		}
	}
	return nil
}

// LoadAll reads the full catalog. The returned slice is treated as immutable
// by every consumer; plan generation never writes to it.
func LoadAll(db *gorm.DB) ([]models.FoodItem, error) {
	var foods []models.FoodItem
	if err := db.Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return foods, nil
}

func price(v float64) *float64 {
	return &v
}

// Default returns the built-in catalog used when no CSV file is supplied.
// Nutrition and prices are per 100 g (or 100 ml for drinks).
func Default() []models.FoodItem {
	return []models.FoodItem{
		{Name: "Poha", DietClass: models.DietVegan, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Breakfast"}, Category: "Grains", Calories: 130, Protein: 2.6, Carbs: 25, Fats: 1.5, Price: price(10)},
		{Name: "Idli", DietClass: models.DietVegan, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Breakfast"}, Category: "Grains", Calories: 135, Protein: 3.5, Carbs: 28, Fats: 0.4, Price: price(12)},
		{Name: "Masala Dosa", DietClass: models.DietVegan, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Breakfast"}, Category: "Grains", Calories: 168, Protein: 3.9, Carbs: 29, Fats: 3.7, Price: price(20)},
		{Name: "Upma", DietClass: models.DietVegan, Allergens: models.StringSlice{"Gluten"}, MealTypes: models.StringSlice{"Breakfast"}, Category: "Grains", Calories: 155, Protein: 4, Carbs: 27, Fats: 3, Price: price(10)},
		{Name: "Uttapam", DietClass: models.DietVegan, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Breakfast"}, Category: "Grains", Calories: 170, Protein: 4.2, Carbs: 30, Fats: 3.5, Price: price(18)},
		{Name: "Aloo Paratha", DietClass: models.DietVegetarian, Allergens: models.StringSlice{"Gluten", "Dairy"}, MealTypes: models.StringSlice{"Breakfast"}, Category: "Grains", Calories: 210, Protein: 5, Carbs: 32, Fats: 7, Price: price(15)},
		{Name: "Milk", DietClass: models.DietVegetarian, Allergens: models.StringSlice{"Dairy"}, MealTypes: models.StringSlice{"Breakfast", "Snack"}, Category: "Dairy", Calories: 62, Protein: 3.2, Carbs: 4.8, Fats: 3.4, Price: price(7)},
		{Name: "Banana", DietClass: models.DietVegan, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Breakfast", "Snack"}, Category: "Fruits", Calories: 89, Protein: 1.1, Carbs: 23, Fats: 0.3, Price: price(6)},

		{Name: "Dal Tadka", DietClass: models.DietVegan, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Lunch", "Dinner"}, Category: "Legumes", Calories: 120, Protein: 7, Carbs: 17, Fats: 3, Price: price(12)},
		{Name: "Rajma Curry", DietClass: models.DietVegan, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Lunch", "Dinner"}, Category: "Legumes", Calories: 140, Protein: 8, Carbs: 20, Fats: 3.5, Price: price(14)},
		{Name: "Chole", DietClass: models.DietVegan, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Lunch", "Dinner"}, Category: "Legumes", Calories: 164, Protein: 8.9, Carbs: 25, Fats: 4.2, Price: price(15)},
		{Name: "Sambar", DietClass: models.DietVegan, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Lunch", "Dinner"}, Category: "Legumes", Calories: 85, Protein: 4.5, Carbs: 12, Fats: 2, Price: price(10)},
		{Name: "Soy Chunks Curry", DietClass: models.DietVegan, Allergens: models.StringSlice{"Soy"}, MealTypes: models.StringSlice{"Lunch", "Dinner"}, Category: "Legumes", Calories: 130, Protein: 13, Carbs: 10, Fats: 5, Price: price(16)},
		{Name: "Steamed Rice", DietClass: models.DietVegan, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Lunch", "Dinner"}, Category: "Grains", Calories: 130, Protein: 2.7, Carbs: 28, Fats: 0.3, Price: price(8)},
		{Name: "Chapati", DietClass: models.DietVegan, Allergens: models.StringSlice{"Gluten"}, MealTypes: models.StringSlice{"Lunch", "Dinner"}, Category: "Grains", Calories: 120, Protein: 3.8, Carbs: 24, Fats: 1.2, Price: price(6)},
		{Name: "Vegetable Pulao", DietClass: models.DietVegan, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Lunch"}, Category: "Grains", Calories: 145, Protein: 3.2, Carbs: 27, Fats: 2.8, Price: price(18)},
		{Name: "Paneer Bhurji", DietClass: models.DietVegetarian, Allergens: models.StringSlice{"Dairy"}, MealTypes: models.StringSlice{"Lunch", "Dinner"}, Category: "Dairy", Calories: 265, Protein: 18, Carbs: 6, Fats: 20, Price: price(35)},
		{Name: "Palak Paneer", DietClass: models.DietVegetarian, Allergens: models.StringSlice{"Dairy"}, MealTypes: models.StringSlice{"Dinner"}, Category: "Curries", Calories: 180, Protein: 9, Carbs: 7, Fats: 13, Price: price(30)},
		{Name: "Bhindi Masala", DietClass: models.DietVegan, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Lunch", "Dinner"}, Category: "Vegetables", Calories: 95, Protein: 2.5, Carbs: 10, Fats: 5, Price: price(14)},
		{Name: "Baingan Bharta", DietClass: models.DietVegan, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Dinner"}, Category: "Vegetables", Calories: 85, Protein: 2, Carbs: 9, Fats: 4.5, Price: price(12)},
		{Name: "Aloo Gobi", DietClass: models.DietVegan, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Lunch", "Dinner"}, Category: "Vegetables", Calories: 110, Protein: 2.8, Carbs: 14, Fats: 4.8, Price: price(12)},
		{Name: "Khichdi", DietClass: models.DietVegan, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Dinner"}, Category: "Grains", Calories: 120, Protein: 4.5, Carbs: 20, Fats: 2.5, Price: price(10)},

		{Name: "Curd", DietClass: models.DietVegetarian, Allergens: models.StringSlice{"Dairy"}, MealTypes: models.StringSlice{"Lunch", "Snack"}, Category: "Dairy", Calories: 60, Protein: 3.5, Carbs: 4.7, Fats: 3.3, Price: price(10)},
		{Name: "Lassi", DietClass: models.DietVegetarian, Allergens: models.StringSlice{"Dairy"}, MealTypes: models.StringSlice{"Snack"}, Category: "Beverages", Calories: 75, Protein: 2.9, Carbs: 11, Fats: 2, Price: price(15)},
		{Name: "Samosa", DietClass: models.DietVegetarian, Allergens: models.StringSlice{"Gluten"}, MealTypes: models.StringSlice{"Snack"}, Category: "Snacks", Calories: 260, Protein: 4.7, Carbs: 30, Fats: 13, Price: price(12)},
		{Name: "Roasted Chana", DietClass: models.DietVegan, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Snack"}, Category: "Legumes", Calories: 364, Protein: 19, Carbs: 58, Fats: 6, Price: price(20)},
		{Name: "Fruit Chaat", DietClass: models.DietVegan, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Snack"}, Category: "Fruits", Calories: 55, Protein: 0.8, Carbs: 13, Fats: 0.3, Price: price(20)},
		{Name: "Sprouts Salad", DietClass: models.DietVegan, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Snack"}, Category: "Salads", Calories: 100, Protein: 7, Carbs: 15, Fats: 1, Price: price(12)},
		{Name: "Peanut Chikki", DietClass: models.DietVegan, Allergens: models.StringSlice{"Nuts"}, MealTypes: models.StringSlice{"Snack"}, Category: "Sweets", Calories: 490, Protein: 12, Carbs: 60, Fats: 24, Price: price(22)},
		{Name: "Vegetable Sandwich", DietClass: models.DietVegetarian, Allergens: models.StringSlice{"Gluten", "Dairy"}, MealTypes: models.StringSlice{"Snack"}, Category: "Snacks", Calories: 190, Protein: 5.5, Carbs: 28, Fats: 6, Price: price(18)},

		{Name: "Egg Bhurji", DietClass: models.DietOmnivore, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Breakfast"}, Category: "Eggs", Calories: 155, Protein: 11, Carbs: 3, Fats: 11, Price: price(18)},
		{Name: "Chicken Curry", DietClass: models.DietOmnivore, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Lunch", "Dinner"}, Category: "Curries", Calories: 190, Protein: 14, Carbs: 6, Fats: 12, Price: price(40)},
		{Name: "Fish Curry", DietClass: models.DietOmnivore, Allergens: models.StringSlice{}, MealTypes: models.StringSlice{"Dinner"}, Category: "Curries", Calories: 160, Protein: 15, Carbs: 5, Fats: 9, Price: price(45)},
	}
}
