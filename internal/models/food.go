package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
)

// StringSlice represents a slice of strings that can be stored in the database
type StringSlice []string

// Value converts the slice to a JSON string for storage
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan converts the database value back to a slice
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for StringSlice")
	}
}

// DietClass classifies a food by the strictest diet that allows it
type DietClass string

const (
	// Diet classes
	DietVegan      DietClass = "Vegan"
	DietVegetarian DietClass = "Vegetarian"
	DietOmnivore   DietClass = "Non-Vegetarian"
)

// MealType tags a food with the meal slots it suits
type MealType string

const (
	// Meal types
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

// Common allergen tags found in the catalog
const (
	AllergenDairy  = "Dairy"
	AllergenNuts   = "Nuts"
	AllergenGluten = "Gluten"
	AllergenSoy    = "Soy"
)

// FoodItem represents a single row of the food catalog: nutrition and price
// are per 100 units (grams or millilitres) of the listed food. Items are
// loaded once at startup and never mutated afterwards.
type FoodItem struct {
	gorm.Model `json:"-"`
	Name       string      `json:"name"`
	DietClass  DietClass   `json:"diet_class"`
	Allergens  StringSlice `gorm:"type:text" json:"allergens"`
	MealTypes  StringSlice `gorm:"type:text" json:"meal_types"`
	Category   string      `json:"category"`
	Calories   float64     `json:"calories"`
	Protein    float64     `json:"protein"`
	Carbs      float64     `json:"carbs"`
	Fats       float64     `json:"fats"`
	Price      *float64    `json:"price,omitempty"`
}

// TableName sets the table name for FoodItem
func (FoodItem) TableName() string {
	return "foods"
}

// ValidateFoodItem validates a catalog row before it is accepted
func ValidateFoodItem(item *FoodItem) error {
	if item.Name == "" {
		return fmt.Errorf("food name is required")
	}
	if item.Calories < 0 || item.Protein < 0 || item.Carbs < 0 || item.Fats < 0 {
		return fmt.Errorf("nutrition values must be non-negative")
	}
	if item.Price != nil && *item.Price < 0 {
		return fmt.Errorf("price must be non-negative")
	}
	return nil
}

// HasAllergen checks if the item carries a specific allergen tag,
// case-insensitively
func (f *FoodItem) HasAllergen(allergen string) bool {
	for _, tag := range f.Allergens {
		if strings.EqualFold(tag, allergen) {
			return true
		}
	}
	return false
}

// MatchesMealType checks if the item is tagged for a meal type
func (f *FoodItem) MatchesMealType(mealType MealType) bool {
	for _, tag := range f.MealTypes {
		if strings.EqualFold(tag, string(mealType)) {
			return true
		}
	}
	return false
}

// AllowedFor checks if the item satisfies a dietary preference
func (f *FoodItem) AllowedFor(pref DietClass) bool {
	switch pref {
	case DietVegan:
		return f.DietClass == DietVegan
	case DietVegetarian:
		return f.DietClass == DietVegan || f.DietClass == DietVegetarian
	default:
		return true
	}
}
