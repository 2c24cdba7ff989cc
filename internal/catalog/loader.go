package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"nutriplan/internal/models"
)

// Expected CSV columns. Multi-valued cells (allergens, meal types) separate
// entries with commas or semicolons inside the quoted field.
const (
	columnFood      = "food"
	columnDietType  = "diet_type"
	columnAllergens = "allergens"
	columnMealType  = "meal_type"
	columnCategory  = "category"
	columnCalories  = "calories"
	columnProtein   = "protein"
	columnCarbs     = "carbs"
	columnFats      = "fats"
	columnPrice     = "price_inr"
)

// LoadFile reads a catalog CSV from disk
func LoadFile(path string) ([]models.FoodItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads catalog rows from r. Rows whose nutrition values cannot be
// coerced to numbers are dropped with a logged warning rather than aborting
// the load; a missing or unparsable price is treated as unknown.
func Parse(r io.Reader) ([]models.FoodItem, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{columnFood, columnDietType, columnCategory, columnCalories, columnProtein, columnCarbs, columnFats} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("catalog is missing required column %q", required)
		}
	}

	var items []models.FoodItem
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Printf("Skipping malformed catalog line %d: %v", line, err)
			continue
		}

		item, err := rowToItem(record, columns)
		if err != nil {
			log.Printf("Dropping catalog line %d (%s): %v", line, cell(record, columns, columnFood), err)
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

func rowToItem(record []string, columns map[string]int) (models.FoodItem, error) {
	item := models.FoodItem{
		Name:      cell(record, columns, columnFood),
		DietClass: models.DietClass(cell(record, columns, columnDietType)),
		Allergens: splitTags(cell(record, columns, columnAllergens)),
		MealTypes: splitTags(cell(record, columns, columnMealType)),
		Category:  cell(record, columns, columnCategory),
	}

	var err error
	if item.Calories, err = parseNumber(cell(record, columns, columnCalories)); err != nil {
		return item, fmt.Errorf("bad calories: %w", err)
	}
	if item.Protein, err = parseNumber(cell(record, columns, columnProtein)); err != nil {
		return item, fmt.Errorf("bad protein: %w", err)
	}
	if item.Carbs, err = parseNumber(cell(record, columns, columnCarbs)); err != nil {
		return item, fmt.Errorf("bad carbs: %w", err)
	}
	if item.Fats, err = parseNumber(cell(record, columns, columnFats)); err != nil {
		return item, fmt.Errorf("bad fats: %w", err)
	}

	// Price is optional: unparsable values mean "unknown" rather than a bad row
	if raw := cell(record, columns, columnPrice); raw != "" {
		if price, err := parseNumber(raw); err == nil {
			item.Price = &price
		}
	}

	if err := models.ValidateFoodItem(&item); err != nil {
		return item, err
	}
	return item, nil
}

func cell(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseNumber(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	return value, nil
}

func splitTags(raw string) models.StringSlice {
	if raw == "" {
		return models.StringSlice{}
	}
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	})
	tags := make(models.StringSlice, 0, len(fields))
	for _, field := range fields {
		if tag := strings.TrimSpace(field); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
