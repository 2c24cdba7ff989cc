package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ApiClient handles API requests to the NutriPlan API
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
	Token      string
	UseMock    bool
}

// NewApiClient creates a new API client
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("NUTRIPLAN_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
		BaseURL: baseURL,
		Token:   os.Getenv("NUTRIPLAN_TOKEN"),
		UseMock: false, // Default to trying the real server first
	}

	// Verify connectivity - if server is not available, use mock data
	if !client.ping() {
		fmt.Printf("Warning: API server at %s is not available. Using mock data.\n", baseURL)
		client.UseMock = true
	}

	return client
}

// ping checks if the API server is available
func (c *ApiClient) ping() bool {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// FoodItem mirrors a catalog entry returned by the API
type FoodItem struct {
	Name      string   `json:"name"`
	DietClass string   `json:"diet_class"`
	Allergens []string `json:"allergens"`
	MealTypes []string `json:"meal_types"`
	Category  string   `json:"category"`
	Calories  float64  `json:"calories"`
	Protein   float64  `json:"protein"`
	Carbs     float64  `json:"carbs"`
	Fats      float64  `json:"fats"`
	Price     *float64 `json:"price,omitempty"`
}

// PlanRequest carries the profile submitted for plan generation
type PlanRequest struct {
	Name               string   `json:"name,omitempty"`
	WeightKg           float64  `json:"weight_kg"`
	HeightCm           float64  `json:"height_cm"`
	Age                int      `json:"age"`
	Gender             string   `json:"gender"`
	ActivityLevel      string   `json:"activity_level"`
	DietaryPreference  string   `json:"dietary_preference"`
	Allergies          []string `json:"allergies,omitempty"`
	Goal               string   `json:"goal"`
	BudgetLevel        string   `json:"budget_level"`
	RegionalPreference string   `json:"regional_preference,omitempty"`
}

// Targets holds the energy metrics computed for a profile
type Targets struct {
	BMR           float64 `json:"bmr"`
	DailyCalories float64 `json:"daily_calories"`
	ProteinGrams  float64 `json:"protein_grams"`
	CarbGrams     float64 `json:"carb_grams"`
	FatGrams      float64 `json:"fat_grams"`
	WaterML       float64 `json:"water_ml"`
}

// SelectedFood is one portioned food inside a meal
type SelectedFood struct {
	Food     string  `json:"food"`
	Category string  `json:"category"`
	Portion  float64 `json:"portion"`
	Calories float64 `json:"calories"`
	Cost     float64 `json:"cost"`
}

// Meal is one composed meal slot
type Meal struct {
	Slot           string         `json:"slot"`
	TargetCalories float64        `json:"target_calories"`
	Foods          []SelectedFood `json:"foods"`
	Calories       float64        `json:"calories"`
	Cost           float64        `json:"cost"`
}

// DietPlan is the assembled full-day plan
type DietPlan struct {
	ID        string          `json:"id"`
	SlotOrder []string        `json:"slot_order"`
	Meals     map[string]Meal `json:"meals"`
	TotalCost float64         `json:"total_cost"`
}

// Guidance is the lifestyle advice block
type Guidance struct {
	Routine     string   `json:"routine"`
	Exercise    []string `json:"exercise"`
	WeeklyGoals []string `json:"weekly_goals"`
	Hydration   []string `json:"hydration"`
	Tips        []string `json:"tips"`
}

// PlanResponse is the full planning result
type PlanResponse struct {
	Name     string   `json:"name"`
	Targets  Targets  `json:"targets"`
	Plan     DietPlan `json:"plan"`
	Guidance Guidance `json:"guidance"`
	Advice   string   `json:"advice"`
}

func (c *ApiClient) get(path string) (*http.Response, error) {
	req, err := http.NewRequest("GET", c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	return c.httpClient.Do(req)
}

func (c *ApiClient) post(path string, payload interface{}) (*http.Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest("POST", c.BaseURL+path, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	return c.httpClient.Do(req)
}

func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Error != "" {
		return fmt.Errorf("%s", parsed.Error)
	}
	return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
}

// GetFoods retrieves the loaded food catalog
func (c *ApiClient) GetFoods() ([]FoodItem, error) {
	if c.UseMock {
		return c.getMockFoods(), nil
	}

	resp, err := c.get("/api/v1/foods")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var response struct {
		Foods []FoodItem `json:"foods"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}
	return response.Foods, nil
}

// GeneratePlan requests a full-day diet plan for a profile
func (c *ApiClient) GeneratePlan(req *PlanRequest) (*PlanResponse, error) {
	if c.UseMock {
		return c.getMockPlan(req), nil
	}

	resp, err := c.post("/api/v1/plans", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var response PlanResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}
	return &response, nil
}

// ExportPlan requests the plain-text rendering of a freshly generated plan
func (c *ApiClient) ExportPlan(req *PlanRequest) (string, error) {
	if c.UseMock {
		return "mock export is not supported without a server", nil
	}

	resp, err := c.post("/api/v1/plans/export", req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apiError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetAdvice retrieves exercise and hydration guidance for an activity level
func (c *ApiClient) GetAdvice(activity string, weightKg float64) (*Guidance, error) {
	if c.UseMock {
		return c.getMockGuidance(), nil
	}

	path := fmt.Sprintf("/api/v1/advice?activity=%s&weight_kg=%.1f", activity, weightKg)
	resp, err := c.get(path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var guidance Guidance
	if err := json.NewDecoder(resp.Body).Decode(&guidance); err != nil {
		return nil, err
	}
	return &guidance, nil
}

// GetStatus retrieves the server's runtime counters
func (c *ApiClient) GetStatus() (map[string]interface{}, error) {
	if c.UseMock {
		return map[string]interface{}{
			"plans_generated": 0,
			"plans_failed":    0,
			"uptime_seconds":  0.0,
		}, nil
	}

	resp, err := c.get("/api/v1/status")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var status map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}
	return status, nil
}

// Mock data generators
// getMockFoods returns a small catalog sample for offline browsing
func (c *ApiClient) getMockFoods() []FoodItem {
	price := func(v float64) *float64 { return &v }
	return []FoodItem{
		{Name: "Poha", DietClass: "Vegan", MealTypes: []string{"Breakfast"}, Category: "Grains", Calories: 130, Protein: 2.6, Carbs: 26, Fats: 1.5, Price: price(8)},
		{Name: "Dal Tadka", DietClass: "Vegan", MealTypes: []string{"Lunch", "Dinner"}, Category: "Legumes", Calories: 120, Protein: 7, Carbs: 18, Fats: 2.5, Price: price(12)},
		{Name: "Palak Paneer", DietClass: "Vegetarian", Allergens: []string{"Dairy"}, MealTypes: []string{"Lunch", "Dinner"}, Category: "Curries", Calories: 180, Protein: 9, Carbs: 7, Fats: 13, Price: price(22)},
		{Name: "Chicken Curry", DietClass: "Non-Vegetarian", MealTypes: []string{"Lunch", "Dinner"}, Category: "Curries", Calories: 190, Protein: 17, Carbs: 6, Fats: 11, Price: price(25)},
	}
}

// getMockPlan returns a canned plan so the UI can be exercised offline
func (c *ApiClient) getMockPlan(req *PlanRequest) *PlanResponse {
	breakfast := Meal{
		Slot:           "Breakfast",
		TargetCalories: 400,
		Calories:       390,
		Cost:           18,
		Foods: []SelectedFood{
			{Food: "Poha", Category: "Grains", Portion: 100, Calories: 130, Cost: 8},
			{Food: "Banana", Category: "Fruits", Portion: 100, Calories: 89, Cost: 6},
		},
	}
	lunch := Meal{
		Slot:           "Lunch",
		TargetCalories: 700,
		Calories:       640,
		Cost:           30,
		Foods: []SelectedFood{
			{Food: "Dal Tadka", Category: "Legumes", Portion: 100, Calories: 120, Cost: 12},
			{Food: "Steamed Rice", Category: "Grains", Portion: 100, Calories: 130, Cost: 8},
		},
	}
	return &PlanResponse{
		Name: req.Name,
		Targets: Targets{
			BMR:           1450,
			DailyCalories: 2000,
			ProteinGrams:  75,
			WaterML:       req.WeightKg * 30,
		},
		Plan: DietPlan{
			ID:        "mock",
			SlotOrder: []string{"Breakfast", "Lunch"},
			Meals:     map[string]Meal{"Breakfast": breakfast, "Lunch": lunch},
			TotalCost: 48,
		},
		Guidance: *c.getMockGuidance(),
		Advice:   "Start with consistency: short daily walks and regular meals.",
	}
}

// getMockGuidance returns static guidance for offline use
func (c *ApiClient) getMockGuidance() *Guidance {
	return &Guidance{
		Routine:     "Beginner's Exercise Routine",
		Exercise:    []string{"Morning (15-20 minutes): light stretching, walking in place"},
		WeeklyGoals: []string{"3-4 days of exercise", "Focus on consistency"},
		Hydration:   []string{"Daily water intake goal: 2100 ml"},
		Tips:        []string{"Stay hydrated throughout the day"},
	}
}
