package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nutriplan/internal/advice"
	"nutriplan/internal/catalog"
	"nutriplan/internal/energy"
	"nutriplan/internal/metrics"
	"nutriplan/internal/models"
	"nutriplan/internal/planner"
	"nutriplan/internal/report"
)

// PlannerAPI represents the main API handler for diet planning
type PlannerAPI struct {
	Router    *gin.Engine
	foods     []models.FoodItem
	advisor   *advice.Advisor
	collector *metrics.Collector
	monitor   *metrics.Monitor
}

// NewPlannerAPI creates a new planner API instance. foods is the immutable
// catalog loaded at startup; jwtSecret enables bearer authentication on the
// v1 group when non-empty.
func NewPlannerAPI(foods []models.FoodItem, advisor *advice.Advisor, collector *metrics.Collector, jwtSecret string) *PlannerAPI {
	api := &PlannerAPI{
		Router:    gin.Default(),
		foods:     foods,
		advisor:   advisor,
		collector: collector,
		monitor:   metrics.NewMonitor(),
	}
	if collector != nil {
		collector.SetCatalogSize(len(foods))
	}

	api.setupRoutes(jwtSecret)
	return api
}

// setupRoutes configures all API endpoints
func (p *PlannerAPI) setupRoutes(jwtSecret string) {
	// Health check
	p.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "NutriPlan API is running"})
	})

	p.Router.GET("/ws/plans", p.StreamPlan)

	v1 := p.Router.Group("/api/v1")
	if jwtSecret != "" {
		v1.Use(AuthMiddleware(jwtSecret))
	}
	{
		// Catalog
		v1.GET("/foods", p.ListFoods)
		v1.POST("/foods/filter", p.FilterFoods)

		// Planning
		v1.POST("/plans", p.GeneratePlan)
		v1.POST("/plans/export", p.ExportPlan)

		// Guidance and runtime status
		v1.GET("/advice", p.GetAdvice)
		v1.GET("/status", p.GetStatus)
	}
}

// PlanResponse is the full planning result returned to clients
type PlanResponse struct {
	Name     string           `json:"name,omitempty"`
	Targets  energy.Targets   `json:"targets"`
	Plan     *models.DietPlan `json:"plan"`
	Guidance advice.Guidance  `json:"guidance"`
	Advice   string           `json:"advice"`
}

// ListFoods returns the complete loaded catalog
func (p *PlannerAPI) ListFoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": len(p.foods), "foods": p.foods})
}

// FilterFoods applies criteria to the catalog and returns eligible foods
func (p *PlannerAPI) FilterFoods(c *gin.Context) {
	var criteria catalog.Criteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filtered := catalog.Filter(p.foods, criteria)
	c.JSON(http.StatusOK, gin.H{"count": len(filtered), "foods": filtered})
}

// GeneratePlan computes energy targets and assembles a full-day diet plan
func (p *PlannerAPI) GeneratePlan(c *gin.Context) {
	response, status, err := p.buildPlan(c)
	if err != nil {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, response)
}

// ExportPlan renders a freshly generated plan as downloadable plain text
func (p *PlannerAPI) ExportPlan(c *gin.Context) {
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, status, err := p.plan(c, &req)
	if err != nil {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	text := report.Render(&req, response.Targets, response.Plan, response.Guidance)
	c.Header("Content-Disposition", `attachment; filename="health_fitness_plan.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// GetAdvice returns exercise and hydration guidance for an activity level
func (p *PlannerAPI) GetAdvice(c *gin.Context) {
	activity := models.ActivityLevel(c.DefaultQuery("activity", string(models.ActivityModerate)))
	switch activity {
	case models.ActivitySedentary, models.ActivityModerate, models.ActivityActive:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown activity level %q", activity)})
		return
	}

	weightKg := 70.0
	if raw := c.Query("weight_kg"); raw != "" {
		if _, err := fmt.Sscanf(raw, "%f", &weightKg); err != nil || weightKg <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "weight_kg must be a positive number"})
			return
		}
	}

	c.JSON(http.StatusOK, advice.ForActivity(activity, weightKg*30))
}

// GetStatus returns the runtime monitor snapshot
func (p *PlannerAPI) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, p.monitor.Snapshot())
}

// buildPlan binds and validates the request body, then generates the plan
func (p *PlannerAPI) buildPlan(c *gin.Context) (*PlanResponse, int, error) {
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, http.StatusBadRequest, err
	}
	return p.plan(c, &req)
}

// plan runs validation, the energy model and the plan assembler for one
// request, recording metrics along the way
func (p *PlannerAPI) plan(c *gin.Context, req *models.PlanRequest) (*PlanResponse, int, error) {
	if err := models.ValidatePlanRequest(req); err != nil {
		if p.collector != nil {
			p.collector.ObserveFailure("invalid_request")
		}
		return nil, http.StatusBadRequest, err
	}

	bmr := energy.BasalMetabolicRate(req.WeightKg, req.HeightCm, req.Age, req.Gender)
	dailyCalories := energy.DailyCalorieTarget(bmr, req.ActivityLevel, req.Goal)
	targets := energy.DeriveTargets(bmr, dailyCalories, req.WeightKg)

	started := time.Now()
	plan, err := planner.GeneratePlan(planner.NewRand(), p.foods, req, dailyCalories)
	if err != nil {
		p.monitor.RecordFailure()
		if errors.Is(err, planner.ErrNoEligibleFoods) {
			if p.collector != nil {
				p.collector.ObserveFailure("no_eligible_foods")
			}
			return nil, http.StatusUnprocessableEntity, fmt.Errorf(
				"no foods match your constraints; try removing allergies or raising the budget level (Low keeps foods up to ₹%.0f per 100g, Medium up to ₹%.0f)",
				catalog.LowBudgetCeiling, catalog.MediumBudgetCeiling)
		}
		return nil, http.StatusInternalServerError, err
	}

	if p.collector != nil {
		p.collector.ObservePlan(plan, time.Since(started))
	}
	p.monitor.RecordPlan(plan)

	guidance := advice.ForActivity(req.ActivityLevel, targets.WaterML)
	return &PlanResponse{
		Name:     req.Name,
		Targets:  targets,
		Plan:     plan,
		Guidance: guidance,
		Advice:   p.advisor.Personalize(c.Request.Context(), req, guidance),
	}, http.StatusOK, nil
}
