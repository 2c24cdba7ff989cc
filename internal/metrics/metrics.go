// Package metrics exposes planner and API instrumentation: prometheus
// collectors served on the metrics port and a lightweight runtime monitor
// backing the status endpoint.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nutriplan/internal/models"
)

// Collector handles metrics collection and reporting
type Collector struct {
	registry *prometheus.Registry

	plansGenerated   *prometheus.CounterVec
	planDuration     prometheus.Histogram
	underTargetMeals prometheus.Counter
	foodsPerMeal     prometheus.Histogram
	catalogSize      prometheus.Gauge
}

// NewCollector creates a collector with its own registry
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		plansGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plans_generated_total",
				Help: "Diet plan generations by outcome",
			},
			[]string{"outcome"},
		),
		planDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "plan_generation_seconds",
				Help:    "Time taken to generate a full diet plan",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
		),
		underTargetMeals: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "under_target_meals_total",
				Help: "Meals returned materially below their calorie target",
			},
		),
		foodsPerMeal: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "foods_per_meal",
				Help:    "Number of foods selected per composed meal",
				Buckets: prometheus.LinearBuckets(0, 1, 7),
			},
		),
		catalogSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "catalog_foods",
				Help: "Number of foods loaded into the catalog",
			},
		),
	}

	c.registry.MustRegister(
		c.plansGenerated,
		c.planDuration,
		c.underTargetMeals,
		c.foodsPerMeal,
		c.catalogSize,
	)
	return c
}

// Handler returns the HTTP handler serving this collector's registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// SetCatalogSize records the loaded catalog size
func (c *Collector) SetCatalogSize(n int) {
	c.catalogSize.Set(float64(n))
}

// ObservePlan records a successful plan generation
func (c *Collector) ObservePlan(plan *models.DietPlan, elapsed time.Duration) {
	c.plansGenerated.WithLabelValues("ok").Inc()
	c.planDuration.Observe(elapsed.Seconds())
	for _, slot := range plan.SlotOrder {
		meal := plan.Meals[slot]
		c.foodsPerMeal.Observe(float64(len(meal.Foods)))
		if meal.UnderTarget() {
			c.underTargetMeals.Inc()
		}
	}
}

// ObserveFailure records a failed plan generation by reason
func (c *Collector) ObserveFailure(reason string) {
	c.plansGenerated.WithLabelValues(reason).Inc()
}
