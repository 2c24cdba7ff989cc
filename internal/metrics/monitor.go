package metrics

import (
	"sync"
	"time"

	"nutriplan/internal/models"
)

// Monitor keeps in-process counters about plan generation for the status
// endpoint. Unlike the prometheus collectors it is directly readable.
type Monitor struct {
	mu        sync.RWMutex
	startTime time.Time

	plansGenerated   int64
	plansFailed      int64
	underTargetMeals int64
	lastPlanAt       time.Time
	lastPlanCost     float64
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{startTime: time.Now()}
}

// RecordPlan records a successfully generated plan
func (m *Monitor) RecordPlan(plan *models.DietPlan) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.plansGenerated++
	m.lastPlanAt = time.Now()
	m.lastPlanCost = plan.TotalCost
	for _, slot := range plan.SlotOrder {
		meal := plan.Meals[slot]
		if meal.UnderTarget() {
			m.underTargetMeals++
		}
	}
}

// RecordFailure records a plan generation that produced no plan
func (m *Monitor) RecordFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plansFailed++
}

// Snapshot returns the current counters plus uptime
func (m *Monitor) Snapshot() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := map[string]interface{}{
		"uptime_seconds":     time.Since(m.startTime).Seconds(),
		"plans_generated":    m.plansGenerated,
		"plans_failed":       m.plansFailed,
		"under_target_meals": m.underTargetMeals,
	}
	if !m.lastPlanAt.IsZero() {
		snapshot["last_plan_at"] = m.lastPlanAt.Format(time.RFC3339)
		snapshot["last_plan_cost"] = m.lastPlanCost
	}
	return snapshot
}

// Reset clears all counters
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plansGenerated = 0
	m.plansFailed = 0
	m.underTargetMeals = 0
	m.lastPlanAt = time.Time{}
	m.lastPlanCost = 0
}
