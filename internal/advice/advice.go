// Package advice provides the lifestyle guidance shown next to a diet plan:
// an exercise routine tier keyed by activity level and a hydration schedule
// derived from the water-intake target. When an LLM is configured the static
// guidance is rewritten into a personal narrative; without one the static
// text is served as-is.
package advice

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"nutriplan/internal/models"
)

// Guidance is the structured lifestyle advice for one activity level
type Guidance struct {
	Activity    models.ActivityLevel `json:"activity"`
	Routine     string               `json:"routine"`
	Exercise    []string             `json:"exercise"`
	WeeklyGoals []string             `json:"weekly_goals"`
	Hydration   []string             `json:"hydration"`
	Tips        []string             `json:"tips"`
}

// ForActivity returns the guidance tier for an activity level. waterML is
// the daily water-intake target in millilitres.
func ForActivity(activity models.ActivityLevel, waterML float64) Guidance {
	g := Guidance{Activity: activity}

	switch activity {
	case models.ActivityActive:
		g.Routine = "Advanced Exercise Routine"
		g.Exercise = []string{
			"Morning (45-60 minutes): dynamic warm-up, high-intensity cardio, strength training",
			"Evening (45-60 minutes): running or cycling, advanced circuit training",
		}
		g.WeeklyGoals = []string{
			"5-6 days of exercise",
			"High-intensity workouts",
			"Active recovery on rest days",
		}
	case models.ActivityModerate:
		g.Routine = "Intermediate Exercise Routine"
		g.Exercise = []string{
			"Morning (30 minutes): dynamic stretching, cardio, strength training",
			"Evening (30-40 minutes): brisk walking or jogging, circuit training",
		}
		g.WeeklyGoals = []string{
			"4-5 days of exercise",
			"Mix of cardio and strength",
			"Include rest days",
		}
	default:
		g.Routine = "Beginner's Exercise Routine"
		g.Exercise = []string{
			"Morning (15-20 minutes): light stretching, walking in place, basic yoga poses",
			"Evening (20-30 minutes): brisk walking, simple bodyweight exercises",
		}
		g.WeeklyGoals = []string{
			"3-4 days of exercise",
			"Gradually increase duration",
			"Focus on consistency",
		}
	}

	g.Hydration = []string{
		fmt.Sprintf("Daily water intake goal: %.0f ml", waterML),
		"Morning: 250 ml on waking up, 250 ml with breakfast",
		"Before and with lunch: 500 ml",
		"Afternoon: regular sips",
		"Before and with dinner: 500 ml",
	}
	g.Tips = []string{
		"Stay hydrated throughout the day",
		"Maintain a balanced diet",
		"Get adequate sleep",
		"Practice stress management",
	}
	return g
}

// Advisor optionally personalizes guidance through an LLM
type Advisor struct {
	model llms.LLM
}

// NewAdvisor creates an advisor. A nil model disables personalization and
// the static guidance text is returned instead.
func NewAdvisor(model llms.LLM) *Advisor {
	return &Advisor{model: model}
}

// Personalize turns guidance into a short narrative for the user. Any LLM
// failure falls back to the static rendering; advice is never worth failing
// a plan over.
func (a *Advisor) Personalize(ctx context.Context, req *models.PlanRequest, g Guidance) string {
	if a == nil || a.model == nil {
		return Render(g)
	}

	prompt := fmt.Sprintf(
		"Rewrite the following fitness and hydration guidance as a short, encouraging note for %s, a %d year old with a %s activity level and the goal %q. Keep every concrete number. Guidance:\n%s",
		displayName(req.Name), req.Age, strings.ToLower(string(req.ActivityLevel)), req.Goal, Render(g),
	)

	personalized, err := a.model.Call(ctx, prompt)
	if err != nil || strings.TrimSpace(personalized) == "" {
		return Render(g)
	}
	return personalized
}

// Render flattens guidance into plain text, one line per item
func Render(g Guidance) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", g.Routine)
	for _, line := range g.Exercise {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	b.WriteString("Weekly goals:\n")
	for _, line := range g.WeeklyGoals {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	b.WriteString("Hydration:\n")
	for _, line := range g.Hydration {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	for _, line := range g.Tips {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	return b.String()
}

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "the user"
	}
	return name
}
