package advice

import (
	"context"
	"strings"
	"testing"

	"nutriplan/internal/models"
)

func TestForActivityTiers(t *testing.T) {
	cases := map[models.ActivityLevel]string{
		models.ActivitySedentary: "Beginner's Exercise Routine",
		models.ActivityModerate:  "Intermediate Exercise Routine",
		models.ActivityActive:    "Advanced Exercise Routine",
	}
	for activity, want := range cases {
		g := ForActivity(activity, 2100)
		if g.Routine != want {
			t.Errorf("%s: routine = %q, want %q", activity, g.Routine, want)
		}
		if len(g.Exercise) == 0 || len(g.WeeklyGoals) == 0 || len(g.Hydration) == 0 {
			t.Errorf("%s: guidance has empty sections", activity)
		}
	}
}

func TestForActivityWaterTarget(t *testing.T) {
	g := ForActivity(models.ActivityModerate, 2100)
	if !strings.Contains(g.Hydration[0], "2100 ml") {
		t.Errorf("hydration goal missing water target: %q", g.Hydration[0])
	}
}

func TestPersonalizeWithoutModelFallsBack(t *testing.T) {
	advisor := NewAdvisor(nil)
	req := &models.PlanRequest{Name: "Asha", Age: 30, ActivityLevel: models.ActivityModerate, Goal: models.GoalMaintain}
	g := ForActivity(req.ActivityLevel, 2100)

	got := advisor.Personalize(context.Background(), req, g)
	if got != Render(g) {
		t.Error("nil model should return the static rendering")
	}
}

func TestRenderContainsAllSections(t *testing.T) {
	g := ForActivity(models.ActivityActive, 2400)
	text := Render(g)

	for _, want := range []string{g.Routine, "Weekly goals:", "Hydration:", "2400 ml"} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered guidance missing %q", want)
		}
	}
}
