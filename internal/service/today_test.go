package service_test

import (
	"strings"
	"testing"

	"github.com/saadjs/coach-cli/internal/model"
	"github.com/saadjs/coach-cli/internal/service"
)

func TestTodaySummary(t *testing.T) {
	t.Parallel()
	now := day(2024, 12, 10)
	l := newProfiledLedger(t, now)
	if _, err := l.AddMealEntry("2024-12-10", model.SlotLunch, model.MealEntry{FoodName: "Pollo", Quantity: 200, Calories: 1050, Protein: 200, Fat: 10, Carbs: 0}); err != nil {
		t.Fatalf("add entry: %v", err)
	}

	status := service.TodaySummary(l, now)
	if !status.HasTargets || status.GoalCalories != 2100 {
		t.Fatalf("expected inicio_deficit targets, got %+v", status)
	}
	if status.Calories != 1050 || status.RemainingCalories != 1050 {
		t.Fatalf("unexpected intake %d remaining %d", status.Calories, status.RemainingCalories)
	}
	if status.CaloriesPct != 50 {
		t.Fatalf("expected 50%% calories, got %d", status.CaloriesPct)
	}
	if status.ProteinPct != 100 {
		t.Fatalf("expected protein progress capped at 100, got %d", status.ProteinPct)
	}
	if status.RemainingProteinG != -24 {
		t.Fatalf("expected protein overshoot of 24 g, got %.1f", status.RemainingProteinG)
	}
}

func TestTodaySummaryWithoutPhase(t *testing.T) {
	t.Parallel()
	now := day(2025, 3, 31)
	status := service.TodaySummary(newProfiledLedger(t, now), now)
	if status.HasTargets || status.Phase != nil {
		t.Fatalf("expected no targets in the March gap, got %+v", status)
	}
	if status.CaloriesPct != 0 {
		t.Fatalf("expected 0%% progress without targets")
	}
}

func TestProgressPercent(t *testing.T) {
	t.Parallel()
	if service.ProgressPercent(50, 0) != 0 {
		t.Fatalf("expected 0 for zero target")
	}
	if service.ProgressPercent(1, 3) != 33 {
		t.Fatalf("expected 33%%")
	}
	if service.ProgressPercent(5, 2) != 100 {
		t.Fatalf("expected cap at 100")
	}
}

func TestProgramPlan(t *testing.T) {
	t.Parallel()
	profile := model.UserProfile{Name: "Ana", BodyWeight: 80, MaintenanceCalories: 2500, ReverseWeek: 1}
	current := service.ResolvePhase(day(2025, 2, 14), nil)

	plan := service.ProgramPlan(profile, current)
	if len(plan) != 4 {
		t.Fatalf("expected 4 phases, got %d", len(plan))
	}
	if len(plan[1].SubPhases) != 3 {
		t.Fatalf("expected 3 sub-phases in phase 2, got %d", len(plan[1].SubPhases))
	}
	if plan[2].Guidance.Cardio.Sessions != 4 {
		t.Fatalf("expected phase 3 guidance, got %+v", plan[2].Guidance)
	}

	first := plan[0].SubPhases[0]
	if first.Duration != "4 Nov 2024 - 17 Nov 2024 (2 semanas)" {
		t.Fatalf("unexpected duration %q", first.Duration)
	}
	deficit := plan[1].SubPhases[0]
	if deficit.Targets.Calories != 2100 || deficit.Current {
		t.Fatalf("unexpected inicio_deficit entry %+v", deficit)
	}
	if !plan[1].SubPhases[1].Current {
		t.Fatalf("expected descanso_dieta to be marked current")
	}
	deload := plan[3].SubPhases[0]
	if deload.Duration != "16 Jun 2025 - 22 Jun 2025 (1 semana)" {
		t.Fatalf("unexpected deload duration %q", deload.Duration)
	}
	reverse := plan[3].SubPhases[1]
	if reverse.LastDay != "" || !strings.HasPrefix(reverse.Duration, "desde 23 Jun 2025") {
		t.Fatalf("expected open-ended reverse diet, got %+v", reverse)
	}
}
